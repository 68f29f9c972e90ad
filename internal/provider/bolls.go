package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"biblealive/pkg/models"
)

// BollsSource talks to the bolls.life REST API, which addresses books by
// their 1-66 numeric id and returns a flat array of verse objects.
type BollsSource struct {
	BaseURL string
	Client  *http.Client
}

func NewBollsSource(baseURL string, timeout time.Duration) *BollsSource {
	return &BollsSource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (s *BollsSource) Name() string { return "bolls-api" }

func (s *BollsSource) FetchChapter(ctx context.Context, ref ChapterRef) (*models.Chapter, error) {
	if ref.BookNumber <= 0 {
		return nil, fmt.Errorf("bolls: book %q has no numeric id", ref.BookKey)
	}

	url := fmt.Sprintf("%s/get-text/%s/%d/%d/", s.BaseURL, ref.APIID, ref.BookNumber, ref.Chapter)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("bolls: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bolls: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bolls: status %d", resp.StatusCode)
	}

	var raw []struct {
		PK    int    `json:"pk"`
		Verse int    `json:"verse"`
		Text  string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("bolls: decode json: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("bolls: empty chapter")
	}

	verses := make([]models.Verse, 0, len(raw))
	for _, v := range raw {
		text := stripTags(v.Text)
		if text == "" {
			// verse objects without text are dropped, not zero-filled
			continue
		}
		num := v.PK
		if v.Verse > 0 {
			num = v.Verse
		}
		verses = append(verses, models.Verse{Verse: num, Text: text})
	}
	if len(verses) == 0 {
		return nil, fmt.Errorf("bolls: no usable verses")
	}

	return &models.Chapter{
		Book:    ref.BookKey,
		Chapter: ref.Chapter,
		Version: ref.Version,
		Verses:  verses,
		Source:  s.Name(),
	}, nil
}
