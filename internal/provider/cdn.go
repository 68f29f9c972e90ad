package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"biblealive/pkg/models"
)

// CDNSource fetches per-version JSON files from the wldeh bible-api dataset
// hosted on a CDN. It covers 200+ translations and is always tried first.
type CDNSource struct {
	BaseURL string
	Client  *http.Client
}

func NewCDNSource(baseURL string, timeout time.Duration) *CDNSource {
	return &CDNSource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (s *CDNSource) Name() string { return "wldeh-api" }

func (s *CDNSource) FetchChapter(ctx context.Context, ref ChapterRef) (*models.Chapter, error) {
	url := fmt.Sprintf("%s/bibles/%s/books/%s/chapters/%d.json",
		s.BaseURL, ref.CDNID, ref.BookKey, ref.Chapter)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("cdn: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cdn: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cdn: status %d", resp.StatusCode)
	}

	var raw struct {
		Verses []struct {
			Verse int    `json:"verse"`
			Text  string `json:"text"`
		} `json:"verses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cdn: decode json: %w", err)
	}
	if raw.Verses == nil {
		return nil, fmt.Errorf("cdn: response has no verses field")
	}

	verses := make([]models.Verse, 0, len(raw.Verses))
	for _, v := range raw.Verses {
		verses = append(verses, models.Verse{Verse: v.Verse, Text: v.Text})
	}

	return &models.Chapter{
		Book:    ref.BookKey,
		Chapter: ref.Chapter,
		Version: ref.Version,
		Verses:  verses,
		Source:  s.Name(),
	}, nil
}
