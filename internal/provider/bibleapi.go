package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"biblealive/pkg/models"
)

// BibleAPISource talks to bible-api.com, which serves a single English
// translation (KJV) addressed by book+chapter path.
type BibleAPISource struct {
	BaseURL string
	Client  *http.Client
}

func NewBibleAPISource(baseURL string, timeout time.Duration) *BibleAPISource {
	return &BibleAPISource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (s *BibleAPISource) Name() string { return "bible-api" }

func (s *BibleAPISource) FetchChapter(ctx context.Context, ref ChapterRef) (*models.Chapter, error) {
	url := fmt.Sprintf("%s/%s+%d", s.BaseURL, ref.BookKey, ref.Chapter)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("bible-api: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bible-api: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bible-api: status %d", resp.StatusCode)
	}

	var raw struct {
		Verses []struct {
			Verse int    `json:"verse"`
			Text  string `json:"text"`
		} `json:"verses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("bible-api: decode json: %w", err)
	}
	if raw.Verses == nil {
		return nil, fmt.Errorf("bible-api: response has no verses field")
	}

	verses := make([]models.Verse, 0, len(raw.Verses))
	for _, v := range raw.Verses {
		verses = append(verses, models.Verse{Verse: v.Verse, Text: strings.TrimSpace(v.Text)})
	}

	return &models.Chapter{
		Book:    ref.BookKey,
		Chapter: ref.Chapter,
		Version: ref.Version,
		Verses:  verses,
		Source:  s.Name(),
	}, nil
}

// FetchVerse retrieves one verse by reference ("john 3:16"). Used by the
// verse-of-the-day fallback tier.
func (s *BibleAPISource) FetchVerse(ctx context.Context, book string, chapter, verse int) (string, error) {
	url := fmt.Sprintf("%s/%s+%d:%d", s.BaseURL, book, chapter, verse)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("bible-api: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("bible-api: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bible-api: status %d", resp.StatusCode)
	}

	var raw struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("bible-api: decode json: %w", err)
	}
	if strings.TrimSpace(raw.Text) == "" {
		return "", fmt.Errorf("bible-api: empty verse text")
	}
	return strings.TrimSpace(raw.Text), nil
}
