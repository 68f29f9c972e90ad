package votd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"biblealive/internal/provider"
	"biblealive/pkg/models"
)

// curatedVerse is one entry of the baked-in rotation. Text is the
// Reina-Valera 1960 wording, kept as the last-resort content.
type curatedVerse struct {
	Book        string
	BookDisplay string
	Chapter     int
	Verse       int
	Text        string
}

// curated is the fixed rotation; dayOfYear mod len(curated) picks the entry.
var curated = []curatedVerse{
	{"john", "Juan", 3, 16, "Porque de tal manera amó Dios al mundo, que ha dado a su Hijo unigénito, para que todo aquel que en él cree, no se pierda, mas tenga vida eterna."},
	{"philippians", "Filipenses", 4, 13, "Todo lo puedo en Cristo que me fortalece."},
	{"psalms", "Salmos", 23, 1, "Jehová es mi pastor; nada me faltará."},
	{"proverbs", "Proverbios", 3, 5, "Fíate de Jehová de todo tu corazón, y no te apoyes en tu propia prudencia."},
	{"jeremiah", "Jeremías", 29, 11, "Porque yo sé los pensamientos que tengo acerca de vosotros, dice Jehová, pensamientos de paz, y no de mal, para daros el fin que esperáis."},
	{"isaiah", "Isaías", 40, 31, "Pero los que esperan a Jehová tendrán nuevas fuerzas; levantarán alas como las águilas; correrán, y no se cansarán; caminarán, y no se fatigarán."},
	{"matthew", "Mateo", 11, 28, "Venid a mí todos los que estáis trabajados y cargados, y yo os haré descansar."},
	{"romans", "Romanos", 8, 28, "Y sabemos que a los que aman a Dios, todas las cosas les ayudan a bien, esto es, a los que conforme a su propósito son llamados."},
}

// Selector resolves the daily verse through three tiers: a full-Bible JSON
// dataset, then the single-verse REST API, then the baked-in literal text.
type Selector struct {
	DatasetURL string
	Client     *http.Client
	BibleAPI   *provider.BibleAPISource
}

func NewSelector(datasetURL string, timeout time.Duration, bibleAPI *provider.BibleAPISource) *Selector {
	return &Selector{
		DatasetURL: datasetURL,
		Client:     &http.Client{Timeout: timeout},
		BibleAPI:   bibleAPI,
	}
}

// Select is deterministic per calendar day. It never fails: each tier's
// error falls through to the next, ending at the baked-in text.
func (s *Selector) Select(ctx context.Context, date time.Time) models.DailyVerse {
	dayOfYear := date.YearDay()
	cv := curated[dayOfYear%len(curated)]
	reference := fmt.Sprintf("%s %d:%d", cv.BookDisplay, cv.Chapter, cv.Verse)

	if text, err := s.fromDataset(ctx, cv); err == nil {
		return models.DailyVerse{
			Book: cv.BookDisplay, Chapter: cv.Chapter, Verse: cv.Verse,
			Text: text, Version: "es-rvr1960", Reference: reference,
			Source: "github-api",
		}
	} else {
		log.Printf("[votd] dataset tier: %v", err)
	}

	if text, err := s.BibleAPI.FetchVerse(ctx, cv.Book, cv.Chapter, cv.Verse); err == nil {
		return models.DailyVerse{
			Book: cv.BookDisplay, Chapter: cv.Chapter, Verse: cv.Verse,
			Text: text, Version: "en-kjv", Reference: reference,
			Source: "bible-api",
		}
	} else {
		log.Printf("[votd] bible-api tier: %v", err)
	}

	return models.DailyVerse{
		Book: cv.BookDisplay, Chapter: cv.Chapter, Verse: cv.Verse,
		Text: cv.Text, Version: "es-rvr1960", Reference: reference,
		Source: "local-fallback",
	}
}

// fromDataset pulls the verse out of a whole-Bible JSON dump: an array of
// books, each holding chapters as arrays of {verse, text}.
func (s *Selector) fromDataset(ctx context.Context, cv curatedVerse) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.DatasetURL, nil)
	if err != nil {
		return "", fmt.Errorf("dataset: build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("dataset: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dataset: status %d", resp.StatusCode)
	}

	var books []struct {
		Book     string `json:"book"`
		Chapters [][]struct {
			Verse int    `json:"verse"`
			Text  string `json:"text"`
		} `json:"chapters"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&books); err != nil {
		return "", fmt.Errorf("dataset: decode json: %w", err)
	}

	// dataset book names are Spanish; match on the display name's leading letters
	prefix := strings.ToLower(cv.BookDisplay)
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	for _, b := range books {
		if !strings.Contains(strings.ToLower(b.Book), prefix) {
			continue
		}
		if cv.Chapter > len(b.Chapters) {
			break
		}
		for _, v := range b.Chapters[cv.Chapter-1] {
			if v.Verse == cv.Verse && strings.TrimSpace(v.Text) != "" {
				return strings.TrimSpace(v.Text), nil
			}
		}
		break
	}
	return "", fmt.Errorf("dataset: verse %s %d:%d not found", cv.Book, cv.Chapter, cv.Verse)
}
