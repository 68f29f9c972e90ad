package provider

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"biblealive/pkg/models"
)

// ChapterRef carries everything a source might need to address one chapter.
// Each source picks the fields relevant to its own URL scheme.
type ChapterRef struct {
	Version    string // version id as requested ("en-kjv")
	CDNID      string // identifier used on the CDN path
	APIID      string // upstream translation id ("RVR60", "kjv")
	BookKey    string // canonical lowercase no-space key
	RawBook    string // book name as the client sent it
	BookNumber int    // 1-66 numeric id, 0 when unmapped
	Chapter    int
}

// Source is implemented by each upstream scripture provider. A source fetches
// its own wire format and maps it into the normalized Chapter; any non-2xx
// status or unusable payload is an error, never a partial result.
type Source interface {
	Name() string
	FetchChapter(ctx context.Context, ref ChapterRef) (*models.Chapter, error)
}

// ErrSpanishUnavailable is returned when every provider failed for a Spanish
// version. Synthesizing English placeholder text under a Spanish version id
// would mislabel content, so the failure is surfaced instead.
var ErrSpanishUnavailable = errors.New("spanish bible versions temporarily unavailable")

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripTags removes embedded HTML markup from upstream verse text.
func stripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
