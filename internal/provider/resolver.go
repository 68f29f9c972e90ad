package provider

import (
	"context"
	"log"
	"strings"

	"biblealive/internal/bible"
	"biblealive/pkg/models"
	"biblealive/pkg/utils"
)

// Resolver owns one instance of every upstream source and walks them in a
// fixed priority order until one yields a chapter.
type Resolver struct {
	CDN      *CDNSource
	BibleAPI *BibleAPISource
	Bolls    *BollsSource
}

func NewResolver(cfg utils.ServerConfig) *Resolver {
	return &Resolver{
		CDN:      NewCDNSource(cfg.CDNBaseURL, cfg.FetchTimeout),
		BibleAPI: NewBibleAPISource(cfg.BibleAPIBaseURL, cfg.FetchTimeout),
		Bolls:    NewBollsSource(cfg.BollsBaseURL, cfg.FetchTimeout),
	}
}

// NewRef normalizes a raw request into the addressing data every source
// understands.
func NewRef(rawBook string, chapter int, version string) ChapterRef {
	key := bible.Normalize(rawBook)
	info := bible.ResolveVersion(version)

	cdnID := version
	if info.Source == bible.SourceGitHub {
		cdnID = info.APIID
	}

	return ChapterRef{
		Version:    version,
		CDNID:      cdnID,
		APIID:      info.APIID,
		BookKey:    key,
		RawBook:    rawBook,
		BookNumber: bible.BookNumber(key),
		Chapter:    chapter,
	}
}

// attempts builds the ordered fallback chain for one request. The CDN is
// always first; bible-api.com only serves English; bolls only applies when
// the version routes there and the book has a numeric id.
func (r *Resolver) attempts(ref ChapterRef) []Source {
	chain := []Source{r.CDN}

	if strings.HasPrefix(ref.Version, "en-") || ref.Version == "kjv-fallback" {
		chain = append(chain, r.BibleAPI)
	}

	info := bible.ResolveVersion(ref.Version)
	if info.Source == bible.SourceBolls && ref.BookNumber > 0 {
		chain = append(chain, r.Bolls)
	}

	return chain
}

// FetchChapter resolves (book, chapter, version) through the fallback chain.
// First success wins; a failing source is logged and the next one is tried.
// When every source is exhausted, Spanish versions get ErrSpanishUnavailable
// and everything else gets a synthetic placeholder chapter.
func (r *Resolver) FetchChapter(ctx context.Context, rawBook string, chapter int, version string) (*models.Chapter, error) {
	ref := NewRef(rawBook, chapter, version)

	if ch, ok := r.tryChain(ctx, ref); ok {
		return ch, nil
	}

	if strings.HasPrefix(version, "es-") {
		return nil, ErrSpanishUnavailable
	}
	return SynthesizeChapter(rawBook, chapter, version), nil
}

// FetchChapterNoFallback is the search path: same chain, but exhaustion is a
// plain miss instead of synthetic content.
func (r *Resolver) FetchChapterNoFallback(ctx context.Context, ref ChapterRef) (*models.Chapter, bool) {
	return r.tryChain(ctx, ref)
}

// tryChain walks the attempt list: trying source i, resolved on first
// success, exhausted when the list runs out.
func (r *Resolver) tryChain(ctx context.Context, ref ChapterRef) (*models.Chapter, bool) {
	for _, src := range r.attempts(ref) {
		ch, err := src.FetchChapter(ctx, ref)
		if err != nil {
			log.Printf("[resolver] %s: %s %d (%s): %v", src.Name(), ref.BookKey, ref.Chapter, ref.Version, err)
			continue
		}
		return ch, true
	}
	return nil, false
}
