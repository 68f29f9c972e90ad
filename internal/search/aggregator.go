package search

import (
	"context"
	"strings"

	"biblealive/internal/bible"
	"biblealive/internal/provider"
	"biblealive/pkg/models"
)

// plan bounds a search by provider kind. Every chapter is a separate upstream
// round-trip, so slower providers get smaller budgets.
type plan struct {
	maxChaptersPerBook int
	resultCap          int
	// bookSubset restricts the scan when no book was requested; empty means
	// the whole canon.
	bookSubset []string
}

var plansBySource = map[string]plan{
	bible.SourceGitHub:   {maxChaptersPerBook: 10, resultCap: 50},
	bible.SourceBibleAPI: {maxChaptersPerBook: 5, resultCap: 30},
	bible.SourceBolls: {
		maxChaptersPerBook: 3,
		resultCap:          15,
		bookSubset:         []string{"matthew", "john", "romans", "psalms"},
	},
}

// Aggregator scans books × chapters through the resolver and filters verse
// text by substring.
type Aggregator struct {
	Resolver *provider.Resolver
}

func NewAggregator(resolver *provider.Resolver) *Aggregator {
	return &Aggregator{Resolver: resolver}
}

// Search walks the scoped books sequentially and returns matches in
// book/chapter/verse encounter order, stopping at the plan's result cap.
// Chapter fetch failures are swallowed; the scan moves on. Exhausted
// providers never synthesize content here.
func (a *Aggregator) Search(ctx context.Context, query, version, book string) []models.SearchResult {
	info := bible.ResolveVersion(version)
	p, ok := plansBySource[info.Source]
	if !ok {
		p = plansBySource[bible.SourceGitHub]
	}

	versionName := version
	if v, ok := bible.LookupVersion(version); ok {
		versionName = v.Name
	}

	var books []string
	switch {
	case book != "":
		books = []string{bible.Normalize(book)}
	case len(p.bookSubset) > 0:
		books = p.bookSubset
	default:
		books = bible.AllBookKeys()
	}

	needle := strings.ToLower(query)
	results := make([]models.SearchResult, 0, p.resultCap)

	for _, key := range books {
		chapters := bible.MaxChapters(key)
		if chapters > p.maxChaptersPerBook {
			chapters = p.maxChaptersPerBook
		}

		for chapterNum := 1; chapterNum <= chapters; chapterNum++ {
			ref := provider.NewRef(key, chapterNum, version)
			ch, ok := a.Resolver.FetchChapterNoFallback(ctx, ref)
			if !ok {
				continue
			}

			for _, v := range ch.Verses {
				if v.Text == "" || !strings.Contains(strings.ToLower(v.Text), needle) {
					continue
				}
				results = append(results, models.SearchResult{
					Book:    key,
					Chapter: chapterNum,
					Verse:   v.Verse,
					Text:    v.Text,
					Version: versionName,
				})
				if len(results) >= p.resultCap {
					return results
				}
			}
		}
	}

	return results
}
