package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"biblealive/internal/provider"
	"biblealive/pkg/utils"
)

func newTestAggregator(cdnURL string) *Aggregator {
	r := provider.NewResolver(utils.ServerConfig{
		CDNBaseURL:      cdnURL,
		BibleAPIBaseURL: cdnURL,
		BollsBaseURL:    cdnURL,
		FetchTimeout:    2 * time.Second,
	})
	return NewAggregator(r)
}

// cdnStub serves every requested chapter with the same two verses.
func cdnStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/bibles/") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"verses":[
			{"verse":1,"text":"For God so LOVED the world"},
			{"verse":2,"text":"and nothing else"}
		]}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchCaseInsensitiveMatch(t *testing.T) {
	agg := newTestAggregator(cdnStub(t).URL)

	results := agg.Search(context.Background(), "loved", "en-kjv", "john")
	if len(results) == 0 {
		t.Fatal("expected matches")
	}
	for _, res := range results {
		if res.Book != "john" {
			t.Errorf("result outside scoped book: %+v", res)
		}
		if !strings.Contains(strings.ToLower(res.Text), "loved") {
			t.Errorf("non-matching result: %+v", res)
		}
	}
}

func TestSearchHonorsResultCap(t *testing.T) {
	agg := newTestAggregator(cdnStub(t).URL)

	// every chapter matches; a whole-canon scan must stop at the plan cap
	results := agg.Search(context.Background(), "the", "en-kjv", "")
	if len(results) != 50 {
		t.Fatalf("result count = %d, want the cap of 50", len(results))
	}
}

func TestSearchEncounterOrder(t *testing.T) {
	agg := newTestAggregator(cdnStub(t).URL)

	results := agg.Search(context.Background(), "loved", "en-kjv", "john")
	for i := 1; i < len(results); i++ {
		if results[i].Chapter < results[i-1].Chapter {
			t.Fatalf("results out of chapter order: %+v", results)
		}
	}
}

func TestSearchSwallowsUpstreamFailures(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer down.Close()

	agg := newTestAggregator(down.URL)

	results := agg.Search(context.Background(), "amor", "es-rvr1960", "juan")
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestSearchUnknownVersionUsesDefaultPlan(t *testing.T) {
	agg := newTestAggregator(cdnStub(t).URL)

	results := agg.Search(context.Background(), "world", "xx-made-up", "john")
	if len(results) == 0 {
		t.Fatal("expected matches under the default plan")
	}
}
