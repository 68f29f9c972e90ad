package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biblealive/pkg/utils"
)

func newTestResolver(cdnURL, apiURL, bollsURL string) *Resolver {
	return NewResolver(utils.ServerConfig{
		CDNBaseURL:      cdnURL,
		BibleAPIBaseURL: apiURL,
		BollsBaseURL:    bollsURL,
		FetchTimeout:    2 * time.Second,
	})
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewRef(t *testing.T) {
	ref := NewRef("Juan", 3, "es-rvr1960")
	if ref.BookKey != "john" {
		t.Errorf("book key = %q, want john", ref.BookKey)
	}
	if ref.BookNumber != 43 {
		t.Errorf("book number = %d, want 43", ref.BookNumber)
	}
	if ref.CDNID != "es-rvr1960" {
		t.Errorf("cdn id = %q, want es-rvr1960", ref.CDNID)
	}

	// versions that route to the CDN use their dataset id there
	ref = NewRef("john", 3, "en-asv")
	if ref.CDNID != "en-asv" || ref.APIID != "en-asv" {
		t.Errorf("en-asv ids = (%q, %q)", ref.CDNID, ref.APIID)
	}
}

func TestFetchChapterFromCDN(t *testing.T) {
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/bibles/en-kjv/books/john/chapters/3.json"
		if r.URL.Path != want {
			t.Errorf("cdn path = %q, want %q", r.URL.Path, want)
		}
		fmt.Fprint(w, `{"verses":[{"verse":16,"text":"For God so loved the world"}]}`)
	}))
	defer cdn.Close()

	r := newTestResolver(cdn.URL, failingServer(t).URL, failingServer(t).URL)

	ch, err := r.FetchChapter(context.Background(), "John", 3, "en-kjv")
	if err != nil {
		t.Fatalf("FetchChapter: %v", err)
	}
	if ch.Source != "wldeh-api" {
		t.Errorf("source = %q, want wldeh-api", ch.Source)
	}
	if len(ch.Verses) != 1 || ch.Verses[0].Verse != 16 {
		t.Fatalf("unexpected verses: %+v", ch.Verses)
	}
	if ch.Book != "john" || ch.Chapter != 3 || ch.Version != "en-kjv" {
		t.Errorf("unexpected chapter header: %+v", ch)
	}
}

func TestFetchChapterFallsBackToBibleAPI(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/john+3" {
			t.Errorf("bible-api path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"verses":[{"verse":1,"text":"There was a man "}]}`)
	}))
	defer api.Close()

	r := newTestResolver(failingServer(t).URL, api.URL, failingServer(t).URL)

	ch, err := r.FetchChapter(context.Background(), "john", 3, "en-kjv")
	if err != nil {
		t.Fatalf("FetchChapter: %v", err)
	}
	if ch.Source != "bible-api" {
		t.Errorf("source = %q, want bible-api", ch.Source)
	}
	if ch.Verses[0].Text != "There was a man" {
		t.Errorf("text not trimmed: %q", ch.Verses[0].Text)
	}
}

func TestFetchChapterFallsBackToBolls(t *testing.T) {
	bolls := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/get-text/NVI/43/3/"
		if r.URL.Path != want {
			t.Errorf("bolls path = %q, want %q", r.URL.Path, want)
		}
		fmt.Fprint(w, `[
			{"pk":1,"verse":1,"text":"<b>Había</b> un hombre"},
			{"pk":2,"verse":2,"text":""},
			{"pk":3,"verse":0,"text":"vino a Jesús"}
		]`)
	}))
	defer bolls.Close()

	r := newTestResolver(failingServer(t).URL, failingServer(t).URL, bolls.URL)

	ch, err := r.FetchChapter(context.Background(), "Juan", 3, "es-nvi")
	if err != nil {
		t.Fatalf("FetchChapter: %v", err)
	}
	if ch.Source != "bolls-api" {
		t.Errorf("source = %q, want bolls-api", ch.Source)
	}
	// empty-text verse dropped, tags stripped, pk used when verse is 0
	if len(ch.Verses) != 2 {
		t.Fatalf("verses = %+v", ch.Verses)
	}
	if ch.Verses[0].Text != "Había un hombre" {
		t.Errorf("tags not stripped: %q", ch.Verses[0].Text)
	}
	if ch.Verses[1].Verse != 3 {
		t.Errorf("pk fallback verse num = %d, want 3", ch.Verses[1].Verse)
	}
}

func TestFetchChapterRVR1960FallsBackToBolls(t *testing.T) {
	bolls := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/get-text/RVR60/43/3/"
		if r.URL.Path != want {
			t.Errorf("bolls path = %q, want %q", r.URL.Path, want)
		}
		fmt.Fprint(w, `[{"pk":16,"verse":16,"text":"Porque de tal manera amó Dios al mundo"}]`)
	}))
	defer bolls.Close()

	r := newTestResolver(failingServer(t).URL, failingServer(t).URL, bolls.URL)

	ch, err := r.FetchChapter(context.Background(), "juan", 3, "es-rvr1960")
	if err != nil {
		t.Fatalf("FetchChapter: %v", err)
	}
	if ch.Source != "bolls-api" {
		t.Errorf("source = %q, want bolls-api", ch.Source)
	}
	if len(ch.Verses) != 1 || ch.Verses[0].Verse != 16 {
		t.Fatalf("verses: %+v", ch.Verses)
	}
}

func TestFetchChapterSpanishExhaustedIsAnError(t *testing.T) {
	down := failingServer(t)
	r := newTestResolver(down.URL, down.URL, down.URL)

	_, err := r.FetchChapter(context.Background(), "Juan", 3, "es-rvr1960")
	if !errors.Is(err, ErrSpanishUnavailable) {
		t.Fatalf("err = %v, want ErrSpanishUnavailable", err)
	}
}

func TestFetchChapterEnglishExhaustedSynthesizes(t *testing.T) {
	down := failingServer(t)
	r := newTestResolver(down.URL, down.URL, down.URL)

	ch, err := r.FetchChapter(context.Background(), "john", 3, "en-kjv")
	if err != nil {
		t.Fatalf("FetchChapter: %v", err)
	}
	if ch.Source != SourceSynthetic {
		t.Errorf("source = %q, want %q", ch.Source, SourceSynthetic)
	}
	if n := len(ch.Verses); n < 5 || n > 34 {
		t.Errorf("synthetic verse count = %d, want 5..34", n)
	}
	for i, v := range ch.Verses {
		if v.Verse != i+1 {
			t.Fatalf("verse numbering broken at %d: %+v", i, v)
		}
	}
}

func TestFetchChapterNoFallbackMisses(t *testing.T) {
	down := failingServer(t)
	r := newTestResolver(down.URL, down.URL, down.URL)

	if _, ok := r.FetchChapterNoFallback(context.Background(), NewRef("john", 3, "en-kjv")); ok {
		t.Fatal("expected miss when every source is down")
	}
}

func TestCDNRejectsMissingVersesField(t *testing.T) {
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":"not found"}`)
	}))
	defer cdn.Close()

	src := NewCDNSource(cdn.URL, time.Second)
	if _, err := src.FetchChapter(context.Background(), NewRef("john", 3, "en-kjv")); err == nil {
		t.Fatal("expected error when verses field is absent")
	}
}
