package models

// Book is one entry of the static 66-book catalog. The table is built once
// at startup and never mutated.
type Book struct {
	ID        int    `json:"id"` // canonical 1-66 ordering
	Name      string `json:"name"`
	NameEn    string `json:"nameEn"`
	Chapters  int    `json:"chapters"`
	Testament string `json:"testament"`
}

// Version describes one Bible translation and which upstream source serves it.
type Version struct {
	ID          string `json:"id"`
	APIID       string `json:"apiId"`
	Name        string `json:"name"`
	Lang        string `json:"lang"`
	Description string `json:"description"`
	Source      string `json:"apiSource"` // "github", "bolls" or "bible-api"
	Scope       string `json:"scope"`
	Popular     bool   `json:"popular"`
}

// Verse is immutable once fetched from a provider.
type Verse struct {
	Verse int    `json:"verse"`
	Text  string `json:"text"`
}

// Chapter is the normalized internal form every upstream response is mapped
// into before anything else touches it. Verses come from exactly one source.
type Chapter struct {
	Book    string  `json:"book"`
	Chapter int     `json:"chapter"`
	Version string  `json:"version"`
	Verses  []Verse `json:"verses"`
	Source  string  `json:"source"`
}

// SearchResult is one matching verse, produced per search call and never
// persisted server-side.
type SearchResult struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
	Version string `json:"version"`
}

// DailyVerse is the verse-of-the-day payload.
type DailyVerse struct {
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	Text      string `json:"text"`
	Version   string `json:"version"`
	Reference string `json:"reference"`
	Source    string `json:"source"`
}

// ReadingPlan is one static curated plan.
type ReadingPlan struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Duration    int    `json:"duration"` // days
	Description string `json:"description"`
}
