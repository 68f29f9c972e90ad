package models

import "time"

// Annotation kinds stored in the annotations table.
const (
	KindBookmark  = "bookmark"
	KindHighlight = "highlight"
	KindNote      = "note"
)

// Annotation is a bookmark, highlight or note attached to a verse reference.
// Ownership is per device: the client sends a stable device id and only ever
// sees its own rows.
type Annotation struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"device_id"`
	Kind      string    `json:"kind"`
	Book      string    `json:"book"`
	Chapter   int       `json:"chapter"`
	Verse     int       `json:"verse"`
	Reference string    `json:"reference"`
	// Payload holds the kind-specific value: note text, highlight color,
	// or empty for a plain bookmark.
	Payload   string    `json:"payload,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
