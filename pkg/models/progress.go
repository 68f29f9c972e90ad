package models

import "time"

// ReadingProgress is the last position a user reached in one book+version.
type ReadingProgress struct {
	UserID    string    `json:"user_id"`
	Book      string    `json:"book"`
	Chapter   int       `json:"chapter"`
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}
