package models

import "time"

// VersionHistoryEntry tracks one translation a user has read from.
type VersionHistoryEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	VersionID  string    `json:"version_id"`
	Name       string    `json:"name"`
	Lang       string    `json:"lang"`
	LastUsed   time.Time `json:"last_used"`
	UsageCount int       `json:"usage_count"`
	Favorite   bool      `json:"favorite"`
}
