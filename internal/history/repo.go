package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"biblealive/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Touch records one use of a version: inserts the row or bumps usage_count
// and last_used on conflict.
func (r *Repo) Touch(ctx context.Context, e models.VersionHistoryEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO version_history (id, user_id, version_id, name, lang, last_used, usage_count, favorite)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, 1, 0)
		ON CONFLICT(user_id, version_id) DO UPDATE SET
			usage_count = usage_count + 1,
			last_used = CURRENT_TIMESTAMP
	`, e.ID, e.UserID, e.VersionID, e.Name, e.Lang)
	if err != nil {
		return fmt.Errorf("touch version history: %w", err)
	}
	return nil
}

// SetFavorite flips the favorite flag; returns false when no row matched.
func (r *Repo) SetFavorite(ctx context.Context, userID, versionID string, favorite bool) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE version_history
		SET favorite = ?, last_used = CURRENT_TIMESTAMP
		WHERE user_id = ? AND version_id = ?
	`, boolToInt(favorite), userID, versionID)
	if err != nil {
		return false, fmt.Errorf("update version history: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) Delete(ctx context.Context, userID, versionID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM version_history WHERE user_id = ? AND version_id = ?
	`, userID, versionID)
	if err != nil {
		return false, fmt.Errorf("delete version history: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) List(ctx context.Context, userID string) ([]models.VersionHistoryEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, version_id, name, lang, last_used, usage_count, favorite
		FROM version_history
		WHERE user_id = ?
		ORDER BY last_used DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list version history: %w", err)
	}
	defer rows.Close()

	var out []models.VersionHistoryEntry
	for rows.Next() {
		var e models.VersionHistoryEntry
		var lastUsed time.Time
		var fav int
		if err := rows.Scan(&e.ID, &e.UserID, &e.VersionID, &e.Name, &e.Lang, &lastUsed, &e.UsageCount, &fav); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.LastUsed = lastUsed
		e.Favorite = fav != 0
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
