package progress

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

// Upsert records the last chapter a user reached in one book+version.
func (r *Repo) Upsert(ctx context.Context, p models.ReadingProgress) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reading_progress (user_id, book, chapter, version, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, book, version) DO UPDATE SET
			chapter = excluded.chapter,
			updated_at = CURRENT_TIMESTAMP
	`, p.UserID, p.Book, p.Chapter, p.Version)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

func (r *Repo) List(ctx context.Context, userID string, limit int) ([]models.ReadingProgress, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT user_id, book, chapter, version, updated_at
		FROM reading_progress
		WHERE user_id = ?
		ORDER BY updated_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	out := make([]models.ReadingProgress, 0, limit)
	for rows.Next() {
		var p models.ReadingProgress
		var updated time.Time
		if err := rows.Scan(&p.UserID, &p.Book, &p.Chapter, &p.Version, &updated); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}
		p.UpdatedAt = updated
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
