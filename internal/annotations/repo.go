package annotations

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

func (r *Repo) Create(ctx context.Context, a models.Annotation) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO annotations (id, device_id, kind, book, chapter, verse, reference, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.DeviceID, a.Kind, a.Book, a.Chapter, a.Verse, a.Reference, a.Payload, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert annotation: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, deviceID, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM annotations WHERE id = ? AND device_id = ?
	`, id, deviceID)
	if err != nil {
		return false, fmt.Errorf("delete annotation: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) List(ctx context.Context, deviceID, kind string, limit, offset int) ([]models.Annotation, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, device_id, kind, book, chapter, verse, reference, payload, created_at
		FROM annotations
		WHERE device_id = ? AND kind = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, deviceID, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}
	defer rows.Close()

	out := make([]models.Annotation, 0, limit)
	for rows.Next() {
		var a models.Annotation
		var created time.Time
		if err := rows.Scan(&a.ID, &a.DeviceID, &a.Kind, &a.Book, &a.Chapter, &a.Verse, &a.Reference, &a.Payload, &created); err != nil {
			return nil, fmt.Errorf("scan annotation row: %w", err)
		}
		a.CreatedAt = created
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
