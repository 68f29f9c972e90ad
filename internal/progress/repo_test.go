package progress

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"biblealive/pkg/database"
	"biblealive/pkg/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.MigrateFrom(db, "../../docs/schema.sql"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUpsertReplacesChapter(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	p := models.ReadingProgress{UserID: "default", Book: "john", Chapter: 1, Version: "es-rvr1960"}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	p.Chapter = 4
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.List(ctx, "default", 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("list len = %d, want 1 (same book+version must update in place)", len(got))
	}
	if got[0].Chapter != 4 {
		t.Errorf("chapter = %d, want 4", got[0].Chapter)
	}
}

func TestProgressKeyedPerBookAndVersion(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	seed := []models.ReadingProgress{
		{UserID: "default", Book: "john", Chapter: 3, Version: "es-rvr1960"},
		{UserID: "default", Book: "john", Chapter: 7, Version: "en-kjv"},
		{UserID: "default", Book: "psalms", Chapter: 23, Version: "es-rvr1960"},
		{UserID: "other", Book: "john", Chapter: 1, Version: "es-rvr1960"},
	}
	for _, p := range seed {
		if err := repo.Upsert(ctx, p); err != nil {
			t.Fatalf("upsert %+v: %v", p, err)
		}
	}

	got, err := repo.List(ctx, "default", 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("list len = %d, want 3", len(got))
	}
	for _, p := range got {
		if p.UserID != "default" {
			t.Errorf("cross-user leak: %+v", p)
		}
	}
}

func TestListLimitBounds(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	books := []string{"genesis", "exodus", "psalms", "john", "romans"}
	for i, b := range books {
		p := models.ReadingProgress{UserID: "default", Book: b, Chapter: i + 1, Version: "es-rvr1960"}
		if err := repo.Upsert(ctx, p); err != nil {
			t.Fatalf("upsert %s: %v", b, err)
		}
	}

	got, err := repo.List(ctx, "default", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("limit ignored: got %d rows", len(got))
	}

	// out-of-range limits fall back to the default of 20
	got, err = repo.List(ctx, "default", -5)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(books) {
		t.Errorf("default limit: got %d rows, want %d", len(got), len(books))
	}
}
