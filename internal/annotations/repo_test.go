package annotations

import (
	"context"
	"database/sql"
	"testing"
	"time"

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

func TestCreateListDelete(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	older := models.Annotation{
		ID: "a1", DeviceID: "dev1", Kind: models.KindBookmark,
		Book: "john", Chapter: 3, Verse: 16,
		Reference: "Juan 3:16", CreatedAt: base,
	}
	newer := models.Annotation{
		ID: "a2", DeviceID: "dev1", Kind: models.KindBookmark,
		Book: "psalms", Chapter: 23, Verse: 1,
		Reference: "Salmos 23:1", CreatedAt: base.Add(time.Hour),
	}
	for _, a := range []models.Annotation{older, newer} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create %s: %v", a.ID, err)
		}
	}

	got, err := repo.List(ctx, "dev1", models.KindBookmark, 50, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("list len = %d, want 2", len(got))
	}
	// newest first
	if got[0].ID != "a2" || got[1].ID != "a1" {
		t.Errorf("order: %s, %s", got[0].ID, got[1].ID)
	}

	deleted, err := repo.Delete(ctx, "dev1", "a1")
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v), want (true, nil)", deleted, err)
	}
	if deleted, _ := repo.Delete(ctx, "dev1", "a1"); deleted {
		t.Error("second delete reported a row")
	}

	got, err = repo.List(ctx, "dev1", models.KindBookmark, 50, 0)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a2" {
		t.Errorf("remaining: %+v", got)
	}
}

func TestListFiltersByKindAndDevice(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	seed := []models.Annotation{
		{ID: "b1", DeviceID: "dev1", Kind: models.KindBookmark, Book: "john", Chapter: 1, Verse: 1, Reference: "Juan 1:1", CreatedAt: now},
		{ID: "h1", DeviceID: "dev1", Kind: models.KindHighlight, Book: "john", Chapter: 1, Verse: 2, Reference: "Juan 1:2", Payload: "yellow", CreatedAt: now},
		{ID: "n1", DeviceID: "dev2", Kind: models.KindNote, Book: "john", Chapter: 1, Verse: 3, Reference: "Juan 1:3", Payload: "mi nota", CreatedAt: now},
	}
	for _, a := range seed {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create %s: %v", a.ID, err)
		}
	}

	highlights, err := repo.List(ctx, "dev1", models.KindHighlight, 50, 0)
	if err != nil {
		t.Fatalf("list highlights: %v", err)
	}
	if len(highlights) != 1 || highlights[0].Payload != "yellow" {
		t.Errorf("highlights: %+v", highlights)
	}

	// dev1 never sees dev2's notes
	notes, err := repo.List(ctx, "dev1", models.KindNote, 50, 0)
	if err != nil {
		t.Fatalf("list notes: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("cross-device leak: %+v", notes)
	}

	if deleted, _ := repo.Delete(ctx, "dev1", "n1"); deleted {
		t.Error("deleted another device's annotation")
	}
}

func TestCreateRejectsUnknownKind(t *testing.T) {
	repo := NewRepo(openTestDB(t))

	err := repo.Create(context.Background(), models.Annotation{
		ID: "x1", DeviceID: "dev1", Kind: "doodle",
		Book: "john", Chapter: 1, Verse: 1,
		Reference: "Juan 1:1", CreatedAt: time.Now().UTC(),
	})
	if err == nil {
		t.Fatal("expected CHECK constraint failure for unknown kind")
	}
}

func TestListPagination(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	ids := []string{"p1", "p2", "p3"}
	for i, id := range ids {
		a := models.Annotation{
			ID: id, DeviceID: "dev1", Kind: models.KindNote,
			Book: "john", Chapter: 1, Verse: i + 1,
			Reference: "Juan 1:x", Payload: "n",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	page, err := repo.List(ctx, "dev1", models.KindNote, 2, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 || page[0].ID != "p2" || page[1].ID != "p1" {
		t.Errorf("page: %+v", page)
	}
}
