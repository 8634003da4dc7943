package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lijaymere/filmzy-bot/internal/models"
	"github.com/lijaymere/filmzy-bot/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func testEntry(id int, title string) models.Entry {
	return models.Entry{
		ID:         id,
		Title:      title,
		Category:   "Sci-Fi",
		ContentRef: "ref-" + title,
		Kind:       models.MediaDocument,
		AddedAt:    time.Now(),
	}
}

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Insert and Get roundtrip", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		if err := repo.Insert(ctx, testEntry(100, "Inception")); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}

		got, err := repo.Get(ctx, 100)
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if got.Title != "Inception" || got.Category != "Sci-Fi" {
			t.Errorf("unexpected entry: %+v", got)
		}
		if got.ContentRef != "ref-Inception" {
			t.Errorf("expected content ref, got %q", got.ContentRef)
		}
		if got.Kind != models.MediaDocument {
			t.Errorf("expected document kind, got %v", got.Kind)
		}
	})

	t.Run("Insert rejects invalid entries", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		if err := repo.Insert(ctx, models.Entry{ID: 0, Title: "No ID", Category: "Other"}); err == nil {
			t.Fatal("expected validation error for id 0")
		}
		if err := repo.Insert(ctx, models.Entry{ID: 5, Category: "Other"}); err == nil {
			t.Fatal("expected validation error for empty title")
		}
	})

	t.Run("Insert registers the category", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		if err := repo.Insert(ctx, models.Entry{ID: 1, Title: "Solaris", Category: "Soviet Classics"}); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}

		names, err := NewCategoryRepository(db).Names(ctx)
		if err != nil {
			t.Fatalf("failed to list categories: %v", err)
		}

		found := false
		for _, name := range names {
			if name == "Soviet Classics" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected new category to be registered, got %v", names)
		}
	})

	t.Run("Insert without content ref stores NULL", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		entry := models.Entry{ID: 2, Title: "Old Upload", Category: "Other", Kind: models.MediaDocument}
		if err := repo.Insert(ctx, entry); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}

		got, err := repo.Get(ctx, 2)
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if got.HasContentRef() {
			t.Errorf("expected empty content ref, got %q", got.ContentRef)
		}
	})

	t.Run("Get missing entry returns ErrEntryNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		if _, err := repo.Get(ctx, 999); !errors.Is(err, shared.ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("List preserves insertion order", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		for i, title := range []string{"First", "Second", "Third"} {
			if err := repo.Insert(ctx, testEntry(10+i, title)); err != nil {
				t.Fatalf("failed to insert %s: %v", title, err)
			}
		}

		entries, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		if entries[0].Title != "First" || entries[2].Title != "Third" {
			t.Errorf("unexpected order: %v", entries)
		}
	})

	t.Run("UpdateTitle", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		if err := repo.Insert(ctx, testEntry(20, "Alien")); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}

		if err := repo.UpdateTitle(ctx, 20, "Aliens"); err != nil {
			t.Fatalf("failed to update title: %v", err)
		}

		got, _ := repo.Get(ctx, 20)
		if got.Title != "Aliens" {
			t.Errorf("expected updated title, got %q", got.Title)
		}

		if err := repo.UpdateTitle(ctx, 999, "Nope"); !errors.Is(err, shared.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
		if err := repo.UpdateTitle(ctx, 20, ""); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for empty title, got %v", err)
		}
	})

	t.Run("UpdateCategory registers the new name", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		if err := repo.Insert(ctx, testEntry(30, "Heat")); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}

		if err := repo.UpdateCategory(ctx, 30, "Crime"); err != nil {
			t.Fatalf("failed to update category: %v", err)
		}

		got, _ := repo.Get(ctx, 30)
		if got.Category != "Crime" {
			t.Errorf("expected Crime, got %q", got.Category)
		}
	})

	t.Run("UpdateContent", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		if err := repo.Insert(ctx, models.Entry{ID: 40, Title: "Tenet", Category: "Sci-Fi"}); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}

		if err := repo.UpdateContent(ctx, 40, "new-ref", models.MediaVideo); err != nil {
			t.Fatalf("failed to update content: %v", err)
		}

		got, _ := repo.Get(ctx, 40)
		if got.ContentRef != "new-ref" || got.Kind != models.MediaVideo {
			t.Errorf("unexpected entry after update: %+v", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		if err := repo.Insert(ctx, testEntry(50, "Gone")); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}

		if err := repo.Delete(ctx, 50); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if _, err := repo.Get(ctx, 50); !errors.Is(err, shared.ErrEntryNotFound) {
			t.Errorf("expected entry to be gone, got %v", err)
		}
		if err := repo.Delete(ctx, 50); !errors.Is(err, shared.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound on second delete, got %v", err)
		}
	})

	t.Run("FindDuplicateTitles", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCatalogRepository(db)
		for id, title := range map[int]string{
			60: "Dune",
			61: "Dune",
			62: "dune", // different case, distinct group
			63: "Blade Runner",
		} {
			if err := repo.Insert(ctx, testEntry(id, title)); err != nil {
				t.Fatalf("failed to insert %s: %v", title, err)
			}
		}

		groups, err := repo.FindDuplicateTitles(ctx)
		if err != nil {
			t.Fatalf("failed to find duplicates: %v", err)
		}
		if len(groups) != 1 {
			t.Fatalf("expected 1 duplicate group, got %d: %v", len(groups), groups)
		}
		if groups[0].Title != "Dune" || groups[0].Count != 2 {
			t.Errorf("unexpected group: %+v", groups[0])
		}
	})
}

func TestSeriesRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Insert and List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSeriesRepository(db)
		series := models.Series{ID: 200, Title: "Severance S01E01", ContentRef: "ref-sev", Kind: models.MediaVideo}
		if err := repo.Insert(ctx, series); err != nil {
			t.Fatalf("failed to insert series: %v", err)
		}

		all, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("failed to list series: %v", err)
		}
		if len(all) != 1 || all[0].Title != "Severance S01E01" {
			t.Errorf("unexpected series list: %v", all)
		}
	})

	t.Run("Insert requires a content ref", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSeriesRepository(db)
		if err := repo.Insert(ctx, models.Series{ID: 201, Title: "No Ref"}); err == nil {
			t.Fatal("expected validation error for missing content ref")
		}
	})

	t.Run("Delete missing series", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSeriesRepository(db)
		if err := repo.Delete(ctx, 999); !errors.Is(err, shared.ErrSeriesNotFound) {
			t.Errorf("expected ErrSeriesNotFound, got %v", err)
		}
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("seeded categories exist", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		names, err := NewCategoryRepository(db).Names(ctx)
		if err != nil {
			t.Fatalf("failed to list categories: %v", err)
		}
		if len(names) == 0 {
			t.Fatal("expected seeded categories")
		}
	})

	t.Run("Ensure is idempotent", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewCategoryRepository(db)
		before, _ := repo.Names(ctx)

		if err := repo.Ensure(ctx, "Noir"); err != nil {
			t.Fatalf("failed to ensure: %v", err)
		}
		if err := repo.Ensure(ctx, "Noir"); err != nil {
			t.Fatalf("failed to ensure twice: %v", err)
		}

		after, _ := repo.Names(ctx)
		if len(after) != len(before)+1 {
			t.Errorf("expected one new category, got %d -> %d", len(before), len(after))
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert and Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewUserRepository(db)
		user := models.User{ID: 42, Username: "moviefan", FirstName: "Ada", JoinedAt: time.Now()}
		if err := repo.Upsert(ctx, user); err != nil {
			t.Fatalf("failed to upsert: %v", err)
		}

		got, err := repo.Get(ctx, 42)
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if got.Username != "moviefan" || got.Admin {
			t.Errorf("unexpected user: %+v", got)
		}
	})

	t.Run("Upsert twice keeps one row", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewUserRepository(db)
		user := models.User{ID: 42, Username: "moviefan"}
		if err := repo.Upsert(ctx, user); err != nil {
			t.Fatalf("failed to upsert: %v", err)
		}
		if err := repo.Upsert(ctx, user); err != nil {
			t.Fatalf("failed to upsert again: %v", err)
		}

		total, _, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if total != 1 {
			t.Errorf("expected 1 user, got %d", total)
		}
	})

	t.Run("PromoteAdmin", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewUserRepository(db)
		if err := repo.Upsert(ctx, models.User{ID: 42, Username: "moviefan"}); err != nil {
			t.Fatalf("failed to upsert: %v", err)
		}

		if err := repo.PromoteAdmin(ctx, 42); err != nil {
			t.Fatalf("failed to promote: %v", err)
		}

		admin, err := repo.IsAdmin(ctx, 42)
		if err != nil {
			t.Fatalf("failed to check admin: %v", err)
		}
		if !admin {
			t.Error("expected user to be admin")
		}

		_, admins, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if admins != 1 {
			t.Errorf("expected 1 admin, got %d", admins)
		}
	})

	t.Run("IsAdmin on unknown user is false", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewUserRepository(db)
		admin, err := repo.IsAdmin(ctx, 999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if admin {
			t.Error("expected unknown user to not be admin")
		}
	})
}
