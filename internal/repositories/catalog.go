package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lijaymere/filmzy-bot/internal/models"
	"github.com/lijaymere/filmzy-bot/internal/shared"
)

// CatalogRepository persists movie entries.
//
// Rows are addressed by message_id, the archive channel id of the original
// upload. Inserting an entry also registers its category so the category
// keyboard stays in sync with the catalog.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new CatalogRepository with the given database connection
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Insert adds a new entry and registers its category.
func (r *CatalogRepository) Insert(ctx context.Context, entry models.Entry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO movies (title, message_id, category, file_id, media_type)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.Title,
		entry.ID,
		entry.Category,
		nullString(entry.ContentRef),
		string(entry.Kind),
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	_, err = r.db.ExecContext(ctx, "INSERT OR IGNORE INTO categories (name) VALUES (?)", entry.Category)
	if err != nil {
		return fmt.Errorf("failed to register category: %w", err)
	}

	return nil
}

// Get retrieves an entry by its archive message id.
func (r *CatalogRepository) Get(ctx context.Context, messageID int) (models.Entry, error) {
	query := `
		SELECT title, message_id, category, file_id, media_type, created_at
		FROM movies
		WHERE message_id = ?
	`

	row := r.db.QueryRowContext(ctx, query, messageID)
	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return models.Entry{}, fmt.Errorf("%w: %d", shared.ErrEntryNotFound, messageID)
	}
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to scan entry: %w", err)
	}

	return entry, nil
}

// List retrieves the full catalog in insertion order.
func (r *CatalogRepository) List(ctx context.Context) ([]models.Entry, error) {
	query := `
		SELECT title, message_id, category, file_id, media_type, created_at
		FROM movies
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

// UpdateTitle replaces an entry's title.
func (r *CatalogRepository) UpdateTitle(ctx context.Context, messageID int, title string) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", shared.ErrInvalidInput)
	}

	result, err := r.db.ExecContext(ctx, "UPDATE movies SET title = ? WHERE message_id = ?", title, messageID)
	if err != nil {
		return fmt.Errorf("failed to update title: %w", err)
	}

	return requireAffected(result, shared.ErrEntryNotFound, messageID)
}

// UpdateCategory replaces an entry's category, registering the new name.
func (r *CatalogRepository) UpdateCategory(ctx context.Context, messageID int, category string) error {
	if category == "" {
		return fmt.Errorf("%w: category must not be empty", shared.ErrInvalidInput)
	}

	result, err := r.db.ExecContext(ctx, "UPDATE movies SET category = ? WHERE message_id = ?", category, messageID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	if err := requireAffected(result, shared.ErrEntryNotFound, messageID); err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, "INSERT OR IGNORE INTO categories (name) VALUES (?)", category)
	if err != nil {
		return fmt.Errorf("failed to register category: %w", err)
	}

	return nil
}

// UpdateContent replaces an entry's content reference and media kind.
func (r *CatalogRepository) UpdateContent(ctx context.Context, messageID int, contentRef string, kind models.MediaKind) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE movies SET file_id = ?, media_type = ? WHERE message_id = ?",
		nullString(contentRef), string(kind), messageID,
	)
	if err != nil {
		return fmt.Errorf("failed to update content reference: %w", err)
	}

	return requireAffected(result, shared.ErrEntryNotFound, messageID)
}

// Delete removes an entry by its archive message id.
func (r *CatalogRepository) Delete(ctx context.Context, messageID int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE message_id = ?", messageID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return requireAffected(result, shared.ErrEntryNotFound, messageID)
}

// Count returns the number of catalog entries.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// FindDuplicateTitles groups entries by exact title and returns the
// titles occurring more than once. No case or whitespace normalization
// is applied; variants that differ only in casing count as distinct.
func (r *CatalogRepository) FindDuplicateTitles(ctx context.Context) ([]models.DuplicateGroup, error) {
	query := `
		SELECT title, COUNT(*) as count
		FROM movies
		GROUP BY title
		HAVING count > 1
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query duplicates: %w", err)
	}
	defer rows.Close()

	var groups []models.DuplicateGroup
	for rows.Next() {
		var group models.DuplicateGroup
		if err := rows.Scan(&group.Title, &group.Count); err != nil {
			return nil, fmt.Errorf("failed to scan duplicate group: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return groups, nil
}

// scanEntry scans one movies row via the given scan function.
func scanEntry(scan func(...any) error) (models.Entry, error) {
	var (
		title     string
		messageID int
		category  string
		fileID    sql.NullString
		mediaType sql.NullString
		createdAt time.Time
	)

	if err := scan(&title, &messageID, &category, &fileID, &mediaType, &createdAt); err != nil {
		return models.Entry{}, err
	}

	return models.Entry{
		ID:         messageID,
		Title:      title,
		Category:   category,
		ContentRef: fileID.String,
		Kind:       models.ParseMediaKind(mediaType.String),
		AddedAt:    createdAt,
	}, nil
}

// nullString maps an empty string to NULL for optional columns.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
