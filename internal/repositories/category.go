package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lijaymere/filmzy-bot/internal/models"
)

// CategoryRepository persists the managed category set.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new CategoryRepository with the given database connection
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List retrieves all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return categories, nil
}

// Names retrieves all category names ordered alphabetically.
func (r *CategoryRepository) Names(ctx context.Context) ([]string, error) {
	categories, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = category.Name
	}
	return names, nil
}

// Ensure registers a category name, ignoring duplicates.
func (r *CategoryRepository) Ensure(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}

	_, err := r.db.ExecContext(ctx, "INSERT OR IGNORE INTO categories (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("failed to ensure category: %w", err)
	}

	return nil
}
