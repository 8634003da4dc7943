package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lijaymere/filmzy-bot/internal/models"
	"github.com/lijaymere/filmzy-bot/internal/shared"
)

// SeriesRepository persists series entries.
type SeriesRepository struct {
	db *sql.DB
}

// NewSeriesRepository creates a new SeriesRepository with the given database connection
func NewSeriesRepository(db *sql.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

// Insert adds a new series entry.
func (r *SeriesRepository) Insert(ctx context.Context, series models.Series) error {
	if err := series.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO series (title, message_id, file_id, media_type)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, series.Title, series.ID, series.ContentRef, string(series.Kind))
	if err != nil {
		return fmt.Errorf("failed to insert series: %w", err)
	}

	return nil
}

// List retrieves all series ordered by title.
func (r *SeriesRepository) List(ctx context.Context) ([]models.Series, error) {
	query := `
		SELECT title, message_id, file_id, media_type, created_at
		FROM series
		ORDER BY title ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query series: %w", err)
	}
	defer rows.Close()

	var all []models.Series
	for rows.Next() {
		var (
			title     string
			messageID int
			fileID    string
			mediaType string
			createdAt time.Time
		)

		if err := rows.Scan(&title, &messageID, &fileID, &mediaType, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan series: %w", err)
		}

		all = append(all, models.Series{
			ID:         messageID,
			Title:      title,
			ContentRef: fileID,
			Kind:       models.ParseMediaKind(mediaType),
			AddedAt:    createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return all, nil
}

// UpdateTitle replaces a series title.
func (r *SeriesRepository) UpdateTitle(ctx context.Context, messageID int, title string) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", shared.ErrInvalidInput)
	}

	result, err := r.db.ExecContext(ctx, "UPDATE series SET title = ? WHERE message_id = ?", title, messageID)
	if err != nil {
		return fmt.Errorf("failed to update series title: %w", err)
	}

	return requireAffected(result, shared.ErrSeriesNotFound, messageID)
}

// Delete removes a series entry by its archive message id.
func (r *SeriesRepository) Delete(ctx context.Context, messageID int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM series WHERE message_id = ?", messageID)
	if err != nil {
		return fmt.Errorf("failed to delete series: %w", err)
	}

	return requireAffected(result, shared.ErrSeriesNotFound, messageID)
}

// Count returns the number of series entries.
func (r *SeriesRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM series").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count series: %w", err)
	}
	return count, nil
}
