package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lijaymere/filmzy-bot/internal/models"
	"github.com/lijaymere/filmzy-bot/internal/shared"
)

// UserRepository persists chat users seen by the bot.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the given database connection
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert records a user on first contact. Existing rows are left
// untouched so the admin flag and join date survive repeated /start.
func (r *UserRepository) Upsert(ctx context.Context, user models.User) error {
	query := `
		INSERT OR IGNORE INTO users (user_id, username, first_name, last_name)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.FirstName, user.LastName)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

// Get retrieves a user by id.
func (r *UserRepository) Get(ctx context.Context, id int64) (models.User, error) {
	query := `
		SELECT user_id, username, first_name, last_name, join_date, is_admin
		FROM users
		WHERE user_id = ?
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return models.User{}, fmt.Errorf("%w: %d", shared.ErrUserNotFound, id)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to scan user: %w", err)
	}

	return user, nil
}

// List retrieves all users in join order.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT user_id, username, first_name, last_name, join_date, is_admin
		FROM users
		ORDER BY join_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return users, nil
}

// PromoteAdmin grants the admin flag, inserting the row if the user has
// never contacted the bot.
func (r *UserRepository) PromoteAdmin(ctx context.Context, id int64) error {
	query := `
		INSERT INTO users (user_id, is_admin) VALUES (?, 1)
		ON CONFLICT (user_id) DO UPDATE SET is_admin = 1
	`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to promote admin: %w", err)
	}

	return nil
}

// IsAdmin reports whether the user carries the admin flag.
func (r *UserRepository) IsAdmin(ctx context.Context, id int64) (bool, error) {
	var admin bool
	err := r.db.QueryRowContext(ctx, "SELECT is_admin FROM users WHERE user_id = ?", id).Scan(&admin)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query admin flag: %w", err)
	}

	return admin, nil
}

// Count returns the total number of users and the number of admins.
func (r *UserRepository) Count(ctx context.Context) (total, admins int, err error) {
	if err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		return 0, 0, fmt.Errorf("failed to count users: %w", err)
	}
	if err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE is_admin = 1").Scan(&admins); err != nil {
		return 0, 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return total, admins, nil
}

// scanUser scans one users row via the given scan function.
func scanUser(scan func(...any) error) (models.User, error) {
	var (
		id        int64
		username  sql.NullString
		firstName sql.NullString
		lastName  sql.NullString
		joinDate  time.Time
		isAdmin   bool
	)

	if err := scan(&id, &username, &firstName, &lastName, &joinDate, &isAdmin); err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:        id,
		Username:  username.String,
		FirstName: firstName.String,
		LastName:  lastName.String,
		JoinedAt:  joinDate,
		Admin:     isAdmin,
	}, nil
}
