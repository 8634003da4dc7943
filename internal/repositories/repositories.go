// package repositories provides the persistence layer for the catalog bot.
package repositories

import (
	"database/sql"
	"fmt"
)

// requireAffected checks that a write statement touched at least one row,
// returning the given sentinel wrapped with the row key otherwise.
func requireAffected(result sql.Result, sentinel error, key any) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %v", sentinel, key)
	}
	return nil
}
