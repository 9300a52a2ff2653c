// Package db holds small database/sql helpers shared by the state store.
package db

import (
	"database/sql"
	"fmt"
)

// WithTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise. Errors from fn come back unwrapped so callers can
// match on them.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// NullStringValue returns the string value, empty when NULL.
func NullStringValue(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}
