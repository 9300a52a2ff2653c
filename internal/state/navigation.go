package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/rompick/rompick/internal/db"
)

// NavigationState is the browser position restored on the next run.
type NavigationState struct {
	LastDir      string
	SelectedName string
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT last_dir, selected_name
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var selectedName sql.NullString

	err := row.Scan(&state.LastDir, &selectedName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SelectedName = dbutil.NullStringValue(selectedName)

	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, last_dir, selected_name, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_dir = excluded.last_dir,
			selected_name = excluded.selected_name,
			updated_at = excluded.updated_at
	`, state.LastDir, state.SelectedName, time.Now().Unix())

	return err
}
