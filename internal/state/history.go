package state

import (
	"database/sql"
	"time"

	dbutil "github.com/rompick/rompick/internal/db"
)

// historyLimit caps launch_history; older rows are pruned on insert.
const historyLimit = 50

// Launch is one recorded game start.
type Launch struct {
	RomPath    string
	RomSize    int64
	LaunchedAt time.Time
}

// RecordLaunch persists the final navigation state and appends the launch
// to the history in a single transaction. Called synchronously before exit,
// unlike the debounced SaveNavigation.
func (m *Manager) RecordLaunch(nav NavigationState, romPath string, romSize int64) error {
	now := time.Now().Unix()

	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO navigation_state (id, last_dir, selected_name, updated_at)
			VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				last_dir = excluded.last_dir,
				selected_name = excluded.selected_name,
				updated_at = excluded.updated_at
		`, nav.LastDir, nav.SelectedName, now)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO launch_history (rom_path, rom_size, launched_at)
			VALUES (?, ?, ?)
		`, romPath, romSize, now)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM launch_history
			WHERE id NOT IN (
				SELECT id FROM launch_history
				ORDER BY launched_at DESC, id DESC
				LIMIT ?
			)
		`, historyLimit)
		return err
	})
}

// RecentLaunches returns the newest launches, most recent first.
func (m *Manager) RecentLaunches(limit int) ([]Launch, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}

	rows, err := m.db.Query(`
		SELECT rom_path, rom_size, launched_at
		FROM launch_history
		ORDER BY launched_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var launches []Launch
	for rows.Next() {
		var l Launch
		var launchedAt int64
		if err := rows.Scan(&l.RomPath, &l.RomSize, &launchedAt); err != nil {
			return nil, err
		}
		l.LaunchedAt = time.Unix(launchedAt, 0)
		launches = append(launches, l)
	}

	return launches, rows.Err()
}
