package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/anchorsheet/internal/db"
	"github.com/llehouerou/anchorsheet/internal/sheet"
)

// historyLimit is the number of transitions kept per sheet.
const historyLimit = 50

// Transition is a resting state a sheet reached.
type Transition struct {
	State sheet.State
	At    time.Time
}

func recordTransition(db *sql.DB, name string, st sheet.State, at time.Time) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO sheet_history (name, state_code, at) VALUES (?, ?, ?)
		`, name, int(st), at.UnixMilli()); err != nil {
			return err
		}

		_, err := tx.Exec(`
			DELETE FROM sheet_history
			WHERE name = ? AND id NOT IN (
				SELECT id FROM sheet_history WHERE name = ?
				ORDER BY at DESC, id DESC LIMIT ?
			)
		`, name, name, historyLimit)
		return err
	})
}

func getHistory(db *sql.DB, name string, limit int) ([]Transition, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}

	rows, err := db.Query(`
		SELECT state_code, at FROM sheet_history
		WHERE name = ?
		ORDER BY at DESC, id DESC
		LIMIT ?
	`, name, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transition
	for rows.Next() {
		var code int
		var at sql.NullInt64
		if err := rows.Scan(&code, &at); err != nil {
			return nil, err
		}
		out = append(out, Transition{State: sheet.State(code), At: dbutil.UnixMilliValue(at)})
	}
	return out, rows.Err()
}
