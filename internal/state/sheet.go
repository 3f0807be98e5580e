package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/anchorsheet/internal/db"
	"github.com/llehouerou/anchorsheet/internal/sheet"
)

// SheetRecord is the persisted state of one sheet.
type SheetRecord struct {
	Name      string
	Saved     sheet.SavedState
	UpdatedAt time.Time // zero for rows written before timestamps were kept
}

func getSheet(db *sql.DB, name string) (*SheetRecord, error) {
	row := db.QueryRow(`
		SELECT state_code, super, updated_at
		FROM sheet_state WHERE name = ?
	`, name)

	rec := SheetRecord{Name: name}
	var updatedAt sql.NullInt64

	err := row.Scan(&rec.Saved.State, &rec.Saved.Super, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	rec.UpdatedAt = dbutil.UnixMilliValue(updatedAt)
	return &rec, nil
}

func saveSheet(db *sql.DB, name string, ss sheet.SavedState, now time.Time) error {
	_, err := db.Exec(`
		INSERT INTO sheet_state (name, state_code, super, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			state_code = excluded.state_code,
			super = excluded.super,
			updated_at = excluded.updated_at
	`, name, ss.State, ss.Super, now.UnixMilli())
	return err
}
