// internal/state/interface.go
package state

import (
	"database/sql"

	"github.com/llehouerou/anchorsheet/internal/sheet"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveSheet(name string, ss sheet.SavedState)
	GetSheet(name string) (*SheetRecord, error)
	RecordTransition(name string, st sheet.State) error
	History(name string, limit int) ([]Transition, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
