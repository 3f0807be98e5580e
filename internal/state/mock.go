// internal/state/mock.go
package state

import (
	"database/sql"
	"time"

	"github.com/llehouerou/anchorsheet/internal/sheet"
)

// Mock is a test double for Manager.
type Mock struct {
	sheets  map[string]*SheetRecord
	history map[string][]Transition
	saves   int
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		sheets:  make(map[string]*SheetRecord),
		history: make(map[string][]Transition),
	}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveSheet(name string, ss sheet.SavedState) {
	m.saves++
	m.sheets[name] = &SheetRecord{Name: name, Saved: ss, UpdatedAt: time.Now()}
}

func (m *Mock) GetSheet(name string) (*SheetRecord, error) {
	return m.sheets[name], nil
}

func (m *Mock) RecordTransition(name string, st sheet.State) error {
	m.history[name] = append([]Transition{{State: st, At: time.Now()}}, m.history[name]...)
	return nil
}

func (m *Mock) History(name string, limit int) ([]Transition, error) {
	h := m.history[name]
	if limit > 0 && len(h) > limit {
		h = h[:limit]
	}
	return h, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSheet(rec *SheetRecord) { m.sheets[rec.Name] = rec }

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
