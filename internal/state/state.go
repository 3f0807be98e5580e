package state

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/anchorsheet/internal/errmsg"
	"github.com/llehouerou/anchorsheet/internal/sheet"
)

const (
	appName      = "anchorsheet"
	dbFileName   = "anchorsheet.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]sheet.SavedState
}

// Open opens the state database at path, or in the XDG data directory when
// path is empty.
func Open(path string) (*Manager, error) {
	dbPath := path
	if dbPath == "" {
		var err error
		if dbPath, err = getDBPath(); err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	for name, ss := range pending {
		_ = saveSheet(m.db, name, ss, time.Now())
	}

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetSheet returns the saved state of the named sheet, or nil if none was
// saved yet.
func (m *Manager) GetSheet(name string) (*SheetRecord, error) {
	return getSheet(m.db, name)
}

// SaveSheet stores the state of the named sheet. Writes are debounced; the
// latest state per sheet wins.
func (m *Manager) SaveSheet(name string, ss sheet.SavedState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if m.pending == nil {
		m.pending = make(map[string]sheet.SavedState)
	}
	m.pending[name] = ss

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		for name, ss := range pending {
			if err := saveSheet(m.db, name, ss, time.Now()); err != nil {
				log.Print(errmsg.FormatWith(errmsg.OpSheetSave, name, err))
			}
		}
	})
}

// RecordTransition appends a resting state change to the sheet history.
func (m *Manager) RecordTransition(name string, st sheet.State) error {
	return recordTransition(m.db, name, st, time.Now())
}

// History returns the most recent transitions of the named sheet, newest
// first.
func (m *Manager) History(name string, limit int) ([]Transition, error) {
	return getHistory(m.db, name, limit)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
