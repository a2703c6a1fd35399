package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"matchreview/internal/domain"
	"matchreview/internal/ports"

	_ "modernc.org/sqlite"
)

const (
	schemaVersion = "1"

	// SelectionsKey is the fixed key the selection list is stored under
	SelectionsKey = "imageMatcherSelections"
)

// ErrStoreLocked is returned by Open when another process holds the store
var ErrStoreLocked = errors.New("selection store is locked by another process")

// Store implements ports.SelectionStore on a SQLite key/value table
type Store struct {
	db     *sql.DB
	lock   *flock.Flock
	path   string
	logger *slog.Logger
}

// Ensure Store implements SelectionStore
var _ ports.SelectionStore = (*Store)(nil)

// Open opens (or creates) the store at path and takes the writer lock
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !ok {
		return nil, ErrStoreLocked
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err == nil {
		_, err = db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	}
	if err != nil {
		db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	logger.Debug("selection store opened", "path", path)
	return &Store{db: db, lock: lock, path: path, logger: logger}, nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// Close closes the database and releases the lock
func (s *Store) Close() error {
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if uerr := s.lock.Unlock(); err == nil {
			err = uerr
		}
	}
	return err
}

// Load returns the persisted selections. Missing or unreadable data yields
// an empty list; problems are logged, never returned.
func (s *Store) Load(ctx context.Context) []domain.SelectionRecord {
	raw, ok, err := s.Raw(ctx)
	if err != nil {
		s.logger.Warn("failed to read selections, starting empty", "error", err)
		return []domain.SelectionRecord{}
	}
	if !ok {
		return []domain.SelectionRecord{}
	}

	var records []domain.SelectionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("stored selections are not valid, starting empty", "error", err, "bytes", len(raw))
		return []domain.SelectionRecord{}
	}
	if records == nil {
		records = []domain.SelectionRecord{}
	}
	return records
}

// Save replaces the stored list with records in a single statement
func (s *Store) Save(ctx context.Context, records []domain.SelectionRecord) error {
	if records == nil {
		records = []domain.SelectionRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode selections: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)
	`, SelectionsKey, string(data))
	if err != nil {
		return fmt.Errorf("failed to write selections: %w", err)
	}
	return nil
}

// Raw returns the stored value as written. ok is false if nothing was
// ever saved.
func (s *Store) Raw(ctx context.Context) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, SelectionsKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}
