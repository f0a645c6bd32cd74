package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/diceduel/internal/models"
	_ "modernc.org/sqlite"
)

const createKVTable = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteConfig holds configuration for the SQLite stats repository
type SQLiteConfig struct {
	// Path of the database file; ":memory:" works for tests
	Path string

	// Key the record is stored under, defaults to DefaultKey
	Key string
}

// sqliteRepository keeps the stats record in a key/value table
type sqliteRepository struct {
	db  *sql.DB
	key string
}

// NewSQLite opens (and if needed creates) the SQLite database
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// one writer; also keeps ":memory:" databases on a single connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), createKVTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	return &sqliteRepository{
		db:  db,
		key: key,
	}, nil
}

// GetStats reads the stats record from the kv table
func (r *sqliteRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.Stats, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, r.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return decodeStats([]byte(value))
}

// SaveStats upserts the stats record
func (r *sqliteRepository) SaveStats(ctx context.Context, input *SaveStatsInput) error {
	data, err := encodeStats(input)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		r.key, string(data))
	if err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}

// Close releases the database handle
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}
