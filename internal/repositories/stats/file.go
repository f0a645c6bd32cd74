package stats

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/diceduel/internal/models"
)

// FileConfig holds configuration for the file stats repository
type FileConfig struct {
	// Path of the JSON file holding the record
	Path string
}

// fileRepository stores the stats record as a single JSON document on disk
type fileRepository struct {
	path string
}

// NewFile creates a new file-backed stats repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("file path cannot be empty")
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

// GetStats reads the stats record from disk
func (r *fileRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.Stats, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	return decodeStats(data)
}

// SaveStats writes the record to a temp file and renames it into place so a
// crash mid-write never leaves a truncated record behind
func (r *fileRepository) SaveStats(ctx context.Context, input *SaveStatsInput) error {
	data, err := encodeStats(input)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp stats file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp stats file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}
