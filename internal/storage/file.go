package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps each game's high score in <dir>/<game>.hs as a bare
// decimal integer.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	dir, err := ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file holding gameID's score.
func (s *FileStore) Path(gameID string) string {
	return filepath.Join(s.dir, gameID+".hs")
}

// LoadHighScore reads the stored score; a missing file is 0.
func (s *FileStore) LoadHighScore(_ context.Context, gameID string) (int, error) {
	data, err := os.ReadFile(s.Path(gameID))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score in %s: %w", s.Path(gameID), err)
	}
	return score, nil
}

// SaveHighScore writes score if it beats the stored value. The write goes
// through a temp file and rename so a crash never leaves a torn number.
func (s *FileStore) SaveHighScore(ctx context.Context, gameID string, score int) error {
	current, err := s.LoadHighScore(ctx, gameID)
	if err == nil && current >= score {
		return nil
	}

	tmp, err := os.CreateTemp(s.dir, gameID+".hs.*")
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(gameID)); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }
