// Package storage persists high scores for the brick games. Every backend
// implements core.HighScoreStore and keeps the maximum value it has seen;
// the SQLite backend also records one result row per finished session.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// Backend names accepted by OpenHighScores.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// HighScores is a closable high-score store.
type HighScores interface {
	core.HighScoreStore
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend   string
	DataDir   string // file backend directory
	DBPath    string // sqlite database file
	RedisAddr string // host:port
}

// OpenHighScores opens the backend named in opts.
func OpenHighScores(ctx context.Context, opts Options) (HighScores, error) {
	var (
		store HighScores
		err   error
	)
	switch opts.Backend {
	case BackendFile, "":
		store, err = NewFileStore(opts.DataDir)
	case BackendSQLite:
		store, err = Open(opts.DBPath)
	case BackendRedis:
		store, err = NewRedisStore(ctx, opts.RedisAddr)
	case BackendMemory:
		store = NewMemoryStore()
	default:
		err = fmt.Errorf("storage: %q: %w", opts.Backend, ErrUnknownBackend)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
