package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "scores"))
	require.NoError(t, err)

	// Given: no file yet
	score, err := store.LoadHighScore(ctx, "tetris")

	// Then: the score defaults to zero
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	// When: a score is saved
	require.NoError(t, store.SaveHighScore(ctx, "tetris", 1500))

	// Then: the file holds the bare number and loads back
	data, err := os.ReadFile(store.Path("tetris"))
	require.NoError(t, err)
	assert.Equal(t, "1500", string(data))

	score, err = store.LoadHighScore(ctx, "tetris")
	require.NoError(t, err)
	assert.Equal(t, 1500, score)
}

func TestFileStoreKeepsMaximum(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveHighScore(ctx, "snake", 40))
	require.NoError(t, store.SaveHighScore(ctx, "snake", 12))

	score, err := store.LoadHighScore(ctx, "snake")
	require.NoError(t, err)
	assert.Equal(t, 40, score)
}

func TestFileStoreMalformed(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path("tetris"), []byte("lots"), 0o644))

	_, err = store.LoadHighScore(ctx, "tetris")
	assert.Error(t, err)

	// A malformed file is replaced on the next save.
	require.NoError(t, store.SaveHighScore(ctx, "tetris", 7))
	score, err := store.LoadHighScore(ctx, "tetris")
	require.NoError(t, err)
	assert.Equal(t, 7, score)
}

func TestFileStoreAcceptsTrailingNewline(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path("snake"), []byte("42\n"), 0o644))

	score, err := store.LoadHighScore(ctx, "snake")
	require.NoError(t, err)
	assert.Equal(t, 42, score)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveHighScore(ctx, "snake", 5))
	require.NoError(t, store.SaveHighScore(ctx, "snake", 3))

	score, err := store.LoadHighScore(ctx, "snake")
	require.NoError(t, err)
	assert.Equal(t, 5, score)
}

func TestOpenHighScores(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		opts Options
	}{
		{"default is file", Options{DataDir: dir}},
		{"file", Options{Backend: BackendFile, DataDir: dir}},
		{"sqlite", Options{Backend: BackendSQLite, DBPath: filepath.Join(dir, "hs.db")}},
		{"memory", Options{Backend: BackendMemory}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := OpenHighScores(ctx, tc.opts)
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.SaveHighScore(ctx, "tetris", 300))
			score, err := store.LoadHighScore(ctx, "tetris")
			require.NoError(t, err)
			assert.Equal(t, 300, score)
		})
	}

	_, err := OpenHighScores(ctx, Options{Backend: "floppy"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
