package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/platform/tui"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

// app holds everything a command needs: settings, the logger and the
// opened stores.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile *os.File
	scores  storage.HighScores
	results *storage.Store // result history, nil when unavailable
}

// setup loads the config, applies command-line overrides and opens the
// stores. Store failures degrade to an in-memory high score.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("storage") {
		cfg.Storage.Backend = flagStorage
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	a.openLog()

	ctx := context.Background()
	scores, err := storage.OpenHighScores(ctx, storage.Options{
		Backend:   cfg.Storage.Backend,
		DataDir:   cfg.Storage.DataDir,
		DBPath:    cfg.Storage.DBPath,
		RedisAddr: cfg.Storage.RedisAddr,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: high scores will not persist: %v\n", err)
		a.logger.Warn("opening high-score store", "backend", cfg.Storage.Backend, "err", err)
		scores = storage.NewMemoryStore()
	}
	a.scores = scores

	if store, ok := scores.(*storage.Store); ok {
		a.results = store
	} else if store, err := storage.Open(cfg.Storage.DBPath); err == nil {
		a.results = store
	} else {
		a.logger.Warn("opening results database", "path", cfg.Storage.DBPath, "err", err)
	}

	return a, nil
}

// openLog sends log output to the configured file, since the terminal
// belongs to the game while it runs.
func (a *app) openLog() {
	level, _ := a.cfg.Level()
	var w io.Writer = io.Discard

	if path, err := storage.ExpandHome(a.cfg.UI.LogFile); err == nil && path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				a.logFile = f
				w = f
			}
		}
	}

	a.logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "brickgame",
	})
}

// runtimeConfig builds the engine config for one session.
func (a *app) runtimeConfig() core.RuntimeConfig {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		Seed:   seed,
		Clock:  core.SystemClock,
		Scores: a.scores,
		Logger: a.logger,
	}
}

// highScore reads the stored best score, 0 on any error.
func (a *app) highScore(gameID string) int {
	return a.runtimeConfig().LoadHighScore(context.Background(), gameID)
}

// play runs one game until the user leaves it, then saves its high score.
func (a *app) play(gameID string) error {
	game, err := registry.Create(gameID, a.runtimeConfig())
	if err != nil {
		return err
	}
	a.logger.Info("session started", "game", gameID, "session", game.SessionID())

	opts := tui.Options{
		PollInterval: a.cfg.PollInterval(),
		Logger:       a.logger,
		ShowHelp:     a.cfg.UI.ShowHelp,
	}
	if a.results != nil {
		opts.Recorder = a.results
	}
	runErr := tui.Run(game, opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := game.Close(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save high score: %v\n", err)
	}
	return runErr
}

// close releases the stores and the log file.
func (a *app) close() {
	if a.results != nil && storage.HighScores(a.results) != a.scores {
		a.results.Close()
	}
	if a.scores != nil {
		a.scores.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
