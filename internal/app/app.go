// Package app wires configuration, logging, storage and the CLI together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/usermanager/internal/cli"
	"github.com/dmitrijs2005/usermanager/internal/config"
	"github.com/dmitrijs2005/usermanager/internal/logging"
	"github.com/dmitrijs2005/usermanager/internal/storage"
	"github.com/dmitrijs2005/usermanager/internal/users"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	logCloser io.Closer
	storage   storage.RepositoryManager
	cli       *cli.App
	in        io.ReadCloser
}

// NewApp builds the application. in feeds the REPL and is closed when the
// REPL's context is cancelled; out receives all user-facing output.
func NewApp(ctx context.Context, c *config.Config, in io.ReadCloser, out io.Writer) (*App, error) {
	log, logCloser, err := logging.New(logging.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		File:   c.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	logger := log.With("session_id", uuid.NewString())

	reg := prometheus.NewRegistry()

	sm, err := storage.NewRepositoryManager(ctx, c, reg)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	svc := users.NewService(sm.Users(), logger)

	return &App{
		config:    c,
		logger:    logger,
		logCloser: logCloser,
		storage:   sm,
		cli:       cli.NewApp(svc, reg, logger, out),
		in:        in,
	}, nil
}

// Run executes the configured mode and releases resources afterwards.
func (app *App) Run(ctx context.Context) error {
	defer app.close()

	app.logger.Info(ctx, "starting", "mode", app.config.Mode, "storage", app.config.Storage)

	switch app.config.Mode {
	case config.ModeDemo:
		return app.cli.Demo(ctx, nil)
	case config.ModeREPL:
		app.cli.RunREPL(ctx, app.in)
		return nil
	default:
		return fmt.Errorf("unknown mode %q", app.config.Mode)
	}
}

func (app *App) close() {
	if err := errors.Join(app.storage.Close(), app.logCloser.Close()); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
	}
}
