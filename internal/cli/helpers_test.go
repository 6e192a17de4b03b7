package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/usermanager/internal/logging"
	"github.com/dmitrijs2005/usermanager/internal/users"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := discardLogger()
	svc := users.NewService(users.NewInstrumentedRepository(users.NewMemoryRepository(), reg), logger)

	var out bytes.Buffer
	return NewApp(svc, reg, logger, &out), &out
}
