package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/usermanager/internal/logging"
	"github.com/dmitrijs2005/usermanager/internal/users"
)

type App struct {
	service  *users.Service
	gatherer prometheus.Gatherer
	logger   logging.Logger
	out      io.Writer
}

func NewApp(service *users.Service, gatherer prometheus.Gatherer, logger logging.Logger, out io.Writer) *App {
	return &App{service: service, gatherer: gatherer, logger: logger, out: out}
}

// Demo runs the demonstration scenario against the app's registry.
func (a *App) Demo(ctx context.Context, args []string) error {
	if err := RunDemo(ctx, a.service, a.out); err != nil {
		return a.printErr(ctx, err)
	}
	return nil
}

// RunREPL reads commands from in until EOF, exit or the cancellation of ctx.
// On cancellation in is closed so a pending read returns.
func (a *App) RunREPL(ctx context.Context, in io.ReadCloser) {
	a.logger.Info(ctx, "starting repl")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = in.Close()
		case <-done:
		}
	}()

	runREPL(ctx, a, bufio.NewScanner(in), a.out, isTerminal(in))
	a.logger.Info(ctx, "repl finished")
}
