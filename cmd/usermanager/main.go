package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/usermanager/internal/app"
	"github.com/dmitrijs2005/usermanager/internal/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Printf("%v", err)
		stop()
		os.Exit(1)
	}

	stop()
}

// run loads the configuration and executes the selected mode. Domain errors
// are reported on out by the app itself; only startup and infrastructure
// failures come back as an error.
func run(ctx context.Context, in io.ReadCloser, out io.Writer) error {
	cfg := config.LoadConfig()

	a, err := app.NewApp(ctx, cfg, in, out)
	if err != nil {
		return err
	}

	return a.Run(ctx)
}
