package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/usermanager/internal/logging"
)

// execIface is the set of commands runREPL dispatches to.
type execIface interface {
	Add(ctx context.Context, args []string) error
	Find(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Demo(ctx context.Context, args []string) error
}

const helpText = "Available commands: add <username> <email> <age>, find <username>, remove|rm <username>, list|l, stats, demo, exit|quit"

// isTerminal reports whether in is an interactive terminal.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runREPL reads commands line by line and dispatches them to a until
// "exit"/"quit", the end of input or the cancellation of ctx. All output,
// the prompt included, goes to w; the prompt is only shown when prompt is
// set, so piped scripts produce clean output.
//
// Errors returned by command handlers are ignored here; handlers print or
// log their own failures.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, w io.Writer, prompt bool) {
	for {
		if ctx.Err() != nil {
			return
		}
		if prompt {
			fmt.Fprint(w, "usermanager> ")
		}
		if !scanner.Scan() {
			return
		}
		// the line may have arrived after a signal
		if ctx.Err() != nil {
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		cmdCtx := logging.ContextWith(ctx, "command", cmd)

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)
		case "add":
			_ = a.Add(cmdCtx, args)
		case "find":
			_ = a.Find(cmdCtx, args)
		case "remove", "rm":
			_ = a.Remove(cmdCtx, args)
		case "l", "list":
			_ = a.List(cmdCtx, args)
		case "stats":
			_ = a.Stats(cmdCtx, args)
		case "demo":
			_ = a.Demo(cmdCtx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
