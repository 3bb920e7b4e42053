package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the program body: it gets a cancelable context, argv without the
// program name, and the two output streams, and returns an exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// ExitInterrupted is reported when a signal canceled a run that claimed success.
const ExitInterrupted = 130

// Exec runs fn under ctx and normalizes the exit code.
func Exec(ctx context.Context, fn RunFunc, argv []string, stdout, stderr io.Writer) int {
	code := fn(ctx, argv, stdout, stderr)
	if code == 0 && ctx.Err() != nil {
		return ExitInterrupted
	}
	return code
}

// Main wires SIGINT/SIGTERM to cancellation and exits with fn's code.
func Main(fn RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Exec(ctx, fn, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
