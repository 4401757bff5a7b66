// Package cli implements reviewsctl, an operator tool for the review widget's
// stored settings and a terminal preview of the carousel.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"reviews_carousel/internal/adapters/observability"
	"reviews_carousel/internal/shared"
	"reviews_carousel/internal/storage"
)

const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

// env carries what every command needs; tests swap open for an in-memory store.
type env struct {
	cfg  shared.Config
	open func(ctx context.Context) (*storage.Backends, error)
	out  io.Writer
}

// Run executes reviewsctl and returns an exit code.
func Run() int {
	cfg := shared.Load()
	log.Logger = observability.NewLogger("dev", envOr(cfg.LogLevel, "warn"))

	e := &env{
		cfg:  cfg,
		open: func(ctx context.Context) (*storage.Backends, error) { return storage.Open(ctx, cfg) },
		out:  os.Stdout,
	}
	// Cobra already prints the error
	return exitCode(newRootCmd(e).Execute())
}

func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ue):
		return ExitUsageError
	default:
		return ExitRuntimeError
	}
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "reviewsctl",
		Short:         "Manage the reviews carousel",
		Long:          "reviewsctl edits the stored places credentials and theme, and previews review pages in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(e.out)
	root.AddCommand(newConfigCmd(e))
	root.AddCommand(newThemeCmd(e))
	root.AddCommand(newReviewsCmd(e))
	return root
}

type usageError struct{ msg string }

func (u usageError) Error() string { return u.msg }

func envOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
