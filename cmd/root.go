package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fchimpan/termclock/internal/display"
	"github.com/fchimpan/termclock/internal/logging"
	"github.com/fchimpan/termclock/internal/term"
	"github.com/fchimpan/termclock/internal/tui"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"

	minInterval = 10 * time.Millisecond
)

type Deps struct {
	RunTUI  func(opts tui.Options) error
	RunTerm func(ctx context.Context, opts term.Options) error
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		RunTUI:  defaultRunTUI,
		RunTerm: defaultRunTerm,
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

type options struct {
	mode     display.Mode
	backend  string
	interval time.Duration
	logFile  string
	logLevel string
}

func NewRootCmd(deps Deps) *cobra.Command {
	var modeStr string
	var opts options

	c := &cobra.Command{
		Use:          "termclock",
		Short:        "Show an analog or seven-segment digital clock in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := display.ParseMode(modeStr)
			if err != nil {
				return err
			}
			opts.mode = mode

			if opts.interval < minInterval {
				return fmt.Errorf("--interval must be >= %s", minInterval)
			}
			switch opts.backend {
			case backendTea, backendTcell:
			default:
				return fmt.Errorf("invalid --backend %q (expected %s or %s)", opts.backend, backendTea, backendTcell)
			}
			if _, err := logging.ParseLevel(opts.logLevel); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return run(ctx, deps, opts)
		},
	}

	c.Flags().StringVarP(&modeStr, "mode", "m", "menu", "initial view: menu, analog or digital")
	c.Flags().StringVarP(&opts.backend, "backend", "b", backendTea, "terminal backend: tea or tcell")
	c.Flags().DurationVarP(&opts.interval, "interval", "i", tui.DefaultInterval, "redraw interval")
	c.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (default: no logging)")
	c.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}
