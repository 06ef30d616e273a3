// Package cli implements the formbuilder command line.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formbuilder/internal/cli/config"
	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/pkg/editor/tui"
)

// Option customises Run, mostly for tests.
type Option func(*app)

// WithOutput redirects command output (exports, listings) to w.
func WithOutput(w io.Writer) Option {
	return func(a *app) {
		if w != nil {
			a.out = w
		}
	}
}

// WithInput replaces stdin for "-" sources.
func WithInput(r io.Reader) Option {
	return func(a *app) {
		if r != nil {
			a.in = r
		}
	}
}

// WithPromptDriver replaces the terminal prompts used by the edit command.
func WithPromptDriver(driver tui.PromptDriver) Option {
	return func(a *app) {
		a.driver = driver
	}
}

type app struct {
	out        io.Writer
	in         io.Reader
	driver     tui.PromptDriver
	configPath string
	cfg        *config.AppConfig
}

func Run(ctx context.Context, args []string, version string, opts ...Option) error {
	a := &app{out: os.Stdout, in: os.Stdin, cfg: config.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	var loggerCfg config.Logger
	var closer func()

	flags := loggerCfg.Flags()
	flags = append(flags, &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to a TOML configuration file",
		Sources:     cli.EnvVars("FORMBUILDER_CONFIG"),
		Destination: &a.configPath,
	})

	app := &cli.Command{
		Name:    "formbuilder",
		Usage:   "Build multi-page, multi-locale survey forms",
		Version: version,
		Flags:   flags,
		Writer:  a.out,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return ctx, err
			}
			a.cfg = cfg

			logging.Default().Debug("Starting formbuilder", "logger", loggerCfg, "config", a.configPath)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			a.cmdEdit(),
			a.cmdExport(),
			a.cmdValidate(),
			a.cmdLibrary(),
			a.cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run formbuilder", "error", err)
		return err
	}

	return nil
}
