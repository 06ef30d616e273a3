package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formbuilder/internal/logging"
)

// Logger holds the logging flags.
type Logger struct {
	level  string
	format string
	output string
	color  bool
}

// Flags returns the global logging flags.
func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Aliases:     []string{"l"},
			Usage:       "Log level [debug|info|warn|error]",
			Value:       "info",
			Sources:     cli.EnvVars("FORMBUILDER_LOG_LEVEL"),
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [console|json]",
			Value:       logging.FormatConsole,
			Sources:     cli.EnvVars("FORMBUILDER_LOG_FORMAT"),
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [stderr|stdout|<file path>]",
			Value:       "stderr",
			Sources:     cli.EnvVars("FORMBUILDER_LOG_OUTPUT"),
			Destination: &x.output,
		},
		&cli.BoolFlag{
			Name:        "log-color",
			Usage:       "Colour console log output",
			Value:       true,
			Sources:     cli.EnvVars("FORMBUILDER_LOG_COLOR"),
			Destination: &x.color,
		},
	}
}

// LogValue keeps the flag values readable in structured logs.
func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}

// Configure installs the logger as logging.Default. The returned closer
// releases a log file when one was opened.
func (x *Logger) Configure() (func(), error) {
	level, err := logging.ParseLevel(x.level)
	if err != nil {
		return nil, err
	}

	var w io.Writer
	closer := func() {}
	color := x.color
	switch x.output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(x.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", x.output))
		}
		w = f
		color = false
		closer = func() { _ = f.Close() }
	}

	logger, err := logging.New(w, x.format, level, color)
	if err != nil {
		closer()
		return nil, err
	}
	logging.SetDefault(logger)
	return closer, nil
}
