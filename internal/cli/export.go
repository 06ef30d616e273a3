package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
)

func (a *app) cmdExport() *cli.Command {
	var out string
	var compact, strict, noCheck bool

	return &cli.Command{
		Name:      "export",
		Aliases:   []string{"x"},
		Usage:     "Normalise a form schema to the canonical JSON layout",
		ArgsUsage: "<source>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Output file (default: stdout)",
				Destination: &out,
			},
			&cli.BoolFlag{
				Name:        "compact",
				Usage:       "Write without indentation",
				Destination: &compact,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Reject field types outside the built-in set",
				Destination: &strict,
			},
			&cli.BoolFlag{
				Name:        "no-check",
				Usage:       "Skip the shape check and accept any JSON object",
				Destination: &noCheck,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("export takes exactly one source", goerr.V("args", c.Args().Slice()))
			}
			in := c.Args().First()
			raw, err := a.readSource(ctx, in)
			if err != nil {
				return err
			}

			opts := a.importOptions(strict)
			if noCheck {
				opts = append(opts, surveyjson.WithoutShapeCheck())
			}
			form, err := surveyjson.Decode(ctx, raw, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to decode form", goerr.V("source", in))
			}

			var data []byte
			if compact {
				data, err = surveyjson.ExportCompact(form)
				data = append(data, '\n')
			} else {
				data, err = surveyjson.Export(form)
			}
			if err != nil {
				return goerr.Wrap(err, "failed to export form")
			}
			return a.write(out, data)
		},
	}
}
