package cli

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/pkg/editor/tui"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/templates"
)

func (a *app) cmdEdit() *cli.Command {
	var in, out string
	var strict bool

	return &cli.Command{
		Name:    "edit",
		Aliases: []string{"e"},
		Usage:   "Edit a form interactively in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "Form to start from (file, URL or library:<id>); empty starts a new form",
				Destination: &in,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Where to write the saved form (default: stdout)",
				Destination: &out,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Reject field types outside the built-in set on import",
				Destination: &strict,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			reg, err := a.registry()
			if err != nil {
				return err
			}
			importOpts := a.importOptions(strict)
			opts := []orchestrator.Option{
				orchestrator.WithRegistry(reg),
				orchestrator.WithImportOptions(importOpts...),
				orchestrator.WithTransformer(orchestrator.Chain(
					orchestrator.FillMissingIDs(templates.NewID),
					orchestrator.EnsureLocales(a.cfg.Locales...),
				)),
				orchestrator.WithLogger(logger),
			}

			var session *orchestrator.Orchestrator
			if in != "" {
				src, loader, release, err := a.openSource(in)
				if err != nil {
					return err
				}
				defer release()
				session = orchestrator.New(append(opts, orchestrator.WithLoader(loader))...)
				if err := session.Load(ctx, src); err != nil {
					return goerr.Wrap(err, "failed to open form", goerr.V("source", in))
				}
				logger.Info("Form loaded", "kind", src.Kind(), "location", src.Location())
			} else {
				session = orchestrator.New(opts...)
			}

			editor, err := tui.New(session.Store(),
				tui.WithPromptDriver(a.driver),
				tui.WithLocales(a.cfg.Locales...),
				tui.WithImportOptions(importOpts...),
			)
			if err != nil {
				return err
			}
			if _, err := editor.Run(ctx); err != nil {
				if errors.Is(err, tui.ErrAborted) {
					logger.Warn("Edit session aborted, nothing written")
					return nil
				}
				return goerr.Wrap(err, "edit session failed")
			}

			raw, err := session.Export()
			if err != nil {
				return goerr.Wrap(err, "failed to export form")
			}
			return a.write(out, raw)
		},
	}
}
