package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/pkg/library"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
)

func (a *app) withLibrary(fn func(library.Store) error) error {
	lib, err := a.cfg.Library.OpenLibrary()
	if err != nil {
		return err
	}
	defer func() {
		if err := lib.Close(); err != nil {
			logging.Default().Error("failed to close library", "error", err.Error())
		}
	}()
	return fn(lib)
}

func (a *app) cmdLibrary() *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib"},
		Usage:   "Manage saved forms",
		Commands: []*cli.Command{
			a.cmdLibraryList(),
			a.cmdLibraryGet(),
			a.cmdLibraryPut(),
			a.cmdLibraryDelete(),
			a.cmdLibrarySeed(),
		},
	}
}

func (a *app) cmdLibraryList() *cli.Command {
	var query, locale string

	return &cli.Command{
		Name:  "list",
		Usage: "List saved forms",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "Only show forms whose id or title contains this text",
				Destination: &query,
			},
			&cli.StringFlag{
				Name:        "locale",
				Usage:       "Locale used for titles",
				Value:       model.LocaleDefault,
				Destination: &locale,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return a.withLibrary(func(lib library.Store) error {
				entries, err := lib.List(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to list forms")
				}
				tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				for _, entry := range library.Search(entries, query) {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.ID, entry.Title.Get(locale), entry.UpdatedAt.Format(time.RFC3339))
				}
				return tw.Flush()
			})
		},
	}
}

func (a *app) cmdLibraryGet() *cli.Command {
	var out string

	return &cli.Command{
		Name:      "get",
		Usage:     "Print a saved form",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Output file (default: stdout)",
				Destination: &out,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return goerr.New("form id is required")
			}
			return a.withLibrary(func(lib library.Store) error {
				raw, err := lib.Get(ctx, id)
				if err != nil {
					return err
				}
				return a.write(out, raw)
			})
		},
	}
}

func (a *app) cmdLibraryPut() *cli.Command {
	var name string
	var strict bool

	return &cli.Command{
		Name:      "put",
		Usage:     "Save a form schema under an id",
		ArgsUsage: "<id> <source>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "Display name (default: the id)",
				Destination: &name,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Reject field types outside the built-in set",
				Destination: &strict,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return goerr.New("put takes an id and a source", goerr.V("args", c.Args().Slice()))
			}
			id, in := c.Args().Get(0), c.Args().Get(1)
			raw, err := a.readSource(ctx, in)
			if err != nil {
				return err
			}
			form, err := surveyjson.Decode(ctx, raw, a.importOptions(strict)...)
			if err != nil {
				return goerr.Wrap(err, "refusing to save an invalid form", goerr.V("source", in))
			}
			canonical, err := surveyjson.Export(form)
			if err != nil {
				return goerr.Wrap(err, "failed to export form")
			}
			entry, err := library.EntryFromSchema(id, canonical)
			if err != nil {
				return err
			}
			if name != "" {
				entry.Name = name
			}
			return a.withLibrary(func(lib library.Store) error {
				if err := lib.Put(ctx, entry, canonical); err != nil {
					return err
				}
				logging.Default().Info("Form saved", "id", id, "source", in)
				return nil
			})
		},
	}
}

func (a *app) cmdLibraryDelete() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a saved form",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return goerr.New("form id is required")
			}
			return a.withLibrary(func(lib library.Store) error {
				return lib.Delete(ctx, id)
			})
		},
	}
}

func (a *app) cmdLibrarySeed() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Install the bundled sample forms",
		Action: func(ctx context.Context, c *cli.Command) error {
			return a.withLibrary(func(lib library.Store) error {
				ids, err := library.Seed(ctx, lib)
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(a.out, id)
				}
				return nil
			})
		},
	}
}
