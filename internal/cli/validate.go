package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

type validateReport struct {
	Source string            `json:"source"`
	Result validation.Result `json:"result"`
}

func (a *app) cmdValidate() *cli.Command {
	var strict, asJSON bool

	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Check form schemas for shape and structural problems",
		ArgsUsage: "<source> [<source>...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Reject field types outside the built-in set",
				Destination: &strict,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print reports as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return goerr.New("validate needs at least one source")
			}
			logger := logging.Default()

			var reports []validateReport
			failed := 0
			for _, in := range c.Args().Slice() {
				raw, err := a.readSource(ctx, in)
				if err != nil {
					return err
				}
				result := validateSchema(ctx, raw, a.importOptions(strict))
				if !result.Valid {
					failed++
				}
				logger.Debug("Schema validated", "source", in, "valid", result.Valid, "issues", len(result.Issues))
				reports = append(reports, validateReport{Source: in, Result: result})
			}

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return goerr.Wrap(err, "failed to encode report")
				}
			} else if err := printReports(a.out, reports); err != nil {
				return err
			}

			if failed > 0 {
				return goerr.New("validation failed", goerr.V("failed", failed), goerr.V("total", len(reports)))
			}
			return nil
		},
	}
}

// validateSchema runs the import pipeline and, when it succeeds, the
// structural lint on the decoded form.
func validateSchema(ctx context.Context, raw []byte, opts []surveyjson.ImportOption) validation.Result {
	form, err := surveyjson.Decode(ctx, raw, opts...)
	if err != nil {
		var shapeErr *validation.ShapeError
		if errors.As(err, &shapeErr) {
			return shapeErr.Result
		}
		return validation.Result{Issues: []validation.Issue{{Path: "/", Message: err.Error()}}}
	}
	return validation.Lint(form)
}

func printReports(w io.Writer, reports []validateReport) error {
	for _, report := range reports {
		if report.Result.Valid {
			if _, err := fmt.Fprintf(w, "%s: ok\n", report.Source); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %d issue(s)\n", report.Source, len(report.Result.Issues)); err != nil {
			return err
		}
		for _, issue := range report.Result.Issues {
			if _, err := fmt.Fprintf(w, "  %s [%s] %s\n", issue.Path, issue.Code, issue.Message); err != nil {
				return err
			}
		}
	}
	return nil
}
