package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/healthnote/internal/config"
	"github.com/gorewood/healthnote/internal/convert"
	"github.com/gorewood/healthnote/internal/healthdata"
	"github.com/gorewood/healthnote/internal/output"
)

// convertOptions holds the conversion flags shared by the root and
// convert commands.
type convertOptions struct {
	all      bool
	date     string
	template string
}

// addConvertFlags registers the conversion flags on cmd.
func addConvertFlags(cmd *cobra.Command, opts *convertOptions) {
	cmd.Flags().BoolVar(&opts.all, "all", false, "Convert every export in the metrics folder")
	cmd.Flags().StringVar(&opts.date, "date", "", "Convert the export for one day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.template, "template", "", "Note template: summary or daily (default from config)")
	cmd.MarkFlagsMutuallyExclusive("all", "date")
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert exports into vault notes",
		Long: `Convert Health Auto Export files into Obsidian notes.

Examples:
  healthnote convert                        # Convert the latest export
  healthnote convert --date 2024-01-15      # Convert one day
  healthnote convert --all                  # Convert every export
  healthnote convert --template daily       # Write a daily note instead of a summary
  healthnote convert --all --json           # Batch report as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, opts)
		},
	}
	addConvertFlags(cmd, opts)
	return cmd
}

// convertResult is the JSON document of a single-date run.
type convertResult struct {
	Result   convert.FileResult `json:"result"`
	Warnings []string           `json:"warnings,omitempty"`
}

// batchResult is the JSON document of a --all run.
type batchResult struct {
	Report   convert.BatchReport `json:"report"`
	Warnings []string            `json:"warnings,omitempty"`
}

// runConvert executes the root and convert commands.
func runConvert(cmd *cobra.Command, opts *convertOptions) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	day, err := parseConvertFlags(opts)
	if err != nil {
		printer.Error(err)
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if opts.all {
		return runConvertAll(cmd.Context(), printer, cfg, opts.template)
	}
	return runConvertOne(cmd.Context(), printer, cfg, opts.template, day)
}

// parseConvertFlags validates --template and --date. A zero date means
// the latest export.
func parseConvertFlags(opts *convertOptions) (time.Time, error) {
	switch opts.template {
	case "", config.TemplateSummary, config.TemplateDaily:
	default:
		return time.Time{}, output.NewUserError(fmt.Sprintf("unknown template %q (want summary or daily)", opts.template))
	}

	if opts.date == "" {
		return time.Time{}, nil
	}
	day, err := time.Parse(healthdata.DateLayout, opts.date)
	if err != nil {
		return time.Time{}, output.NewUserErrorWithCause(fmt.Sprintf("invalid --date %q: want YYYY-MM-DD", opts.date), err)
	}
	return day, nil
}

// runConvertOne converts the latest export, or the export for day.
func runConvertOne(ctx context.Context, printer *output.Printer, cfg config.Config, template string, day time.Time) error {
	printer.Banner("🏥 Health Auto Export → Obsidian Converter")

	converter := convert.New(cfg, convert.WithTemplate(template))

	var (
		result convert.FileResult
		err    error
	)
	if day.IsZero() {
		result, err = converter.ConvertLatest(ctx)
	} else {
		result, err = converter.ConvertDate(ctx, day)
	}
	if err != nil {
		err = convertError(result, err)
		printer.Error(err)
		return err
	}

	if !result.HasWorkoutFile {
		printer.Warn("No workout data found")
	}

	if printer.IsJSON() {
		return printer.WriteJSON(convertResult{Result: result, Warnings: printer.Warnings()})
	}

	printer.Println("📂 Found export:", filepath.Base(result.Source))
	printer.Println("📅 Date:", result.Date.Format(healthdata.DateLayout))
	printer.Println("✅ Loaded health data")
	if result.HasWorkoutFile {
		printer.Println(fmt.Sprintf("✅ Loaded %d workout(s)", result.Workouts))
	}
	printer.Println(fmt.Sprintf("✅ %s created: %s", noteLabel(result.Template), result.NotePath))
	printer.Done("🎉 Done! Check your Obsidian vault.")
	return nil
}

// runConvertAll converts every export. Per-file failures are reported
// but do not fail the command.
func runConvertAll(ctx context.Context, printer *output.Printer, cfg config.Config, template string) error {
	printer.Banner("🏥 Converting ALL Health Auto Export files")

	files, err := healthdata.ListExports(cfg.MetricsDir())
	if err != nil {
		err = convertError(convert.FileResult{}, err)
		printer.Error(err)
		return err
	}
	if !printer.IsJSON() {
		printer.Print("📂 Found %d export files\n\n", len(files))
	}

	converter := convert.New(cfg,
		convert.WithTemplate(template),
		convert.WithProgress(func(r convert.FileResult) {
			if r.Status == convert.StatusSkipped {
				printer.Warn("Skipping %s: %v", filepath.Base(r.Source), r.Err)
				return
			}
			var detail string
			if r.Err != nil {
				detail = r.Err.Error()
			}
			printer.Step(fmt.Sprintf("Processing %s...", r.Date.Format(healthdata.DateLayout)), r.Status == convert.StatusConverted, detail)
		}),
	)

	report, err := converter.ConvertAll(ctx)
	if err != nil {
		err = convertError(convert.FileResult{}, err)
		printer.Error(err)
		return err
	}

	if report.Failed > 0 {
		printer.Warn("%d of %d files failed to convert", report.Failed, report.Total)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(batchResult{Report: report, Warnings: printer.Warnings()})
	}

	printer.Done("🎉 Done! Converted %d of %d files.", report.Converted, report.Total)
	return nil
}

// convertError maps a conversion error to an exit code. Errors that
// already carry one pass through. A file that was read and failed is a
// system error; anything that stopped before reading a file (missing
// folder, no exports, no export for the date, undated file name) is a
// user error.
func convertError(result convert.FileResult, err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	if result.Status == convert.StatusFailed {
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
	return output.NewUserErrorWithCause(err.Error(), err)
}

// noteLabel names the kind of note a template produces.
func noteLabel(template string) string {
	if template == config.TemplateDaily {
		return "Daily note"
	}
	return "Health Data"
}
