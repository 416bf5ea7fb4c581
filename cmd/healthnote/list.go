package main

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/healthnote/internal/convert"
	"github.com/gorewood/healthnote/internal/output"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var lastFlag int
	var templateFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available exports and their conversion status",
		Long: `List the Health Auto Export files in the metrics folder.

For each day it shows whether a workout export exists and whether a note
for the selected template is already in the vault.

Examples:
  healthnote list                    # All exports
  healthnote list --last 7           # The last seven days
  healthnote list --template daily   # Check daily notes instead of summaries
  healthnote list --json             # Machine-readable inventory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, lastFlag, templateFlag)
		},
	}

	cmd.Flags().IntVar(&lastFlag, "last", 0, "Only show the N most recent exports")
	cmd.Flags().StringVar(&templateFlag, "template", "", "Template whose notes to check: summary or daily (default from config)")

	return cmd
}

// listResult is the JSON document of the list command.
type listResult struct {
	convert.Inventory
	Count    int      `json:"count"`
	Warnings []string `json:"warnings,omitempty"`
}

func runList(cmd *cobra.Command, last int, template string) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if last < 0 {
		err := output.NewUserError("--last must be a positive integer")
		printer.Error(err)
		return err
	}
	if _, err := parseConvertFlags(&convertOptions{template: template}); err != nil {
		printer.Error(err)
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	converter := convert.New(cfg, convert.WithTemplate(template))
	inv, err := converter.Inventory()
	if err != nil {
		err = output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(err)
		return err
	}
	inv = inv.Last(last)

	for _, name := range inv.Undated {
		printer.Warn("Ignoring %s: no date in file name", name)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(listResult{Inventory: inv, Count: len(inv.Exports), Warnings: printer.Warnings()})
	}

	if len(inv.Exports) == 0 {
		printer.Println("No exports found in", cfg.MetricsDir())
		return nil
	}

	rows := make([][]string, 0, len(inv.Exports))
	for _, e := range inv.Exports {
		rows = append(rows, []string{e.Date, filepath.Base(e.File), yesNo(e.HasWorkouts), yesNo(e.NoteExists)})
	}
	printer.Table([]string{"Date", "Export", "Workouts", "Note"}, rows)
	printer.Println()
	printer.KeyValue("Vault", converter.Vault().Root())
	printer.KeyValue("Exports", strconv.Itoa(len(inv.Exports)))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
