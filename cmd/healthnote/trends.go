package main

import (
	"path/filepath"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/healthnote/internal/config"
	"github.com/gorewood/healthnote/internal/note"
	"github.com/gorewood/healthnote/internal/output"
	"github.com/gorewood/healthnote/internal/vault"
)

const defaultTrendDays = 7

// newTrendsCmd creates the trends command.
func newTrendsCmd() *cobra.Command {
	var lastFlag int

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show score trends from daily health notes",
		Long: `Show sleep and recovery trends read back from the daily health notes
in the vault's daily notes folder, newest first.

Only notes written with the daily template are included.

Examples:
  healthnote trends             # Last 7 days
  healthnote trends --last 30   # Last 30 days
  healthnote trends --json      # As JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrends(cmd, lastFlag)
		},
	}

	cmd.Flags().IntVar(&lastFlag, "last", defaultTrendDays, "Number of most recent days to show")

	return cmd
}

// trendsResult is the JSON document of the trends command.
type trendsResult struct {
	Notes    []vault.FrontMatter `json:"notes"`
	Count    int                 `json:"count"`
	Warnings []string            `json:"warnings,omitempty"`
}

func runTrends(cmd *cobra.Command, last int) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if last <= 0 {
		err := output.NewUserError("--last must be a positive integer")
		printer.Error(err)
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	dir := vault.New(cfg).NoteDir(config.TemplateDaily)
	rows, err := readTrends(printer, dir, last)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(trendsResult{Notes: rows, Count: len(rows), Warnings: printer.Warnings()})
	}

	if len(rows) == 0 {
		printer.Println("No daily health notes found in", dir)
		return nil
	}

	printer.Section("📈 Trends")
	table := make([][]string, 0, len(rows))
	for _, fm := range rows {
		table = append(table, []string{
			fm.Date,
			strconv.Itoa(fm.SleepScore),
			strconv.Itoa(fm.RecoveryScore),
			fm.Readiness,
			fm.Steps,
			fm.HRV,
			fm.RestingHR,
		})
	}
	printer.Table([]string{"Date", "💤 Sleep", "💪 Recovery", "Readiness", "Steps", "HRV", "Resting HR"}, table)
	return nil
}

// readTrends returns the front-matter of the newest daily health notes
// in dir, at most last of them. Notes of other types are ignored and
// unreadable notes are reported as warnings.
func readTrends(printer *output.Printer, dir string, last int) ([]vault.FrontMatter, error) {
	notes, err := vault.ListNotes(dir)
	if err != nil {
		return nil, err
	}
	slices.Reverse(notes)

	rows := []vault.FrontMatter{}
	for _, n := range notes {
		if len(rows) == last {
			break
		}
		fm, err := vault.ReadFrontMatter(n.Path)
		if err != nil {
			printer.Warn("Skipping %s: %v", filepath.Base(n.Path), err)
			continue
		}
		if fm.Type != note.TypeDaily {
			continue
		}
		rows = append(rows, fm)
	}
	return rows, nil
}
