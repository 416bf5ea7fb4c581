// Package main provides the entry point for the healthnote CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/healthnote/internal/config"
	"github.com/gorewood/healthnote/internal/envfile"
	"github.com/gorewood/healthnote/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return flagValue(cmd, "json") == "true"
}

// flagValue returns the value of a local or inherited persistent flag.
func flagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the healthnote CLI.
// Run without a subcommand it converts the latest export.
func newRootCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "healthnote",
		Short: "Convert Health Auto Export JSON into Obsidian notes",
		Long: `healthnote - Convert Health Auto Export JSON into Obsidian notes.

Reads the daily metrics and workout exports that Health Auto Export syncs
to iCloud, derives a sleep score, a recovery score and a training
readiness level, and writes one Markdown note per day into your vault.

Without a subcommand the latest export is converted. Use --all to convert
every export, or --date to convert one day.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, opts)
		},
	}

	// Load .env.local, .env and the config dir's env file before any
	// command reads HEALTHNOTE_* overrides.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return loadEnvFiles()
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("config", "", "Path to a config file (default: <config dir>/config.yaml, then ./config.json)")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always or never")
	addConvertFlags(cmd, opts)

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
func loadEnvFiles() error {
	if _, err := envfile.LoadAll(envfile.Paths(config.Dir())...); err != nil {
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
	return nil
}

// loadConfig loads the configuration named by --config, or the default
// lookup chain when the flag is empty.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagValue(cmd, "config"))
	if err != nil {
		return config.Config{}, output.NewUserErrorWithCause("invalid configuration: "+err.Error(), err)
	}
	return cfg, nil
}

// newPrinter builds the command's printer from --json and --color.
// The printer is usable even when the color mode is invalid, so the
// returned error can be reported through it.
func newPrinter(cmd *cobra.Command) (*output.Printer, error) {
	mode, err := output.ParseColorMode(flagValue(cmd, "color"))
	isTTY := output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
	return printer, err
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newConvertCmd(), "core")

	addGroupedCommand(cmd, newListCmd(), "query")
	addGroupedCommand(cmd, newTrendsCmd(), "query")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
