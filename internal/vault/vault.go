// Package vault resolves note folders inside an Obsidian vault and reads
// and writes the notes stored there.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gorewood/healthnote/internal/config"
	"github.com/gorewood/healthnote/internal/healthdata"
	"github.com/gorewood/healthnote/internal/output"
)

// Vault is an Obsidian vault with a summary folder and a daily notes folder.
type Vault struct {
	root       string
	healthData string
	dailyNotes string
}

// New creates a Vault from the configured paths. "~" is expanded.
func New(cfg config.Config) *Vault {
	return &Vault{
		root:       config.ExpandHome(cfg.VaultPath),
		healthData: cfg.HealthDataPath,
		dailyNotes: cfg.DailyNotesPath,
	}
}

// Root returns the expanded vault path.
func (v *Vault) Root() string {
	return v.root
}

// NoteDir returns the folder notes of the given template are written to.
// Summary notes go to the health data folder, daily notes to the daily
// notes folder.
func (v *Vault) NoteDir(template string) string {
	if template == config.TemplateDaily {
		return filepath.Join(v.root, v.dailyNotes)
	}
	return filepath.Join(v.root, v.healthData)
}

// NotePath returns the path of the note for date.
func (v *Vault) NotePath(template string, date time.Time) string {
	return filepath.Join(v.NoteDir(template), NoteFileName(date))
}

// NoteExists reports whether a note for date already exists.
func (v *Vault) NoteExists(template string, date time.Time) bool {
	_, err := os.Stat(v.NotePath(template, date))
	return err == nil
}

// NoteFileName returns the note file name for a date, e.g. 2024-01-15.md.
func NoteFileName(date time.Time) string {
	return date.Format(healthdata.DateLayout) + ".md"
}

// WriteNote writes content as the note for date in dir and returns its path.
// The folder is created when missing and an existing note is overwritten.
// Uses write-to-temp-then-rename so a note is never left half written.
func WriteNote(dir string, date time.Time, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", output.NewSystemErrorWithCause("failed to create note folder: "+dir, err)
	}

	path := filepath.Join(dir, NoteFileName(date))
	if err := atomicWrite(path, []byte(content)); err != nil {
		return "", output.NewSystemErrorWithCause("failed to write note: "+path, err)
	}
	return path, nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.md")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
