package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/healthnote/internal/healthdata"
	"github.com/gorewood/healthnote/internal/output"
)

// Note is a dated note file found in a vault folder.
type Note struct {
	Path string
	Date time.Time
}

// FrontMatter is the subset of note front-matter healthnote reads back.
// Display values such as steps keep their rendered form ("12,345", "—").
type FrontMatter struct {
	Date          string `yaml:"date" json:"date"`
	Type          string `yaml:"type" json:"type"`
	SleepScore    int    `yaml:"sleep_score" json:"sleep_score"`
	RecoveryScore int    `yaml:"recovery_score" json:"recovery_score"`
	Readiness     string `yaml:"readiness" json:"readiness,omitempty"`
	HRV           string `yaml:"hrv" json:"hrv,omitempty"`
	RestingHR     string `yaml:"resting_hr" json:"resting_hr,omitempty"`
	Steps         string `yaml:"steps" json:"steps,omitempty"`
}

// ListNotes returns the notes in dir whose file name is a date, sorted
// ascending. Other files are ignored. A missing folder yields no notes.
func ListNotes(dir string) ([]Note, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read note folder: "+dir, err)
	}

	var notes []Note
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		date, err := time.Parse(healthdata.DateLayout, strings.TrimSuffix(name, ".md"))
		if err != nil {
			continue
		}
		notes = append(notes, Note{Path: filepath.Join(dir, name), Date: date})
	}

	slices.SortFunc(notes, func(a, b Note) int { return a.Date.Compare(b.Date) })
	return notes, nil
}

// ReadFrontMatter reads and decodes the YAML front-matter of a note.
// A note without front-matter decodes to the zero value.
func ReadFrontMatter(path string) (FrontMatter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FrontMatter{}, output.NewSystemErrorWithCause("failed to read note: "+path, err)
	}

	var fm FrontMatter
	raw, _ := splitFrontmatter(string(data))
	if raw == "" {
		return fm, nil
	}
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return FrontMatter{}, fmt.Errorf("parsing front-matter of %s: %w", path, err)
	}
	return fm, nil
}

// splitFrontmatter separates YAML front-matter from the note body.
// If no front-matter is present, returns empty frontmatter and the full content.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
