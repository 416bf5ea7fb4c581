package healthdata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// DateLayout is the date format embedded in export and note file names.
const DateLayout = "2006-01-02"

// exportGlob matches export files in an export folder.
const exportGlob = "HealthAutoExport-*.json"

// ErrNoExportDir is returned when the export folder does not exist.
var ErrNoExportDir = errors.New("health export folder not found")

// ErrNoExports is returned when the export folder holds no export files.
var ErrNoExports = errors.New("no health export files found")

// datePattern extracts YYYY-MM-DD from an export file name.
var datePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

// ExportFile is one export file found on disk.
type ExportFile struct {
	Path    string
	Date    time.Time // zero when DateErr is set
	DateErr error
}

// Name returns the base file name.
func (f ExportFile) Name() string {
	return filepath.Base(f.Path)
}

// ExportFileName returns the conventional export file name for a date.
func ExportFileName(date time.Time) string {
	return "HealthAutoExport-" + date.Format(DateLayout) + ".json"
}

// ParseFileDate extracts the calendar date embedded in an export file name.
func ParseFileDate(name string) (time.Time, error) {
	match := datePattern.FindString(filepath.Base(name))
	if match == "" {
		return time.Time{}, fmt.Errorf("could not extract date from filename %q", filepath.Base(name))
	}
	date, err := time.Parse(DateLayout, match)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date in filename %q: %w", filepath.Base(name), err)
	}
	return date, nil
}

// ListExports returns the export files in dir sorted ascending by name.
// Returns ErrNoExportDir if dir does not exist.
func ListExports(dir string) ([]ExportFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoExportDir, dir)
		}
		return nil, fmt.Errorf("checking export folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoExportDir, dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, exportGlob))
	if err != nil {
		return nil, fmt.Errorf("listing exports in %s: %w", dir, err)
	}
	sort.Strings(paths)

	files := make([]ExportFile, 0, len(paths))
	for _, path := range paths {
		date, dateErr := ParseFileDate(path)
		files = append(files, ExportFile{Path: path, Date: date, DateErr: dateErr})
	}
	return files, nil
}

// LatestExport returns the export with the lexicographically greatest name,
// which by naming convention is the most recent day.
func LatestExport(dir string) (ExportFile, error) {
	files, err := ListExports(dir)
	if err != nil {
		return ExportFile{}, err
	}
	if len(files) == 0 {
		return ExportFile{}, fmt.Errorf("%w in %s", ErrNoExports, dir)
	}
	return files[len(files)-1], nil
}

// ExportForDate returns the path of the export for date, or "" when the
// folder has no file for that day.
func ExportForDate(dir string, date time.Time) string {
	path := filepath.Join(dir, ExportFileName(date))
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
