package mcp

import (
	"fmt"
	"time"

	"github.com/gorewood/healthnote/internal/convert"
	"github.com/gorewood/healthnote/internal/healthdata"
)

// parseDate parses an optional YYYY-MM-DD argument. Empty means "latest"
// and yields the zero time.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(healthdata.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", value)
	}
	return date, nil
}

// resolveExport finds the metrics export for date, or the latest export
// when date is zero.
func resolveExport(dir string, date time.Time) (healthdata.ExportFile, error) {
	if date.IsZero() {
		file, err := healthdata.LatestExport(dir)
		if err != nil {
			return healthdata.ExportFile{}, err
		}
		if file.DateErr != nil {
			return healthdata.ExportFile{}, file.DateErr
		}
		return file, nil
	}

	if _, err := healthdata.ListExports(dir); err != nil {
		return healthdata.ExportFile{}, err
	}
	path := healthdata.ExportForDate(dir, date)
	if path == "" {
		return healthdata.ExportFile{}, fmt.Errorf("%w %s", convert.ErrNoExportForDate, date.Format(healthdata.DateLayout))
	}
	return healthdata.ExportFile{Path: path, Date: date}, nil
}
