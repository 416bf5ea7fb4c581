package convert

import (
	"github.com/gorewood/healthnote/internal/healthdata"
)

// ExportStatus describes one dated export and what exists for its day.
type ExportStatus struct {
	Date        string `json:"date"`
	File        string `json:"file"`
	HasWorkouts bool   `json:"has_workouts"`
	NoteExists  bool   `json:"note_exists"`
}

// Inventory is the state of the metrics export folder.
type Inventory struct {
	Exports []ExportStatus `json:"exports"`
	// Undated holds file names that carry no parseable date.
	Undated []string `json:"undated,omitempty"`
}

// Last trims the inventory to the n most recent exports. n <= 0 keeps all.
func (inv Inventory) Last(n int) Inventory {
	if n > 0 && len(inv.Exports) > n {
		inv.Exports = inv.Exports[len(inv.Exports)-n:]
	}
	return inv
}

// Inventory lists the exports in ascending date order. A note counts as
// existing when the converter's template already has one for the day.
func (c *Converter) Inventory() (Inventory, error) {
	files, err := healthdata.ListExports(c.cfg.MetricsDir())
	if err != nil {
		return Inventory{}, err
	}

	inv := Inventory{Exports: make([]ExportStatus, 0, len(files))}
	for _, file := range files {
		if file.DateErr != nil {
			inv.Undated = append(inv.Undated, file.Name())
			continue
		}
		inv.Exports = append(inv.Exports, ExportStatus{
			Date:        file.Date.Format(healthdata.DateLayout),
			File:        file.Path,
			HasWorkouts: healthdata.ExportForDate(c.cfg.WorkoutsDir(), file.Date) != "",
			NoteExists:  c.vault.NoteExists(c.template, file.Date),
		})
	}
	return inv, nil
}
