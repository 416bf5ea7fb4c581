package convert

import (
	"encoding/json"
	"time"

	"github.com/gorewood/healthnote/internal/healthdata"
	"github.com/gorewood/healthnote/internal/score"
)

// Status is the outcome of converting one export file.
type Status string

const (
	StatusConverted Status = "converted"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// FileResult describes what happened to one export file.
type FileResult struct {
	Source   string
	Date     time.Time // zero for skipped files
	Status   Status
	NotePath string
	Template string
	Workouts int
	// HasWorkoutFile is false when no workout export exists for the date.
	HasWorkoutFile bool
	Scores         score.Bundle
	Err            error
}

// MarshalJSON renders the date as YYYY-MM-DD and the error as text.
func (r FileResult) MarshalJSON() ([]byte, error) {
	out := struct {
		Source         string        `json:"source"`
		Date           string        `json:"date,omitempty"`
		Status         Status        `json:"status"`
		NotePath       string        `json:"note_path,omitempty"`
		Template       string        `json:"template,omitempty"`
		Workouts       int           `json:"workouts"`
		HasWorkoutFile bool          `json:"has_workout_file"`
		Scores         *score.Bundle `json:"scores,omitempty"`
		Error          string        `json:"error,omitempty"`
	}{
		Source:         r.Source,
		Status:         r.Status,
		NotePath:       r.NotePath,
		Template:       r.Template,
		Workouts:       r.Workouts,
		HasWorkoutFile: r.HasWorkoutFile,
	}
	if !r.Date.IsZero() {
		out.Date = r.Date.Format(healthdata.DateLayout)
	}
	if r.Status == StatusConverted {
		out.Scores = &r.Scores
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

// BatchReport summarizes a ConvertAll run.
type BatchReport struct {
	Results   []FileResult `json:"results"`
	Total     int          `json:"total"`
	Converted int          `json:"converted"`
	Failed    int          `json:"failed"`
	Skipped   int          `json:"skipped"`
}

func (b *BatchReport) add(r FileResult) {
	b.Results = append(b.Results, r)
	b.Total++
	switch r.Status {
	case StatusConverted:
		b.Converted++
	case StatusFailed:
		b.Failed++
	case StatusSkipped:
		b.Skipped++
	}
}
