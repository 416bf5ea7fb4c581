package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/healthnote/internal/healthdata"
	"github.com/gorewood/healthnote/internal/score"
)

// ScoresInput is the input for the scores tool.
type ScoresInput struct {
	Date string `json:"date,omitempty" jsonschema:"export date (YYYY-MM-DD); defaults to the latest export"`
}

// ScoresOutput is the output for the scores tool.
type ScoresOutput struct {
	Date     string               `json:"date"               jsonschema:"export date (YYYY-MM-DD)"`
	Scores   score.Bundle         `json:"scores"             jsonschema:"sleep score, recovery score and readiness"`
	Metrics  healthdata.Day       `json:"metrics"            jsonschema:"values extracted from the metrics export; absent values are omitted"`
	Workouts []healthdata.Workout `json:"workouts,omitempty" jsonschema:"workout summaries for the date"`
}

func handleScores(e *env) mcp.ToolHandlerFor[ScoresInput, ScoresOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ScoresInput) (*mcp.CallToolResult, ScoresOutput, error) {
		date, err := parseDate(input.Date)
		if err != nil {
			return nil, ScoresOutput{}, err
		}

		file, err := resolveExport(e.cfg.MetricsDir(), date)
		if err != nil {
			return nil, ScoresOutput{}, err
		}

		doc, err := healthdata.LoadMetrics(file.Path)
		if err != nil {
			return nil, ScoresOutput{}, err
		}
		day := healthdata.ExtractDay(doc)

		out := ScoresOutput{
			Date:    file.Date.Format(healthdata.DateLayout),
			Scores:  score.Compute(day.Sleep.Total, day.HRV, day.RestingHR),
			Metrics: day,
		}

		if path := healthdata.ExportForDate(e.cfg.WorkoutsDir(), file.Date); path != "" {
			workouts, err := healthdata.LoadWorkouts(path)
			if err != nil {
				return nil, ScoresOutput{}, err
			}
			out.Workouts = healthdata.ExtractWorkouts(workouts)
		}

		return nil, out, nil
	}
}
