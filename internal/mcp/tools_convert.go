package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/healthnote/internal/config"
	"github.com/gorewood/healthnote/internal/convert"
	"github.com/gorewood/healthnote/internal/healthdata"
	"github.com/gorewood/healthnote/internal/score"
)

// ConvertInput is the input for the convert tool.
type ConvertInput struct {
	Date     string `json:"date,omitempty"     jsonschema:"export date (YYYY-MM-DD); defaults to the latest export"`
	Template string `json:"template,omitempty" jsonschema:"note template: summary or daily; defaults to the configured template"`
}

// ConvertOutput is the output for the convert tool.
type ConvertOutput struct {
	Date     string       `json:"date"     jsonschema:"converted export date (YYYY-MM-DD)"`
	Path     string       `json:"path"     jsonschema:"path of the written note"`
	Template string       `json:"template" jsonschema:"template used"`
	Workouts int          `json:"workouts" jsonschema:"number of workouts included"`
	Scores   score.Bundle `json:"scores"   jsonschema:"derived scores for the date"`
}

func handleConvert(e *env) mcp.ToolHandlerFor[ConvertInput, ConvertOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
		switch input.Template {
		case "", config.TemplateSummary, config.TemplateDaily:
		default:
			return nil, ConvertOutput{}, fmt.Errorf("unknown template %q (want summary or daily)", input.Template)
		}

		date, err := parseDate(input.Date)
		if err != nil {
			return nil, ConvertOutput{}, err
		}

		converter := convert.New(e.cfg, convert.WithClock(e.now), convert.WithTemplate(input.Template))

		var result convert.FileResult
		if date.IsZero() {
			result, err = converter.ConvertLatest(ctx)
		} else {
			result, err = converter.ConvertDate(ctx, date)
		}
		if err != nil {
			return nil, ConvertOutput{}, err
		}

		return nil, ConvertOutput{
			Date:     result.Date.Format(healthdata.DateLayout),
			Path:     result.NotePath,
			Template: result.Template,
			Workouts: result.Workouts,
			Scores:   result.Scores,
		}, nil
	}
}
