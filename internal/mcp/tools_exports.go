package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/healthnote/internal/convert"
)

// ListExportsInput is the input for the list_exports tool.
type ListExportsInput struct {
	Last int `json:"last,omitempty" jsonschema:"only return the N most recent exports"`
}

// ExportInfo describes one export day.
type ExportInfo struct {
	Date        string `json:"date"         jsonschema:"export date (YYYY-MM-DD)"`
	File        string `json:"file"         jsonschema:"metrics export file path"`
	HasWorkouts bool   `json:"has_workouts" jsonschema:"whether a workout export exists for the date"`
	NoteExists  bool   `json:"note_exists"  jsonschema:"whether a note for the date exists in the vault"`
}

// ListExportsOutput is the output for the list_exports tool.
type ListExportsOutput struct {
	Count   int          `json:"count"             jsonschema:"number of exports returned"`
	Exports []ExportInfo `json:"exports"           jsonschema:"exports in ascending date order"`
	Undated []string     `json:"undated,omitempty" jsonschema:"export files whose name carries no date"`
}

func handleListExports(e *env) mcp.ToolHandlerFor[ListExportsInput, ListExportsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListExportsInput) (*mcp.CallToolResult, ListExportsOutput, error) {
		if input.Last < 0 {
			return nil, ListExportsOutput{}, fmt.Errorf("last must be positive, got %d", input.Last)
		}

		inv, err := convert.New(e.cfg).Inventory()
		if err != nil {
			return nil, ListExportsOutput{}, err
		}
		inv = inv.Last(input.Last)

		out := ListExportsOutput{
			Count:   len(inv.Exports),
			Exports: make([]ExportInfo, 0, len(inv.Exports)),
			Undated: inv.Undated,
		}
		for _, status := range inv.Exports {
			out.Exports = append(out.Exports, ExportInfo(status))
		}
		return nil, out, nil
	}
}
