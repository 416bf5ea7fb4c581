// Package mcp provides a Model Context Protocol server for healthnote.
// It exposes export listing, scoring and conversion as MCP tools so an
// agent can inspect and convert health exports.
package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/healthnote/internal/config"
)

// env is the state shared by the tool handlers.
type env struct {
	cfg config.Config
	now func() time.Time
}

// NewServer creates an MCP server with all healthnote tools registered.
// now supplies the generation timestamp of written notes; nil means time.Now.
func NewServer(version string, cfg config.Config, now func() time.Time) *mcp.Server {
	if now == nil {
		now = time.Now
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "healthnote",
		Version: version,
	}, nil)
	registerTools(server, &env{cfg: cfg, now: now})
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for the convert tool. Notes are
// overwritten whole, so reruns are idempotent but not destructive.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all healthnote tools to the server.
func registerTools(server *mcp.Server, e *env) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_exports",
		Description: "List Health Auto Export files by date, with whether a workout export and a vault note exist for each day.",
		Annotations: readOnlyAnnotations(),
	}, handleListExports(e))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scores",
		Description: "Compute sleep score, recovery score and readiness plus the key metrics for a date (default: latest export). Does not write anything.",
		Annotations: readOnlyAnnotations(),
	}, handleScores(e))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert the export for a date (default: latest) into an Obsidian note using the summary or daily template. Overwrites an existing note for that date.",
		Annotations: writeAnnotations(),
	}, handleConvert(e))
}
