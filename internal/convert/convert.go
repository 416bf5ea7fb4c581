// Package convert drives export-to-note conversion for one date or for
// every export in the metrics folder.
package convert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorewood/healthnote/internal/config"
	"github.com/gorewood/healthnote/internal/healthdata"
	"github.com/gorewood/healthnote/internal/note"
	"github.com/gorewood/healthnote/internal/score"
	"github.com/gorewood/healthnote/internal/vault"
)

// ErrNoExportForDate is returned when the metrics folder has no export
// for the requested day.
var ErrNoExportForDate = errors.New("no health export for date")

// Converter turns Health Auto Export files into vault notes.
// It holds configuration only; every call is independent.
type Converter struct {
	cfg      config.Config
	vault    *vault.Vault
	now      func() time.Time
	template string
	progress func(FileResult)
}

// Option configures a Converter.
type Option func(*Converter)

// WithClock sets the clock used for the generation timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}

// WithTemplate overrides the configured template.
func WithTemplate(template string) Option {
	return func(c *Converter) {
		if template != "" {
			c.template = template
		}
	}
}

// WithProgress registers a callback invoked after each file of a batch.
func WithProgress(fn func(FileResult)) Option {
	return func(c *Converter) { c.progress = fn }
}

// New creates a Converter for cfg.
func New(cfg config.Config, opts ...Option) *Converter {
	c := &Converter{
		cfg:      cfg,
		vault:    vault.New(cfg),
		now:      time.Now,
		template: cfg.Template,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.template == "" {
		c.template = config.TemplateSummary
	}
	return c
}

// Template returns the template notes are rendered with.
func (c *Converter) Template() string {
	return c.template
}

// Vault returns the vault notes are written to.
func (c *Converter) Vault() *vault.Vault {
	return c.vault
}

// ConvertLatest converts the export with the greatest file name.
// Returns healthdata.ErrNoExportDir or healthdata.ErrNoExports when there
// is nothing to convert.
func (c *Converter) ConvertLatest(ctx context.Context) (FileResult, error) {
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}
	file, err := healthdata.LatestExport(c.cfg.MetricsDir())
	if err != nil {
		return FileResult{}, err
	}
	if file.DateErr != nil {
		return FileResult{Source: file.Path, Status: StatusSkipped, Err: file.DateErr}, file.DateErr
	}
	return c.convertOne(file.Path, file.Date)
}

// ConvertDate converts the export for one calendar day.
func (c *Converter) ConvertDate(ctx context.Context, date time.Time) (FileResult, error) {
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}
	dir := c.cfg.MetricsDir()
	if _, err := healthdata.ListExports(dir); err != nil {
		return FileResult{}, err
	}
	path := healthdata.ExportForDate(dir, date)
	if path == "" {
		return FileResult{}, fmt.Errorf("%w %s", ErrNoExportForDate, date.Format(healthdata.DateLayout))
	}
	return c.convertOne(path, date)
}

// ConvertAll converts every export in ascending file name order.
// A file whose name carries no date is skipped. A failing file is
// recorded in the report and the batch moves on. The only errors
// returned are a missing export folder and cancellation of ctx, which
// stops the batch between files.
func (c *Converter) ConvertAll(ctx context.Context) (BatchReport, error) {
	files, err := healthdata.ListExports(c.cfg.MetricsDir())
	if err != nil {
		return BatchReport{}, err
	}

	var report BatchReport
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		var result FileResult
		if file.DateErr != nil {
			result = FileResult{Source: file.Path, Status: StatusSkipped, Err: file.DateErr}
		} else {
			result, _ = c.convertOne(file.Path, file.Date)
		}

		report.add(result)
		if c.progress != nil {
			c.progress(result)
		}
	}
	return report, nil
}

// convertOne runs extract, score, render and write for one export.
// The returned result always describes the file; err repeats result.Err.
func (c *Converter) convertOne(path string, date time.Time) (FileResult, error) {
	result := FileResult{Source: path, Date: date, Template: c.template}

	fail := func(err error) (FileResult, error) {
		result.Status = StatusFailed
		result.Err = err
		return result, err
	}

	metrics, err := healthdata.LoadMetrics(path)
	if err != nil {
		return fail(err)
	}
	day := healthdata.ExtractDay(metrics)

	var workouts []healthdata.Workout
	if workoutPath := healthdata.ExportForDate(c.cfg.WorkoutsDir(), date); workoutPath != "" {
		result.HasWorkoutFile = true
		doc, err := healthdata.LoadWorkouts(workoutPath)
		if err != nil {
			return fail(err)
		}
		workouts = healthdata.ExtractWorkouts(doc)
	}
	result.Workouts = len(workouts)
	result.Scores = score.Compute(day.Sleep.Total, day.HRV, day.RestingHR)

	content := c.render(day, workouts, result.Scores, date)
	notePath, err := vault.WriteNote(c.vault.NoteDir(c.template), date, content)
	if err != nil {
		return fail(err)
	}

	result.Status = StatusConverted
	result.NotePath = notePath
	return result, nil
}

func (c *Converter) render(day healthdata.Day, workouts []healthdata.Workout, scores score.Bundle, date time.Time) string {
	generatedAt := c.now()
	if c.template == config.TemplateDaily {
		return note.RenderDaily(day, scores, date, generatedAt, note.DailyOptions{TrendSource: c.cfg.DailyNotesPath})
	}
	return note.RenderSummary(day, workouts, date, generatedAt)
}
