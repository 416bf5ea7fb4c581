package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/healthnote/internal/score"
)

func TestTrendsCmd_ReadsDailyNotes(t *testing.T) {
	e := setupTestEnv(t)
	for _, day := range []string{"2024-01-13", "2024-01-14", "2024-01-15"} {
		e.writeExport(t, e.metrics, day, metricsJSON)
	}
	if _, _, err := execute("--all", "--template", "daily"); err != nil {
		t.Fatal(err)
	}

	// Notes of other types in the same folder are ignored.
	journal := filepath.Join(e.vault, "Daily Notes", "2024-01-16.md")
	if err := os.WriteFile(journal, []byte("---\ndate: 2024-01-16\ntype: journal\n---\n\nDear diary\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute("trends", "--last", "2", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc struct {
		Count int `json:"count"`
		Notes []struct {
			Date          string `json:"date"`
			SleepScore    int    `json:"sleep_score"`
			RecoveryScore int    `json:"recovery_score"`
			Readiness     string `json:"readiness"`
			Steps         string `json:"steps"`
			HRV           string `json:"hrv"`
		} `json:"notes"`
	}
	decodeJSON(t, out, &doc)

	if doc.Count != 2 || len(doc.Notes) != 2 {
		t.Fatalf("count = %d, notes = %+v", doc.Count, doc.Notes)
	}
	if doc.Notes[0].Date != "2024-01-15" || doc.Notes[1].Date != "2024-01-14" {
		t.Errorf("notes not newest first: %s, %s", doc.Notes[0].Date, doc.Notes[1].Date)
	}

	sleep, hrv, rhr := 7.5, 65.3, 52.0
	want := score.Compute(&sleep, &hrv, &rhr)
	got := doc.Notes[0]
	if got.SleepScore != *want.Sleep || got.RecoveryScore != *want.Recovery || got.Readiness != string(want.Readiness) {
		t.Errorf("scores = %d/%d/%s, want %d/%d/%s",
			got.SleepScore, got.RecoveryScore, got.Readiness, *want.Sleep, *want.Recovery, want.Readiness)
	}
	if got.Steps != "12,345" || got.HRV != "65.3" {
		t.Errorf("steps = %q, hrv = %q", got.Steps, got.HRV)
	}
}

func TestTrendsCmd_Human(t *testing.T) {
	e := setupTestEnv(t)
	e.writeExport(t, e.metrics, "2024-01-15", metricsJSON)
	if _, _, err := execute("convert", "--template", "daily"); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute("trends")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Trends", "Recovery", "2024-01-15", "12,345"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTrendsCmd_NoNotes(t *testing.T) {
	setupTestEnv(t)

	out, _, err := execute("trends")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "No daily health notes found") {
		t.Errorf("output = %q", out)
	}
}

func TestTrendsCmd_InvalidLast(t *testing.T) {
	setupTestEnv(t)

	if _, _, err := execute("trends", "--last", "0"); err == nil {
		t.Error("expected error for --last 0")
	}
}
