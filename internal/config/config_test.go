package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points every lookup location at empty temp dirs and clears
// the env overrides.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigHome, t.TempDir())
	for _, key := range []string{EnvVault, EnvMetricsDir, EnvWorkoutsDir, EnvTemplate} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.DailyNotesPath != "Daily Notes" || cfg.HealthDataPath != "3. Health Data" {
		t.Errorf("unexpected default folders: %+v", cfg)
	}
	if !strings.HasSuffix(cfg.MetricsExportPath, "/Gesundheitsmetriken") {
		t.Errorf("MetricsExportPath = %q", cfg.MetricsExportPath)
	}
}

func TestLoad_LegacyJSON(t *testing.T) {
	isolate(t)
	writeFile(t, "config.json", `{
  "obsidian_vault_path": "/vaults/health",
  "daily_notes_path": "Journal",
  "health_data_path": "Health"
}`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.VaultPath != "/vaults/health" {
		t.Errorf("VaultPath = %q, want %q", cfg.VaultPath, "/vaults/health")
	}
	if cfg.DailyNotesPath != "Journal" || cfg.HealthDataPath != "Health" {
		t.Errorf("folders = %q, %q", cfg.DailyNotesPath, cfg.HealthDataPath)
	}
	if cfg.Template != TemplateSummary {
		t.Errorf("Template = %q, want default %q", cfg.Template, TemplateSummary)
	}
}

func TestLoad_ConfigDirWinsOverLegacy(t *testing.T) {
	isolate(t)
	writeFile(t, filepath.Join(Dir(), "config.yaml"), "obsidian_vault_path: /from/yaml\ntemplate: daily\n")
	writeFile(t, "config.json", `{"obsidian_vault_path": "/from/json"}`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.VaultPath != "/from/yaml" {
		t.Errorf("VaultPath = %q, want %q", cfg.VaultPath, "/from/yaml")
	}
	if cfg.Template != TemplateDaily {
		t.Errorf("Template = %q, want %q", cfg.Template, TemplateDaily)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "metrics_export_path: /exports/metrics\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MetricsExportPath != "/exports/metrics" {
		t.Errorf("MetricsExportPath = %q", cfg.MetricsExportPath)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load() expected error for missing explicit config")
	}
}

func TestLoad_Malformed(t *testing.T) {
	isolate(t)
	writeFile(t, "config.json", `{"obsidian_vault_path": [`)

	_, err := Load("")
	if err == nil {
		t.Fatal("Load() expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("error = %v, want parsing config", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	writeFile(t, "config.json", `{"obsidian_vault_path": "/from/file"}`)
	t.Setenv(EnvVault, "/from/env")
	t.Setenv(EnvMetricsDir, "/env/metrics")
	t.Setenv(EnvWorkoutsDir, "/env/workouts")
	t.Setenv(EnvTemplate, "daily")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{
		VaultPath:          "/from/env",
		DailyNotesPath:     "Daily Notes",
		HealthDataPath:     "3. Health Data",
		MetricsExportPath:  "/env/metrics",
		WorkoutsExportPath: "/env/workouts",
		Template:           TemplateDaily,
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "daily template", mutate: func(c *Config) { c.Template = TemplateDaily }},
		{name: "unknown template", mutate: func(c *Config) { c.Template = "weekly" }, wantErr: true},
		{name: "empty vault", mutate: func(c *Config) { c.VaultPath = "" }, wantErr: true},
		{name: "empty metrics dir", mutate: func(c *Config) { c.MetricsExportPath = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
