package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables read by healthnote.
const (
	EnvConfigHome  = "HEALTHNOTE_CONFIG_HOME"
	EnvVault       = "HEALTHNOTE_VAULT"
	EnvMetricsDir  = "HEALTHNOTE_METRICS_DIR"
	EnvWorkoutsDir = "HEALTHNOTE_WORKOUTS_DIR"
	EnvTemplate    = "HEALTHNOTE_TEMPLATE"
)

// Template names.
const (
	TemplateSummary = "summary"
	TemplateDaily   = "daily"
)

// healthExportRoot is the iCloud folder Health Auto Export syncs into.
const healthExportRoot = "~/Library/Mobile Documents/iCloud~com~ifunography~HealthExport/Documents"

// legacyConfigFile is read from the working directory when no other
// config file exists.
const legacyConfigFile = "config.json"

// Config holds every setting the converter needs.
// Keys match the legacy config.json so existing files keep working.
type Config struct {
	VaultPath          string `yaml:"obsidian_vault_path" json:"obsidian_vault_path"`
	DailyNotesPath     string `yaml:"daily_notes_path" json:"daily_notes_path"`
	HealthDataPath     string `yaml:"health_data_path" json:"health_data_path"`
	MetricsExportPath  string `yaml:"metrics_export_path" json:"metrics_export_path"`
	WorkoutsExportPath string `yaml:"workouts_export_path" json:"workouts_export_path"`
	Template           string `yaml:"template" json:"template"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		VaultPath:          "~/Documents/Obsidian/MyVault",
		DailyNotesPath:     "Daily Notes",
		HealthDataPath:     "3. Health Data",
		MetricsExportPath:  healthExportRoot + "/Gesundheitsmetriken",
		WorkoutsExportPath: healthExportRoot + "/Workouts",
		Template:           TemplateSummary,
	}
}

// Load builds the effective configuration.
//
// When path is empty the first existing file of <Dir>/config.yaml and
// ./config.json is used; with no file at all the defaults apply. Values
// from the file overlay the defaults key by key, and environment
// overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.Template {
	case TemplateSummary, TemplateDaily:
	default:
		return fmt.Errorf("unknown template %q (want %q or %q)", c.Template, TemplateSummary, TemplateDaily)
	}
	if c.VaultPath == "" {
		return errors.New("obsidian_vault_path is empty")
	}
	if c.MetricsExportPath == "" {
		return errors.New("metrics_export_path is empty")
	}
	return nil
}

// MetricsDir is the expanded metrics export folder.
func (c Config) MetricsDir() string {
	return ExpandHome(c.MetricsExportPath)
}

// WorkoutsDir is the expanded workouts export folder.
func (c Config) WorkoutsDir() string {
	return ExpandHome(c.WorkoutsExportPath)
}

func (c *Config) applyEnv() {
	overrides := []struct {
		env   string
		field *string
	}{
		{EnvVault, &c.VaultPath},
		{EnvMetricsDir, &c.MetricsExportPath},
		{EnvWorkoutsDir, &c.WorkoutsExportPath},
		{EnvTemplate, &c.Template},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.field = v
		}
	}
}

func findConfigFile() string {
	var candidates []string
	if dir := Dir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	candidates = append(candidates, legacyConfigFile)

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
