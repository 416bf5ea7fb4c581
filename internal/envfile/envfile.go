// Package envfile loads HEALTHNOTE_* overrides from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Prefix selects the variables a file may set. Other keys are ignored so
// a shared .env cannot leak unrelated settings into the process.
const Prefix = "HEALTHNOTE_"

// Paths returns the env files in priority order: the working directory's
// .env.local and .env, then <configDir>/env.
func Paths(configDir string) []string {
	paths := []string{".env.local", ".env"}
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, "env"))
	}
	return paths
}

// LoadAll loads each file in order. The first file to set a variable wins.
// It stops at the first read failure.
func LoadAll(paths ...string) ([]string, error) {
	var applied []string
	for _, path := range paths {
		keys, err := Load(path)
		if err != nil {
			return applied, err
		}
		applied = append(applied, keys...)
	}
	return applied, nil
}

// Load reads a .env file and sets any HEALTHNOTE_ variables not already
// in the environment. It returns the keys it set.
// Returns nil if the file doesn't exist. Returns an error only for read failures.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	var applied []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseEnvLine(line)
		if !ok || !strings.HasPrefix(key, Prefix) {
			continue
		}

		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
			applied = append(applied, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return applied, nil
}

// parseEnvLine extracts KEY=VALUE from a line.
// Handles optional quoting (single or double quotes) around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}
