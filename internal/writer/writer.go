// Package writer serializes a MonitoringConfiguration to Dependabot YAML and
// persists it. It is the only component that writes to disk; the detection
// core stays read-only.
package writer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"stackwatch/internal/models"
)

// DefaultPath is where the configuration lands, relative to the project root.
const DefaultPath = ".github/dependabot.yml"

const header = "# Generated by stackwatch. Re-run `stackwatch` after changing your manifests.\n"

// Marshal renders the configuration as Dependabot v2 YAML.
func Marshal(config models.MonitoringConfiguration) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes config and writes it beneath root at DefaultPath, creating
// the .github directory if needed. Returns the written path.
func Write(root string, config models.MonitoringConfiguration) (string, error) {
	data, err := Marshal(config)
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, filepath.FromSlash(DefaultPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
