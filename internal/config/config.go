package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/solidcheck/internal/schema"
)

// Load reads and parses a configuration file without validating it.
// Files ending in .yaml or .yml are YAML; anything else is JSON.
func Load(path string) (*Config, error) {
	data, err := readJSON(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadAndValidate reads a config file, checks it against the embedded schema,
// applies defaults, resolves relative paths against the file's directory,
// validates, and returns warnings for unknown fields.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := readJSON(path)
	if err != nil {
		return nil, nil, err
	}

	if err := schema.ValidateConfig(data); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg, warnings, err := LoadWithWarnings(path, data)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)
	cfg.resolvePaths(filepath.Dir(path))

	if err := Validate(cfg); err != nil {
		return nil, warnings, err
	}

	return cfg, warnings, nil
}

// readJSON returns the file contents as JSON, converting YAML when needed.
func readJSON(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if !isYAML(path) {
		return data, nil
	}
	return yamlToJSON(data)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML config: %w", err)
	}
	return out, nil
}

// resolvePaths makes relative paths relative to dir. The tool stays as
// written when it has no separator so it can be looked up in PATH.
func (c *Config) resolvePaths(dir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	if strings.ContainsRune(c.Tool, '/') || strings.ContainsRune(c.Tool, filepath.Separator) {
		c.Tool = resolve(c.Tool)
	}
	c.Script = resolve(c.Script)
	c.InputDir = resolve(c.InputDir)
	c.BaselineDir = resolve(c.BaselineDir)
}
