package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides. Nested keys use a double
// underscore: BRUTALIST_LOG__LEVEL sets log.level.
const EnvPrefix = "BRUTALIST_"

type ProjectConfig struct {
	Project string        `yaml:"project" koanf:"project"`
	Version int           `yaml:"version" koanf:"version"`
	Dataset DatasetConfig `yaml:"dataset" koanf:"dataset"`
	Nearby  NearbyConfig  `yaml:"nearby" koanf:"nearby"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// DatasetConfig lists building and collection files. Entries may be globs and
// are resolved against the config file's directory. Leaving both empty uses
// the bundled dataset.
type DatasetConfig struct {
	Buildings   []string `yaml:"buildings" koanf:"buildings"`
	Collections []string `yaml:"collections" koanf:"collections"`
	Strict      bool     `yaml:"strict" koanf:"strict"`
}

type NearbyConfig struct {
	Count int `yaml:"count" koanf:"count"`
}

type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}

func DefaultConfig() *ProjectConfig {
	return &ProjectConfig{
		Project: "brutalist-britain",
		Version: 1,
		Dataset: DatasetConfig{
			Buildings:   []string{},
			Collections: []string{},
		},
		Nearby: NearbyConfig{Count: 3},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// LoadProjectConfig starts from DefaultConfig, overlays the YAML file at path
// when it exists, then overlays BRUTALIST_* environment variables.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	base := filepath.Dir(path)
	cfg.Dataset.Buildings = resolvePaths(base, cfg.Dataset.Buildings)
	cfg.Dataset.Collections = resolvePaths(base, cfg.Dataset.Collections)

	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *ProjectConfig) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"text": true, "json": true}
)

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if cfg.Nearby.Count < 1 {
		return fmt.Errorf("nearby.count must be at least 1")
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", cfg.Log.Level)
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log.format %q: must be text or json", cfg.Log.Format)
	}
	for _, pattern := range append(cfg.Dataset.Buildings, cfg.Dataset.Collections...) {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("dataset paths must not be empty")
		}
	}
	return nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func resolvePaths(base string, patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if filepath.IsAbs(p) {
			out = append(out, p)
			continue
		}
		out = append(out, filepath.Join(base, p))
	}
	return out
}
