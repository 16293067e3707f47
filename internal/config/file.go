package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileOverlay models the optional YAML file pointed to by TRAVELOGUE_CONFIG.
// Only fields present in the file replace the env-derived values.
type fileOverlay struct {
	Form struct {
		Days        *Range   `yaml:"days"`
		Budget      *Range   `yaml:"budget"`
		People      *Range   `yaml:"people"`
		Preferences []string `yaml:"preferences"`
	} `yaml:"form"`
	Map struct {
		DefaultLat *float64 `yaml:"default_lat"`
		DefaultLon *float64 `yaml:"default_lon"`
	} `yaml:"map"`
	AI struct {
		Model string `yaml:"model"`
	} `yaml:"ai"`
}

func applyFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return applyYAML(cfg, content)
}

func applyYAML(cfg *Config, content []byte) error {
	var ov fileOverlay
	if err := yaml.Unmarshal(content, &ov); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if ov.Form.Days != nil {
		cfg.Form.Days = *ov.Form.Days
	}
	if ov.Form.Budget != nil {
		cfg.Form.Budget = *ov.Form.Budget
	}
	if ov.Form.People != nil {
		cfg.Form.People = *ov.Form.People
	}
	if len(ov.Form.Preferences) > 0 {
		cfg.Form.Preferences = ov.Form.Preferences
	}
	if ov.Map.DefaultLat != nil {
		cfg.Map.DefaultLat = *ov.Map.DefaultLat
	}
	if ov.Map.DefaultLon != nil {
		cfg.Map.DefaultLon = *ov.Map.DefaultLon
	}
	if ov.AI.Model != "" {
		cfg.AI.Model = ov.AI.Model
	}
	return nil
}
