package rule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// configFile represents the YAML rule-configuration structure. Boolean ban
// flags are pointers so an absent key keeps its default (banned) rather
// than silently turning the check off.
type configFile struct {
	BanRepositories                 *bool    `yaml:"banRepositories"`
	BanPluginRepositories           *bool    `yaml:"banPluginRepositories"`
	AllowedRepositories             []string `yaml:"allowedRepositories,omitempty"`
	AllowedPluginRepositories       []string `yaml:"allowedPluginRepositories,omitempty"`
	AllowSnapshotRepositories       bool     `yaml:"allowSnapshotRepositories"`
	AllowSnapshotPluginRepositories bool     `yaml:"allowSnapshotPluginRepositories"`
	Message                         string   `yaml:"message,omitempty"`
}

// ParseConfig parses YAML content into a Config, starting from defaults.
func ParseConfig(content []byte) (Config, error) {
	var cf configFile
	if err := yaml.Unmarshal(content, &cf); err != nil {
		return Config{}, fmt.Errorf("invalid YAML: %w", err)
	}

	cfg := DefaultConfig()
	if cf.BanRepositories != nil {
		cfg.BanRepositories = *cf.BanRepositories
	}
	if cf.BanPluginRepositories != nil {
		cfg.BanPluginRepositories = *cf.BanPluginRepositories
	}
	cfg.AllowedRepositories = cf.AllowedRepositories
	cfg.AllowedPluginRepositories = cf.AllowedPluginRepositories
	cfg.AllowSnapshotRepositories = cf.AllowSnapshotRepositories
	cfg.AllowSnapshotPluginRepositories = cf.AllowSnapshotPluginRepositories
	cfg.Message = cf.Message

	for i, id := range cfg.AllowedRepositories {
		if id == "" {
			return Config{}, fmt.Errorf("allowedRepositories entry at index %d is empty", i)
		}
	}
	for i, id := range cfg.AllowedPluginRepositories {
		if id == "" {
			return Config{}, fmt.Errorf("allowedPluginRepositories entry at index %d is empty", i)
		}
	}

	return cfg, nil
}

// LoadConfigFromPath reads and parses a rule configuration from the given
// file path
func LoadConfigFromPath(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("failed to read rule configuration: %w", err)
	}

	return ParseConfig(content)
}
