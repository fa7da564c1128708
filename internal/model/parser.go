package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// manifestFile represents the YAML chain manifest structure. A manifest is
// the serialized output of a host chain resolver: the project's own
// configuration first, then its ancestors in order.
type manifestFile struct {
	Models []modelEntry `yaml:"models"`
}

// modelEntry represents a single configuration in the manifest
type modelEntry struct {
	GroupID            string            `yaml:"groupId"`
	ArtifactID         string            `yaml:"artifactId"`
	Version            string            `yaml:"version"`
	Repositories       []repositoryEntry `yaml:"repositories,omitempty"`
	PluginRepositories []repositoryEntry `yaml:"pluginRepositories,omitempty"`
}

// repositoryEntry represents a declared repository in the manifest. The
// releases key is optional; leaving it out means the repository serves
// releases.
type repositoryEntry struct {
	ID       string `yaml:"id"`
	Releases *bool  `yaml:"releases"`
}

// ParseManifest parses YAML content into an ordered model chain.
func ParseManifest(content []byte) ([]Model, error) {
	var mf manifestFile
	if err := yaml.Unmarshal(content, &mf); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	models := make([]Model, 0, len(mf.Models))
	for i, entry := range mf.Models {
		if entry.GroupID == "" || entry.ArtifactID == "" || entry.Version == "" {
			return nil, fmt.Errorf("model at index %d: groupId, artifactId and version are required", i)
		}

		repos, err := parseRepositories(entry.Repositories)
		if err != nil {
			return nil, fmt.Errorf("model %s:%s: %w", entry.GroupID, entry.ArtifactID, err)
		}
		pluginRepos, err := parseRepositories(entry.PluginRepositories)
		if err != nil {
			return nil, fmt.Errorf("model %s:%s: %w", entry.GroupID, entry.ArtifactID, err)
		}

		models = append(models, Model{
			GroupID:            entry.GroupID,
			ArtifactID:         entry.ArtifactID,
			Version:            entry.Version,
			Repositories:       repos,
			PluginRepositories: pluginRepos,
		})
	}

	return models, nil
}

// parseRepositories converts manifest repository entries, mapping the
// optional releases key onto the tri-state policy.
func parseRepositories(entries []repositoryEntry) ([]Repository, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	repos := make([]Repository, 0, len(entries))
	for i, entry := range entries {
		if entry.ID == "" {
			return nil, fmt.Errorf("repository at index %d: missing required field 'id'", i)
		}

		policy := ReleasesDefault
		if entry.Releases != nil {
			if *entry.Releases {
				policy = ReleasesEnabled
			} else {
				policy = ReleasesDisabled
			}
		}

		repos = append(repos, Repository{ID: entry.ID, Releases: policy})
	}
	return repos, nil
}

// LoadManifest reads and parses a chain manifest from the given file path
func LoadManifest(path string) ([]Model, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read chain manifest: %w", err)
	}

	return ParseManifest(content)
}
