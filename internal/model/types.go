package model

import "fmt"

// ReleasePolicy represents whether a repository declaration serves release
// artifacts. A declaration that says nothing about releases still serves
// them, so the unspecified state behaves as enabled.
type ReleasePolicy int

const (
	// ReleasesDefault means the declaration carries no explicit release
	// setting. Treated as enabled.
	ReleasesDefault ReleasePolicy = iota
	// ReleasesEnabled means releases are explicitly enabled.
	ReleasesEnabled
	// ReleasesDisabled means releases are explicitly disabled. A
	// declaration in this state only resolves snapshots.
	ReleasesDisabled
)

// Serves reports whether a repository with this policy serves release
// artifacts.
func (p ReleasePolicy) Serves() bool {
	return p != ReleasesDisabled
}

// String returns the policy name for diagnostics.
func (p ReleasePolicy) String() string {
	switch p {
	case ReleasesEnabled:
		return "enabled"
	case ReleasesDisabled:
		return "disabled"
	default:
		return "default"
	}
}

// Repository is one declared artifact-source entry in a configuration.
type Repository struct {
	ID       string        // Identifier used for allow-list matching
	Releases ReleasePolicy // Whether the entry serves release artifacts
}

// Model is one node in a project's configuration chain. The chain is
// supplied already flattened (self first, then ancestors); this package
// never resolves inheritance itself.
type Model struct {
	GroupID    string // Identity triple, for reporting
	ArtifactID string
	Version    string

	Repositories       []Repository // Release artifact sources
	PluginRepositories []Repository // Plugin artifact sources
}

// Coordinates renders the identity triple the way diagnostics print it.
func (m Model) Coordinates() string {
	return fmt.Sprintf("%s:%s version:%s", m.GroupID, m.ArtifactID, m.Version)
}
