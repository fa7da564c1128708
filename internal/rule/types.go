package rule

// Config holds the policy parameters for one evaluation run. It is a plain
// value constructed once before evaluation; copy it, do not share pointers.
type Config struct {
	BanRepositories       bool // Whether to ban release repositories
	BanPluginRepositories bool // Whether to ban plugin repositories

	AllowedRepositories       []string // Release repository ids exempt from the ban
	AllowedPluginRepositories []string // Plugin repository ids exempt from the ban

	AllowSnapshotRepositories       bool // Tolerate release repositories that only resolve snapshots
	AllowSnapshotPluginRepositories bool // Tolerate plugin repositories that only resolve snapshots

	Message string // Optional free text appended to the diagnostic
}

// DefaultConfig returns the default policy: both categories banned, no
// exemptions, no snapshot tolerance.
func DefaultConfig() Config {
	return Config{
		BanRepositories:       true,
		BanPluginRepositories: true,
	}
}

// Category tags which repository list a violation came from.
type Category string

const (
	CategoryRepositories       Category = "repositories"
	CategoryPluginRepositories Category = "plugin repositories"
)

// Violation records the banned repositories one configuration declares in
// one category.
type Violation struct {
	GroupID    string   `json:"groupId"`
	ArtifactID string   `json:"artifactId"`
	Version    string   `json:"version"`
	Category   Category `json:"category"`
	BannedIDs  []string `json:"bannedIds"`
}

// Result contains the full evaluation result for one chain.
type Result struct {
	Passed     bool        `json:"passed"`
	Violations []Violation `json:"violations"`
}
