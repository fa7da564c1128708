package rule

import "github.com/lkwg82/enforcer-rules/internal/model"

// Evaluate checks every configuration in the chain against the policy.
// Returns Result with all violations (does not short-circuit): both
// categories are checked independently for every model, and the whole
// chain is always visited so the diagnostic covers the complete set.
// Pure function over its inputs; the chain is never mutated.
func Evaluate(chain []model.Model, cfg Config) Result {
	result := Result{
		Passed:     true,
		Violations: []Violation{},
	}

	allowed := allowSet(cfg.AllowedRepositories)
	allowedPlugin := allowSet(cfg.AllowedPluginRepositories)

	for _, m := range chain {
		if cfg.BanRepositories && len(m.Repositories) > 0 {
			banned := FindBannedRepositories(m.Repositories, allowed, cfg.AllowSnapshotRepositories)
			if len(banned) > 0 {
				result.Violations = append(result.Violations, violation(m, CategoryRepositories, banned))
				result.Passed = false
			}
		}

		if cfg.BanPluginRepositories && len(m.PluginRepositories) > 0 {
			banned := FindBannedRepositories(m.PluginRepositories, allowedPlugin, cfg.AllowSnapshotPluginRepositories)
			if len(banned) > 0 {
				result.Violations = append(result.Violations, violation(m, CategoryPluginRepositories, banned))
				result.Passed = false
			}
		}
	}

	return result
}

func violation(m model.Model, category Category, banned []string) Violation {
	return Violation{
		GroupID:    m.GroupID,
		ArtifactID: m.ArtifactID,
		Version:    m.Version,
		Category:   category,
		BannedIDs:  banned,
	}
}
