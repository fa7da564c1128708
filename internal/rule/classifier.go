package rule

import "github.com/lkwg82/enforcer-rules/internal/model"

// FindBannedRepositories returns the ids of the declarations in repos that
// the policy bans, in input order. A declaration is banned when its id is
// not allow-listed and it serves releases; with allowSnapshots set, a
// declaration that has releases explicitly disabled only resolves snapshots
// and is tolerated. Whether snapshots are enabled on the declaration is
// never consulted: a repository enabled for nothing at all resolves nothing
// and is still harmless only under snapshot tolerance.
func FindBannedRepositories(repos []model.Repository, allowed map[string]bool, allowSnapshots bool) []string {
	var banned []string
	for _, r := range repos {
		if allowed[r.ID] {
			continue
		}
		if allowSnapshots && !r.Releases.Serves() {
			continue
		}
		banned = append(banned, r.ID)
	}
	return banned
}

// allowSet builds the membership set for an allow-list.
func allowSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
