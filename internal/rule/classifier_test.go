package rule

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/lkwg82/enforcer-rules/internal/model"
)

// genRepository generates arbitrary repository declarations covering all
// three release-policy states.
func genRepository() gopter.Gen {
	return gen.Struct(reflect.TypeOf(model.Repository{}), map[string]gopter.Gen{
		"ID":       gen.Identifier(),
		"Releases": gen.OneConstOf(model.ReleasesDefault, model.ReleasesEnabled, model.ReleasesDisabled),
	})
}

func genRepositories() gopter.Gen {
	return gen.SliceOf(genRepository())
}

// Allow-listed declarations are never banned, whatever the snapshot flag
// or release policy says.
func TestFindBannedRepositories_AllowedNeverBanned_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("allow-listing every id yields no banned repos", prop.ForAll(
		func(repos []model.Repository, allowSnapshots bool) bool {
			allowed := make(map[string]bool, len(repos))
			for _, r := range repos {
				allowed[r.ID] = true
			}

			banned := FindBannedRepositories(repos, allowed, allowSnapshots)
			if len(banned) != 0 {
				t.Logf("allow-listed repos banned: %v", banned)
				return false
			}
			return true
		},
		genRepositories(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Without snapshot tolerance, every declaration off the allow-list is
// banned regardless of its release policy.
func TestFindBannedRepositories_NoTolerance_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("empty allow-list without tolerance bans everything in order", prop.ForAll(
		func(repos []model.Repository) bool {
			banned := FindBannedRepositories(repos, map[string]bool{}, false)

			if len(banned) != len(repos) {
				t.Logf("want %d banned, got %d", len(repos), len(banned))
				return false
			}
			for i, r := range repos {
				if banned[i] != r.ID {
					t.Logf("order not preserved at %d: want %q, got %q", i, r.ID, banned[i])
					return false
				}
			}
			return true
		},
		genRepositories(),
	))

	properties.TestingRun(t)
}

// With snapshot tolerance, exactly the declarations with releases
// explicitly disabled are spared; unspecified still behaves as enabled.
func TestFindBannedRepositories_SnapshotTolerance_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("tolerance spares only releases-disabled declarations", prop.ForAll(
		func(repos []model.Repository) bool {
			banned := FindBannedRepositories(repos, map[string]bool{}, true)

			var want []string
			for _, r := range repos {
				if r.Releases != model.ReleasesDisabled {
					want = append(want, r.ID)
				}
			}

			if len(banned) != len(want) {
				t.Logf("want banned %v, got %v", want, banned)
				return false
			}
			for i := range want {
				if banned[i] != want[i] {
					t.Logf("order not preserved: want %v, got %v", want, banned)
					return false
				}
			}
			return true
		},
		genRepositories(),
	))

	properties.TestingRun(t)
}

func TestFindBannedRepositories(t *testing.T) {
	tests := []struct {
		name           string
		repos          []model.Repository
		allowed        []string
		allowSnapshots bool
		want           []string
	}{
		{
			name:  "unspecified releases is banned by default",
			repos: []model.Repository{{ID: "central2"}},
			want:  []string{"central2"},
		},
		{
			name:    "allow-listed id passes",
			repos:   []model.Repository{{ID: "central2"}},
			allowed: []string{"central2"},
			want:    nil,
		},
		{
			name:           "snapshot-only repo tolerated",
			repos:          []model.Repository{{ID: "snap-repo", Releases: model.ReleasesDisabled}},
			allowSnapshots: true,
			want:           nil,
		},
		{
			name:           "explicitly enabled releases still banned under tolerance",
			repos:          []model.Repository{{ID: "release-repo", Releases: model.ReleasesEnabled}},
			allowSnapshots: true,
			want:           []string{"release-repo"},
		},
		{
			name:           "unspecified releases still banned under tolerance",
			repos:          []model.Repository{{ID: "default-repo"}},
			allowSnapshots: true,
			want:           []string{"default-repo"},
		},
		{
			name: "mixed list keeps input order and duplicates",
			repos: []model.Repository{
				{ID: "a"},
				{ID: "allowed-repo"},
				{ID: "b", Releases: model.ReleasesEnabled},
				{ID: "a"},
			},
			allowed: []string{"allowed-repo"},
			want:    []string{"a", "b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindBannedRepositories(tt.repos, allowSet(tt.allowed), tt.allowSnapshots)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindBannedRepositories() = %v, want %v", got, tt.want)
			}
		})
	}
}
