// Package resolver produces the flattened configuration chain the rule
// evaluates. Real build-tool hosts implement ChainResolver against their
// own model machinery; ManifestResolver reads a chain the host already
// wrote out.
package resolver

import (
	"fmt"

	"github.com/lkwg82/enforcer-rules/internal/model"
)

// ChainResolver returns the ordered configuration chain (self first, then
// ancestors) for a project identified by its coordinates. Inheritance and
// interpolation are the implementation's concern; the rule only consumes
// the result.
type ChainResolver interface {
	Resolve(groupID, artifactID, version, path string) ([]model.Model, error)
}

// ManifestResolver resolves a chain from a YAML manifest file. When all
// three coordinates are given, the manifest's first model must match them;
// a manifest written for a different project is a resolution failure, not
// a passing evaluation.
type ManifestResolver struct{}

// Resolve implements ChainResolver. Every failure comes back as a
// *ResolveError with the underlying message intact.
func (ManifestResolver) Resolve(groupID, artifactID, version, path string) ([]model.Model, error) {
	chain, err := model.LoadManifest(path)
	if err != nil {
		return nil, &ResolveError{Cause: err}
	}

	if len(chain) == 0 {
		return nil, &ResolveError{Cause: fmt.Errorf("chain manifest %s contains no models", path)}
	}

	if groupID != "" && artifactID != "" && version != "" {
		root := chain[0]
		if root.GroupID != groupID || root.ArtifactID != artifactID || root.Version != version {
			return nil, &ResolveError{Cause: fmt.Errorf("chain manifest %s resolves %s, expected %s:%s version:%s",
				path, root.Coordinates(), groupID, artifactID, version)}
		}
	}

	return chain, nil
}
