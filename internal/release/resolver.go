package release

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Resolver resolves a crate name and version specifier to an exact stored
// release.
type Resolver struct {
	db Database // required
}

func NewResolver(db Database) *Resolver {
	return &Resolver{db: db}
}

// Match is a resolved release.
type Match struct {
	// Name is the crate name as stored, which may differ in case from the
	// requested one.
	Name    string
	Version *semver.Version
	Req     *ReqVersion
}

// CanonicalSpecifier is the version path segment a request for this release
// should use.
func (m *Match) CanonicalSpecifier() string {
	if m.Req.IsLatest() {
		return "latest"
	}
	return m.Version.String()
}

// NeedsRedirect reports whether a request that used requestedName and the
// match's specifier must be redirected to its canonical path.
func (m *Match) NeedsRedirect(requestedName string) bool {
	return m.Name != requestedName || !m.Req.Canonical()
}

// Resolve matches the specifier against the crate's releases. It returns
// ErrNotFound if the crate is unknown or no release satisfies the specifier.
func (r *Resolver) Resolve(ctx context.Context, name string, req *ReqVersion) (*Match, error) {
	crate, err := r.db.GetCrate(ctx, &DatabaseGetCrateParams{Name: name})
	if err != nil {
		return nil, fmt.Errorf("resolve %q %q: %w", name, req, err)
	}

	releases, err := r.db.GetReleases(ctx, &DatabaseGetReleasesParams{CrateID: crate.ID})
	if err != nil {
		return nil, fmt.Errorf("resolve %q %q: %w", name, req, err)
	}

	versions := make([]*semver.Version, 0, len(releases))
	for _, rel := range releases {
		v, err := semver.StrictNewVersion(rel.Version)
		if err != nil {
			// Stored versions are written by the registry sync and should
			// always parse. Skip instead of failing the whole crate.
			continue
		}
		versions = append(versions, v)
	}

	var matched *semver.Version
	switch {
	case req.exact != nil:
		for _, v := range versions {
			if v.Equal(req.exact) {
				matched = v
				break
			}
		}
	case req.latest:
		matched = maxVersion(versions)
	case req.rng != nil:
		var satisfying []*semver.Version
		for _, v := range versions {
			if req.rng.Check(v) {
				satisfying = append(satisfying, v)
			}
		}
		matched = maxVersion(satisfying)
	}
	if matched == nil {
		return nil, fmt.Errorf("resolve %q %q: %w", name, req, ErrNotFound)
	}

	return &Match{Name: crate.Name, Version: matched, Req: req}, nil
}

// maxVersion picks the highest version, preferring stable releases over
// prereleases.
func maxVersion(versions []*semver.Version) *semver.Version {
	var maxStable, maxAny *semver.Version
	for _, v := range versions {
		if maxAny == nil || v.GreaterThan(maxAny) {
			maxAny = v
		}
		if v.Prerelease() == "" && (maxStable == nil || v.GreaterThan(maxStable)) {
			maxStable = v
		}
	}
	if maxStable != nil {
		return maxStable
	}
	return maxAny
}
