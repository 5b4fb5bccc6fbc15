package release

import (
	"errors"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidVersion indicates a version specifier that is neither an alias,
// an exact version nor a version range.
var ErrInvalidVersion = errors.New("invalid version specifier")

// ReqVersion is a version specifier taken from a request path. It is the
// "latest" alias, an exact version, or a version range such as "0.1".
type ReqVersion struct {
	raw    string
	latest bool
	exact  *semver.Version
	rng    *semver.Constraints
}

// ParseReqVersion parses a version specifier.
//
// "latest" and exact versions are canonical forms. "", "*" and "newest" are
// aliases for the latest release and canonicalize to "latest". Anything else
// is tried as a version range and canonicalizes to the resolved version.
func ParseReqVersion(s string) (*ReqVersion, error) {
	switch s {
	case "latest", "", "*", "newest":
		return &ReqVersion{raw: s, latest: true}, nil
	}

	if v, err := semver.StrictNewVersion(s); err == nil {
		return &ReqVersion{raw: s, exact: v}, nil
	}

	if c, err := semver.NewConstraint(s); err == nil {
		return &ReqVersion{raw: s, rng: c}, nil
	}

	return nil, ErrInvalidVersion
}

// IsLatest reports whether the specifier asks for the latest release,
// via the canonical "latest" or one of its aliases.
func (v *ReqVersion) IsLatest() bool {
	return v.latest
}

// Canonical reports whether the specifier is already in canonical form,
// i.e. the literal "latest" or an exact version.
func (v *ReqVersion) Canonical() bool {
	return v.raw == "latest" || v.exact != nil
}

func (v *ReqVersion) String() string {
	return v.raw
}
