package release

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type Crate struct {
	ID   int64
	Name string
}

type Release struct {
	ID      int64
	CrateID int64
	Version string
}

type Database interface {
	// GetCrate matches the crate name case-insensitively and returns the
	// crate with its stored spelling. It returns ErrNotFound if no crate
	// matches.
	GetCrate(ctx context.Context, params *DatabaseGetCrateParams) (*Crate, error)

	// GetReleases returns all releases of the crate.
	GetReleases(ctx context.Context, params *DatabaseGetReleasesParams) ([]*Release, error)

	// ReleaseExists reports whether the exact crate name and version pair
	// is in the catalog. Unlike GetCrate, the name is matched exactly.
	ReleaseExists(ctx context.Context, params *DatabaseReleaseExistsParams) (bool, error)
}

type DatabaseGetCrateParams struct {
	Name string
}

type DatabaseGetReleasesParams struct {
	CrateID int64
}

type DatabaseReleaseExistsParams struct {
	Name    string
	Version string
}
