package docbuild

import (
	"context"
)

type Database interface {
	// GetBuilds returns the build history for the exact crate name and
	// version, most recent attempt first. In-progress attempts are never
	// included.
	GetBuilds(ctx context.Context, params *DatabaseGetBuildsParams) ([]*Build, error)
}

type DatabaseGetBuildsParams struct {
	Name    string
	Version string
}
