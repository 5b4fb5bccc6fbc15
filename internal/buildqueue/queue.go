package buildqueue

import (
	"context"
	"errors"
)

// ErrDuplicate indicates an AddCrate for a name and version that already has
// a pending queue entry.
var ErrDuplicate = errors.New("duplicate queue entry")

// TriggeredRebuildPriority is the priority of externally-triggered rebuilds.
// Lower values are more urgent; organic builds use 0, so a small positive
// value keeps triggered rebuilds behind fresh releases.
const TriggeredRebuildPriority = 5

// Queue is the shared build queue. Its operations can block on queue-wide
// locks, so request handlers must call it through a Dispatcher instead of
// directly.
type Queue interface {
	HasBuildQueued(ctx context.Context, params *HasBuildQueuedParams) (bool, error)
	AddCrate(ctx context.Context, params *AddCrateParams) error
	PendingCount(ctx context.Context) (int, error)
}

type HasBuildQueuedParams struct {
	Name    string
	Version string
}

type AddCrateParams struct {
	Name     string
	Version  string
	Priority int

	// Registry is the origin registry, empty for crates.io.
	Registry string
}
