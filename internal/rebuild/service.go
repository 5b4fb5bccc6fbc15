package rebuild

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"

	"github.com/k11v/mortar/internal/buildqueue"
	"github.com/k11v/mortar/internal/release"
)

// ErrNotFound indicates a rebuild trigger for a crate and version that is
// not in the release catalog.
var ErrNotFound = errors.New("not found")

// AlreadyQueuedError indicates a rebuild trigger for a crate and version
// that already has a pending queue entry.
type AlreadyQueuedError struct {
	Name    string
	Version string
}

func (e *AlreadyQueuedError) Error() string {
	return fmt.Sprintf("crate %s %s already queued for rebuild", e.Name, e.Version)
}

// Service triggers rebuilds. Queue calls go through the dispatcher because
// the queue can block on queue-wide locks.
type Service struct {
	releases   release.Database       // required
	queue      buildqueue.Queue       // required
	dispatcher *buildqueue.Dispatcher // required
	broker     buildqueue.Broker      // optional
	log        *slog.Logger           // required
}

func NewService(releases release.Database, queue buildqueue.Queue, dispatcher *buildqueue.Dispatcher, broker buildqueue.Broker, log *slog.Logger) *Service {
	return &Service{
		releases:   releases,
		queue:      queue,
		dispatcher: dispatcher,
		broker:     broker,
		log:        log.With("component", "rebuild"),
	}
}

// Trigger queues a rebuild for the exact crate name and version. It returns
// ErrNotFound for an unknown or malformed target and AlreadyQueuedError when
// an equivalent rebuild is still pending.
//
// The pending check and the insert are two separate queue operations, so two
// concurrent triggers for the same pair can both pass the check. The queue's
// uniqueness constraint then fails the second insert, which also surfaces as
// AlreadyQueuedError.
func (s *Service) Trigger(ctx context.Context, name, version string) error {
	// Rebuilds take a raw exact version, not an alias.
	if _, err := semver.StrictNewVersion(version); err != nil {
		return ErrNotFound
	}

	exists, err := s.releases.ReleaseExists(ctx, &release.DatabaseReleaseExistsParams{
		Name:    name,
		Version: version,
	})
	if err != nil {
		return fmt.Errorf("trigger rebuild: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	var queued bool
	err = s.dispatcher.Do(ctx, func() error {
		var doErr error
		queued, doErr = s.queue.HasBuildQueued(ctx, &buildqueue.HasBuildQueuedParams{
			Name:    name,
			Version: version,
		})
		return doErr
	})
	if err != nil {
		return fmt.Errorf("trigger rebuild: %w", err)
	}
	if queued {
		return &AlreadyQueuedError{Name: name, Version: version}
	}

	err = s.dispatcher.Do(ctx, func() error {
		return s.queue.AddCrate(ctx, &buildqueue.AddCrateParams{
			Name:     name,
			Version:  version,
			Priority: buildqueue.TriggeredRebuildPriority,
		})
	})
	if errors.Is(err, buildqueue.ErrDuplicate) {
		return &AlreadyQueuedError{Name: name, Version: version}
	} else if err != nil {
		return fmt.Errorf("trigger rebuild: %w", err)
	}

	if s.broker != nil {
		err = s.broker.SendBuildTask(ctx, &buildqueue.Task{
			Name:     name,
			Version:  version,
			Priority: buildqueue.TriggeredRebuildPriority,
		})
		if err != nil {
			// The queue row is the source of truth; workers poll it
			// regardless of announcements.
			s.log.Warn("failed to announce queued build", "crate", name, "version", version, "error", err)
		}
	}

	s.log.Info("queued rebuild", "crate", name, "version", version)
	return nil
}
