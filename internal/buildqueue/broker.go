package buildqueue

import (
	"context"
)

// Task is a queued build announced to workers.
type Task struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Priority int    `json:"priority"`
}

// Broker announces queued builds so workers can wake without polling the
// queue table. The queue row is the source of truth; a lost announcement
// only delays pickup until the next poll.
type Broker interface {
	SendBuildTask(ctx context.Context, t *Task) error
}
