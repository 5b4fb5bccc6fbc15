package docbuild

import (
	"time"
)

// Build is one documentation compilation attempt for a crate release.
// Ids are assigned in build-submission order, so a higher id means a more
// recent attempt.
type Build struct {
	ID            int64
	RustcVersion  *string
	DocsrsVersion *string
	Status        Status
	BuildTime     *time.Time
	Errors        *string
}

// Status represents the build status as a string.
type Status string

const (
	StatusSuccess    Status = "success"
	StatusFailure    Status = "failure"
	StatusInProgress Status = "in_progress"
)

var statuses = map[Status]struct{}{
	StatusSuccess:    {},
	StatusFailure:    {},
	StatusInProgress: {},
}

// StatusFromString converts a string to a Status and checks if it is a known
// status. It returns the Status and a boolean indicating whether the status
// is known.
func StatusFromString(s string) (status Status, known bool) {
	status = Status(s)
	_, known = statuses[status]
	return status, known
}

// IsSuccess reports whether the attempt completed successfully.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}
