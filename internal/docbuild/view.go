package docbuild

import (
	"time"
)

// JSONBuild is a build in the public builds API. The API predates the
// in-progress status and the error log, so the status is collapsed into a
// boolean and the errors are never exposed.
type JSONBuild struct {
	ID            int64      `json:"id"`
	RustcVersion  *string    `json:"rustc_version"`
	DocsrsVersion *string    `json:"docsrs_version"`
	BuildStatus   bool       `json:"build_status"`
	BuildTime     *time.Time `json:"build_time"`
}

// JSONBuildsFromBuilds projects builds into the public API shape, preserving
// order.
func JSONBuildsFromBuilds(builds []*Build) []*JSONBuild {
	jsonBuilds := make([]*JSONBuild, 0, len(builds))
	for _, b := range builds {
		jsonBuilds = append(jsonBuilds, &JSONBuild{
			ID:            b.ID,
			RustcVersion:  b.RustcVersion,
			DocsrsVersion: b.DocsrsVersion,
			BuildStatus:   b.Status.IsSuccess(),
			BuildTime:     b.BuildTime,
		})
	}
	return jsonBuilds
}
