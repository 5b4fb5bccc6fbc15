package docbuild

import (
	"encoding/json"
	"testing"
	"time"
)

func stringPtr(s string) *string { return &s }

func TestJSONBuildsFromBuilds(t *testing.T) {
	t.Run("collapses the status into a boolean", func(t *testing.T) {
		builds := []*Build{
			{ID: 2, Status: StatusFailure},
			{ID: 1, Status: StatusSuccess},
		}

		jsonBuilds := JSONBuildsFromBuilds(builds)

		if got, want := len(jsonBuilds), 2; got != want {
			t.Fatalf("got %d builds, want %d", got, want)
		}
		if jsonBuilds[0].BuildStatus {
			t.Errorf("got build_status true for a failure")
		}
		if !jsonBuilds[1].BuildStatus {
			t.Errorf("got build_status false for a success")
		}
	})

	t.Run("preserves order and metadata", func(t *testing.T) {
		buildTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		builds := []*Build{
			{ID: 3, RustcVersion: stringPtr("rustc (blabla 2021-01-01)"), DocsrsVersion: stringPtr("docs.rs 3.0.0"), Status: StatusSuccess, BuildTime: &buildTime},
			{ID: 1, RustcVersion: stringPtr("rustc (blabla 2019-01-01)"), DocsrsVersion: stringPtr("docs.rs 1.0.0"), Status: StatusSuccess, BuildTime: &buildTime},
		}

		jsonBuilds := JSONBuildsFromBuilds(builds)

		if got, want := jsonBuilds[0].ID, int64(3); got != want {
			t.Errorf("got id %d, want %d", got, want)
		}
		if got, want := jsonBuilds[1].ID, int64(1); got != want {
			t.Errorf("got id %d, want %d", got, want)
		}
		if got, want := *jsonBuilds[0].RustcVersion, "rustc (blabla 2021-01-01)"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if got, want := *jsonBuilds[0].DocsrsVersion, "docs.rs 3.0.0"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("never exposes the error log", func(t *testing.T) {
		builds := []*Build{
			{ID: 1, Status: StatusFailure, Errors: stringPtr("everything is on fire")},
		}

		body, err := json.Marshal(JSONBuildsFromBuilds(builds))
		if err != nil {
			t.Fatalf("didn't want %v", err)
		}

		var decoded []map[string]any
		if err := json.Unmarshal(body, &decoded); err != nil {
			t.Fatalf("didn't want %v", err)
		}
		if _, ok := decoded[0]["errors"]; ok {
			t.Errorf("got an errors field")
		}
		if _, ok := decoded[0]["build_status"]; !ok {
			t.Errorf("missing build_status field")
		}
	})
}
