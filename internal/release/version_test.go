package release

import (
	"errors"
	"testing"
)

func TestParseReqVersion(t *testing.T) {
	t.Run("parses the canonical latest", func(t *testing.T) {
		v, err := ParseReqVersion("latest")
		if err != nil {
			t.Fatalf("didn't want %v", err)
		}
		if !v.IsLatest() {
			t.Errorf("got IsLatest false")
		}
		if !v.Canonical() {
			t.Errorf("got Canonical false")
		}
	})

	t.Run("parses latest aliases as non-canonical", func(t *testing.T) {
		for _, s := range []string{"", "*", "newest"} {
			v, err := ParseReqVersion(s)
			if err != nil {
				t.Fatalf("%q: didn't want %v", s, err)
			}
			if !v.IsLatest() {
				t.Errorf("%q: got IsLatest false", s)
			}
			if v.Canonical() {
				t.Errorf("%q: got Canonical true", s)
			}
		}
	})

	t.Run("parses an exact version as canonical", func(t *testing.T) {
		v, err := ParseReqVersion("0.1.0")
		if err != nil {
			t.Fatalf("didn't want %v", err)
		}
		if v.IsLatest() {
			t.Errorf("got IsLatest true")
		}
		if !v.Canonical() {
			t.Errorf("got Canonical false")
		}
		if got, want := v.String(), "0.1.0"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("parses a range as non-canonical", func(t *testing.T) {
		v, err := ParseReqVersion("0.1")
		if err != nil {
			t.Fatalf("didn't want %v", err)
		}
		if v.IsLatest() {
			t.Errorf("got IsLatest true")
		}
		if v.Canonical() {
			t.Errorf("got Canonical true")
		}
	})

	t.Run("doesn't parse garbage", func(t *testing.T) {
		_, err := ParseReqVersion("not a version")
		if !errors.Is(err, ErrInvalidVersion) {
			t.Fatalf("got %v, want %v", err, ErrInvalidVersion)
		}
	})
}
