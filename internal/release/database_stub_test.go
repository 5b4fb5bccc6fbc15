package release

import (
	"context"
	"strings"
)

type StubDatabase struct {
	Crates   []*Crate
	Releases []*Release
}

func (d *StubDatabase) GetCrate(ctx context.Context, params *DatabaseGetCrateParams) (*Crate, error) {
	for _, c := range d.Crates {
		if strings.EqualFold(c.Name, params.Name) {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (d *StubDatabase) GetReleases(ctx context.Context, params *DatabaseGetReleasesParams) ([]*Release, error) {
	var releases []*Release
	for _, rel := range d.Releases {
		if rel.CrateID == params.CrateID {
			releases = append(releases, rel)
		}
	}
	return releases, nil
}

func (d *StubDatabase) ReleaseExists(ctx context.Context, params *DatabaseReleaseExistsParams) (bool, error) {
	for _, c := range d.Crates {
		if c.Name != params.Name {
			continue
		}
		for _, rel := range d.Releases {
			if rel.CrateID == c.ID && rel.Version == params.Version {
				return true, nil
			}
		}
	}
	return false, nil
}
