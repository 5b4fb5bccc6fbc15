package releasepg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/k11v/mortar/internal/release"
)

var _ release.Database = (*Database)(nil)

// Querier is implemented by pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

type Database struct {
	db Querier // required
}

func NewDatabase(db Querier) *Database {
	return &Database{db: db}
}

// GetCrate implements release.Database.
func (d *Database) GetCrate(ctx context.Context, params *release.DatabaseGetCrateParams) (*release.Crate, error) {
	query := `
		SELECT id, name
		FROM crates
		WHERE lower(name) = lower($1)
	`
	args := []any{params.Name}

	rows, _ := d.db.Query(ctx, query, args...)
	c, err := pgx.CollectExactlyOneRow(rows, rowToCrate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, release.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get crate: %w", err)
	}

	return c, nil
}

// GetReleases implements release.Database.
func (d *Database) GetReleases(ctx context.Context, params *release.DatabaseGetReleasesParams) ([]*release.Release, error) {
	query := `
		SELECT id, crate_id, version
		FROM releases
		WHERE crate_id = $1
	`
	args := []any{params.CrateID}

	rows, _ := d.db.Query(ctx, query, args...)
	releases, err := pgx.CollectRows(rows, rowToRelease)
	if err != nil {
		return nil, fmt.Errorf("get releases: %w", err)
	}

	return releases, nil
}

// ReleaseExists implements release.Database.
func (d *Database) ReleaseExists(ctx context.Context, params *release.DatabaseReleaseExistsParams) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM releases
			JOIN crates ON crates.id = releases.crate_id
			WHERE crates.name = $1 AND releases.version = $2
		)
	`
	args := []any{params.Name, params.Version}

	rows, _ := d.db.Query(ctx, query, args...)
	exists, err := pgx.CollectExactlyOneRow(rows, rowToBool)
	if err != nil {
		return false, fmt.Errorf("release exists: %w", err)
	}

	return exists, nil
}
