package docbuildpg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/k11v/mortar/internal/docbuild"
)

var _ docbuild.Database = (*Database)(nil)

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

// GetBuilds implements docbuild.Database.
//
// An empty result is not an error. Deciding whether the crate and version
// exist is the resolver's job.
func (d *Database) GetBuilds(ctx context.Context, params *docbuild.DatabaseGetBuildsParams) ([]*docbuild.Build, error) {
	query := `
		SELECT
			builds.id,
			builds.rustc_version,
			builds.docsrs_version,
			builds.build_status,
			builds.build_time,
			builds.errors
		FROM builds
		JOIN releases ON releases.id = builds.release_id
		JOIN crates ON crates.id = releases.crate_id
		WHERE
			crates.name = $1 AND
			releases.version = $2 AND
			builds.build_status <> 'in_progress'
		ORDER BY builds.id DESC
	`
	args := []any{params.Name, params.Version}

	rows, _ := d.db.Query(ctx, query, args...)
	builds, err := pgx.CollectRows(rows, rowToBuild)
	if err != nil {
		return nil, fmt.Errorf("get builds: %w", err)
	}

	return builds, nil
}
