package releasepg

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/k11v/mortar/internal/release"
)

type crateRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func rowToCrate(collectableRow pgx.CollectableRow) (*release.Crate, error) {
	collectedRow, err := pgx.RowToStructByName[crateRow](collectableRow)
	if err != nil {
		return nil, fmt.Errorf("row to crate: %w", err)
	}
	return &release.Crate{ID: collectedRow.ID, Name: collectedRow.Name}, nil
}

type releaseRow struct {
	ID      int64  `db:"id"`
	CrateID int64  `db:"crate_id"`
	Version string `db:"version"`
}

func rowToRelease(collectableRow pgx.CollectableRow) (*release.Release, error) {
	collectedRow, err := pgx.RowToStructByName[releaseRow](collectableRow)
	if err != nil {
		return nil, fmt.Errorf("row to release: %w", err)
	}
	return &release.Release{
		ID:      collectedRow.ID,
		CrateID: collectedRow.CrateID,
		Version: collectedRow.Version,
	}, nil
}

func rowToBool(collectableRow pgx.CollectableRow) (bool, error) {
	collectedRow, err := pgx.RowToStructByPos[struct{ X bool }](collectableRow)
	if err != nil {
		return false, fmt.Errorf("row to bool: %w", err)
	}
	return collectedRow.X, nil
}
