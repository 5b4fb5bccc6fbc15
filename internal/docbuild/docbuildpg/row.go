package docbuildpg

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/k11v/mortar/internal/docbuild"
)

type row struct {
	ID            int64      `db:"id"`
	RustcVersion  *string    `db:"rustc_version"`
	DocsrsVersion *string    `db:"docsrs_version"`
	BuildStatus   string     `db:"build_status"`
	BuildTime     *time.Time `db:"build_time"`
	Errors        *string    `db:"errors"`
}

func rowToBuild(collectableRow pgx.CollectableRow) (*docbuild.Build, error) {
	collectedRow, err := pgx.RowToStructByName[row](collectableRow)
	if err != nil {
		return nil, fmt.Errorf("row to build: %w", err)
	}

	status, known := docbuild.StatusFromString(collectedRow.BuildStatus)
	if !known {
		slog.Default().Warn(
			"unknown build status encountered",
			"status", collectedRow.BuildStatus,
			"build_id", collectedRow.ID,
		)
	}

	return &docbuild.Build{
		ID:            collectedRow.ID,
		RustcVersion:  collectedRow.RustcVersion,
		DocsrsVersion: collectedRow.DocsrsVersion,
		Status:        status,
		BuildTime:     collectedRow.BuildTime,
		Errors:        collectedRow.Errors,
	}, nil
}
