package buildqueuepg

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

func rowToBool(collectableRow pgx.CollectableRow) (bool, error) {
	collectedRow, err := pgx.RowToStructByPos[struct{ X bool }](collectableRow)
	if err != nil {
		return false, fmt.Errorf("row to bool: %w", err)
	}
	return collectedRow.X, nil
}

func rowToInt(collectableRow pgx.CollectableRow) (int, error) {
	collectedRow, err := pgx.RowToStructByPos[struct{ X int }](collectableRow)
	if err != nil {
		return 0, fmt.Errorf("row to int: %w", err)
	}
	return collectedRow.X, nil
}
