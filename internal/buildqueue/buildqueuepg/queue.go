package buildqueuepg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/k11v/mortar/internal/buildqueue"
)

var _ buildqueue.Queue = (*Queue)(nil)

// Querier is implemented by pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

type Queue struct {
	db Querier // required
}

func NewQueue(db Querier) *Queue {
	return &Queue{db: db}
}

// HasBuildQueued implements buildqueue.Queue.
func (q *Queue) HasBuildQueued(ctx context.Context, params *buildqueue.HasBuildQueuedParams) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM queue
			WHERE name = $1 AND version = $2
		)
	`
	args := []any{params.Name, params.Version}

	rows, _ := q.db.Query(ctx, query, args...)
	queued, err := pgx.CollectExactlyOneRow(rows, rowToBool)
	if err != nil {
		return false, fmt.Errorf("has build queued: %w", err)
	}

	return queued, nil
}

// AddCrate implements buildqueue.Queue. The queue table has a unique index
// on (name, version), so a concurrent duplicate insert loses and surfaces
// as buildqueue.ErrDuplicate even when it passed the pre-check.
func (q *Queue) AddCrate(ctx context.Context, params *buildqueue.AddCrateParams) error {
	query := `
		INSERT INTO queue (name, version, priority, registry)
		VALUES ($1, $2, $3, NULLIF($4, ''))
	`
	args := []any{params.Name, params.Version, params.Priority, params.Registry}

	_, err := q.db.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return buildqueue.ErrDuplicate
		}
		return fmt.Errorf("add crate: %w", err)
	}

	return nil
}

// PendingCount implements buildqueue.Queue.
func (q *Queue) PendingCount(ctx context.Context) (int, error) {
	query := `
		SELECT count(*)::int
		FROM queue
	`

	rows, _ := q.db.Query(ctx, query)
	count, err := pgx.CollectExactlyOneRow(rows, rowToInt)
	if err != nil {
		return 0, fmt.Errorf("pending count: %w", err)
	}

	return count, nil
}
