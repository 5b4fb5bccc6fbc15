package docbuildpg

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/k11v/mortar/internal/docbuild"
	"github.com/k11v/mortar/internal/postgrestest"
	"github.com/k11v/mortar/internal/postgresutil"
)

func newDatabase(ctx context.Context, t testing.TB) (*Database, *pgxpool.Pool) {
	t.Helper()

	connectionString, teardown, err := postgrestest.Setup(ctx)
	if err != nil {
		t.Fatalf("didn't want %v", err)
	}
	t.Cleanup(func() {
		if err := teardown(); err != nil {
			t.Errorf("didn't want %v", err)
		}
	})

	pool, err := postgresutil.NewPool(ctx, &postgresutil.Config{ConnectionString: connectionString})
	if err != nil {
		t.Fatalf("didn't want %v", err)
	}
	t.Cleanup(pool.Close)

	return NewDatabase(pool), pool
}

func insertRelease(ctx context.Context, t testing.TB, pool *pgxpool.Pool, name, version string) int64 {
	t.Helper()

	var crateID int64
	err := pool.QueryRow(
		ctx,
		"INSERT INTO crates (name) VALUES ($1) ON CONFLICT (name) DO UPDATE SET name = excluded.name RETURNING id",
		name,
	).Scan(&crateID)
	if err != nil {
		t.Fatalf("didn't want %v", err)
	}

	var releaseID int64
	err = pool.QueryRow(
		ctx,
		"INSERT INTO releases (crate_id, version) VALUES ($1, $2) RETURNING id",
		crateID, version,
	).Scan(&releaseID)
	if err != nil {
		t.Fatalf("didn't want %v", err)
	}
	return releaseID
}

func insertBuild(ctx context.Context, t testing.TB, pool *pgxpool.Pool, releaseID int64, status string, buildTime time.Time) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(
		ctx,
		`INSERT INTO builds (release_id, rustc_version, docsrs_version, build_status, build_time)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		releaseID, "rustc 1.80.0", "docs.rs 1.0.0", status, buildTime,
	).Scan(&id)
	if err != nil {
		t.Fatalf("didn't want %v", err)
	}
	return id
}

func TestDatabase(t *testing.T) {
	t.Run("gets finished builds newest first", func(t *testing.T) {
		ctx := context.Background()
		database, pool := newDatabase(ctx, t)
		releaseID := insertRelease(ctx, t, pool, "aquarelle", "0.1.0")
		buildTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		firstID := insertBuild(ctx, t, pool, releaseID, "success", buildTime)
		secondID := insertBuild(ctx, t, pool, releaseID, "failure", buildTime.Add(time.Hour))
		insertBuild(ctx, t, pool, releaseID, "in_progress", buildTime.Add(2*time.Hour))

		builds, err := database.GetBuilds(ctx, &docbuild.DatabaseGetBuildsParams{Name: "aquarelle", Version: "0.1.0"})
		if err != nil {
			t.Fatalf("didn't want %v", err)
		}

		if got, want := len(builds), 2; got != want {
			t.Fatalf("got %d builds, want %d", got, want)
		}
		if got, want := builds[0].ID, secondID; got != want {
			t.Errorf("got %d, want %d", got, want)
		}
		if got, want := builds[0].Status, docbuild.StatusFailure; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := builds[1].ID, firstID; got != want {
			t.Errorf("got %d, want %d", got, want)
		}
		if got, want := builds[1].Status, docbuild.StatusSuccess; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("doesn't get builds of other releases", func(t *testing.T) {
		ctx := context.Background()
		database, pool := newDatabase(ctx, t)
		releaseID := insertRelease(ctx, t, pool, "aquarelle", "0.1.0")
		otherID := insertRelease(ctx, t, pool, "aquarelle", "0.2.0")
		insertBuild(ctx, t, pool, releaseID, "success", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		insertBuild(ctx, t, pool, otherID, "success", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

		builds, err := database.GetBuilds(ctx, &docbuild.DatabaseGetBuildsParams{Name: "aquarelle", Version: "0.2.0"})
		if err != nil {
			t.Fatalf("didn't want %v", err)
		}

		if got, want := len(builds), 1; got != want {
			t.Fatalf("got %d builds, want %d", got, want)
		}
	})

	t.Run("gets no builds for an unknown release", func(t *testing.T) {
		ctx := context.Background()
		database, _ := newDatabase(ctx, t)

		builds, err := database.GetBuilds(ctx, &docbuild.DatabaseGetBuildsParams{Name: "aquarelle", Version: "0.1.0"})
		if err != nil {
			t.Fatalf("didn't want %v", err)
		}

		if got, want := len(builds), 0; got != want {
			t.Fatalf("got %d builds, want %d", got, want)
		}
	})
}
