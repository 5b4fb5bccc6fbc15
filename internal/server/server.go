package server

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/k11v/mortar/internal/buildqueue"
	"github.com/k11v/mortar/internal/docbuild/docbuildpg"
	"github.com/k11v/mortar/internal/rebuild"
	"github.com/k11v/mortar/internal/release"
	"github.com/k11v/mortar/internal/release/releasepg"
)

// New returns a new HTTP server.
// It should be started with http.Server's ListenAndServe.
func New(cfg *Config, log *slog.Logger, db *pgxpool.Pool, queue buildqueue.Queue, dispatcher *buildqueue.Dispatcher, broker buildqueue.Broker, development bool) *http.Server {
	addr := net.JoinHostPort(cfg.host(), strconv.Itoa(cfg.port()))

	subLogger := log.With("component", "server")
	subLogLogger := slog.NewLogLogger(subLogger.Handler(), slog.LevelError)

	releases := releasepg.NewDatabase(db)
	h := newHandler(
		release.NewResolver(releases),
		docbuildpg.NewDatabase(db),
		rebuild.NewService(releases, queue, dispatcher, broker, log),
		&rebuild.Authorizer{Token: cfg.RebuildToken},
		subLogger,
		development,
	)

	return &http.Server{
		Addr:              addr,
		ErrorLog:          subLogLogger,
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
