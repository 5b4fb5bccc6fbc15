package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/k11v/mortar/internal/buildqueue"
	"github.com/k11v/mortar/internal/buildqueue/buildqueueamqp"
	"github.com/k11v/mortar/internal/buildqueue/buildqueuepg"
	"github.com/k11v/mortar/internal/postgresutil"
	"github.com/k11v/mortar/internal/server"
)

func main() {
	run := func() int {
		ctx := context.Background()
		log := slog.Default()

		cfg, err := parseConfig(os.Environ())
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}

		db, err := postgresutil.NewPool(ctx, &cfg.Postgres)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer db.Close()

		queue := buildqueuepg.NewQueue(db)
		dispatcher := buildqueue.NewDispatcher(cfg.queueWorkers())
		defer dispatcher.Close()
		broker := buildqueueamqp.NewBroker(&cfg.AMQP)

		srv := server.New(&cfg.Server, log, db, queue, dispatcher, broker, cfg.Development)

		log.Info("starting server", "addr", srv.Addr)
		err = srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}

		return 0
	}
	os.Exit(run())
}
