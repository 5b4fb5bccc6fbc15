package main

import (
	"github.com/caarlos0/env/v11"

	"github.com/k11v/mortar/internal/amqputil"
	"github.com/k11v/mortar/internal/postgresutil"
	"github.com/k11v/mortar/internal/server"
)

// config holds the application configuration.
type config struct {
	Development  bool                `env:"MORTAR_DEVELOPMENT"`
	QueueWorkers int                 `env:"MORTAR_QUEUE_WORKERS"` // default: 4
	Postgres     postgresutil.Config `envPrefix:"MORTAR_POSTGRES_"`
	AMQP         amqputil.Config     `envPrefix:"MORTAR_AMQP_"`
	Server       server.Config       `envPrefix:"MORTAR_SERVER_"`
}

func (c *config) queueWorkers() int {
	w := c.QueueWorkers
	if w == 0 {
		w = 4
	}
	return w
}

// parseConfig parses the application configuration from the environment variables.
func parseConfig(environ []string) (*config, error) {
	var cfg config

	err := env.ParseWithOptions(&cfg, env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
