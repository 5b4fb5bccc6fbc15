package postgrestest

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/k11v/mortar/internal/apppg"
)

// Setup starts a disposable Postgres container and applies the schema
// migrations. The returned teardown terminates the container.
func Setup(ctx context.Context) (connectionString string, teardown func() error, err error) {
	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:16-alpine",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "postgres",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	}

	c, err := testcontainers.GenericContainer(ctx, req)
	if err != nil {
		return "", nil, err
	}
	teardown = func() error {
		return c.Terminate(context.Background())
	}

	endpoint, err := c.PortEndpoint(ctx, nat.Port("5432/tcp"), "")
	if err != nil {
		_ = teardown()
		return "", nil, err
	}
	connectionString = fmt.Sprintf("postgres://postgres:postgres@%s/postgres?sslmode=disable", endpoint)

	if err = apppg.Setup(connectionString); err != nil {
		_ = teardown()
		return "", nil, err
	}

	return connectionString, teardown, nil
}
