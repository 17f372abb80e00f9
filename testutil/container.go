package testutil

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DatabaseURLEnv names the variable holding the integration-test DSN.
	DatabaseURLEnv = "TEST_DATABASE_URL"

	// ContainerEnv, when set to "1" and DatabaseURLEnv is empty, makes
	// ResolveDSN start a throwaway Postgres container.
	ContainerEnv = "TEST_POSTGRES_CONTAINER"
)

// ResolveDSN works out which database a test binary should use, for TestMain.
//
// If TEST_DATABASE_URL is set it is returned unchanged. Otherwise, if
// TEST_POSTGRES_CONTAINER=1, a postgres:16-alpine container is started, its
// DSN is exported as TEST_DATABASE_URL so NewPool and NewSQLDB pick it up,
// and the returned stop func terminates it. With neither set, the DSN is
// empty and integration tests skip themselves.
func ResolveDSN(ctx context.Context) (dsn string, stop func(), err error) {
	noop := func() {}

	if dsn := os.Getenv(DatabaseURLEnv); dsn != "" {
		return dsn, noop, nil
	}
	if os.Getenv(ContainerEnv) != "1" {
		return "", noop, nil
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "worktracker",
			"POSTGRES_PASSWORD": "worktracker",
			"POSTGRES_DB":       "worktracker_test",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", noop, fmt.Errorf("testutil.ResolveDSN: start postgres: %w", err)
	}

	stop = func() {
		_ = container.Terminate(context.Background())
	}

	host, err := container.Host(ctx)
	if err != nil {
		stop()
		return "", noop, fmt.Errorf("testutil.ResolveDSN: host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		stop()
		return "", noop, fmt.Errorf("testutil.ResolveDSN: port: %w", err)
	}

	dsn = fmt.Sprintf("postgres://worktracker:worktracker@%s:%s/worktracker_test?sslmode=disable", host, port.Port())
	if err := os.Setenv(DatabaseURLEnv, dsn); err != nil {
		stop()
		return "", noop, fmt.Errorf("testutil.ResolveDSN: export dsn: %w", err)
	}
	return dsn, stop, nil
}
