package testutils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgresForIntegration provides a Postgres instance for integration
// tests. When TEST_DB_DSN-style env overrides are present (TEST_DB_HOST) the
// external database is used; otherwise a throwaway container is started.
// It exports DB_* env vars for config.LoadConfig and returns a cleanup func.
func SetupPostgresForIntegration() func() {
	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		_ = os.Setenv("DB_HOST", host)
		_ = os.Setenv("DB_PORT", getEnvOrDefault("TEST_DB_PORT", "5432"))
		_ = os.Setenv("DB_USER", getEnvOrDefault("TEST_DB_USER", "postgres"))
		_ = os.Setenv("DB_PASSWORD", getEnvOrDefault("TEST_DB_PASSWORD", "postgres"))
		_ = os.Setenv("DB_NAME", getEnvOrDefault("TEST_DB_NAME", "agily_test"))
		return func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "agily_test",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	_ = os.Setenv("DB_HOST", host)
	_ = os.Setenv("DB_PORT", port.Port())
	_ = os.Setenv("DB_USER", "test")
	_ = os.Setenv("DB_PASSWORD", "test")
	_ = os.Setenv("DB_NAME", "agily_test")

	fmt.Printf("postgres container ready at %s:%s\n", host, port.Port())

	return func() {
		_ = pg.Terminate(ctx)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
