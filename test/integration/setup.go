package integration

import (
	"context"
	"testing"
	"time"

	"shopzone/internal/storage"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestBackend is a Postgres KV backend bound to a disposable container.
type TestBackend struct {
	Container *postgres.PostgresContainer
	KV        *storage.Postgres
	ConnStr   string
}

// SetupPostgresBackend starts a PostgreSQL test container and opens the
// key-value backend against it.
func SetupPostgresBackend(t *testing.T) *TestBackend {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	kv, err := storage.NewPostgres(ctx, connStr, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open postgres backend: %v", err)
	}

	t.Cleanup(func() {
		kv.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestBackend{
		Container: postgresContainer,
		KV:        kv,
		ConnStr:   connStr,
	}
}
