package testhelper

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/localcrm/internal/adapter/postgres"
)

const templateDB = "crm_template"

var (
	once    sync.Once
	initErr error
	baseDSN string // DSN without a database name, e.g. postgres://u:p@host:port
	admin   *pgxpool.Pool

	createMu sync.Mutex
	dbSeq    atomic.Int64
)

// SetupTestDB starts a shared PostgreSQL container (once for the entire test
// run), migrates a template database, and returns a pool connected to a
// fresh copy of that template. Every call gets its own empty database, so
// list queries can assert exact membership. The pool and the database are
// dropped via t.Cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := fmt.Sprintf("crm_test_%d", dbSeq.Add(1))

	createMu.Lock()
	_, err := admin.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s TEMPLATE %s", name, templateDB))
	createMu.Unlock()
	if err != nil {
		t.Fatalf("testhelper: create database %s: %v", name, err)
	}

	pool, err := pgxpool.New(ctx, dsnFor(name))
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		_, _ = admin.Exec(dropCtx, fmt.Sprintf("DROP DATABASE IF EXISTS %s WITH (FORCE)", name))
	})

	return pool
}

// DSN returns a connection string for a fresh migrated database, for code
// that opens its own pool (the CLI, the server wiring).
func DSN(t *testing.T) string {
	t.Helper()
	pool := SetupTestDB(t)
	dsn := pool.Config().ConnString()
	pool.Close()
	return dsn
}

func startContainerAndMigrate() error {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       templateDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return fmt.Errorf("get mapped port: %w", err)
	}

	baseDSN = fmt.Sprintf("postgres://testuser:testpass@%s:%s", host, port.Port())

	if err := migrateTemplate(ctx); err != nil {
		return err
	}

	admin, err = pgxpool.New(ctx, dsnFor("postgres"))
	if err != nil {
		return fmt.Errorf("connect admin database: %w", err)
	}
	return nil
}

// migrateTemplate applies the goose migrations to the template database and
// closes every connection to it; PostgreSQL refuses to copy a template that
// has active sessions.
func migrateTemplate(ctx context.Context) error {
	pool, err := pgxpool.New(ctx, dsnFor(templateDB))
	if err != nil {
		return fmt.Errorf("connect template database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping template database: %w", err)
	}

	migrator, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	if _, err := migrator.Up(ctx); err != nil {
		return err
	}
	return nil
}

func dsnFor(database string) string {
	return fmt.Sprintf("%s/%s?sslmode=disable", baseDSN, database)
}
