package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer

	runPostgresContainer = func(ctx context.Context) (*postgres.PostgresContainer, error) {
		return postgres.Run(ctx,
			"pgvector/pgvector:pg17",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
	}
)

// TestMain sets up the PostgreSQL test database before running tests.
// When neither TEST_DB_HOST nor docker is available the PostgreSQL suite is skipped
// and the SQLite suite still runs.
func TestMain(m *testing.M) {
	ctx := context.Background()

	dsn, err := postgresTestDSN(ctx)
	if err != nil {
		fmt.Printf("PostgreSQL unavailable, skipping PostgreSQL store tests: %v\n", err)
	} else {
		testDB, err = Open(OpenConfig{Driver: DriverPostgres, DSN: dsn})
		if err == nil {
			err = Migrate(ctx, testDB)
		}
		if err != nil {
			fmt.Printf("Failed to initialize PostgreSQL test database: %v\n", err)
			testDB = nil
		}
	}

	code := m.Run()

	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// postgresTestDSN returns the DSN of an external database (for CI or local development)
// or starts a pgvector-enabled container
func postgresTestDSN(ctx context.Context) (string, error) {
	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost != "" {
		dbPort := envOr("TEST_DB_PORT", "5432")
		dbUser := envOr("TEST_DB_USER", "postgres")
		dbPassword := envOr("TEST_DB_PASSWORD", "postgres")
		dbName := envOr("TEST_DB_NAME", "test_db")

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName), nil
	}

	var err error
	pgContainer, err = startPostgresContainer(ctx)
	if err != nil {
		pgContainer = nil
		return "", fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("failed to get connection string: %w", err)
	}

	fmt.Printf("Started PostgreSQL container\n")
	return dsn, nil
}

// startPostgresContainer turns a panic from docker host discovery into an error
func startPostgresContainer(ctx context.Context) (c *postgres.PostgresContainer, err error) {
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("docker unavailable: %v", r)
		}
	}()
	return runPostgresContainer(ctx)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// initPGTestDB wraps each test in a transaction that is rolled back on cleanup
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewStore(tx)
}

// cleanupPGTestDB is a no-op, the rollback in t.Cleanup restores state
func cleanupPGTestDB(t *testing.T) {}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if testDB == nil {
		t.Skip("PostgreSQL test database not available")
	}

	RunStoreTests(t, initPGTestDB, cleanupPGTestDB)
}

func TestPostgresTestDSN_DockerPanicBecomesError(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "")

	prevRun, prevContainer := runPostgresContainer, pgContainer
	t.Cleanup(func() {
		runPostgresContainer, pgContainer = prevRun, prevContainer
	})
	runPostgresContainer = func(context.Context) (*postgres.PostgresContainer, error) {
		panic("rootless Docker not found")
	}

	dsn, err := postgresTestDSN(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rootless Docker not found")
	assert.Empty(t, dsn)
	assert.Nil(t, pgContainer)
}
