package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/dappsmith/conductor/ent"
	"github.com/dappsmith/conductor/ent/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	// Check if we're in CI with an external database
	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		// CI mode: use external PostgreSQL service container
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		// Local dev mode: use testcontainers
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		// Get connection string from container
		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	// Open database connection using pgx driver
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	// Configure connection pool for tests
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Create Ent driver from existing database connection
	drv := entsql.OpenDB(dialect.Postgres, db)

	// Create Ent client
	entClient := ent.NewClient(ent.Driver(drv))

	// Run migrations (auto-migration for tests)
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	// Create partial indexes
	err = CreatePartialIndexes(ctx, drv)
	require.NoError(t, err)

	// Wrap in our client type
	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestPartialIndexesCreated(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	for _, idx := range []struct {
		table string
		name  string
	}{
		{"jobs", "job_lock_expires_at_running"},
		{"projects", "project_deleted_at_set"},
	} {
		var found string
		err := client.DB().QueryRowContext(ctx,
			`SELECT indexname FROM pg_indexes WHERE tablename = $1 AND indexname = $2`,
			idx.table, idx.name,
		).Scan(&found)
		require.NoError(t, err, "index %s missing on %s", idx.name, idx.table)
		assert.Equal(t, idx.name, found)
	}
}

func TestProjectCascadeDelete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	project, err := client.Project.Create().
		SetID("proj_cascade").
		SetName("cascade test").
		SetDappURL("https://dapp.example.com").
		SetWalletAddress("0xabc").
		SetWalletSeedCipher("sealed").
		Save(ctx)
	require.NoError(t, err)

	rec, err := client.Recording.Create().
		SetID("rec_cascade").
		SetProjectID(project.ID).
		SetName("swap flow").
		SetRecordingType(recording.RecordingTypeFlow).
		SetActions([]map[string]interface{}{{"type": "click", "selector": "#swap"}}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Spec.Create().
		SetID("spec_cascade").
		SetRecordingID(rec.ID).
		SetCode("async function main() {}").
		Save(ctx)
	require.NoError(t, err)

	// Deleting the project must take recordings and specs with it.
	err = client.Project.DeleteOneID(project.ID).Exec(ctx)
	require.NoError(t, err)

	recCount, err := client.Recording.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, recCount)

	specCount, err := client.Spec.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, specCount)
}

func TestArtifactDedupeConstraint(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	project, err := client.Project.Create().
		SetID("proj_art").
		SetName("artifact test").
		SetDappURL("https://dapp.example.com").
		SetWalletAddress("0xabc").
		SetWalletSeedCipher("sealed").
		Save(ctx)
	require.NoError(t, err)

	rec, err := client.Recording.Create().
		SetID("rec_art").
		SetProjectID(project.ID).
		SetName("flow").
		SetRecordingType(recording.RecordingTypeFlow).
		SetActions([]map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	spec, err := client.Spec.Create().
		SetID("spec_art").
		SetRecordingID(rec.ID).
		SetCode("async function main() {}").
		Save(ctx)
	require.NoError(t, err)

	run, err := client.Run.Create().
		SetID("run_art").
		SetSpecID(spec.ID).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Artifact.Create().
		SetID("art_1").
		SetRunID(run.ID).
		SetArtifactType("screenshot").
		SetName("step-1.png").
		SetStoragePath("runs/run_art/screenshot/step-1.png").
		SetMimeType("image/png").
		Save(ctx)
	require.NoError(t, err)

	// Same (run, type, name) must be rejected.
	_, err = client.Artifact.Create().
		SetID("art_2").
		SetRunID(run.ID).
		SetArtifactType("screenshot").
		SetName("step-1.png").
		SetStoragePath("runs/run_art/screenshot/step-1.png").
		SetMimeType("image/png").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DATABASE_PASSWORD": "test",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "conductor", cfg.User)
				assert.Equal(t, "conductor", cfg.Database)
				assert.Equal(t, "disable", cfg.SSLMode)
			},
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DATABASE_HOST":           "db.example.com",
				"DATABASE_PORT":           "5433",
				"DATABASE_USER":           "admin",
				"DATABASE_PASSWORD":       "secret",
				"DATABASE_NAME":           "production",
				"DATABASE_SSLMODE":        "require",
				"DATABASE_MAX_OPEN_CONNS": "50",
				"DATABASE_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Equal(t, 20, cfg.MaxIdleConns)
			},
		},
		{
			name: "invalid port",
			envVars: map[string]string{
				"DATABASE_PORT": "not-a-port",
			},
			wantErr:     true,
			errContains: "invalid DATABASE_PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "conductor",
		Password: "s3cret",
		Database: "conductor",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Equal(t, "host=db.internal port=5433 user=conductor password=s3cret dbname=conductor sslmode=require", dsn)
}
