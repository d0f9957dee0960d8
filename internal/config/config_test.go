package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/founder-scout/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadPipelineConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *PipelineConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  driver: postgres
  host: localhost
  port: 5433
  user: scout
  password: secret
  dbname: scout
  sslmode: require
scoring:
  weights:
    founder_quality: 0.2
    execution_velocity: 0.2
    market_conviction: 0.2
    early_traction: 0.2
    deal_availability: 0.2
anomaly:
  star_spike_min_gain: 30
  star_spike_max_base: 250
  forum_score_spike: 150
  dedup_windows:
    default: 12h
alerts:
  score_threshold: 80
  slack:
    webhook_url: "https://hooks.slack.com/services/T/B/X"
  smtp:
    host: smtp.example.com
    from: scout@example.com
    to: [partners@example.com, deals@example.com]
embedding:
  provider: openai
llm:
  naming_provider: anthropic
  anthropic_api_key: sk-ant
scheduler:
  interval: 30m
redis:
  addr: "localhost:6379"
nats:
  url: "nats://localhost:4222"
`,
			validate: func(t *testing.T, cfg *PipelineConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, DriverPostgres, cfg.Database.Driver)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.InDelta(t, 1.0, cfg.Scoring.Weights.Sum(), 1e-9)
				assert.Equal(t, 30, cfg.Anomaly.StarSpikeMinGain)
				assert.Equal(t, 250, cfg.Anomaly.StarSpikeMaxBase)
				assert.Equal(t, 150, cfg.Anomaly.ForumScoreSpike)
				assert.Equal(t, 12*time.Hour, cfg.Anomaly.DedupWindows.Default)
				assert.Equal(t, 80, cfg.Alerts.ScoreThreshold)
				assert.Equal(t, "https://hooks.slack.com/services/T/B/X", cfg.Alerts.Slack.WebhookURL)
				assert.Equal(t, []string{"partners@example.com", "deals@example.com"}, cfg.Alerts.SMTP.To)
				assert.Equal(t, EmbeddingProviderOpenAI, cfg.Embedding.Provider)
				assert.Equal(t, NamingProviderAnthropic, cfg.LLM.NamingProvider)
				assert.Equal(t, 30*time.Minute, cfg.Scheduler.Interval)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: scout
`,
			validate: func(t *testing.T, cfg *PipelineConfig) {
				assert.Equal(t, DriverPostgres, cfg.Database.Driver)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)

				assert.Equal(t, 0.30, cfg.Scoring.Weights.FounderQuality)
				assert.Equal(t, 0.25, cfg.Scoring.Weights.ExecutionVelocity)
				assert.Equal(t, 0.20, cfg.Scoring.Weights.MarketConviction)
				assert.Equal(t, 0.15, cfg.Scoring.Weights.EarlyTraction)
				assert.Equal(t, 0.10, cfg.Scoring.Weights.DealAvailability)

				assert.Equal(t, 3, cfg.Clustering.MinClusterSize)
				assert.Equal(t, 2, cfg.Clustering.MinSamples)
				assert.Equal(t, 15, cfg.Clustering.ReduceDims)
				assert.Equal(t, 1.0, cfg.Clustering.SimilarityPlaceholder)

				assert.Equal(t, 2.0, cfg.Anomaly.CommitVelocityMultiplier)
				assert.Equal(t, 5, cfg.Anomaly.CommitMinBase)
				assert.Equal(t, 60, cfg.Anomaly.ScoreCrossing)
				assert.Equal(t, []string{"github", "hn"}, cfg.Anomaly.CrossPlatformSources)
				assert.Equal(t, domain.DEFAULT_DEDUP_WINDOW, cfg.Anomaly.DedupWindows.Default)
				assert.Equal(t, 72*time.Hour, cfg.Anomaly.DedupWindows.NewTheme)
				assert.Equal(t, 168*time.Hour, cfg.Anomaly.DedupWindows.ScoreCrossing)
				assert.Equal(t, 168*time.Hour, cfg.Anomaly.DedupWindows.ThemeSpike)
				assert.Zero(t, cfg.Anomaly.DedupWindows.CrossPlatform)

				assert.Equal(t, 85, cfg.Alerts.ScoreThreshold)
				assert.Equal(t, 15.0, cfg.Alerts.VelocitySpike)
				assert.Equal(t, 587, cfg.Alerts.SMTP.Port)

				assert.Equal(t, EmbeddingProviderHashing, cfg.Embedding.Provider)
				assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
				assert.Equal(t, 1536, cfg.Embedding.Dimensions)
				assert.Equal(t, 100, cfg.Embedding.BatchSize)

				assert.Equal(t, NamingProviderKeyword, cfg.LLM.NamingProvider)
				assert.Equal(t, uint(3), cfg.LLM.BreakerFailureThreshold)

				assert.Equal(t, 60*time.Minute, cfg.Scheduler.Interval)
				assert.True(t, cfg.Scheduler.RunOnStart)
				assert.Empty(t, cfg.Redis.Addr)
				assert.Equal(t, 30*time.Minute, cfg.Redis.LockTTL)
				assert.Equal(t, "SCOUT_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, ":9090", cfg.Metrics.Addr)
			},
		},
		{
			name: "sqlite backend",
			configFile: `
database:
  driver: sqlite
  sqlite_path: data/scout.db
`,
			validate: func(t *testing.T, cfg *PipelineConfig) {
				assert.Equal(t, "data/scout.db", cfg.Database.DSN())
				assert.Empty(t, cfg.Database.ReadDSN())
			},
		},
		{
			name: "sqlite without path",
			configFile: `
database:
  driver: sqlite
`,
			expectError: true,
		},
		{
			name: "weights do not sum to one",
			configFile: `
database:
  host: localhost
  dbname: scout
scoring:
  weights:
    founder_quality: 0.5
`,
			expectError: true,
		},
		{
			name: "unknown driver",
			configFile: `
database:
  driver: mysql
  host: localhost
  dbname: scout
`,
			expectError: true,
		},
		{
			name: "unknown naming provider",
			configFile: `
database:
  host: localhost
  dbname: scout
llm:
  naming_provider: oracle
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadPipelineConfig(writeConfig(t, tt.configFile), "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadPipelineConfig_InvalidWeightsSentinel(t *testing.T) {
	configFile := writeConfig(t, `
database:
  host: localhost
  dbname: scout
scoring:
  weights:
    deal_availability: 0.5
`)

	_, err := LoadPipelineConfig(configFile, "")
	assert.ErrorIs(t, err, domain.ErrInvalidWeights)
}

func TestLoadPipelineConfig_MissingFile(t *testing.T) {
	_, err := LoadPipelineConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"), "")
	assert.Error(t, err)
}

func TestLoadAPIConfig(t *testing.T) {
	configFile := writeConfig(t, `
database:
  host: localhost
  read_host: replica
  dbname: scout
server:
  port: 9000
auth:
  jwt_public_key: "-----BEGIN PUBLIC KEY-----"
  api_keys: [key1, key2]
`)

	cfg, err := LoadAPIConfig(configFile, "")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 120, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"key1", "key2"}, cfg.Auth.APIKeys)
	assert.Equal(t, "-----BEGIN PUBLIC KEY-----", cfg.Auth.JWTPublicKey)
	assert.Equal(t, 85, cfg.Alerts.ScoreThreshold, "pipeline defaults apply")
	assert.Equal(t, "host=replica port=5432 user= password= dbname=scout sslmode=disable", cfg.Database.ReadDSN())
}

func TestLoadCLIConfig(t *testing.T) {
	configFile := writeConfig(t, `
database:
  driver: sqlite
  sqlite_path: scout.db
`)

	cfg, err := LoadCLIConfig(configFile, "")
	require.NoError(t, err)
	assert.Equal(t, "scout.db", cfg.Database.DSN())
	assert.Equal(t, 60*time.Minute, cfg.Scheduler.Interval)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "postgres",
			config: DatabaseConfig{
				Driver:   DriverPostgres,
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=require",
		},
		{
			name:     "sqlite",
			config:   DatabaseConfig{Driver: DriverSQLite, SQLitePath: "/var/lib/scout/scout.db"},
			expected: "/var/lib/scout/scout.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	cfg := DatabaseConfig{Driver: DriverPostgres, Host: "primary", Port: 5432, User: "u", Password: "p", DBName: "db", SSLMode: "disable"}
	assert.Empty(t, cfg.ReadDSN())

	cfg.ReadHost = "replica"
	assert.Equal(t, "host=replica port=5432 user=u password=p dbname=db sslmode=disable", cfg.ReadDSN())

	cfg.ReadPort = 6432
	assert.Equal(t, "host=replica port=6432 user=u password=p dbname=db sslmode=disable", cfg.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	// godotenv.Overload writes the process environment; registering the keys with
	// t.Setenv restores them after the test
	for _, key := range []string{
		"SCOUT_DEBUG", "SCOUT_DATABASE_HOST", "SCOUT_DATABASE_PORT", "SCOUT_DATABASE_DBNAME",
		"SCOUT_ALERTS_SCORE_THRESHOLD", "SCOUT_ALERTS_SMTP_TO", "SCOUT_SCHEDULER_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	// Note: Viper uses SCOUT_ prefix, so env vars need the prefix
	envContent := `SCOUT_DEBUG=true
SCOUT_DATABASE_HOST=env-host
SCOUT_DATABASE_PORT=6543
SCOUT_DATABASE_DBNAME=env-db
SCOUT_ALERTS_SCORE_THRESHOLD=90
SCOUT_ALERTS_SMTP_TO=a@example.com,b@example.com
SCOUT_SCHEDULER_INTERVAL=15m
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))

	// Per-service local file overrides the shared one
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env.pipeline.local"), []byte("SCOUT_DATABASE_DBNAME=local-db\n"), 0600))

	configPath := writeConfig(t, `
debug: false
database:
  host: file-host
  port: 5432
  dbname: file-db
`)

	cfg, err := LoadPipelineConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "local-db", cfg.Database.DBName)
	assert.Equal(t, 90, cfg.Alerts.ScoreThreshold)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.Alerts.SMTP.To)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.Interval)
}
