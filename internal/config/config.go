package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/founder-scout/internal/domain"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EmbeddingProviderOpenAI  = "openai"
	EmbeddingProviderHashing = "hashing"

	NamingProviderKeyword   = "keyword"
	NamingProviderOpenAI    = "openai"
	NamingProviderAnthropic = "anthropic"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // "postgres" or "sqlite"
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// WeightsConfig holds the composite score weights, which must sum to 1.0
type WeightsConfig struct {
	FounderQuality    float64 `mapstructure:"founder_quality"`
	ExecutionVelocity float64 `mapstructure:"execution_velocity"`
	MarketConviction  float64 `mapstructure:"market_conviction"`
	EarlyTraction     float64 `mapstructure:"early_traction"`
	DealAvailability  float64 `mapstructure:"deal_availability"`
}

// Sum returns the sum of all weights
func (w WeightsConfig) Sum() float64 {
	return w.FounderQuality + w.ExecutionVelocity + w.MarketConviction + w.EarlyTraction + w.DealAvailability
}

// ScoringConfig holds ScoreEngine configuration
type ScoringConfig struct {
	Weights WeightsConfig `mapstructure:"weights"`
}

// ClusteringConfig holds ThemeClusterer configuration
type ClusteringConfig struct {
	MinClusterSize        int     `mapstructure:"min_cluster_size"`
	MinSamples            int     `mapstructure:"min_samples"`
	ReduceDims            int     `mapstructure:"reduce_dims"` // 0 disables reduction
	SimilarityPlaceholder float64 `mapstructure:"similarity_placeholder"`
}

// DedupWindowsConfig holds per event type dedup look-back windows.
// Event types without an explicit window use Default; a zero window means "ever".
type DedupWindowsConfig struct {
	Default       time.Duration `mapstructure:"default"`
	NewTheme      time.Duration `mapstructure:"new_theme"`
	ScoreCrossing time.Duration `mapstructure:"score_crossing"`
	ThemeSpike    time.Duration `mapstructure:"theme_spike"`
	CrossPlatform time.Duration `mapstructure:"cross_platform"`
}

// AnomalyConfig holds AnomalyDetector thresholds
type AnomalyConfig struct {
	CommitVelocityMultiplier float64            `mapstructure:"commit_velocity_multiplier"`
	CommitMinBase            int                `mapstructure:"commit_min_base"`
	StarSpikeMinGain         int                `mapstructure:"star_spike_min_gain"`
	StarSpikeMaxBase         int                `mapstructure:"star_spike_max_base"`
	ForumScoreSpike          int                `mapstructure:"forum_score_spike"`
	ScoreCrossing            int                `mapstructure:"score_crossing"`
	CrossPlatformSources     []string           `mapstructure:"cross_platform_sources"`
	DedupWindows             DedupWindowsConfig `mapstructure:"dedup_windows"`
}

// SlackConfig holds Slack incoming webhook configuration
type SlackConfig struct {
	WebhookURL    string        `mapstructure:"webhook_url"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// SMTPConfig holds email delivery configuration
type SMTPConfig struct {
	Host     string   `mapstructure:"host"`
	Port     int      `mapstructure:"port"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	From     string   `mapstructure:"from"`
	To       []string `mapstructure:"to"`
}

// AlertsConfig holds AlertDispatcher configuration
type AlertsConfig struct {
	ScoreThreshold int         `mapstructure:"score_threshold"`
	VelocitySpike  float64     `mapstructure:"velocity_spike"`
	Slack          SlackConfig `mapstructure:"slack"`
	SMTP           SMTPConfig  `mapstructure:"smtp"`
}

// EmbeddingConfig holds embedding phase configuration
type EmbeddingConfig struct {
	Provider   string `mapstructure:"provider"` // "openai" or "hashing"
	Model      string `mapstructure:"model"`
	Dimensions int    `mapstructure:"dimensions"`
	BatchSize  int    `mapstructure:"batch_size"`
	Workers    int    `mapstructure:"workers"`
}

// LLMConfig holds generative service configuration used for theme naming
type LLMConfig struct {
	OpenAIAPIKey            string        `mapstructure:"openai_api_key"`
	OpenAIBaseURL           string        `mapstructure:"openai_base_url"`
	AnthropicAPIKey         string        `mapstructure:"anthropic_api_key"`
	NamingProvider          string        `mapstructure:"naming_provider"` // "keyword", "openai" or "anthropic"
	OpenAIModel             string        `mapstructure:"openai_model"`
	AnthropicModel          string        `mapstructure:"anthropic_model"`
	Timeout                 time.Duration `mapstructure:"timeout"`
	BreakerFailureThreshold uint          `mapstructure:"breaker_failure_threshold"`
	BreakerDelay            time.Duration `mapstructure:"breaker_delay"`
	CacheTTL                time.Duration `mapstructure:"cache_ttl"`
}

// SchedulerConfig holds pipeline scheduling configuration
type SchedulerConfig struct {
	Interval   time.Duration `mapstructure:"interval"`
	RunOnStart bool          `mapstructure:"run_on_start"`
}

// RedisConfig holds the run lock configuration. An empty address disables the lock.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockKey  string        `mapstructure:"lock_key"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables event fan-out.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// MetricsConfig holds the prometheus listener configuration
type MetricsConfig struct {
	Addr string `mapstructure:"addr"` // empty disables the listener
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSOrigins lists the dashboard origins; empty allows every origin
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// PipelineConfig holds configuration for the pipeline daemon
type PipelineConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
	Clustering ClusteringConfig `mapstructure:"clustering"`
	Anomaly    AnomalyConfig    `mapstructure:"anomaly"`
	Alerts     AlertsConfig     `mapstructure:"alerts"`
	Embedding  EmbeddingConfig  `mapstructure:"embedding"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Redis      RedisConfig      `mapstructure:"redis"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// APIConfig holds configuration for API server.
// It carries the pipeline sections because the API can trigger a run.
type APIConfig struct {
	PipelineConfig `mapstructure:",squash"`
	Server         ServerConfig `mapstructure:"server"`
	Auth           AuthConfig   `mapstructure:"auth"`
}

// CLIConfig holds configuration for the operator CLI
type CLIConfig struct {
	PipelineConfig `mapstructure:",squash"`
}

// LoadPipelineConfig loads configuration for the pipeline daemon
func LoadPipelineConfig(configFile string, envPath string) (*PipelineConfig, error) {
	v := configureViper("pipeline", configFile, envPath)
	setPipelineDefaults(v)
	v.SetDefault("metrics.addr", ":9090")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg PipelineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)
	setPipelineDefaults(v)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadCLIConfig loads configuration for the operator CLI
func LoadCLIConfig(configFile string, envPath string) (*CLIConfig, error) {
	v := configureViper("scout", configFile, envPath)
	setPipelineDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields every binary depends on
func (c *PipelineConfig) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return errors.New("database.host is required")
		}
		if c.Database.DBName == "" {
			return errors.New("database.dbname is required")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return errors.New("database.sqlite_path is required")
		}
	default:
		return fmt.Errorf("unsupported database.driver: %q", c.Database.Driver)
	}

	if math.Abs(c.Scoring.Weights.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("%w: got %.6f", domain.ErrInvalidWeights, c.Scoring.Weights.Sum())
	}

	switch c.Embedding.Provider {
	case EmbeddingProviderOpenAI, EmbeddingProviderHashing:
	default:
		return fmt.Errorf("unsupported embedding.provider: %q", c.Embedding.Provider)
	}

	switch c.LLM.NamingProvider {
	case NamingProviderKeyword, NamingProviderOpenAI, NamingProviderAnthropic:
	default:
		return fmt.Errorf("unsupported llm.naming_provider: %q", c.LLM.NamingProvider)
	}

	if c.Scheduler.Interval <= 0 {
		return errors.New("scheduler.interval must be positive")
	}

	return nil
}

// setPipelineDefaults sets the defaults shared by every binary
func setPipelineDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")

	v.SetDefault("scoring.weights.founder_quality", 0.30)
	v.SetDefault("scoring.weights.execution_velocity", 0.25)
	v.SetDefault("scoring.weights.market_conviction", 0.20)
	v.SetDefault("scoring.weights.early_traction", 0.15)
	v.SetDefault("scoring.weights.deal_availability", 0.10)

	v.SetDefault("clustering.min_cluster_size", domain.DEFAULT_MIN_CLUSTER_SIZE)
	v.SetDefault("clustering.min_samples", domain.DEFAULT_MIN_SAMPLES)
	v.SetDefault("clustering.reduce_dims", domain.DEFAULT_REDUCE_DIMENSIONS)
	v.SetDefault("clustering.similarity_placeholder", domain.PLACEHOLDER_MEMBER_SIMILARITY)

	v.SetDefault("anomaly.commit_velocity_multiplier", domain.DEFAULT_COMMIT_VELOCITY_MULTIPLIER)
	v.SetDefault("anomaly.commit_min_base", domain.DEFAULT_COMMIT_MIN_BASE)
	v.SetDefault("anomaly.star_spike_min_gain", domain.DEFAULT_STAR_SPIKE_MIN_GAIN)
	v.SetDefault("anomaly.star_spike_max_base", domain.DEFAULT_STAR_SPIKE_MAX_BASE)
	v.SetDefault("anomaly.forum_score_spike", domain.DEFAULT_FORUM_SCORE_SPIKE)
	v.SetDefault("anomaly.score_crossing", domain.SCORE_CROSSING_THRESHOLD)
	v.SetDefault("anomaly.cross_platform_sources", []string{string(domain.SignalSourceGitHub), string(domain.SignalSourceHN)})
	v.SetDefault("anomaly.dedup_windows.default", domain.DEFAULT_DEDUP_WINDOW)
	v.SetDefault("anomaly.dedup_windows.new_theme", domain.NEW_THEME_DEDUP_WINDOW)
	v.SetDefault("anomaly.dedup_windows.score_crossing", domain.SLOW_SIGNAL_DEDUP_WINDOW)
	v.SetDefault("anomaly.dedup_windows.theme_spike", domain.SLOW_SIGNAL_DEDUP_WINDOW)
	v.SetDefault("anomaly.dedup_windows.cross_platform", 0)

	v.SetDefault("alerts.score_threshold", domain.DEFAULT_SCORE_ALERT_THRESHOLD)
	v.SetDefault("alerts.velocity_spike", domain.DEFAULT_VELOCITY_SPIKE_DELTA)
	v.SetDefault("alerts.slack.rate_per_second", 1.0)
	v.SetDefault("alerts.slack.timeout", "10s")
	v.SetDefault("alerts.smtp.port", 587)

	v.SetDefault("embedding.provider", EmbeddingProviderHashing)
	v.SetDefault("embedding.model", domain.DEFAULT_EMBEDDING_MODEL)
	v.SetDefault("embedding.dimensions", domain.DEFAULT_EMBEDDING_DIMENSIONS)
	v.SetDefault("embedding.batch_size", domain.DEFAULT_EMBEDDING_BATCH_SIZE)
	v.SetDefault("embedding.workers", 4)

	v.SetDefault("llm.naming_provider", NamingProviderKeyword)
	v.SetDefault("llm.openai_model", "gpt-4o-mini")
	v.SetDefault("llm.anthropic_model", "claude-3-5-haiku-latest")
	v.SetDefault("llm.timeout", "20s")
	v.SetDefault("llm.breaker_failure_threshold", 3)
	v.SetDefault("llm.breaker_delay", "1m")
	v.SetDefault("llm.cache_ttl", "24h")

	v.SetDefault("scheduler.interval", domain.DEFAULT_PIPELINE_INTERVAL)
	v.SetDefault("scheduler.run_on_start", true)

	v.SetDefault("redis.lock_key", "scout:pipeline:lock")
	v.SetDefault("redis.lock_ttl", "30m")

	v.SetDefault("nats.stream_name", "SCOUT_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "founder-scout")
}

// readConfig reads the config file, tolerating its absence
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/pipeline/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.driver",
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.sqlite_path",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Scoring
		"scoring.weights.founder_quality",
		"scoring.weights.execution_velocity",
		"scoring.weights.market_conviction",
		"scoring.weights.early_traction",
		"scoring.weights.deal_availability",
		// Clustering
		"clustering.min_cluster_size",
		"clustering.min_samples",
		"clustering.reduce_dims",
		"clustering.similarity_placeholder",
		// Anomaly
		"anomaly.commit_velocity_multiplier",
		"anomaly.commit_min_base",
		"anomaly.star_spike_min_gain",
		"anomaly.star_spike_max_base",
		"anomaly.forum_score_spike",
		"anomaly.score_crossing",
		"anomaly.cross_platform_sources",
		"anomaly.dedup_windows.default",
		"anomaly.dedup_windows.new_theme",
		"anomaly.dedup_windows.score_crossing",
		"anomaly.dedup_windows.theme_spike",
		"anomaly.dedup_windows.cross_platform",
		// Alerts
		"alerts.score_threshold",
		"alerts.velocity_spike",
		"alerts.slack.webhook_url",
		"alerts.slack.rate_per_second",
		"alerts.slack.timeout",
		"alerts.smtp.host",
		"alerts.smtp.port",
		"alerts.smtp.username",
		"alerts.smtp.password",
		"alerts.smtp.from",
		"alerts.smtp.to",
		// Embedding
		"embedding.provider",
		"embedding.model",
		"embedding.dimensions",
		"embedding.batch_size",
		"embedding.workers",
		// LLM
		"llm.openai_api_key",
		"llm.openai_base_url",
		"llm.anthropic_api_key",
		"llm.naming_provider",
		"llm.openai_model",
		"llm.anthropic_model",
		"llm.timeout",
		"llm.breaker_failure_threshold",
		"llm.breaker_delay",
		"llm.cache_ttl",
		// Scheduler
		"scheduler.interval",
		"scheduler.run_on_start",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.lock_key",
		"redis.lock_ttl",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Metrics
		"metrics.addr",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string, or the file path for sqlite
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica database connection string.
// It is empty when no read host is configured or the driver is sqlite.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	if c.Driver == DriverSQLite || c.ReadHost == "" {
		return ""
	}

	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
