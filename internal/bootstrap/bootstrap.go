package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/alerts"
	"github.com/feral-file/founder-scout/internal/anomaly"
	"github.com/feral-file/founder-scout/internal/classify"
	"github.com/feral-file/founder-scout/internal/clustering"
	"github.com/feral-file/founder-scout/internal/config"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/embedder"
	"github.com/feral-file/founder-scout/internal/heuristics"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/messaging"
	"github.com/feral-file/founder-scout/internal/metrics"
	"github.com/feral-file/founder-scout/internal/naming"
	"github.com/feral-file/founder-scout/internal/pipeline"
	"github.com/feral-file/founder-scout/internal/providers/jetstream"
	"github.com/feral-file/founder-scout/internal/scoring"
	"github.com/feral-file/founder-scout/internal/store"
)

const SLACK_RATE_LIMIT_KEY = "scout:ratelimit:slack"

// Services holds the wired pipeline collaborators of one process
type Services struct {
	DB       *gorm.DB
	Store    store.Store
	Scorer   scoring.Engine
	Pipeline pipeline.Pipeline
	Metrics  *metrics.Metrics

	closers []func()
}

// Close releases the redis and NATS connections and the database pool
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// OpenStore connects to the configured database and applies pending migrations
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, debug bool) (*gorm.DB, store.Store, error) {
	db, err := store.Open(store.OpenConfig{
		Driver:          cfg.Driver,
		DSN:             cfg.DSN(),
		ReadDSN:         cfg.ReadDSN(),
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		Debug:           debug,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := store.Migrate(ctx, db); err != nil {
		CloseDB(db)
		return nil, nil, err
	}

	return db, store.NewStore(db), nil
}

// Build opens the store and wires every phase of the pipeline from configuration.
// A nil registerer disables metrics.
func Build(ctx context.Context, cfg *config.PipelineConfig, reg prometheus.Registerer) (*Services, error) {
	db, st, err := OpenStore(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		return nil, err
	}

	s := &Services{DB: db, Store: st}
	s.closers = append(s.closers, func() { CloseDB(db) })

	if err := s.wire(ctx, cfg, reg); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Services) wire(ctx context.Context, cfg *config.PipelineConfig, reg prometheus.Registerer) error {
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	tables := heuristics.Default()

	if reg != nil {
		s.Metrics = metrics.New(reg)
	}

	scorer, err := NewScoreEngine(cfg.Scoring, tables, clock)
	if err != nil {
		return err
	}
	s.Scorer = scorer

	var openaiClient adapter.OpenAIClient
	if cfg.LLM.OpenAIAPIKey != "" {
		openaiClient = adapter.NewOpenAIClient(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIBaseURL)
	}

	provider, remote := embeddingProvider(cfg, openaiClient)
	emb := embedder.NewEmbedder(embedder.Config{
		BatchSize: cfg.Embedding.BatchSize,
		Workers:   cfg.Embedding.Workers,
	}, provider, clock)

	// Sector references only make sense in a shared semantic space
	var sectorProvider embedder.Provider
	if remote {
		sectorProvider = provider
	}
	sectors := classify.NewSectorClassifier(sectorProvider, tables, cfg.LLM.CacheTTL)

	clusterer := clustering.NewThemeClusterer(clustering.Config{
		MinClusterSize:        cfg.Clustering.MinClusterSize,
		MinSamples:            cfg.Clustering.MinSamples,
		ReduceDims:            cfg.Clustering.ReduceDims,
		SimilarityPlaceholder: cfg.Clustering.SimilarityPlaceholder,
	}, themeNamer(cfg, openaiClient, tables), sectors, tables, clock)

	detector := anomaly.NewDetector(anomalyConfig(cfg.Anomaly), clock)

	var redisClient adapter.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisClient.Ping(ctx); err != nil {
			_ = redisClient.Close()
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		s.closers = append(s.closers, func() { _ = redisClient.Close() })
		logger.InfoCtx(ctx, "Connected to redis", zap.String("addr", cfg.Redis.Addr))
	}

	notifiers, err := buildNotifiers(cfg.Alerts, redisClient, jsonAdapter, clock)
	if err != nil {
		return err
	}
	dispatcher := alerts.NewDispatcher(alerts.Config{
		ScoreThreshold: cfg.Alerts.ScoreThreshold,
		VelocitySpike:  cfg.Alerts.VelocitySpike,
	}, notifiers, clock)

	publisher := messaging.NewNopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			return fmt.Errorf("failed to create event publisher: %w", err)
		}
		s.closers = append(s.closers, publisher.Close)
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	}

	var locker pipeline.Locker
	if redisClient != nil {
		locker = pipeline.NewRedisLocker(redisClient, cfg.Redis.LockKey, cfg.Redis.LockTTL, clock)
	} else {
		locker = pipeline.NewLocalLocker(clock)
	}

	s.Pipeline = pipeline.NewPipeline(pipeline.Deps{
		Store:      s.Store,
		Embedder:   emb,
		Clusterer:  clusterer,
		Scorer:     scorer,
		Dispatcher: dispatcher,
		Detector:   detector,
		Publisher:  publisher,
		Locker:     locker,
		Metrics:    s.Metrics,
		Clock:      clock,
	})
	return nil
}

// NewScoreEngine creates the score engine from the configured weights
func NewScoreEngine(cfg config.ScoringConfig, tables *heuristics.Tables, clock adapter.Clock) (scoring.Engine, error) {
	engine, err := scoring.NewEngine(scoring.Config{
		Weights: scoring.Weights{
			FounderQuality:    cfg.Weights.FounderQuality,
			ExecutionVelocity: cfg.Weights.ExecutionVelocity,
			MarketConviction:  cfg.Weights.MarketConviction,
			EarlyTraction:     cfg.Weights.EarlyTraction,
			DealAvailability:  cfg.Weights.DealAvailability,
		},
		Tables: tables,
	}, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create score engine: %w", err)
	}
	return engine, nil
}

// embeddingProvider returns the configured provider and whether it is the remote one
func embeddingProvider(cfg *config.PipelineConfig, client adapter.OpenAIClient) (embedder.Provider, bool) {
	if cfg.Embedding.Provider == config.EmbeddingProviderOpenAI {
		if client != nil {
			return embedder.NewOpenAIProvider(client, cfg.Embedding.Model, cfg.Embedding.Dimensions), true
		}
		logger.Warn("OpenAI API key not configured, falling back to hashing embeddings")
	}
	return embedder.NewHashingProvider(embedder.NewVocabulary(embedder.VOCABULARY_SIZE), cfg.Embedding.Dimensions), false
}

func themeNamer(cfg *config.PipelineConfig, client adapter.OpenAIClient, tables *heuristics.Tables) naming.Namer {
	namerCfg := naming.Config{
		Timeout:                 cfg.LLM.Timeout,
		BreakerFailureThreshold: cfg.LLM.BreakerFailureThreshold,
		BreakerDelay:            cfg.LLM.BreakerDelay,
		CacheTTL:                cfg.LLM.CacheTTL,
	}

	switch cfg.LLM.NamingProvider {
	case config.NamingProviderOpenAI:
		if client != nil {
			return naming.NewGenerativeNamer(namerCfg, naming.NewOpenAIGenerator(client, cfg.LLM.OpenAIModel), tables)
		}
		logger.Warn("OpenAI API key not configured, naming themes by keywords")
	case config.NamingProviderAnthropic:
		if cfg.LLM.AnthropicAPIKey != "" {
			messages := adapter.NewAnthropicMessages(cfg.LLM.AnthropicAPIKey)
			return naming.NewGenerativeNamer(namerCfg, naming.NewAnthropicGenerator(messages, cfg.LLM.AnthropicModel), tables)
		}
		logger.Warn("Anthropic API key not configured, naming themes by keywords")
	}
	return naming.NewKeywordNamer(tables)
}

func anomalyConfig(cfg config.AnomalyConfig) anomaly.Config {
	sources := make([]domain.SignalSource, len(cfg.CrossPlatformSources))
	for i, src := range cfg.CrossPlatformSources {
		sources[i] = domain.SignalSource(src)
	}

	return anomaly.Config{
		CommitVelocityMultiplier: cfg.CommitVelocityMultiplier,
		CommitMinBase:            cfg.CommitMinBase,
		StarSpikeMinGain:         cfg.StarSpikeMinGain,
		StarSpikeMaxBase:         cfg.StarSpikeMaxBase,
		ForumScoreSpike:          cfg.ForumScoreSpike,
		ScoreCrossing:            cfg.ScoreCrossing,
		CrossPlatformSources:     sources,
		DefaultDedupWindow:       cfg.DedupWindows.Default,
		DedupWindows: map[domain.EventType]time.Duration{
			domain.EventTypeNewTheme:      cfg.DedupWindows.NewTheme,
			domain.EventTypeScoreCrossing: cfg.DedupWindows.ScoreCrossing,
			domain.EventTypeThemeSpike:    cfg.DedupWindows.ThemeSpike,
			domain.EventTypeCrossPlatform: cfg.DedupWindows.CrossPlatform,
		},
	}
}

// buildNotifiers registers every configured channel; unconfigured channels are skipped
func buildNotifiers(cfg config.AlertsConfig, redisClient adapter.RedisClient, jsonAdapter adapter.JSON, clock adapter.Clock) ([]alerts.Notifier, error) {
	var limiter alerts.Limiter
	if redisClient != nil {
		limiter = alerts.NewRedisLimiter(redisClient.NewRateLimiter(), SLACK_RATE_LIMIT_KEY, cfg.Slack.RatePerSecond, clock)
	} else {
		limiter = alerts.NewLocalLimiter(cfg.Slack.RatePerSecond)
	}

	var notifiers []alerts.Notifier

	slack, err := alerts.NewSlackNotifier(alerts.SlackConfig{WebhookURL: cfg.Slack.WebhookURL},
		adapter.NewHTTPClient(cfg.Slack.Timeout), jsonAdapter, limiter)
	switch {
	case err == nil:
		notifiers = append(notifiers, slack)
	case errors.Is(err, domain.ErrNotifierDisabled):
		logger.Info("Slack notifier not configured")
	default:
		return nil, fmt.Errorf("failed to create slack notifier: %w", err)
	}

	email, err := alerts.NewEmailNotifier(alerts.EmailConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
	}, adapter.NewSMTPSender())
	switch {
	case err == nil:
		notifiers = append(notifiers, email)
	case errors.Is(err, domain.ErrNotifierDisabled):
		logger.Info("Email notifier not configured")
	default:
		return nil, fmt.Errorf("failed to create email notifier: %w", err)
	}

	return notifiers, nil
}

// CloseDB closes the connection pool behind db
func CloseDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
