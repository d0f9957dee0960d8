package domain

import "time"

const (
	// Scoring constants
	DEFAULT_SCORE_ALERT_THRESHOLD = 85
	DEFAULT_VELOCITY_SPIKE_DELTA  = 15.0
	SCORE_CROSSING_THRESHOLD      = 60
	MAX_SUBSCORE                  = 100.0

	// Clustering constants
	DEFAULT_MIN_CLUSTER_SIZE      = 3
	DEFAULT_MIN_SAMPLES           = 2
	DEFAULT_REDUCE_DIMENSIONS     = 15
	CONTINUITY_OVERLAP_RATIO      = 0.5
	PLACEHOLDER_MEMBER_SIMILARITY = 1.0
	FALLBACK_THEME_NAME           = "Emerging Theme"
	FALLBACK_FOUNDER_ORIGIN       = "Mixed backgrounds"
	FALLBACK_SECTOR               = "Other"

	// Embedding constants
	DEFAULT_EMBEDDING_MODEL      = "text-embedding-3-small"
	DEFAULT_EMBEDDING_DIMENSIONS = 1536
	DEFAULT_EMBEDDING_BATCH_SIZE = 100
	EMBEDDING_SIGNAL_LABELS      = 20
	CONTENT_HASH_LENGTH          = 16

	// Anomaly constants
	DEFAULT_COMMIT_VELOCITY_MULTIPLIER = 2.0
	DEFAULT_COMMIT_MIN_BASE            = 5
	DEFAULT_STAR_SPIKE_MIN_GAIN        = 15
	DEFAULT_STAR_SPIKE_MAX_BASE        = 100
	DEFAULT_FORUM_SCORE_SPIKE          = 100
	THEME_SPIKE_GROWTH_RATIO           = 0.5

	// Signal dedup
	SIGNAL_DEDUP_WINDOW = 24 * time.Hour

	// Alert copy
	ALERT_TITLE_PREFIX = "SCOUT Alert"
)

const (
	DEFAULT_DEDUP_WINDOW      = 24 * time.Hour
	NEW_THEME_LOOKBACK        = 24 * time.Hour
	NEW_THEME_DEDUP_WINDOW    = 72 * time.Hour
	SLOW_SIGNAL_DEDUP_WINDOW  = 168 * time.Hour
	WEEK                      = 7 * 24 * time.Hour
	RECENT_SIGNAL_LOOKBACK    = 90 * 24 * time.Hour
	VELOCITY_SIGNAL_LOOKBACK  = 7 * 24 * time.Hour
	DEFAULT_PIPELINE_INTERVAL = 60 * time.Minute
)
