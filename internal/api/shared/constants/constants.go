package constants

const (
	MAX_PAGE_SIZE            = 100
	DEFAULT_FOUNDERS_LIMIT   = 50
	DEFAULT_EVENTS_LIMIT     = 50
	DEFAULT_RUNS_LIMIT       = 20
	FOUNDER_SCORES_LIMIT     = 30
	FOUNDER_SIGNALS_LIMIT    = 20
	FOUNDER_ALERTS_LIMIT     = 20
	THEME_HISTORY_LIMIT      = 12
	STRONG_FOUNDER_MIN_SCORE = 90
)
