package domain

import "errors"

var (
	// ErrFounderNotFound is returned when a founder is not found
	ErrFounderNotFound = errors.New("founder not found")

	// ErrThemeNotFound is returned when a theme is not found
	ErrThemeNotFound = errors.New("theme not found")

	// ErrInvalidWeights is returned when the score weights do not sum to 1.0
	ErrInvalidWeights = errors.New("score weights must sum to 1.0")

	// ErrInvalidFounderStatus is returned for a status outside the allowed set
	ErrInvalidFounderStatus = errors.New("invalid founder status")

	// ErrNoEmbeddings is returned when there is nothing to cluster
	ErrNoEmbeddings = errors.New("no embeddings to cluster")

	// ErrDimensionMismatch is returned when embedding vectors disagree on length
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrPipelineLocked is returned when another pipeline run holds the lock
	ErrPipelineLocked = errors.New("pipeline run already in progress")

	// ErrProviderUnavailable is returned when an optional external service cannot be used
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrNotifierDisabled is returned when a notification channel has no configuration
	ErrNotifierDisabled = errors.New("notifier disabled")
)
