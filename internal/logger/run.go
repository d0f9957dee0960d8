package logger

import (
	"context"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// RunInfo identifies a pipeline run for Sentry tracking
type RunInfo struct {
	RunID string
	Phase string
}

// WithRun returns a context carrying a Sentry hub tagged with the run.
// Errors logged through FromContext(ctx) are grouped by run and phase.
func WithRun(ctx context.Context, info RunInfo) context.Context {
	hub := sentry.CurrentHub().Clone()
	if sentryClient != nil {
		hub.BindClient(sentryClient)
	}
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run_id", info.RunID)
		if info.Phase != "" {
			scope.SetTag("phase", info.Phase)
		}
	})

	return sentry.SetHubOnContext(ctx, hub)
}

// FromRun returns a logger annotated with the run fields and Sentry scope
func FromRun(ctx context.Context, info RunInfo) *zap.Logger {
	fields := []zap.Field{zap.String("run_id", info.RunID)}
	if info.Phase != "" {
		fields = append(fields, zap.String("phase", info.Phase))
	}
	return log.With(zapsentry.Context(WithRun(ctx, info))).With(fields...)
}
