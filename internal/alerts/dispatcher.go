// Package alerts turns score transitions into operator notifications.
package alerts

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// Dispatcher evaluates alert triggers and fans them out to the notifiers
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Evaluate fires the triggers for one founder and returns the number of successful deliveries
	Evaluate(ctx context.Context, st store.Store, founder schema.Founder, current schema.Score, prior *schema.Score) (int, error)
	// DispatchAll evaluates every founder scored by runID against its two latest scores.
	// Founders whose latest score belongs to another run are skipped, as is a founder that fails.
	DispatchAll(ctx context.Context, st store.Store, runID string) (int, error)
}

// Config holds trigger thresholds
type Config struct {
	ScoreThreshold int
	VelocitySpike  float64
}

// DefaultConfig returns the stock thresholds
func DefaultConfig() Config {
	return Config{
		ScoreThreshold: domain.DEFAULT_SCORE_ALERT_THRESHOLD,
		VelocitySpike:  domain.DEFAULT_VELOCITY_SPIKE_DELTA,
	}
}

type dispatcher struct {
	config    Config
	notifiers []Notifier
	clock     adapter.Clock
	log       *zap.Logger
}

// NewDispatcher creates a dispatcher; with no notifiers every trigger is a no-op
func NewDispatcher(cfg Config, notifiers []Notifier, clock adapter.Clock) Dispatcher {
	return &dispatcher{
		config:    cfg,
		notifiers: notifiers,
		clock:     clock,
		log:       logger.Named("alerts"),
	}
}

// triggers returns the alerts that fire for the score transition
func (d *dispatcher) triggers(founder schema.Founder, current schema.Score, prior *schema.Score) []Alert {
	var fired []Alert

	threshold := d.config.ScoreThreshold
	if current.Composite >= threshold && (prior == nil || prior.Composite < threshold) {
		detail := fmt.Sprintf("Composite score hit %d (threshold: %d)", current.Composite, threshold)
		fired = append(fired, Alert{
			Type:    domain.AlertTypeHighScore,
			Founder: founder,
			Score:   current,
			Detail:  detail,
			Message: fmt.Sprintf("SCOUT: %s (%s) scored %d — %s", founder.Name, founder.Handle, current.Composite, detail),
			Subject: fmt.Sprintf("%s: %s — Score %d", domain.ALERT_TITLE_PREFIX, founder.Name, current.Composite),
		})
	}

	if prior != nil {
		delta := current.ExecutionVelocity - prior.ExecutionVelocity
		if delta >= d.config.VelocitySpike {
			detail := fmt.Sprintf("Execution velocity jumped +%.0f pts (%.0f → %.0f)",
				delta, prior.ExecutionVelocity, current.ExecutionVelocity)
			fired = append(fired, Alert{
				Type:    domain.AlertTypeVelocitySpike,
				Founder: founder,
				Score:   current,
				Detail:  detail,
				Message: fmt.Sprintf("SCOUT: %s (%s) velocity spike — %s", founder.Name, founder.Handle, detail),
				Subject: fmt.Sprintf("%s: %s — Momentum Spike", domain.ALERT_TITLE_PREFIX, founder.Name),
			})
		}
	}

	return fired
}

func (d *dispatcher) Evaluate(ctx context.Context, st store.Store, founder schema.Founder, current schema.Score, prior *schema.Score) (int, error) {
	sent := 0
	for _, alert := range d.triggers(founder, current, prior) {
		for _, n := range d.notifiers {
			if err := n.Send(ctx, alert); err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to send alert: %w", err),
					zap.Uint64("founder_id", founder.ID),
					zap.String("alert_type", string(alert.Type)),
					zap.String("channel", string(n.Channel())),
				)
				continue
			}

			entry := schema.AlertLog{
				FounderID: founder.ID,
				AlertType: alert.Type,
				Channel:   n.Channel(),
				Message:   alert.Message,
				SentAt:    d.clock.Now(),
			}
			sent++
			// delivered alerts stay counted when the log row is lost
			if err := st.InsertAlertLog(ctx, &entry); err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to insert alert log: %w", err),
					zap.Uint64("founder_id", founder.ID),
					zap.String("alert_type", string(alert.Type)),
					zap.String("channel", string(n.Channel())),
					zap.String("message", alert.Message),
				)
				continue
			}

			d.log.Info("Alert sent",
				zap.Uint64("founder_id", founder.ID),
				zap.String("alert_type", string(alert.Type)),
				zap.String("channel", string(n.Channel())),
			)
		}
	}
	return sent, nil
}

func (d *dispatcher) DispatchAll(ctx context.Context, st store.Store, runID string) (int, error) {
	founders, err := st.ListAllFounders(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list founders: %w", err)
	}

	total := 0
	for _, f := range founders {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		sent := 0
		err := st.WithTx(ctx, func(tx store.Store) error {
			scores, err := tx.GetLatestTwoScores(ctx, f.ID)
			if err != nil {
				return fmt.Errorf("failed to get latest scores: %w", err)
			}
			if len(scores) == 0 || scores[0].RunID != runID {
				return nil
			}

			var prior *schema.Score
			if len(scores) > 1 {
				prior = &scores[1]
			}
			sent, err = d.Evaluate(ctx, tx, f, scores[0], prior)
			return err
		})
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to dispatch alerts: %w", err), zap.Uint64("founder_id", f.ID))
			continue
		}
		total += sent
	}

	d.log.Info("Dispatched alerts", zap.Int("sent", total), zap.Int("founders", len(founders)))
	return total, nil
}
