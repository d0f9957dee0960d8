package alerts

import (
	"context"
	"fmt"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// Alert is one fired trigger ready for delivery
type Alert struct {
	Type    domain.AlertType
	Founder schema.Founder
	Score   schema.Score
	// Detail is the one-line trigger explanation
	Detail string
	// Message is the plain-text body persisted in the alert log
	Message string
	// Subject is the email subject line
	Subject string
}

// Notifier delivers alerts through one channel
type Notifier interface {
	// Channel returns the channel recorded in the alert log
	Channel() domain.Channel
	// Send delivers the alert; a nil error means the alert was accepted by the channel
	Send(ctx context.Context, alert Alert) error
}

// Title returns the header shared by every channel
func (a Alert) Title() string {
	return fmt.Sprintf("%s: %s", domain.ALERT_TITLE_PREFIX, a.Founder.Name)
}

// Breakdown returns the sub-score line shared by every channel
func (a Alert) Breakdown() string {
	return fmt.Sprintf("Founder Quality: %.0f | Execution: %.0f | Conviction: %.0f | Traction: %.0f | Availability: %.0f",
		a.Score.FounderQuality,
		a.Score.ExecutionVelocity,
		a.Score.MarketConviction,
		a.Score.EarlyTraction,
		a.Score.DealAvailability,
	)
}
