package alerts

import (
	"context"
	"fmt"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/domain"
)

// SlackConfig holds incoming webhook configuration
type SlackConfig struct {
	WebhookURL string
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type slackBlock struct {
	Type string     `json:"type"`
	Text *slackText `json:"text,omitempty"`
}

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks,omitempty"`
}

type slackNotifier struct {
	webhookURL string
	httpClient adapter.HTTPClient
	json       adapter.JSON
	limiter    Limiter
}

// NewSlackNotifier creates a Slack webhook notifier.
// It returns domain.ErrNotifierDisabled when no webhook URL is configured.
func NewSlackNotifier(cfg SlackConfig, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, limiter Limiter) (Notifier, error) {
	if cfg.WebhookURL == "" {
		return nil, domain.ErrNotifierDisabled
	}
	if limiter == nil {
		limiter = NewLocalLimiter(0)
	}
	return &slackNotifier{
		webhookURL: cfg.WebhookURL,
		httpClient: httpClient,
		json:       jsonAdapter,
		limiter:    limiter,
	}, nil
}

func (n *slackNotifier) Channel() domain.Channel {
	return domain.ChannelSlack
}

func (n *slackNotifier) Send(ctx context.Context, alert Alert) error {
	body, err := n.json.Marshal(slackMessage(alert))
	if err != nil {
		return fmt.Errorf("failed to marshal slack payload: %w", err)
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for slack rate limit: %w", err)
	}

	if _, err := n.httpClient.Post(ctx, n.webhookURL, "application/json", body); err != nil {
		return fmt.Errorf("failed to post slack webhook: %w", err)
	}
	return nil
}

// slackMessage builds the webhook payload with a header and a score breakdown section
func slackMessage(alert Alert) slackPayload {
	section := fmt.Sprintf("*%s*\nHandle: `%s`\n%s\n\n*Composite Score: %d*\n%s",
		alert.Type,
		alert.Founder.Handle,
		alert.Detail,
		alert.Score.Composite,
		alert.Breakdown(),
	)

	return slackPayload{
		Text: alert.Message,
		Blocks: []slackBlock{
			{Type: "header", Text: &slackText{Type: "plain_text", Text: alert.Title()}},
			{Type: "section", Text: &slackText{Type: "mrkdwn", Text: section}},
		},
	}
}
