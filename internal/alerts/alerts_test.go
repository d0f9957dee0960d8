package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/mocks"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

var testFounder = schema.Founder{ID: 1, Name: "Ada Labs", Handle: "@ada"}

func newTestClock(ctrl *gomock.Controller) *mocks.MockClock {
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()
	return clock
}

// fakeNotifier records deliveries and fails with err when set
type fakeNotifier struct {
	channel domain.Channel
	err     error
	sent    []Alert
}

func (n *fakeNotifier) Channel() domain.Channel {
	return n.channel
}

func (n *fakeNotifier) Send(_ context.Context, alert Alert) error {
	n.sent = append(n.sent, alert)
	return n.err
}

func newTestDispatcher(t *testing.T, notifiers ...Notifier) (*dispatcher, *gomock.Controller) {
	_ = logger.Initialize(logger.Config{Debug: true})
	ctrl := gomock.NewController(t)
	return NewDispatcher(DefaultConfig(), notifiers, newTestClock(ctrl)).(*dispatcher), ctrl
}

func TestTriggers(t *testing.T) {
	d, _ := newTestDispatcher(t)

	tests := []struct {
		name    string
		current schema.Score
		prior   *schema.Score
		want    []domain.AlertType
	}{
		{"first score above threshold", schema.Score{Composite: 90}, nil, []domain.AlertType{domain.AlertTypeHighScore}},
		{"first score below threshold", schema.Score{Composite: 84}, nil, nil},
		{"exactly at threshold", schema.Score{Composite: 85}, &schema.Score{Composite: 84}, []domain.AlertType{domain.AlertTypeHighScore}},
		{"crossing upward", schema.Score{Composite: 90}, &schema.Score{Composite: 70}, []domain.AlertType{domain.AlertTypeHighScore}},
		{"staying above threshold", schema.Score{Composite: 90}, &schema.Score{Composite: 90}, nil},
		{"velocity spike", schema.Score{ExecutionVelocity: 56}, &schema.Score{ExecutionVelocity: 40}, []domain.AlertType{domain.AlertTypeVelocitySpike}},
		{"velocity exactly at delta", schema.Score{ExecutionVelocity: 55}, &schema.Score{ExecutionVelocity: 40}, []domain.AlertType{domain.AlertTypeVelocitySpike}},
		{"velocity below delta", schema.Score{ExecutionVelocity: 54}, &schema.Score{ExecutionVelocity: 40}, nil},
		{"velocity without prior", schema.Score{ExecutionVelocity: 90}, nil, nil},
		{
			"both triggers",
			schema.Score{Composite: 88, ExecutionVelocity: 80},
			&schema.Score{Composite: 60, ExecutionVelocity: 50},
			[]domain.AlertType{domain.AlertTypeHighScore, domain.AlertTypeVelocitySpike},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []domain.AlertType
			for _, a := range d.triggers(testFounder, tt.current, tt.prior) {
				got = append(got, a.Type)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTriggers_Copy(t *testing.T) {
	d, _ := newTestDispatcher(t)

	fired := d.triggers(testFounder,
		schema.Score{Composite: 90, ExecutionVelocity: 70},
		&schema.Score{Composite: 70, ExecutionVelocity: 50},
	)
	require.Len(t, fired, 2)

	assert.Equal(t, "Composite score hit 90 (threshold: 85)", fired[0].Detail)
	assert.Equal(t, "SCOUT: Ada Labs (@ada) scored 90 — Composite score hit 90 (threshold: 85)", fired[0].Message)
	assert.Equal(t, "SCOUT Alert: Ada Labs — Score 90", fired[0].Subject)

	assert.Equal(t, "Execution velocity jumped +20 pts (50 → 70)", fired[1].Detail)
	assert.Equal(t, "SCOUT Alert: Ada Labs — Momentum Spike", fired[1].Subject)
	assert.Equal(t, "SCOUT Alert: Ada Labs", fired[1].Title())
}

func TestEvaluate_ChannelsAreIndependent(t *testing.T) {
	slack := &fakeNotifier{channel: domain.ChannelSlack, err: errors.New("webhook 500")}
	email := &fakeNotifier{channel: domain.ChannelEmail}
	d, ctrl := newTestDispatcher(t, slack, email)
	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	st.EXPECT().InsertAlertLog(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entry *schema.AlertLog) error {
		assert.Equal(t, uint64(1), entry.FounderID)
		assert.Equal(t, domain.ChannelEmail, entry.Channel)
		assert.Equal(t, domain.AlertTypeHighScore, entry.AlertType)
		assert.Equal(t, testNow, entry.SentAt)
		assert.Contains(t, entry.Message, "scored 92")
		return nil
	})

	sent, err := d.Evaluate(ctx, st, testFounder, schema.Score{Composite: 92}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, slack.sent, 1, "the failing channel was attempted")
	assert.Len(t, email.sent, 1)
}

func TestEvaluate_CountsEveryDelivery(t *testing.T) {
	slack := &fakeNotifier{channel: domain.ChannelSlack}
	email := &fakeNotifier{channel: domain.ChannelEmail}
	d, ctrl := newTestDispatcher(t, slack, email)
	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	st.EXPECT().InsertAlertLog(ctx, gomock.Any()).Return(nil).Times(4)

	sent, err := d.Evaluate(ctx, st, testFounder,
		schema.Score{Composite: 95, ExecutionVelocity: 90},
		&schema.Score{Composite: 50, ExecutionVelocity: 40},
	)
	require.NoError(t, err)
	assert.Equal(t, 4, sent)
	require.Len(t, slack.sent, 2)
	assert.Equal(t, domain.AlertTypeHighScore, slack.sent[0].Type)
	assert.Equal(t, domain.AlertTypeVelocitySpike, slack.sent[1].Type)
	assert.Len(t, email.sent, 2)
}

func TestEvaluate_NoNotifiers(t *testing.T) {
	d, ctrl := newTestDispatcher(t)
	st := mocks.NewMockStore(ctrl)

	sent, err := d.Evaluate(context.Background(), st, testFounder, schema.Score{Composite: 99}, nil)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func openTestStore(t *testing.T) store.Store {
	db, err := store.Open(store.OpenConfig{Driver: store.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store.NewStore(db)
}

func TestDispatchAll_FiresOnlyOnCrossing(t *testing.T) {
	slack := &fakeNotifier{channel: domain.ChannelSlack}
	d, _ := newTestDispatcher(t, slack)
	st := openTestStore(t)
	ctx := context.Background()

	f, err := st.UpsertFounder(ctx, store.UpsertFounderInput{Name: "Ada Labs", Handle: "@ada"})
	require.NoError(t, err)

	// 70 -> 90 -> 90 fires exactly once
	for i, composite := range []int{70, 90, 90} {
		runID := fmt.Sprintf("run-%d", i)
		require.NoError(t, st.InsertScore(ctx, &schema.Score{
			FounderID: f.ID,
			RunID:     runID,
			Composite: composite,
			ScoredAt:  testNow.Add(time.Duration(i) * time.Hour),
		}))
		_, err := d.DispatchAll(ctx, st, runID)
		require.NoError(t, err)
	}

	require.Len(t, slack.sent, 1)
	assert.Equal(t, domain.AlertTypeHighScore, slack.sent[0].Type)
	assert.Equal(t, 90, slack.sent[0].Score.Composite)

	logs, err := st.ListAlertLogs(ctx, f.ID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.ChannelSlack, logs[0].Channel)
	assert.Equal(t, domain.AlertTypeHighScore, logs[0].AlertType)
}

func TestDispatchAll_IsolatesFailures(t *testing.T) {
	slack := &fakeNotifier{channel: domain.ChannelSlack}
	d, ctrl := newTestDispatcher(t, slack)
	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	st.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(store.Store) error) error { return fn(st) },
	).AnyTimes()
	st.EXPECT().ListAllFounders(ctx).Return([]schema.Founder{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	st.EXPECT().GetLatestTwoScores(ctx, uint64(1)).Return(nil, errors.New("connection reset"))
	st.EXPECT().GetLatestTwoScores(ctx, uint64(2)).Return(nil, nil)
	st.EXPECT().GetLatestTwoScores(ctx, uint64(3)).Return([]schema.Score{
		{FounderID: 3, RunID: "run-2", Composite: 88, ExecutionVelocity: 60},
		{FounderID: 3, RunID: "run-1", Composite: 80, ExecutionVelocity: 50},
	}, nil)
	st.EXPECT().InsertAlertLog(ctx, gomock.Any()).Return(nil)

	sent, err := d.DispatchAll(ctx, st, "run-2")
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, slack.sent, 1)
	assert.Equal(t, uint64(3), slack.sent[0].Founder.ID)
}

func TestDispatchAll_SkipsScoresFromEarlierRuns(t *testing.T) {
	slack := &fakeNotifier{channel: domain.ChannelSlack}
	d, _ := newTestDispatcher(t, slack)
	st := openTestStore(t)
	ctx := context.Background()

	f, err := st.UpsertFounder(ctx, store.UpsertFounderInput{Name: "Ada Labs", Handle: "@ada"})
	require.NoError(t, err)
	require.NoError(t, st.InsertScore(ctx, &schema.Score{FounderID: f.ID, RunID: "run-1", Composite: 70, ExecutionVelocity: 40, ScoredAt: testNow}))
	require.NoError(t, st.InsertScore(ctx, &schema.Score{FounderID: f.ID, RunID: "run-2", Composite: 90, ExecutionVelocity: 60, ScoredAt: testNow.Add(time.Hour)}))

	sent, err := d.DispatchAll(ctx, st, "run-2")
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	// run-3 wrote no score for the founder, so the 70 -> 90 pair is not evaluated again
	sent, err = d.DispatchAll(ctx, st, "run-3")
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Len(t, slack.sent, 2)

	logs, err := st.ListAlertLogs(ctx, f.ID, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestEvaluate_KeepsDeliveringWhenLogInsertFails(t *testing.T) {
	slack := &fakeNotifier{channel: domain.ChannelSlack}
	email := &fakeNotifier{channel: domain.ChannelEmail}
	d, ctrl := newTestDispatcher(t, slack, email)
	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	st.EXPECT().InsertAlertLog(ctx, gomock.Any()).Return(errors.New("disk full")).Times(2)

	sent, err := d.Evaluate(ctx, st, testFounder, schema.Score{Composite: 92}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Len(t, slack.sent, 1)
	assert.Len(t, email.sent, 1)
}

func TestSlackNotifier_Send(t *testing.T) {
	_ = logger.Initialize(logger.Config{Debug: true})

	var payload slackPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(b, &payload))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	n, err := NewSlackNotifier(SlackConfig{WebhookURL: server.URL}, adapter.NewHTTPClient(5*time.Second), adapter.NewJSON(), NewLocalLimiter(100))
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelSlack, n.Channel())

	alert := Alert{
		Type:    domain.AlertTypeHighScore,
		Founder: testFounder,
		Score:   schema.Score{Composite: 91, FounderQuality: 80, ExecutionVelocity: 70.4, MarketConviction: 60, EarlyTraction: 50, DealAvailability: 40},
		Detail:  "Composite score hit 91 (threshold: 85)",
		Message: "SCOUT: Ada Labs (@ada) scored 91",
	}
	require.NoError(t, n.Send(context.Background(), alert))

	assert.Equal(t, "SCOUT: Ada Labs (@ada) scored 91", payload.Text)
	require.Len(t, payload.Blocks, 2)
	assert.Equal(t, "header", payload.Blocks[0].Type)
	assert.Equal(t, "SCOUT Alert: Ada Labs", payload.Blocks[0].Text.Text)
	assert.Equal(t, "mrkdwn", payload.Blocks[1].Text.Type)
	assert.Contains(t, payload.Blocks[1].Text.Text, "*Composite Score: 91*")
	assert.Contains(t, payload.Blocks[1].Text.Text, "Handle: `@ada`")
	assert.Contains(t, payload.Blocks[1].Text.Text, "Founder Quality: 80 | Execution: 70 | Conviction: 60 | Traction: 50 | Availability: 40")
}

func TestSlackNotifier_PostError(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().Post(gomock.Any(), "https://hooks.example.com/x", "application/json", gomock.Any()).
		Return(nil, errors.New("unexpected status code 500"))

	n, err := NewSlackNotifier(SlackConfig{WebhookURL: "https://hooks.example.com/x"}, httpClient, adapter.NewJSON(), nil)
	require.NoError(t, err)

	err = n.Send(context.Background(), Alert{Founder: testFounder})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSlackNotifier_Disabled(t *testing.T) {
	_, err := NewSlackNotifier(SlackConfig{}, nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotifierDisabled)
}

func TestRedisLimiter_WaitsForRetryAfter(t *testing.T) {
	ctrl := gomock.NewController(t)
	rl := mocks.NewMockRedisRateLimiter(ctrl)
	clock := mocks.NewMockClock(ctrl)
	ctx := context.Background()

	released := make(chan time.Time)
	close(released)

	gomock.InOrder(
		rl.EXPECT().Allow(ctx, "scout:slack", redis_rate.PerSecond(2)).Return(&redis_rate.Result{Allowed: 0, RetryAfter: 400 * time.Millisecond}, nil),
		clock.EXPECT().After(400*time.Millisecond).Return(released),
		rl.EXPECT().Allow(ctx, "scout:slack", redis_rate.PerSecond(2)).Return(&redis_rate.Result{Allowed: 1}, nil),
	)

	l := NewRedisLimiter(rl, "scout:slack", 2, clock)
	require.NoError(t, l.Wait(ctx))
}

func TestRedisLimit(t *testing.T) {
	assert.Equal(t, redis_rate.PerSecond(3), redisLimit(3))
	assert.Equal(t, redis_rate.PerMinute(30), redisLimit(0.5))
	assert.Equal(t, redis_rate.PerMinute(1), redisLimit(0.001))
}

func TestEmailNotifier_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSMTPSender(ctrl)

	n, err := NewEmailNotifier(EmailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "scout@example.com",
		Password: "secret",
		To:       []string{"partners@example.com"},
	}, sender)
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelEmail, n.Channel())

	sender.EXPECT().SendMail("smtp.example.com:587", gomock.Not(gomock.Nil()), "scout@example.com", []string{"partners@example.com"}, gomock.Any()).
		DoAndReturn(func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
			text := string(msg)
			assert.Contains(t, text, "From: scout@example.com\r\n")
			assert.Contains(t, text, "To: partners@example.com\r\n")
			assert.Contains(t, text, "Subject: SCOUT Alert: Evil Bcc: victim@example.com — Score 90\r\n")
			assert.NotContains(t, text, "\r\nBcc:")
			assert.Contains(t, text, "\r\n\r\nSCOUT: Evil scored 90\r\n")
			return nil
		})

	err = n.Send(context.Background(), Alert{
		Founder: schema.Founder{Name: "Evil\r\nBcc: victim@example.com"},
		Subject: "SCOUT Alert: Evil\r\nBcc: victim@example.com — Score 90",
		Message: "SCOUT: Evil scored 90",
	})
	require.NoError(t, err)
}

func TestEmailNotifier_Disabled(t *testing.T) {
	_, err := NewEmailNotifier(EmailConfig{Host: "smtp.example.com"}, nil)
	assert.ErrorIs(t, err, domain.ErrNotifierDisabled)

	_, err = NewEmailNotifier(EmailConfig{To: []string{"a@example.com"}}, nil)
	assert.ErrorIs(t, err, domain.ErrNotifierDisabled)

	_, err = NewEmailNotifier(EmailConfig{Host: "smtp.example.com", To: []string{"a@example.com"}}, nil)
	assert.ErrorIs(t, err, domain.ErrNotifierDisabled, "no sender address")
}

func TestSanitizeHeader(t *testing.T) {
	assert.Equal(t, "a b", sanitizeHeader("a\r\nb"))
	assert.Equal(t, "plain", sanitizeHeader("plain"))
	assert.False(t, strings.ContainsAny(sanitizeHeader("x\ny\rz"), "\r\n"))
}
