package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/founder-scout/internal/api/shared/executor"
	apierrors "github.com/feral-file/founder-scout/internal/api/shared/errors"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/mocks"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func openTestStore(t *testing.T) store.Store {
	_ = logger.Initialize(logger.Config{Debug: true})
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

// seedFounder creates a founder with the given composite scores, oldest first
func seedFounder(t *testing.T, st store.Store, handle string, status domain.FounderStatus, composites ...int) *schema.Founder {
	ctx := context.Background()
	f, err := st.UpsertFounder(ctx, store.UpsertFounderInput{
		Name:   "Founder " + handle,
		Handle: handle,
		Status: status,
		Tags:   []string{"devtools"},
	})
	require.NoError(t, err)

	for i, c := range composites {
		require.NoError(t, st.InsertScore(ctx, &schema.Score{
			FounderID: f.ID,
			Composite: c,
			ScoredAt:  testNow.Add(time.Duration(i) * time.Hour),
		}))
	}
	return f
}

func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) {
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected an APIError, got %v", err)
	assert.Equal(t, code, apiErr.Code)
}

func TestListFounders_RankedWithPaging(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	seedFounder(t, st, "@low", domain.FounderStatusToContact, 40)
	seedFounder(t, st, "@unscored", domain.FounderStatusToContact)
	seedFounder(t, st, "@high", domain.FounderStatusWatching, 95, 91)
	seedFounder(t, st, "@mid", domain.FounderStatusToContact, 72)

	exec := executor.NewExecutor(st, nil)

	page, err := exec.ListFounders(ctx, nil, nil, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), page.Total)
	require.Len(t, page.Founders, 2)
	assert.Equal(t, "@high", page.Founders[0].Handle)
	assert.Equal(t, 91, page.Founders[0].Score.Composite, "the latest score ranks")
	assert.Equal(t, []string{"devtools"}, page.Founders[0].Tags)
	assert.Equal(t, "@mid", page.Founders[1].Handle)
	require.NotNil(t, page.NextOffset)
	assert.Equal(t, 2, *page.NextOffset)

	page, err = exec.ListFounders(ctx, nil, nil, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Founders, 2)
	assert.Equal(t, "@unscored", page.Founders[1].Handle, "unscored founders sink")
	assert.Nil(t, page.Founders[1].Score)
	assert.Nil(t, page.NextOffset)

	minScore := 50
	page, err = exec.ListFounders(ctx, []domain.FounderStatus{domain.FounderStatusToContact}, &minScore, 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Founders, 1)
	assert.Equal(t, "@mid", page.Founders[0].Handle)
}

func TestGetFounder_Detail(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	f := seedFounder(t, st, "@ada", domain.FounderStatusWatching, 70, 88)

	require.NoError(t, st.AddStatsSnapshot(ctx, &schema.StatsSnapshot{FounderID: f.ID, GitHubStars: 420, CapturedAt: testNow}))
	_, err := st.AddSignal(ctx, &schema.Signal{FounderID: f.ID, Source: domain.SignalSourceGitHub, Label: "Shipped v1", DetectedAt: testNow})
	require.NoError(t, err)
	_, err = st.AddSignal(ctx, &schema.Signal{FounderID: f.ID, Source: domain.SignalSourceHN, Label: "Show HN", Strong: true, DetectedAt: testNow.Add(time.Hour)})
	require.NoError(t, err)

	theme := &schema.Theme{Name: "Agent Infra", EmergenceScore: 80, FirstDetected: testNow, UpdatedAt: testNow}
	require.NoError(t, st.CreateTheme(ctx, theme))
	require.NoError(t, st.ReplaceThemeMembers(ctx, theme.ID, []uint64{f.ID}, 1.0, testNow))
	require.NoError(t, st.InsertAlertLog(ctx, &schema.AlertLog{
		FounderID: f.ID, AlertType: domain.AlertTypeHighScore, Channel: domain.ChannelSlack, Message: "SCOUT: Ada", SentAt: testNow,
	}))

	detail, err := executor.NewExecutor(st, nil).GetFounder(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "@ada", detail.Handle)
	require.NotNil(t, detail.Score)
	assert.Equal(t, 88, detail.Score.Composite)
	require.Len(t, detail.ScoreHistory, 2)
	assert.Equal(t, 88, detail.ScoreHistory[0].Composite, "newest first")
	require.NotNil(t, detail.Stats)
	assert.Equal(t, 420, detail.Stats.GitHubStars)
	require.Len(t, detail.Signals, 2)
	assert.Equal(t, "Show HN", detail.Signals[0].Label)
	assert.ElementsMatch(t, []domain.SignalSource{domain.SignalSourceGitHub, domain.SignalSourceHN}, detail.Sources)
	require.Len(t, detail.Themes, 1)
	assert.Equal(t, "Agent Infra", detail.Themes[0].Name)
	require.Len(t, detail.Alerts, 1)
	assert.Equal(t, domain.ChannelSlack, detail.Alerts[0].Channel)
}

func TestGetFounder_Absent(t *testing.T) {
	st := openTestStore(t)

	detail, err := executor.NewExecutor(st, nil).GetFounder(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestUpdateFounderStatus(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	f := seedFounder(t, st, "@ada", domain.FounderStatusToContact)
	exec := executor.NewExecutor(st, nil)

	resp, err := exec.UpdateFounderStatus(ctx, f.ID, domain.FounderStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, domain.FounderStatusContacted, resp.Status)

	stored, err := st.GetFounder(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FounderStatusContacted, stored.Status)

	_, err = exec.UpdateFounderStatus(ctx, 999, domain.FounderStatusPass)
	requireAPIError(t, err, apierrors.ErrCodeNotFound)

	_, err = exec.UpdateFounderStatus(ctx, f.ID, domain.FounderStatus("archived"))
	requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
}

func TestGetOverview(t *testing.T) {
	st := openTestStore(t)
	seedFounder(t, st, "@a", domain.FounderStatusToContact, 95)
	seedFounder(t, st, "@b", domain.FounderStatusWatching, 90)
	seedFounder(t, st, "@c", domain.FounderStatusToContact, 60)
	seedFounder(t, st, "@d", domain.FounderStatusPass)

	overview, err := executor.NewExecutor(st, nil).GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, overview.Total)
	assert.Equal(t, 2, overview.Strong)
	assert.Equal(t, 2, overview.ToContact)
	assert.Equal(t, 82, overview.AvgScore, "unscored founders are excluded from the average")
}

func TestGetTheme(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	a := seedFounder(t, st, "@a", domain.FounderStatusToContact)
	b := seedFounder(t, st, "@b", domain.FounderStatusToContact)

	theme := &schema.Theme{
		Name:          "Agent Infra",
		BuilderCount:  2,
		Keywords:      datatypes.JSON(`["agent","infra"]`),
		FirstDetected: testNow,
		UpdatedAt:     testNow,
	}
	require.NoError(t, st.CreateTheme(ctx, theme))
	require.NoError(t, st.ReplaceThemeMembers(ctx, theme.ID, []uint64{a.ID, b.ID}, 1.0, testNow))
	require.NoError(t, st.AddThemeHistory(ctx, &schema.ThemeHistory{ThemeID: theme.ID, EmergenceScore: 40, BuilderCount: 1, CapturedAt: testNow.Add(-7 * 24 * time.Hour)}))
	require.NoError(t, st.AddThemeHistory(ctx, &schema.ThemeHistory{ThemeID: theme.ID, EmergenceScore: 60, BuilderCount: 2, CapturedAt: testNow}))

	exec := executor.NewExecutor(st, nil)
	detail, err := exec.GetTheme(ctx, theme.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, []string{"agent", "infra"}, detail.Keywords)
	require.Len(t, detail.Members, 2)
	assert.ElementsMatch(t, []string{"@a", "@b"}, []string{detail.Members[0].Handle, detail.Members[1].Handle})
	require.Len(t, detail.History, 2)
	assert.Equal(t, 60, detail.History[0].EmergenceScore)

	missing, err := exec.GetTheme(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListEventsAndRuns(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.InsertEmergenceEvent(ctx, &schema.EmergenceEvent{
		EventType: domain.EventTypeNewTheme, EntityType: domain.EntityTypeTheme, EntityID: 1, Signal: "New theme", DetectedAt: testNow,
	}))
	require.NoError(t, st.InsertEmergenceEvent(ctx, &schema.EmergenceEvent{
		EventType: domain.EventTypeStarSpike, EntityType: domain.EntityTypeFounder, EntityID: 2, Signal: "Stars", DetectedAt: testNow.Add(time.Hour),
		Metadata: datatypes.JSON(`{"gain":30}`),
	}))

	run := &schema.PipelineRun{ID: "01JRUN", Status: domain.RunStatusRunning, StartedAt: testNow}
	require.NoError(t, st.CreatePipelineRun(ctx, run))
	run.Status = domain.RunStatusPartial
	run.PhaseErrors = datatypes.JSON(`{"cluster":"timeout"}`)
	require.NoError(t, st.FinishPipelineRun(ctx, run))

	exec := executor.NewExecutor(st, nil)

	events, err := exec.ListEvents(ctx, nil, 0)
	require.NoError(t, err)
	require.Len(t, events.Events, 2)
	assert.Equal(t, domain.EventTypeStarSpike, events.Events[0].EventType)
	assert.JSONEq(t, `{"gain":30}`, string(events.Events[0].Metadata))

	theme := domain.EntityTypeTheme
	events, err = exec.ListEvents(ctx, &theme, 10)
	require.NoError(t, err)
	require.Len(t, events.Events, 1)

	runs, err := exec.ListPipelineRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs.Runs, 1)
	assert.Equal(t, domain.RunStatusPartial, runs.Runs[0].Status)
	assert.Equal(t, map[string]string{"cluster": "timeout"}, runs.Runs[0].PhaseErrors)
}

func TestTriggerPipelineRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPipeline(ctrl)
	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()
	exec := executor.NewExecutor(st, p)

	gomock.InOrder(
		p.EXPECT().RunAsync(ctx).Return("01JRUN", nil),
		p.EXPECT().RunAsync(ctx).Return("", domain.ErrPipelineLocked),
		p.EXPECT().RunAsync(ctx).Return("", errors.New("connection refused")),
	)

	resp, err := exec.TriggerPipelineRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "01JRUN", resp.RunID)
	assert.Equal(t, domain.RunStatusRunning, resp.Status)

	_, err = exec.TriggerPipelineRun(ctx)
	requireAPIError(t, err, apierrors.ErrCodeConflict)

	_, err = exec.TriggerPipelineRun(ctx)
	requireAPIError(t, err, apierrors.ErrCodeInternalError)

	_, err = executor.NewExecutor(st, nil).TriggerPipelineRun(ctx)
	requireAPIError(t, err, apierrors.ErrCodeInternalError)
}

func TestDatabaseErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	st.EXPECT().ListThemes(ctx).Return(nil, errors.New("connection refused"))
	_, err := executor.NewExecutor(st, nil).ListThemes(ctx)
	requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
}
