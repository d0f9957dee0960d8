package anomaly

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/logger"
	"github.com/feral-file/founder-scout/internal/mocks"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// testClock is a MockClock whose time can be moved between runs
type testClock struct {
	*mocks.MockClock
	now time.Time
}

func newTestDetector(t *testing.T) (*detector, *testClock, *gomock.Controller) {
	_ = logger.Initialize(logger.Config{Debug: true})
	ctrl := gomock.NewController(t)
	clock := &testClock{MockClock: mocks.NewMockClock(ctrl), now: testNow}
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return clock.now }).AnyTimes()
	return NewDetector(DefaultConfig(), clock).(*detector), clock, ctrl
}

func TestCheckCommitVelocity(t *testing.T) {
	d, _, _ := newTestDetector(t)
	tests := []struct {
		name          string
		prior, latest int
		fires         bool
	}{
		{"base below minimum never fires", 4, 400, false},
		{"zero base", 0, 50, false},
		{"exactly double", 100, 200, true},
		{"just under double", 100, 199, false},
		{"minimum base doubled", 5, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := d.checkCommitVelocity(
				schema.StatsSnapshot{GitHubCommits90d: tt.latest},
				schema.StatsSnapshot{GitHubCommits90d: tt.prior},
			)
			if !tt.fires {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.Equal(t, domain.EventTypeCommitSpike, c.eventType)
			assert.Equal(t, float64(tt.prior), *c.before)
			assert.Equal(t, float64(tt.latest), *c.after)
		})
	}

	c := d.checkCommitVelocity(schema.StatsSnapshot{GitHubCommits90d: 200}, schema.StatsSnapshot{GitHubCommits90d: 100})
	assert.Equal(t, "Commit velocity 2.0× (100 → 200 commits/90d)", c.signal)
}

func TestCheckStarSpike(t *testing.T) {
	d, _, _ := newTestDetector(t)
	assert.NotNil(t, d.checkStarSpike(schema.StatsSnapshot{GitHubStars: 65}, schema.StatsSnapshot{GitHubStars: 50}))
	assert.Nil(t, d.checkStarSpike(schema.StatsSnapshot{GitHubStars: 64}, schema.StatsSnapshot{GitHubStars: 50}), "gain below minimum")
	assert.Nil(t, d.checkStarSpike(schema.StatsSnapshot{GitHubStars: 300}, schema.StatsSnapshot{GitHubStars: 100}), "already discovered")

	c := d.checkStarSpike(schema.StatsSnapshot{GitHubStars: 40}, schema.StatsSnapshot{GitHubStars: 10})
	require.NotNil(t, c)
	assert.Equal(t, "Star spike: +30 stars (10 → 40 total)", c.signal)
}

func TestCheckForumSpike(t *testing.T) {
	d, _, _ := newTestDetector(t)
	assert.NotNil(t, d.checkForumSpike(schema.StatsSnapshot{HNTopScore: 150}, schema.StatsSnapshot{HNTopScore: 90}))
	assert.NotNil(t, d.checkForumSpike(schema.StatsSnapshot{HNTopScore: 100}, schema.StatsSnapshot{HNTopScore: 0}))
	assert.Nil(t, d.checkForumSpike(schema.StatsSnapshot{HNTopScore: 150}, schema.StatsSnapshot{HNTopScore: 150}), "not a new best")
	assert.Nil(t, d.checkForumSpike(schema.StatsSnapshot{HNTopScore: 99}, schema.StatsSnapshot{HNTopScore: 10}), "below threshold")
}

func TestCheckScoreCrossing(t *testing.T) {
	d, _, _ := newTestDetector(t)
	c := d.checkScoreCrossing(schema.Score{Composite: 60}, schema.Score{Composite: 55})
	require.NotNil(t, c)
	assert.Equal(t, "Composite score crossed 60 (55 → 60)", c.signal)
	assert.JSONEq(t, `{"threshold":60}`, mustJSON(t, c.metadata))

	assert.Nil(t, d.checkScoreCrossing(schema.Score{Composite: 70}, schema.Score{Composite: 60}), "already above")
	assert.Nil(t, d.checkScoreCrossing(schema.Score{Composite: 59}, schema.Score{Composite: 50}), "still below")
}

func TestCheckCrossPlatform(t *testing.T) {
	d, _, _ := newTestDetector(t)
	c := d.checkCrossPlatform([]domain.SignalSource{domain.SignalSourceHN, domain.SignalSourceProductHunt, domain.SignalSourceGitHub})
	require.NotNil(t, c)
	assert.Equal(t, "Active across platforms: github and hn", c.signal)
	assert.Nil(t, c.before)

	assert.Nil(t, d.checkCrossPlatform([]domain.SignalSource{domain.SignalSourceGitHub}))
	assert.Nil(t, d.checkCrossPlatform(nil))
}

func TestCheckThemes(t *testing.T) {
	d, _, _ := newTestDetector(t)

	fresh := schema.Theme{Name: "Edge Inference", BuilderCount: 4, FirstDetected: testNow.Add(-time.Hour)}
	c := d.checkNewTheme(fresh)
	require.NotNil(t, c)
	assert.Equal(t, "New theme detected: 'Edge Inference' (4 founders converging)", c.signal)
	assert.Nil(t, c.before)
	assert.Equal(t, 4.0, *c.after)
	assert.Nil(t, d.checkNewTheme(schema.Theme{FirstDetected: testNow.Add(-25 * time.Hour)}))

	theme := schema.Theme{Name: "Edge Inference", BuilderCount: 6}
	c = d.checkThemeSpike(theme, &schema.ThemeHistory{BuilderCount: 4})
	require.NotNil(t, c)
	assert.Equal(t, "Theme 'Edge Inference' grew 50% WoW (4 → 6 builders)", c.signal)
	assert.Nil(t, d.checkThemeSpike(schema.Theme{BuilderCount: 5}, &schema.ThemeHistory{BuilderCount: 4}))
	assert.Nil(t, d.checkThemeSpike(theme, nil))
	assert.Nil(t, d.checkThemeSpike(theme, &schema.ThemeHistory{BuilderCount: 0}))
}

func TestDedupSince(t *testing.T) {
	d, _, _ := newTestDetector(t)
	assert.Equal(t, testNow.Add(-24*time.Hour), d.dedupSince(domain.EventTypeCommitSpike))
	assert.Equal(t, testNow.Add(-72*time.Hour), d.dedupSince(domain.EventTypeNewTheme))
	assert.Equal(t, testNow.Add(-168*time.Hour), d.dedupSince(domain.EventTypeThemeSpike))
	assert.True(t, d.dedupSince(domain.EventTypeCrossPlatform).IsZero(), "zero window means ever")
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

func TestDetectAll_DedupWindow(t *testing.T) {
	d, clock, _ := newTestDetector(t)
	st := openTestStore(t)
	ctx := context.Background()

	f, err := st.UpsertFounder(ctx, store.UpsertFounderInput{Name: "Ada", Handle: "ada"})
	require.NoError(t, err)
	require.NoError(t, st.AddStatsSnapshot(ctx, &schema.StatsSnapshot{FounderID: f.ID, GitHubCommits90d: 100, CapturedAt: testNow.Add(-48 * time.Hour)}))
	require.NoError(t, st.AddStatsSnapshot(ctx, &schema.StatsSnapshot{FounderID: f.ID, GitHubCommits90d: 200, CapturedAt: testNow.Add(-time.Hour)}))
	for _, src := range []domain.SignalSource{domain.SignalSourceGitHub, domain.SignalSourceHN} {
		_, err := st.AddSignal(ctx, &schema.Signal{FounderID: f.ID, Source: src, Label: "seen on " + string(src), DetectedAt: testNow.Add(-time.Hour)})
		require.NoError(t, err)
	}

	events, err := d.DetectAll(ctx, st)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.ElementsMatch(t,
		[]domain.EventType{domain.EventTypeCommitSpike, domain.EventTypeCrossPlatform},
		[]domain.EventType{events[0].EventType, events[1].EventType})

	// Same condition inside the window fires nothing
	clock.now = testNow.Add(23 * time.Hour)
	events, err = d.DetectAll(ctx, st)
	require.NoError(t, err)
	assert.Empty(t, events)

	// Past the 24h window the commit spike fires again; cross-platform never repeats
	clock.now = testNow.Add(25 * time.Hour)
	events, err = d.DetectAll(ctx, st)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeCommitSpike, events[0].EventType)

	clock.now = testNow.Add(365 * 24 * time.Hour)
	events, err = d.DetectAll(ctx, st)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeCommitSpike, events[0].EventType)

	kind := domain.EntityTypeFounder
	stored, err := st.ListEmergenceEvents(ctx, store.EventFilter{EntityType: &kind, EntityID: &f.ID})
	require.NoError(t, err)
	assert.Len(t, stored, 4)
}

func TestDetectAll_IsolatesFailures(t *testing.T) {
	d, _, ctrl := newTestDetector(t)
	st := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	st.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(store.Store) error) error { return fn(st) },
	).AnyTimes()
	st.EXPECT().ListAllFounders(ctx).Return([]schema.Founder{{ID: 1}, {ID: 2}}, nil)
	st.EXPECT().GetLatestTwoStats(ctx, uint64(1)).Return(nil, errors.New("connection reset"))
	st.EXPECT().GetLatestTwoStats(ctx, uint64(2)).Return([]schema.StatsSnapshot{
		{GitHubStars: 60}, {GitHubStars: 20},
	}, nil)
	st.EXPECT().GetLatestTwoScores(ctx, uint64(2)).Return(nil, nil)
	st.EXPECT().ListSignalSources(ctx, uint64(2)).Return(nil, nil)
	st.EXPECT().HasRecentEvent(ctx, uint64(2), domain.EntityTypeFounder, domain.EventTypeStarSpike, testNow.Add(-24*time.Hour)).Return(false, nil)
	st.EXPECT().InsertEmergenceEvent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *schema.EmergenceEvent) error {
		e.ID = 9
		return nil
	})

	st.EXPECT().ListThemes(ctx).Return([]schema.Theme{
		{ID: 3, Name: "Broken"},
		{ID: 4, Name: "Fresh", BuilderCount: 3, FirstDetected: testNow.Add(-2 * time.Hour)},
	}, nil)
	st.EXPECT().GetLatestThemeHistoryBefore(ctx, uint64(3), testNow.Add(-domain.WEEK)).Return(nil, errors.New("timeout"))
	st.EXPECT().GetLatestThemeHistoryBefore(ctx, uint64(4), testNow.Add(-domain.WEEK)).Return(nil, nil)
	st.EXPECT().HasRecentEvent(ctx, uint64(4), domain.EntityTypeTheme, domain.EventTypeNewTheme, testNow.Add(-72*time.Hour)).Return(true, nil)

	events, err := d.DetectAll(ctx, st)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(9), events[0].ID)
	assert.Equal(t, domain.EventTypeStarSpike, events[0].EventType)
	assert.Equal(t, testNow, events[0].DetectedAt)
}

func mustJSON(t *testing.T, v interface{}) string {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
