package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// testNow returns a fixed UTC time truncated to the precision both backends keep
func testNow() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

// buildTestFounder creates a founder input
func buildTestFounder(handle string, tags ...string) UpsertFounderInput {
	return UpsertFounderInput{
		Name:                "Founder " + handle,
		Handle:              handle,
		Bio:                 "Ex-Stripe engineer building payment infra",
		Domain:              "fintech",
		Stage:               "pre-seed",
		Company:             handle + " Inc",
		Founded:             "2024",
		YCAlumniConnections: 2,
		Tags:                tags,
	}
}

// mustCreateFounder upserts a founder and fails the test on error
func mustCreateFounder(t *testing.T, s Store, handle string, tags ...string) *schema.Founder {
	founder, err := s.UpsertFounder(context.Background(), buildTestFounder(handle, tags...))
	require.NoError(t, err)
	require.NotNil(t, founder)
	return founder
}

// buildTestScore creates a score with the given composite
func buildTestScore(founderID uint64, composite int, scoredAt time.Time) *schema.Score {
	return &schema.Score{
		FounderID:         founderID,
		FounderQuality:    41.25,
		ExecutionVelocity: 56.5,
		MarketConviction:  33.333,
		EarlyTraction:     12.75,
		DealAvailability:  80,
		Composite:         composite,
		RunID:             "01HZX4Y0000000000000000000",
		ScoredAt:          scoredAt,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// =============================================================================
// Founders
// =============================================================================

func testUpsertFounder(t *testing.T, s Store) {
	ctx := context.Background()

	founder := mustCreateFounder(t, s, "alice", "payments", "latam")
	assert.NotZero(t, founder.ID)
	assert.Equal(t, domain.FounderStatusToContact, founder.Status)

	// Operator moves the founder along, re-ingestion must not reset status
	require.NoError(t, s.UpdateFounderStatus(ctx, founder.ID, domain.FounderStatusWatching))

	input := buildTestFounder("alice", "payments", "b2b")
	input.Bio = "Updated bio"
	updated, err := s.UpsertFounder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, founder.ID, updated.ID)
	assert.Equal(t, "Updated bio", updated.Bio)
	assert.Equal(t, domain.FounderStatusWatching, updated.Status)

	tags, err := s.ListFounderTags(ctx, []uint64{founder.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"payments", "b2b"}, tags[founder.ID])

	got, err := s.GetFounder(ctx, founder.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Handle)

	missing, err := s.GetFounder(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = s.UpsertFounder(ctx, UpsertFounderInput{Handle: "bad", Name: "Bad", Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidFounderStatus)
}

func testUpdateFounderStatus(t *testing.T, s Store) {
	ctx := context.Background()
	founder := mustCreateFounder(t, s, "bob")

	require.NoError(t, s.UpdateFounderStatus(ctx, founder.ID, domain.FounderStatusContacted))
	got, err := s.GetFounder(ctx, founder.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FounderStatusContacted, got.Status)

	assert.ErrorIs(t, s.UpdateFounderStatus(ctx, founder.ID, "archived"), domain.ErrInvalidFounderStatus)
	assert.ErrorIs(t, s.UpdateFounderStatus(ctx, 999999, domain.FounderStatusPass), domain.ErrFounderNotFound)

	require.NoError(t, s.UpdateFounderIncubator(ctx, founder.ID, "YC W26"))
	got, err = s.GetFounder(ctx, founder.ID)
	require.NoError(t, err)
	assert.Equal(t, "YC W26", got.Incubator)
}

func testListFounders(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()

	low := mustCreateFounder(t, s, "low")
	high := mustCreateFounder(t, s, "high")
	unscored := mustCreateFounder(t, s, "unscored")

	require.NoError(t, s.InsertScore(ctx, buildTestScore(low.ID, 90, now.Add(-time.Hour))))
	require.NoError(t, s.InsertScore(ctx, buildTestScore(low.ID, 40, now)))
	require.NoError(t, s.InsertScore(ctx, buildTestScore(high.ID, 75, now)))

	results, total, err := s.ListFounders(ctx, FounderFilter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, results, 3)
	assert.Equal(t, high.ID, results[0].Founder.ID)
	assert.Equal(t, 75, results[0].Score.Composite)
	assert.Equal(t, low.ID, results[1].Founder.ID)
	assert.Equal(t, 40, results[1].Score.Composite, "latest score wins over a higher older one")
	assert.Equal(t, unscored.ID, results[2].Founder.ID)
	assert.Nil(t, results[2].Score)

	minScore := 50
	results, total, err = s.ListFounders(ctx, FounderFilter{MinComposite: &minScore})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, high.ID, results[0].Founder.ID)

	results, total, err = s.ListFounders(ctx, FounderFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, results, 1)
	assert.Equal(t, low.ID, results[0].Founder.ID)

	require.NoError(t, s.UpdateFounderStatus(ctx, unscored.ID, domain.FounderStatusPass))
	results, _, err = s.ListFounders(ctx, FounderFilter{Statuses: []domain.FounderStatus{domain.FounderStatusPass}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, unscored.ID, results[0].Founder.ID)

	all, err := s.ListAllFounders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// =============================================================================
// Stats and signals
// =============================================================================

func testStatsSnapshots(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()
	founder := mustCreateFounder(t, s, "stats")

	latest, err := s.GetLatestStats(ctx, founder.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	for i, commits := range []int{10, 20, 30} {
		require.NoError(t, s.AddStatsSnapshot(ctx, &schema.StatsSnapshot{
			FounderID:        founder.ID,
			GitHubCommits90d: commits,
			GitHubStars:      commits * 2,
			CapturedAt:       now.Add(time.Duration(i) * time.Hour),
		}))
	}

	two, err := s.GetLatestTwoStats(ctx, founder.ID)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, 30, two[0].GitHubCommits90d)
	assert.Equal(t, 20, two[1].GitHubCommits90d)

	latest, err = s.GetLatestStats(ctx, founder.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 60, latest.GitHubStars)
}

func testSignals(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()
	founder := mustCreateFounder(t, s, "signals")

	inserted, err := s.AddSignal(ctx, &schema.Signal{
		FounderID: founder.ID, Source: domain.SignalSourceGitHub, Label: "repo hit 500 stars", DetectedAt: now,
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same label within 24h is dropped
	inserted, err = s.AddSignal(ctx, &schema.Signal{
		FounderID: founder.ID, Source: domain.SignalSourceGitHub, Label: "repo hit 500 stars", DetectedAt: now.Add(23 * time.Hour),
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	// Outside the window it is accepted again
	inserted, err = s.AddSignal(ctx, &schema.Signal{
		FounderID: founder.ID, Source: domain.SignalSourceGitHub, Label: "repo hit 500 stars", DetectedAt: now.Add(25 * time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.AddSignal(ctx, &schema.Signal{
		FounderID: founder.ID, Source: domain.SignalSourceHN, Label: "Show HN: ledger", Strong: true, DetectedAt: now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	recent, err := s.ListRecentSignals(ctx, founder.ID, now.Add(30*time.Minute))
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "repo hit 500 stars", recent[0].Label)
	assert.True(t, recent[1].Strong)

	sources, err := s.ListSignalSources(ctx, founder.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.SignalSource{domain.SignalSourceGitHub, domain.SignalSourceHN}, sources)

	count, err := s.CountSignalsSince(ctx, []uint64{founder.ID}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = s.CountSignalsSince(ctx, nil, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// =============================================================================
// Scores
// =============================================================================

func testScores(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()
	founder := mustCreateFounder(t, s, "scores")

	first := buildTestScore(founder.ID, 70, now)
	second := buildTestScore(founder.ID, 90, now.Add(time.Hour))
	third := buildTestScore(founder.ID, 91, now.Add(2*time.Hour))
	for _, sc := range []*schema.Score{first, second, third} {
		require.NoError(t, s.InsertScore(ctx, sc))
	}

	two, err := s.GetLatestTwoScores(ctx, founder.ID)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, 91, two[0].Composite)
	assert.Equal(t, 90, two[1].Composite)

	// Fields survive the round trip exactly
	got := two[0]
	assert.Equal(t, third.FounderQuality, got.FounderQuality)
	assert.Equal(t, third.ExecutionVelocity, got.ExecutionVelocity)
	assert.Equal(t, third.MarketConviction, got.MarketConviction)
	assert.Equal(t, third.EarlyTraction, got.EarlyTraction)
	assert.Equal(t, third.DealAvailability, got.DealAvailability)
	assert.Equal(t, third.RunID, got.RunID)
	assert.True(t, third.ScoredAt.Equal(got.ScoredAt))

	history, err := s.ListScoreHistory(ctx, founder.ID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

// =============================================================================
// Embeddings
// =============================================================================

func testEmbeddings(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()
	a := mustCreateFounder(t, s, "emb-a")
	b := mustCreateFounder(t, s, "emb-b")

	vec := []float32{0.1, -0.25, 0.333333, 1e-7}
	require.NoError(t, s.UpsertEmbedding(ctx, &schema.Embedding{
		FounderID: a.ID, Vector: schema.NewVector(vec), Model: "hashing", ContentHash: "aaaaaaaaaaaaaaaa", EmbeddedAt: now,
	}))
	require.NoError(t, s.UpsertEmbedding(ctx, &schema.Embedding{
		FounderID: b.ID, Vector: schema.NewVector([]float32{1, 2, 3, 4}), Model: "hashing", ContentHash: "bbbbbbbbbbbbbbbb", EmbeddedAt: now,
	}))

	// Replace a's embedding
	require.NoError(t, s.UpsertEmbedding(ctx, &schema.Embedding{
		FounderID: a.ID, Vector: schema.NewVector(vec), Model: "text-embedding-3-small", ContentHash: "cccccccccccccccc", EmbeddedAt: now.Add(time.Hour),
	}))

	hashes, err := s.GetEmbeddingHashes(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{a.ID: "cccccccccccccccc", b.ID: "bbbbbbbbbbbbbbbb"}, hashes)

	embeddings, err := s.ListEmbeddings(ctx)
	require.NoError(t, err)
	require.Len(t, embeddings, 2)
	assert.Equal(t, a.ID, embeddings[0].FounderID)
	assert.Equal(t, vec, embeddings[0].Vector.Slice())
	assert.Equal(t, "text-embedding-3-small", embeddings[0].Model)
}

// =============================================================================
// Themes
// =============================================================================

func testThemes(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()
	f1 := mustCreateFounder(t, s, "t1")
	f2 := mustCreateFounder(t, s, "t2")
	f3 := mustCreateFounder(t, s, "t3")

	keywords, err := json.Marshal([]string{"payments", "infra"})
	require.NoError(t, err)

	theme := &schema.Theme{
		Name:           "Payments + Infra",
		EmergenceScore: 61,
		BuilderCount:   3,
		WeeklyVelocity: 0.25,
		FounderOrigin:  "2/3 ex-FAANG",
		Sector:         "Fintech",
		Keywords:       datatypes.JSON(keywords),
		FirstDetected:  now,
		UpdatedAt:      now,
	}
	require.NoError(t, s.CreateTheme(ctx, theme))
	require.NotZero(t, theme.ID)

	got, err := s.GetTheme(ctx, theme.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Payments + Infra", got.Name)
	assert.Equal(t, 61, got.EmergenceScore)
	assert.Equal(t, 0.25, got.WeeklyVelocity)
	assert.Equal(t, "Fintech", got.Sector)
	assert.JSONEq(t, `["payments","infra"]`, string(got.Keywords))
	assert.Nil(t, got.PainSummary)

	theme.Name = "Payments Infra"
	theme.EmergenceScore = 70
	theme.UpdatedAt = now.Add(time.Hour)
	require.NoError(t, s.UpdateTheme(ctx, theme))
	got, err = s.GetTheme(ctx, theme.ID)
	require.NoError(t, err)
	assert.Equal(t, "Payments Infra", got.Name)
	assert.Equal(t, 70, got.EmergenceScore)
	assert.True(t, now.Equal(got.FirstDetected))

	assert.ErrorIs(t, s.UpdateTheme(ctx, &schema.Theme{ID: 999999, UpdatedAt: now}), domain.ErrThemeNotFound)

	// Replace members twice, no stale edges survive
	require.NoError(t, s.ReplaceThemeMembers(ctx, theme.ID, []uint64{f1.ID, f2.ID, f3.ID}, 1.0, now))
	require.NoError(t, s.ReplaceThemeMembers(ctx, theme.ID, []uint64{f2.ID, f3.ID}, 1.0, now.Add(time.Hour)))
	members, err := s.ListThemeMembers(ctx, theme.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, f2.ID, members[0].FounderID)
	assert.Equal(t, 1.0, members[0].Similarity)

	byFounders, err := s.ListMembershipsByFounders(ctx, []uint64{f1.ID, f3.ID})
	require.NoError(t, err)
	require.Len(t, byFounders, 1)
	assert.Equal(t, f3.ID, byFounders[0].FounderID)

	founderThemes, err := s.ListFounderThemes(ctx, f2.ID)
	require.NoError(t, err)
	require.Len(t, founderThemes, 1)
	assert.Equal(t, theme.ID, founderThemes[0].ID)

	// History lookups are strictly before the given time
	for i, count := range []int{2, 3, 5} {
		require.NoError(t, s.AddThemeHistory(ctx, &schema.ThemeHistory{
			ThemeID:        theme.ID,
			EmergenceScore: 40 + i,
			BuilderCount:   count,
			CapturedAt:     now.Add(-time.Duration(10-i*3) * 24 * time.Hour),
		}))
	}

	prior, err := s.GetLatestThemeHistoryBefore(ctx, theme.ID, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, prior)
	assert.Equal(t, 2, prior.BuilderCount)

	prior, err = s.GetLatestThemeHistoryBefore(ctx, theme.ID, now)
	require.NoError(t, err)
	require.NotNil(t, prior)
	assert.Equal(t, 5, prior.BuilderCount)

	prior, err = s.GetLatestThemeHistoryBefore(ctx, theme.ID, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, prior)

	history, err := s.ListThemeHistory(ctx, theme.ID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 5, history[0].BuilderCount)

	themes, err := s.ListThemes(ctx)
	require.NoError(t, err)
	require.Len(t, themes, 1)
}

// =============================================================================
// Events and alerts
// =============================================================================

func testEmergenceEvents(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()
	founder := mustCreateFounder(t, s, "events")

	event := &schema.EmergenceEvent{
		EventType:   domain.EventTypeCommitSpike,
		EntityID:    founder.ID,
		EntityType:  domain.EntityTypeFounder,
		Signal:      "Commit velocity 2.0× WoW (100 → 200 commits/90d)",
		DeltaBefore: floatPtr(100),
		DeltaAfter:  floatPtr(200),
		Metadata:    datatypes.JSON(`{"ratio":2}`),
		DetectedAt:  now,
	}
	require.NoError(t, s.InsertEmergenceEvent(ctx, event))
	require.NotZero(t, event.ID)

	require.NoError(t, s.InsertEmergenceEvent(ctx, &schema.EmergenceEvent{
		EventType:  domain.EventTypeNewTheme,
		EntityID:   42,
		EntityType: domain.EntityTypeTheme,
		Signal:     "New theme detected: 'Agents' (3 founders converging)",
		DeltaAfter: floatPtr(3),
		DetectedAt: now.Add(time.Minute),
	}))

	recent, err := s.HasRecentEvent(ctx, founder.ID, domain.EntityTypeFounder, domain.EventTypeCommitSpike, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.True(t, recent)

	recent, err = s.HasRecentEvent(ctx, founder.ID, domain.EntityTypeFounder, domain.EventTypeCommitSpike, now.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, recent)

	recent, err = s.HasRecentEvent(ctx, founder.ID, domain.EntityTypeFounder, domain.EventTypeStarSpike, time.Time{})
	require.NoError(t, err)
	assert.False(t, recent)

	events, err := s.ListEmergenceEvents(ctx, EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventTypeNewTheme, events[0].EventType)
	assert.Nil(t, events[0].DeltaBefore)

	got := events[1]
	assert.Equal(t, event.Signal, got.Signal)
	require.NotNil(t, got.DeltaBefore)
	assert.Equal(t, 100.0, *got.DeltaBefore)
	assert.Equal(t, 200.0, *got.DeltaAfter)
	assert.JSONEq(t, `{"ratio":2}`, string(got.Metadata))
	assert.True(t, now.Equal(got.DetectedAt))

	themeType := domain.EntityTypeTheme
	events, err = s.ListEmergenceEvents(ctx, EventFilter{EntityType: &themeType, Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func testAlertLogs(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()
	founder := mustCreateFounder(t, s, "alerts")

	require.NoError(t, s.InsertAlertLog(ctx, &schema.AlertLog{
		FounderID: founder.ID, AlertType: domain.AlertTypeHighScore, Channel: domain.ChannelSlack, Message: "m1", SentAt: now,
	}))
	require.NoError(t, s.InsertAlertLog(ctx, &schema.AlertLog{
		FounderID: founder.ID, AlertType: domain.AlertTypeHighScore, Channel: domain.ChannelEmail, Message: "m1", SentAt: now.Add(time.Second),
	}))

	entries, err := s.ListAlertLogs(ctx, founder.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.ChannelEmail, entries[0].Channel)
	assert.Equal(t, domain.AlertTypeHighScore, entries[1].AlertType)
}

// =============================================================================
// Pipeline runs and transactions
// =============================================================================

func testPipelineRuns(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()

	run := &schema.PipelineRun{ID: "01HZX4Y0000000000000000001", Status: domain.RunStatusRunning, StartedAt: now}
	require.NoError(t, s.CreatePipelineRun(ctx, run))

	finished := now.Add(time.Minute)
	run.Status = domain.RunStatusPartial
	run.FinishedAt = &finished
	run.FoundersScored = 12
	run.EventsFired = 3
	run.PhaseErrors = datatypes.JSON(`{"cluster":"clustering failed"}`)
	require.NoError(t, s.FinishPipelineRun(ctx, run))

	runs, err := s.ListPipelineRuns(ctx, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.RunStatusPartial, runs[0].Status)
	assert.Equal(t, 12, runs[0].FoundersScored)
	assert.Equal(t, 3, runs[0].EventsFired)
	require.NotNil(t, runs[0].FinishedAt)
	assert.True(t, finished.Equal(*runs[0].FinishedAt))
	assert.JSONEq(t, `{"cluster":"clustering failed"}`, string(runs[0].PhaseErrors))
}

func testWithTx(t *testing.T, s Store) {
	ctx := context.Background()
	now := testNow()
	founder := mustCreateFounder(t, s, "tx")

	errBoom := errors.New("boom")
	err := s.WithTx(ctx, func(tx Store) error {
		require.NoError(t, tx.InsertScore(ctx, buildTestScore(founder.ID, 50, now)))
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	scores, err := s.ListScoreHistory(ctx, founder.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, scores, "rolled back write must not be visible")

	err = s.WithTx(ctx, func(tx Store) error {
		return tx.InsertScore(ctx, buildTestScore(founder.ID, 60, now))
	})
	require.NoError(t, err)

	scores, err = s.ListScoreHistory(ctx, founder.ID, 0)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 60, scores[0].Composite)
}

// RunStoreTests runs the store contract against a backend
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertFounder", testUpsertFounder},
		{"UpdateFounderStatus", testUpdateFounderStatus},
		{"ListFounders", testListFounders},
		{"StatsSnapshots", testStatsSnapshots},
		{"Signals", testSignals},
		{"Scores", testScores},
		{"Embeddings", testEmbeddings},
		{"Themes", testThemes},
		{"EmergenceEvents", testEmergenceEvents},
		{"AlertLogs", testAlertLogs},
		{"PipelineRuns", testPipelineRuns},
		{"WithTx", testWithTx},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
