package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/founder-scout/internal/bootstrap"
	"github.com/feral-file/founder-scout/internal/config"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/store"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// writeConfig writes a sqlite config into a temp dir and returns its path
func writeConfig(t *testing.T) (string, string) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "scout.db")
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("database:\n  driver: sqlite\n  sqlite_path: %s\n", dbPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path, dbPath
}

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func openStore(t *testing.T, dbPath string) store.Store {
	db, st, err := bootstrap.OpenStore(context.Background(), config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: dbPath,
	}, false)
	require.NoError(t, err)
	t.Cleanup(func() { bootstrap.CloseDB(db) })
	return st
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "scout dev\n", out)
}

func TestMigrate(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	out, err := execute(t, "migrate", "--config", cfgPath, "--env", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Migrated sqlite database\n", out)
}

func TestScore(t *testing.T) {
	cfgPath, dbPath := writeConfig(t)
	st := openStore(t, dbPath)
	ctx := context.Background()

	f, err := st.UpsertFounder(ctx, store.UpsertFounderInput{
		Name:   "Ada",
		Handle: "@ada",
		Bio:    "Ex-Stripe engineer, YC W26, building agent infrastructure",
		Stage:  "pre-seed",
		Status: domain.FounderStatusToContact,
	})
	require.NoError(t, err)
	require.NoError(t, st.AddStatsSnapshot(ctx, &schema.StatsSnapshot{
		FounderID: f.ID, GitHubStars: 300, GitHubCommits90d: 120, CapturedAt: time.Now().UTC(),
	}))

	out, err := execute(t, "score", fmt.Sprint(f.ID), "--config", cfgPath, "--env", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Ada (@ada)")
	assert.Contains(t, out, "composite")
	assert.Contains(t, out, "incubator")

	history, err := st.ListScoreHistory(ctx, f.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, history, "a dry run does not persist")
}

func TestScore_Errors(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	_, err := execute(t, "score", "abc", "--config", cfgPath)
	assert.EqualError(t, err, `invalid founder id: "abc"`)

	_, err = execute(t, "score", "42", "--config", cfgPath, "--env", t.TempDir())
	assert.ErrorIs(t, err, domain.ErrFounderNotFound)

	_, err = execute(t, "score")
	assert.Error(t, err)
}

func TestThemes(t *testing.T) {
	cfgPath, dbPath := writeConfig(t)

	out, err := execute(t, "themes", "--config", cfgPath, "--env", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "No themes detected yet\n", out)

	st := openStore(t, dbPath)
	now := time.Now().UTC()
	for _, th := range []*schema.Theme{
		{Name: "Agent Infra", EmergenceScore: 80, BuilderCount: 5, WeeklyVelocity: 0.25, Sector: "AI Infrastructure", FirstDetected: now, UpdatedAt: now},
		{Name: "Climate Ledger", EmergenceScore: 40, BuilderCount: 3, Sector: "Climate", FirstDetected: now, UpdatedAt: now},
	} {
		require.NoError(t, st.CreateTheme(context.Background(), th))
	}

	out, err = execute(t, "themes", "--limit", "1", "--config", cfgPath, "--env", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Agent Infra")
	assert.Contains(t, out, "+25%")
	assert.NotContains(t, out, "Climate Ledger")
}

func TestRun(t *testing.T) {
	cfgPath, dbPath := writeConfig(t)
	st := openStore(t, dbPath)

	_, err := st.UpsertFounder(context.Background(), store.UpsertFounderInput{
		Name: "Ada", Handle: "@ada", Bio: "agent infrastructure", Status: domain.FounderStatusToContact,
	})
	require.NoError(t, err)

	out, err := execute(t, "run", "--config", cfgPath, "--env", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "founders scored")
	assert.Regexp(t, `founders scored\s+1`, out)
}
