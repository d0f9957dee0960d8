package anomaly

import (
	"fmt"
	"slices"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/store/schema"
)

// candidate is an event a check wants to fire, before dedup
type candidate struct {
	eventType domain.EventType
	signal    string
	before    *float64
	after     *float64
	metadata  map[string]interface{}
}

func floatPtr(v int) *float64 {
	f := float64(v)
	return &f
}

// checkCommitVelocity fires when 90-day commits grew by the multiplier over a meaningful base
func (d *detector) checkCommitVelocity(latest, prior schema.StatsSnapshot) *candidate {
	if prior.GitHubCommits90d < d.config.CommitMinBase || prior.GitHubCommits90d <= 0 {
		return nil
	}
	ratio := float64(latest.GitHubCommits90d) / float64(prior.GitHubCommits90d)
	if ratio < d.config.CommitVelocityMultiplier {
		return nil
	}
	return &candidate{
		eventType: domain.EventTypeCommitSpike,
		signal: fmt.Sprintf("Commit velocity %.1f× (%d → %d commits/90d)",
			ratio, prior.GitHubCommits90d, latest.GitHubCommits90d),
		before:   floatPtr(prior.GitHubCommits90d),
		after:    floatPtr(latest.GitHubCommits90d),
		metadata: map[string]interface{}{"ratio": ratio},
	}
}

// checkStarSpike fires on a large star gain while the founder is still below the discovery base
func (d *detector) checkStarSpike(latest, prior schema.StatsSnapshot) *candidate {
	gained := latest.GitHubStars - prior.GitHubStars
	if gained < d.config.StarSpikeMinGain || prior.GitHubStars >= d.config.StarSpikeMaxBase {
		return nil
	}
	return &candidate{
		eventType: domain.EventTypeStarSpike,
		signal:    fmt.Sprintf("Star spike: +%d stars (%d → %d total)", gained, prior.GitHubStars, latest.GitHubStars),
		before:    floatPtr(prior.GitHubStars),
		after:     floatPtr(latest.GitHubStars),
	}
}

// checkForumSpike fires when a new best forum post clears the threshold
func (d *detector) checkForumSpike(latest, prior schema.StatsSnapshot) *candidate {
	if latest.HNTopScore < d.config.ForumScoreSpike || latest.HNTopScore <= prior.HNTopScore {
		return nil
	}
	return &candidate{
		eventType: domain.EventTypeForumSpike,
		signal:    fmt.Sprintf("HN post hit %d points (prev best: %d)", latest.HNTopScore, prior.HNTopScore),
		before:    floatPtr(prior.HNTopScore),
		after:     floatPtr(latest.HNTopScore),
	}
}

// checkScoreCrossing fires when the composite moves from below the threshold to at or above it
func (d *detector) checkScoreCrossing(current, prior schema.Score) *candidate {
	threshold := d.config.ScoreCrossing
	if current.Composite < threshold || prior.Composite >= threshold {
		return nil
	}
	return &candidate{
		eventType: domain.EventTypeScoreCrossing,
		signal:    fmt.Sprintf("Composite score crossed %d (%d → %d)", threshold, prior.Composite, current.Composite),
		before:    floatPtr(prior.Composite),
		after:     floatPtr(current.Composite),
		metadata:  map[string]interface{}{"threshold": threshold},
	}
}

// checkCrossPlatform fires when the founder has signals from every configured source
func (d *detector) checkCrossPlatform(sources []domain.SignalSource) *candidate {
	if len(d.config.CrossPlatformSources) == 0 {
		return nil
	}
	for _, want := range d.config.CrossPlatformSources {
		if !slices.Contains(sources, want) {
			return nil
		}
	}
	names := make([]string, len(d.config.CrossPlatformSources))
	for i, s := range d.config.CrossPlatformSources {
		names[i] = string(s)
	}
	return &candidate{
		eventType: domain.EventTypeCrossPlatform,
		signal:    fmt.Sprintf("Active across platforms: %s", joinAnd(names)),
		metadata:  map[string]interface{}{"sources": names},
	}
}

// checkNewTheme fires for themes first detected within the lookback
func (d *detector) checkNewTheme(theme schema.Theme) *candidate {
	if !theme.FirstDetected.After(d.clock.Now().Add(-domain.NEW_THEME_LOOKBACK)) {
		return nil
	}
	return &candidate{
		eventType: domain.EventTypeNewTheme,
		signal:    fmt.Sprintf("New theme detected: '%s' (%d founders converging)", theme.Name, theme.BuilderCount),
		after:     floatPtr(theme.BuilderCount),
	}
}

// checkThemeSpike fires when builders grew by the spike ratio against a snapshot from at least a week ago
func (d *detector) checkThemeSpike(theme schema.Theme, weekAgo *schema.ThemeHistory) *candidate {
	if weekAgo == nil || weekAgo.BuilderCount <= 0 {
		return nil
	}
	growth := float64(theme.BuilderCount-weekAgo.BuilderCount) / float64(weekAgo.BuilderCount)
	if growth < domain.THEME_SPIKE_GROWTH_RATIO {
		return nil
	}
	return &candidate{
		eventType: domain.EventTypeThemeSpike,
		signal: fmt.Sprintf("Theme '%s' grew %.0f%% WoW (%d → %d builders)",
			theme.Name, growth*100, weekAgo.BuilderCount, theme.BuilderCount),
		before:   floatPtr(weekAgo.BuilderCount),
		after:    floatPtr(theme.BuilderCount),
		metadata: map[string]interface{}{"growth": growth},
	}
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	out := items[0]
	for _, s := range items[1 : len(items)-1] {
		out += ", " + s
	}
	return out + " and " + items[len(items)-1]
}
