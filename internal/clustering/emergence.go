package clustering

import (
	"math"

	"github.com/feral-file/founder-scout/internal/store/schema"
)

const (
	COUNT_SCORE_MAX      = 80.0
	COUNT_SCORE_BASELINE = 10.0
	VELOCITY_PER_SIGNAL  = 10.0
	VELOCITY_SCORE_MAX   = 40.0
	GROWTH_SCORE_MAX     = 30.0
	NEW_THEME_GROWTH     = 15.0
)

// EmergenceScore combines builder count, signals per builder over the last week and growth
// against the prior snapshot. priorBuilders <= 0 means the theme has no usable history.
// The sum is not clipped and can exceed 100.
func EmergenceScore(builders int, recentSignals int64, priorBuilders int) int {
	if builders <= 0 {
		return 0
	}
	n := float64(builders)
	count := math.Min(math.Log1p(n)/math.Log1p(COUNT_SCORE_BASELINE)*COUNT_SCORE_MAX, COUNT_SCORE_MAX)
	velocity := math.Min(float64(recentSignals)/n*VELOCITY_PER_SIGNAL, VELOCITY_SCORE_MAX)

	growth := NEW_THEME_GROWTH
	if priorBuilders > 0 {
		prior := float64(priorBuilders)
		growth = math.Min(math.Max((n-prior)/prior*100, 0), GROWTH_SCORE_MAX)
	}
	return int(math.Round(count + velocity + growth))
}

// WeeklyVelocity is the fractional builder growth against a snapshot from at least a week ago
func WeeklyVelocity(builders int, weekAgo *schema.ThemeHistory) float64 {
	if weekAgo == nil || weekAgo.BuilderCount <= 0 {
		return 0
	}
	prior := float64(weekAgo.BuilderCount)
	return (float64(builders) - prior) / prior
}
