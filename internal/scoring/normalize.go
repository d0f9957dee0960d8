package scoring

import (
	"math"

	"github.com/feral-file/founder-scout/internal/heuristics"
)

// LogScale maps a count with diminishing returns onto 0-cap: ln(1+value)/ln(1+baseline)*100.
// Non-positive or non-finite inputs score zero.
func LogScale(value, baseline, cap float64) float64 {
	if !isUsable(value) || !isUsable(baseline) || value <= 0 || baseline <= 0 {
		return 0
	}
	return math.Min(math.Log1p(value)/math.Log1p(baseline)*100, cap)
}

// LinearScale maps a small-range count onto 0-cap: value/maxVal*100
func LinearScale(value, maxVal, cap float64) float64 {
	if !isUsable(value) || !isUsable(maxVal) || value <= 0 || maxVal <= 0 {
		return 0
	}
	return math.Min(value/maxVal*100, cap)
}

// KeywordScore awards pointsPerMatch for every keyword found in text, capped
func KeywordScore(text string, keywords []string, pointsPerMatch, cap float64) float64 {
	hits := heuristics.CountHits(text, keywords)
	return math.Min(float64(hits)*pointsPerMatch, cap)
}

// Clamp bounds v to [lo, hi]; NaN becomes lo
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

func isUsable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
