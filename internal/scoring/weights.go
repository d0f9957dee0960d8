package scoring

import (
	"fmt"
	"math"

	"github.com/feral-file/founder-scout/internal/domain"
)

// WEIGHT_SUM_TOLERANCE absorbs float noise when checking that weights sum to one
const WEIGHT_SUM_TOLERANCE = 1e-9

// Weights are the composite blend coefficients of the five sub-scores
type Weights struct {
	FounderQuality    float64
	ExecutionVelocity float64
	MarketConviction  float64
	EarlyTraction     float64
	DealAvailability  float64
}

// DefaultWeights returns the hand-tuned production weights
func DefaultWeights() Weights {
	return Weights{
		FounderQuality:    0.30,
		ExecutionVelocity: 0.25,
		MarketConviction:  0.20,
		EarlyTraction:     0.15,
		DealAvailability:  0.10,
	}
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.FounderQuality + w.ExecutionVelocity + w.MarketConviction + w.EarlyTraction + w.DealAvailability
}

// Validate checks that no weight is negative and that they sum to 1.0
func (w Weights) Validate() error {
	for _, v := range []float64{w.FounderQuality, w.ExecutionVelocity, w.MarketConviction, w.EarlyTraction, w.DealAvailability} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: negative or NaN weight %v", domain.ErrInvalidWeights, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > WEIGHT_SUM_TOLERANCE {
		return fmt.Errorf("%w: got %.12f", domain.ErrInvalidWeights, sum)
	}
	return nil
}
