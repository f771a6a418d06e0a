package nn

import (
	"math"
	"math/rand"
)

// Initializer draws one initial weight for a unit with the given fan-in and fan-out.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) float64

// Uniform draws weights from U(-1, 1), the classic micrograd initialization.
func Uniform(rng *rand.Rand, _, _ int) float64 {
	return rng.Float64()*2 - 1
}

// Xavier (Glorot) initialization draws weights from
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
func Xavier(rng *rand.Rand, fanIn, fanOut int) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return (rng.Float64()*2 - 1) * bound
}

// defaultRand returns rng, or a fixed-seed generator when rng is nil so that
// model construction stays reproducible.
func defaultRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(1)) //nolint:gosec // Deterministic weights, not security-critical
}
