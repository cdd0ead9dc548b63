package constellation

import (
	"github.com/aquilax/go-perlin"
)

// Perlin parameters for the twinkle field
const (
	twinkleAlpha  = 2.0
	twinkleBeta   = 2.0
	twinkleOctave = 3
	twinkleSpeed  = 0.02 // noise units per tick
)

// twinkle dims point alpha by a slowly varying noise value.
type twinkle struct {
	noise  *perlin.Perlin
	amount float64
}

func newTwinkle(amount float64, seed int64) *twinkle {
	if amount <= 0 {
		return nil
	}
	return &twinkle{
		noise:  perlin.NewPerlin(twinkleAlpha, twinkleBeta, twinkleOctave, seed),
		amount: amount,
	}
}

// factor returns a multiplier in [1-amount, 1] for a point with the given
// phase at the given tick. A nil twinkle always returns 1.
func (t *twinkle) factor(phase float64, tick int64) float64 {
	if t == nil {
		return 1
	}
	n := t.noise.Noise2D(phase, float64(tick)*twinkleSpeed)
	v := (n + 1) / 2
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return 1 - t.amount*v
}
