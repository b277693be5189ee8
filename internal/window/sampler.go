package window

import (
	"math"
	"math/rand"
	"time"
)

// DefaultSampleMax is the exclusive upper bound of generated samples.
const DefaultSampleMax = 10.0

// Sampler produces the next value appended to a window.
type Sampler interface {
	Sample() float64
}

// Uniform draws samples uniformly from [0, Max).
type Uniform struct {
	Max float64
	rng *rand.Rand
}

// NewUniform returns a uniform sampler over [0, max). A nil source is seeded
// from the clock.
func NewUniform(max float64, src rand.Source) *Uniform {
	if max <= 0 {
		max = DefaultSampleMax
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Uniform{Max: max, rng: rand.New(src)}
}

// Sample implements Sampler.
func (u *Uniform) Sample() float64 {
	v := u.rng.Float64() * u.Max
	if v >= u.Max {
		v = math.Nextafter(u.Max, 0)
	}
	return v
}
