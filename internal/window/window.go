// Package window holds the fixed-capacity sample window plotted by the chart.
package window

import (
	"github.com/gammazero/deque"
)

// DefaultCapacity is the number of samples kept in the window.
const DefaultCapacity = 10

var seedValues = []float64{1, 2, 3}

// Point is a single plotted (x, y) pair.
type Point struct {
	X float64
	Y float64
}

// Window is a sliding window of samples. The x-coordinates are fixed at
// 0..capacity-1; only the y-values age out as new samples arrive.
//
// A Window is not safe for concurrent use.
type Window struct {
	x       []float64
	y       deque.Deque[float64]
	points  []Point
	sampler Sampler
}

// New creates a window seeded with 1, 2, 3 followed by zeros. Until the first
// Advance the plotted points are three (0, 0) placeholders.
func New(capacity int, sampler Sampler) *Window {
	if capacity < 1 {
		capacity = 1
	}
	if sampler == nil {
		sampler = NewUniform(DefaultSampleMax, nil)
	}

	w := &Window{
		x:       make([]float64, capacity),
		points:  make([]Point, len(seedValues)),
		sampler: sampler,
	}
	for i := 0; i < capacity; i++ {
		w.x[i] = float64(i)
		value := 0.0
		if i < len(seedValues) {
			value = seedValues[i]
		}
		w.y.PushBack(value)
	}
	return w
}

// Advance drops the oldest y-value, appends a fresh sample and rebuilds the
// plotted points.
func (w *Window) Advance() {
	w.y.PopFront()
	w.y.PushBack(w.sampler.Sample())

	points := make([]Point, len(w.x))
	for i, x := range w.x {
		points[i] = Point{X: x, Y: w.y.At(i)}
	}
	w.points = points
}

// Len returns the window capacity.
func (w *Window) Len() int {
	return len(w.x)
}

// X returns a copy of the x-coordinates.
func (w *Window) X() []float64 {
	out := make([]float64, len(w.x))
	copy(out, w.x)
	return out
}

// Y returns a copy of the y-values, oldest first.
func (w *Window) Y() []float64 {
	out := make([]float64, w.y.Len())
	for i := range out {
		out[i] = w.y.At(i)
	}
	return out
}

// Last returns the most recently appended y-value.
func (w *Window) Last() float64 {
	return w.y.Back()
}

// Points returns a copy of the plotted points.
func (w *Window) Points() []Point {
	out := make([]Point, len(w.points))
	copy(out, w.points)
	return out
}
