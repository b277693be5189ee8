package window

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedSampler struct {
	values []float64
	next   int
}

func (f *fixedSampler) Sample() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

func TestNewSeedsWindow(t *testing.T) {
	w := New(DefaultCapacity, &fixedSampler{values: []float64{7}})

	require.Equal(t, []float64{1, 2, 3, 0, 0, 0, 0, 0, 0, 0}, w.Y())
	require.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, w.X())
	require.Equal(t, []Point{{0, 0}, {0, 0}, {0, 0}}, w.Points())
	require.Equal(t, DefaultCapacity, w.Len())
}

func TestAdvanceShiftsYOnly(t *testing.T) {
	w := New(DefaultCapacity, &fixedSampler{values: []float64{4.5}})
	w.Advance()

	require.Equal(t, []float64{2, 3, 0, 0, 0, 0, 0, 0, 0, 4.5}, w.Y())
	require.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, w.X())

	points := w.Points()
	require.Len(t, points, 10)
	require.Equal(t, Point{X: 0, Y: 2}, points[0])
	require.Equal(t, Point{X: 9, Y: 4.5}, points[9])
	require.Equal(t, 4.5, w.Last())
}

func TestAdvanceKeepsLengths(t *testing.T) {
	w := New(DefaultCapacity, NewUniform(DefaultSampleMax, rand.NewSource(1)))
	wantX := w.X()

	for k := 0; k < 500; k++ {
		require.Len(t, w.Y(), DefaultCapacity)
		require.Equal(t, wantX, w.X())
		w.Advance()
		require.Len(t, w.Points(), DefaultCapacity)
	}
}

func TestAdvanceSamplesStayInRange(t *testing.T) {
	w := New(DefaultCapacity, NewUniform(DefaultSampleMax, rand.NewSource(42)))

	for k := 0; k < 10000; k++ {
		w.Advance()
		last := w.Last()
		if last < 0 || last >= DefaultSampleMax {
			t.Fatalf("sample %d out of range: %v", k, last)
		}
	}
}

func TestNewCapacityEdges(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantY    []float64
	}{
		{name: "zero raised to one", capacity: 0, wantY: []float64{1}},
		{name: "shorter than seed", capacity: 2, wantY: []float64{1, 2}},
		{name: "longer than seed", capacity: 5, wantY: []float64{1, 2, 3, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(tt.capacity, &fixedSampler{values: []float64{1}})
			require.Equal(t, tt.wantY, w.Y())
			require.Len(t, w.X(), len(tt.wantY))
			require.Len(t, w.Points(), 3)
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	w := New(DefaultCapacity, &fixedSampler{values: []float64{1}})
	w.Advance()

	x := w.X()
	x[0] = 99
	points := w.Points()
	points[0].Y = 99

	require.Equal(t, 0.0, w.X()[0])
	require.Equal(t, 2.0, w.Points()[0].Y)
}

func TestUniformSeededIsReproducible(t *testing.T) {
	a := NewUniform(10, rand.NewSource(7))
	b := NewUniform(10, rand.NewSource(7))
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Sample(), b.Sample())
	}
}

func TestNewUniformDefaultsMax(t *testing.T) {
	u := NewUniform(0, rand.NewSource(1))
	require.Equal(t, DefaultSampleMax, u.Max)
}
