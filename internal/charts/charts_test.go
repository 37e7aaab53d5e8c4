package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	series := [][]float64{
		{100, 200, 0},
		{50, 0, 25},
		{10, 20, 30},
	}

	areas := Stack(series)
	require.Len(t, areas, 3)

	assert.Equal(t, []float64{0, 0, 0}, areas[0].Bottom)
	assert.Equal(t, []float64{100, 200, 0}, areas[0].Top)
	assert.Equal(t, []float64{100, 200, 0}, areas[1].Bottom)
	assert.Equal(t, []float64{150, 200, 25}, areas[1].Top)

	// The last series' top line is the column sum at every index.
	assert.Equal(t, []float64{160, 220, 55}, areas[2].Top)

	// Each band's extent is exactly its own value.
	for s, area := range areas {
		for i := range area.Top {
			assert.InDelta(t, series[s][i], area.Top[i]-area.Bottom[i], 1e-9)
		}
	}
}

func TestStack_Empty(t *testing.T) {
	assert.Empty(t, Stack(nil))
	assert.Empty(t, Stack([][]float64{}))
}

func TestTickStep(t *testing.T) {
	tests := []struct {
		name     string
		maxTotal float64
		want     float64
	}{
		{name: "small chart", maxTotal: 1800, want: 500},
		{name: "at base step", maxTotal: 2500, want: 500},
		{name: "mid chart", maxTotal: 6000, want: 1000},
		{name: "at three times base", maxTotal: 7500, want: 1000},
		{name: "large chart", maxTotal: 40000, want: 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TickStep(tt.maxTotal))
		})
	}
}

func TestScaleCeiling(t *testing.T) {
	assert.Equal(t, 2000.0, ScaleCeiling(1800))
	assert.Equal(t, 6000.0, ScaleCeiling(6000))
	assert.Equal(t, 42500.0, ScaleCeiling(40001))
	// Degenerate inputs still yield a usable scale.
	assert.Equal(t, 500.0, ScaleCeiling(0))
	assert.Equal(t, 500.0, ScaleCeiling(-10))
}

func TestTicks(t *testing.T) {
	ticks := Ticks(1800)
	assert.Equal(t, []float64{0, 500, 1000, 1500, 2000}, ticks)
}

func TestPearson_PerfectLinear(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 1
	}

	assert.InDelta(t, 1.0, Pearson(x, y), 1e-9)
}

func TestPearson_NegativeLinear(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{8, 6, 4, 2}

	assert.InDelta(t, -1.0, Pearson(x, y), 1e-9)
}

func TestPearson_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{name: "constant arrays", x: []float64{3, 3, 3}, y: []float64{5, 5, 5}},
		{name: "single point", x: []float64{1}, y: []float64{2}},
		{name: "empty", x: nil, y: nil},
		{name: "length mismatch", x: []float64{1, 2, 3}, y: []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, Pearson(tt.x, tt.y))
		})
	}
}
