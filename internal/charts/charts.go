package charts

import "math"

// Area is the vertical extent of one series in a stacked-area chart: the
// cumulative top line across all series up to and including this one, and
// the bottom line it rises from. Scaling Top and Bottom against the shared
// maximum closes a correctly stacked polygon per series.
type Area struct {
	Top    []float64 `json:"top"`
	Bottom []float64 `json:"bottom"`
}

// Stack accumulates the series into stacked areas. All series must share the
// same length; a zero-length input yields no areas.
func Stack(series [][]float64) []Area {
	if len(series) == 0 {
		return nil
	}

	cumulative := make([]float64, len(series[0]))
	areas := make([]Area, 0, len(series))

	for _, values := range series {
		area := Area{
			Top:    make([]float64, len(values)),
			Bottom: make([]float64, len(values)),
		}
		for i, value := range values {
			area.Bottom[i] = cumulative[i]
			cumulative[i] += value
			area.Top[i] = cumulative[i]
		}
		areas = append(areas, area)
	}

	return areas
}

// tick steps in currency units, chosen by the magnitude of the stacked
// maximum.
const baseTickStep = 2500.0

// TickStep picks the round axis step for a chart whose stacked maximum is
// maxTotal.
func TickStep(maxTotal float64) float64 {
	switch {
	case maxTotal <= baseTickStep:
		return 500
	case maxTotal <= baseTickStep*3:
		return 1000
	default:
		return baseTickStep
	}
}

// ScaleCeiling returns the smallest multiple of the selected tick step that
// is at least maxTotal — the chart's scale ceiling. Non-positive maxima are
// treated as 1 so the chart always has a usable scale.
func ScaleCeiling(maxTotal float64) float64 {
	if maxTotal <= 0 {
		maxTotal = 1
	}
	step := TickStep(maxTotal)
	return math.Ceil(maxTotal/step) * step
}

// Ticks returns the axis tick values from 0 to the scale ceiling inclusive.
func Ticks(maxTotal float64) []float64 {
	if maxTotal <= 0 {
		maxTotal = 1
	}
	step := TickStep(maxTotal)
	ceiling := math.Ceil(maxTotal/step) * step

	var ticks []float64
	for value := 0.0; value <= ceiling; value += step {
		ticks = append(ticks, value)
	}
	return ticks
}

// Pearson computes the correlation coefficient of two equal-length samples.
// Defined as 0 when the inputs are shorter than two points, differ in
// length, or have no variance.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	fn := float64(n)
	denominator := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / denominator
}
