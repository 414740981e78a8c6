package sample

import "errors"

var (
	// ErrEmptyHistory is returned by Trend before any Tick has occurred.
	ErrEmptyHistory = errors.New("sample: empty history")
	// ErrUnknownField is returned by Trend for a field absent from the
	// variant's schema.
	ErrUnknownField = errors.New("sample: unknown field")
	// ErrUnknownVariant is returned when a variant name has no builtin.
	ErrUnknownVariant = errors.New("sample: unknown variant")
)

// TrendLine is the least-squares fit of a field's values against their
// buffer index, plus the fitted value at each index. It is derived fresh on
// every query and never cached.
type TrendLine struct {
	Slope     float64
	Intercept float64
	Fitted    []float64
}

// fitLine computes ordinary least squares of values against indices 0..n-1.
// A single point is degenerate: slope 0, intercept equal to the value.
func fitLine(values []float64) TrendLine {
	n := len(values)
	if n == 1 {
		return TrendLine{Slope: 0, Intercept: values[0], Fitted: []float64{values[0]}}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	var slope float64
	if denom != 0 {
		slope = (fn*sumXY - sumX*sumY) / denom
	}
	intercept := (sumY - slope*sumX) / fn

	fitted := make([]float64, n)
	for i := range fitted {
		fitted[i] = slope*float64(i) + intercept
	}
	return TrendLine{Slope: slope, Intercept: intercept, Fitted: fitted}
}
