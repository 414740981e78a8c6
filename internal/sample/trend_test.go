package sample

import (
	"math"
	"testing"
)

func TestFitExactLinearData(t *testing.T) {
	// Perfectly linear data has an exact OLS fit.
	line := fitLine([]float64{10, 12, 14})
	if line.Slope != 2.0 {
		t.Fatalf("expected slope 2.0, got %v", line.Slope)
	}
	if line.Intercept != 10.0 {
		t.Fatalf("expected intercept 10.0, got %v", line.Intercept)
	}
	want := []float64{10, 12, 14}
	for i, f := range line.Fitted {
		if math.Abs(f-want[i]) > 1e-9 {
			t.Fatalf("fitted[%d] = %v, want %v", i, f, want[i])
		}
	}
}

func TestFitSinglePoint(t *testing.T) {
	line := fitLine([]float64{42.5})
	if line.Slope != 0 {
		t.Fatalf("expected slope 0 for single point, got %v", line.Slope)
	}
	if line.Intercept != 42.5 {
		t.Fatalf("expected intercept 42.5, got %v", line.Intercept)
	}
	if len(line.Fitted) != 1 || line.Fitted[0] != 42.5 {
		t.Fatalf("expected fitted [42.5], got %v", line.Fitted)
	}
}

func TestFitConstantSeries(t *testing.T) {
	line := fitLine([]float64{5, 5, 5, 5})
	if math.Abs(line.Slope) > 1e-12 {
		t.Fatalf("expected slope 0 for constant series, got %v", line.Slope)
	}
	if math.Abs(line.Intercept-5) > 1e-12 {
		t.Fatalf("expected intercept 5, got %v", line.Intercept)
	}
}

func TestFitNoisySeriesResiduals(t *testing.T) {
	// OLS residuals sum to zero.
	values := []float64{3, 7, 4, 9, 6}
	line := fitLine(values)
	var sum float64
	for i, v := range values {
		sum += v - line.Fitted[i]
	}
	if math.Abs(sum) > 1e-9 {
		t.Fatalf("residuals sum to %v, want 0", sum)
	}
}

func TestGeneratorTrendSinglePoint(t *testing.T) {
	s := &scriptSampler{values: []float64{123.45}}
	g := NewGenerator(Stock, s, 5, WithClock(testClock()))
	g.Tick()

	line, err := g.Trend("price")
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if line.Slope != 0 || line.Intercept != 123.45 {
		t.Fatalf("expected slope 0 intercept 123.45, got %v / %v", line.Slope, line.Intercept)
	}
}
