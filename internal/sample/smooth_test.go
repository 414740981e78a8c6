package sample

import (
	"math"
	"testing"
)

func TestEMAPrimesOnFirstSample(t *testing.T) {
	e := NewEMA(0.3)
	if got := e.Update(10); got != 10 {
		t.Fatalf("first update should prime to the sample, got %v", got)
	}
}

func TestEMASmoothing(t *testing.T) {
	e := NewEMA(0.5)
	e.Update(10)
	got := e.Update(20)
	if math.Abs(got-15) > 1e-9 {
		t.Fatalf("expected 15 after 10,20 with alpha 0.5, got %v", got)
	}
	if e.Value() != got {
		t.Fatalf("Value() %v disagrees with last Update %v", e.Value(), got)
	}
}
