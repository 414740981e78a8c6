package ui

import (
	"reflect"
	"testing"
)

func TestRingBufferChronologicalOrder(t *testing.T) {
	r := newRingBuffer(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.push(v)
	}
	got := r.samples()
	want := []float64{3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRingBufferEmpty(t *testing.T) {
	r := newRingBuffer(4)
	if s := r.samples(); s != nil {
		t.Fatalf("expected nil samples from empty buffer, got %v", s)
	}
}

func TestRenderSparkline(t *testing.T) {
	out := renderSparkline([]float64{0, 50, 100}, 0, 100)
	runes := []rune(out)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d (%q)", len(runes), out)
	}
	if runes[0] != '▁' || runes[2] != '█' {
		t.Fatalf("expected min/max at the extremes, got %q", out)
	}
}

func TestRenderSparklineClampsOutOfRange(t *testing.T) {
	out := renderSparkline([]float64{-10, 200}, 0, 100)
	runes := []rune(out)
	if runes[0] != '▁' || runes[1] != '█' {
		t.Fatalf("out-of-range values should clamp, got %q", out)
	}
}
