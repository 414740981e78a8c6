package sample

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// scriptSampler returns a fixed value sequence, cycling per Draw call.
type scriptSampler struct {
	values []float64
	pos    int
}

func (s *scriptSampler) Draw(FieldSpec) float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func testClock() func() time.Time {
	t := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func priceOf(t *testing.T, r Reading) float64 {
	t.Helper()
	v, ok := r.Value("price")
	if !ok {
		t.Fatalf("reading missing price field: %v", r.Values)
	}
	return v
}

func TestBufferGrowsToCapacity(t *testing.T) {
	g := NewGenerator(Stock, &scriptSampler{values: []float64{1}}, 5, WithClock(testClock()))

	for i := 1; i <= 8; i++ {
		g.Tick()
		want := i
		if want > 5 {
			want = 5
		}
		if g.Len() != want {
			t.Fatalf("after %d ticks expected len %d, got %d", i, want, g.Len())
		}
	}
}

func TestFIFOEviction(t *testing.T) {
	s := &scriptSampler{values: []float64{1, 2, 3, 4, 5, 6, 7}}
	g := NewGenerator(Stock, s, 5, WithClock(testClock()))

	for i := 0; i < 7; i++ {
		g.Tick()
	}

	readings, latest, ok := g.Snapshot()
	if !ok {
		t.Fatal("expected snapshot after 7 ticks")
	}
	got := make([]float64, len(readings))
	for i, r := range readings {
		got[i] = priceOf(t, r)
	}
	want := []float64{3, 4, 5, 6, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected buffer %v, got %v", want, got)
	}
	if priceOf(t, latest) != 7 {
		t.Fatalf("expected latest 7, got %v", priceOf(t, latest))
	}

	trend, err := g.Trend("price")
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if trend.Slope != 1.0 {
		t.Fatalf("expected slope 1.0 over %v, got %v", want, trend.Slope)
	}
}

func TestLatestEqualsLastBufferElement(t *testing.T) {
	s := &scriptSampler{values: []float64{10, 20, 30}}
	g := NewGenerator(Stock, s, 5, WithClock(testClock()))

	for i := 0; i < 3; i++ {
		g.Tick()
		readings, latest, ok := g.Snapshot()
		if !ok {
			t.Fatal("expected snapshot")
		}
		if !reflect.DeepEqual(latest, readings[len(readings)-1]) {
			t.Fatalf("latest %v != last buffer element %v", latest, readings[len(readings)-1])
		}
	}
}

func TestSnapshotIdempotentBetweenTicks(t *testing.T) {
	g := NewGenerator(Weather, NewUniformSampler(42), 5, WithClock(testClock()))
	g.Tick()
	g.Tick()

	r1, l1, _ := g.Snapshot()
	r2, l2, _ := g.Snapshot()
	if !reflect.DeepEqual(r1, r2) || !reflect.DeepEqual(l1, l2) {
		t.Fatal("consecutive snapshots with no tick differ")
	}

	// Snapshots are copies: mutating the result must not leak into the buffer.
	r1[0].Values["temp"] = 999
	r3, _, _ := g.Snapshot()
	if r3[0].Values["temp"] == 999 {
		t.Fatal("snapshot shares storage with the buffer")
	}
}

func TestValuesWithinConfiguredRanges(t *testing.T) {
	g := NewGenerator(Weather, NewUniformSampler(1), 5, WithClock(testClock()))
	for i := 0; i < 50; i++ {
		g.Tick()
	}
	readings, _, _ := g.Snapshot()
	for _, r := range readings {
		for _, f := range Weather.Fields {
			v := r.Values[f.Name]
			if v < f.Min || v > f.Max {
				t.Fatalf("%s = %v outside [%v, %v]", f.Name, v, f.Min, f.Max)
			}
		}
	}
}

func TestEmptySnapshot(t *testing.T) {
	g := NewGenerator(Stock, NewUniformSampler(1), 5)
	readings, _, ok := g.Snapshot()
	if ok || readings != nil {
		t.Fatalf("expected empty snapshot before first tick, got ok=%v readings=%v", ok, readings)
	}
}

func TestTrendErrors(t *testing.T) {
	g := NewGenerator(Stock, NewUniformSampler(1), 5, WithClock(testClock()))

	if _, err := g.Trend("price"); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}

	g.Tick()
	if _, err := g.Trend("volume"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestTimestampsNonDecreasing(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	// A clock that jumps backwards mid-sequence.
	seq := []time.Time{base, base.Add(time.Second), base.Add(-time.Minute), base.Add(2 * time.Second)}
	i := 0
	clock := func() time.Time {
		t := seq[i%len(seq)]
		i++
		return t
	}

	g := NewGenerator(Stock, NewUniformSampler(1), 5, WithClock(clock))
	for range seq {
		g.Tick()
	}
	readings, _, _ := g.Snapshot()
	for j := 1; j < len(readings); j++ {
		if readings[j].At.Before(readings[j-1].At) {
			t.Fatalf("timestamp at %d (%v) precedes %v", j, readings[j].At, readings[j-1].At)
		}
	}
}

func TestConcurrentReadersDuringTicks(t *testing.T) {
	g := NewGenerator(Stock, NewUniformSampler(7), 5, WithClock(testClock()))
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			g.Tick()
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
			readings, latest, ok := g.Snapshot()
			if ok {
				if len(readings) == 0 || len(readings) > 5 {
					t.Errorf("inconsistent snapshot length %d", len(readings))
					return
				}
				if !reflect.DeepEqual(latest, readings[len(readings)-1]) {
					t.Error("latest disagrees with buffer tail")
					return
				}
			}
		}
	}
}
