package sample

import (
	"fmt"
	"sync"
	"time"
)

// DefaultCapacity is the default history window size.
const DefaultCapacity = 5

// Generator owns the bounded rolling history of Readings. Tick is the only
// writer; Snapshot and Trend are safe for concurrent readers and always see
// a fully-formed buffer, never a half-evicted one.
type Generator struct {
	variant Variant
	sampler Sampler
	now     func() time.Time

	mu    sync.RWMutex
	buf   []Reading
	head  int // next write position
	size  int // number of valid readings
	ticks uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a generator for the given variant with a fixed
// history capacity.
func NewGenerator(variant Variant, sampler Sampler, capacity int, opts ...Option) *Generator {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	g := &Generator{
		variant: variant,
		sampler: sampler,
		now:     time.Now,
		buf:     make([]Reading, capacity),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Variant returns the variant this generator produces readings for.
func (g *Generator) Variant() Variant {
	return g.variant
}

// Tick synthesizes one new Reading, appends it with FIFO eviction, and
// returns it. Timestamps are clamped so they never run backwards relative
// to the previous Reading.
func (g *Generator) Tick() Reading {
	values := make(map[string]float64, len(g.variant.Fields))
	for _, f := range g.variant.Fields {
		values[f.Name] = g.sampler.Draw(f)
	}
	at := g.now().Truncate(time.Second)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.size > 0 {
		last := g.buf[(g.head-1+len(g.buf))%len(g.buf)]
		if at.Before(last.At) {
			at = last.At
		}
	}

	r := Reading{At: at, Values: values}
	g.buf[g.head] = r
	g.head = (g.head + 1) % len(g.buf)
	if g.size < len(g.buf) {
		g.size++
	}
	g.ticks++

	return r.clone()
}

// Snapshot returns a copy of the buffer contents in insertion order and the
// most recent Reading. ok is false before the first Tick. The result is a
// consistent point-in-time copy; two calls with no intervening Tick return
// equal values.
func (g *Generator) Snapshot() (readings []Reading, latest Reading, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.size == 0 {
		return nil, Reading{}, false
	}

	readings = make([]Reading, g.size)
	start := (g.head - g.size + len(g.buf)) % len(g.buf)
	for i := 0; i < g.size; i++ {
		readings[i] = g.buf[(start+i)%len(g.buf)].clone()
	}
	return readings, readings[g.size-1], true
}

// Trend computes the least-squares regression of the named field's buffered
// values against their buffer index. It fails with ErrEmptyHistory before
// the first Tick and ErrUnknownField for a field the variant does not carry.
func (g *Generator) Trend(field string) (TrendLine, error) {
	if _, ok := g.variant.Field(field); !ok {
		return TrendLine{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.size == 0 {
		return TrendLine{}, ErrEmptyHistory
	}

	values := make([]float64, g.size)
	start := (g.head - g.size + len(g.buf)) % len(g.buf)
	for i := 0; i < g.size; i++ {
		values[i] = g.buf[(start+i)%len(g.buf)].Values[field]
	}
	return fitLine(values), nil
}

// Len returns the number of buffered readings.
func (g *Generator) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.size
}

// Ticks returns the total number of Tick calls since construction.
func (g *Generator) Ticks() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ticks
}
