package model

import (
	"time"

	"github.com/denham/simtop/internal/sample"
)

// Snapshot is the immutable state delivered to the UI after each tick. The
// trend lines are computed from the same buffer state as Readings, so the
// chart and the table always agree about which readings are current.
type Snapshot struct {
	Variant string
	Title   string

	Readings []sample.Reading
	Latest   sample.Reading
	Fields   []sample.FieldSpec
	Trends   map[string]sample.TrendLine

	Capacity int
	Interval time.Duration
	Ticks    uint64
}
