package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/denham/simtop/internal/sample"
)

func testReadings(values []float64) []sample.Reading {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	readings := make([]sample.Reading, len(values))
	for i, v := range values {
		readings[i] = sample.Reading{
			At:     base.Add(time.Duration(i) * 3 * time.Second),
			Values: map[string]float64{"price": v},
		}
	}
	return readings
}

func testTrend(readings []sample.Reading) sample.TrendLine {
	g := sample.NewGenerator(sample.Stock, &replaySampler{readings: readings}, len(readings))
	for range readings {
		g.Tick()
	}
	line, err := g.Trend("price")
	if err != nil {
		panic(err)
	}
	return line
}

// replaySampler feeds pre-built readings back through a generator.
type replaySampler struct {
	readings []sample.Reading
	pos      int
}

func (s *replaySampler) Draw(spec sample.FieldSpec) float64 {
	v := s.readings[s.pos%len(s.readings)].Values[spec.Name]
	s.pos++
	return v
}

func TestScatterChartShape(t *testing.T) {
	readings := testReadings([]float64{110, 120, 115, 130, 140})
	out := scatterChart(readings, testTrend(readings), sample.Stock.Fields[0], 60, 8)

	lines := strings.Split(out, "\n")
	// title + 8 plot rows + axis + time labels
	if len(lines) != 11 {
		t.Fatalf("expected 11 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "price (USD)") {
		t.Fatalf("missing title in chart:\n%s", out)
	}
	if !strings.Contains(out, "slope:") {
		t.Fatalf("missing slope readout in chart:\n%s", out)
	}
	if strings.Count(out, "●") != len(readings) {
		t.Fatalf("expected %d points, got %d:\n%s", len(readings), strings.Count(out, "●"), out)
	}
	if !strings.Contains(out, "12:00:00") || !strings.Contains(out, "12:00:12") {
		t.Fatalf("missing time labels:\n%s", out)
	}
}

func TestScatterChartSinglePoint(t *testing.T) {
	readings := testReadings([]float64{125})
	out := scatterChart(readings, testTrend(readings), sample.Stock.Fields[0], 60, 8)
	if !strings.Contains(out, "●") {
		t.Fatalf("single reading should still plot a point:\n%s", out)
	}
	if !strings.Contains(out, "slope: +0.00") {
		t.Fatalf("single reading should report zero slope:\n%s", out)
	}
}

func TestScatterChartEmpty(t *testing.T) {
	out := scatterChart(nil, sample.TrendLine{}, sample.Stock.Fields[0], 60, 8)
	if !strings.Contains(out, "collecting") {
		t.Fatalf("empty chart should show placeholder, got:\n%s", out)
	}
}
