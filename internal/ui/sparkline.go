package ui

// sparklineLen is the number of samples kept per field for sparkline display.
// It is independent of the generator's history capacity: the sparkline is a
// longer cosmetic trail, the history window is the contract.
const sparklineLen = 24

// ringBuffer is a fixed-size circular buffer of float64 values.
type ringBuffer struct {
	data  []float64
	head  int // next write position
	count int // number of valid samples
}

func newRingBuffer(size int) *ringBuffer {
	if size <= 0 {
		size = sparklineLen
	}
	return &ringBuffer{data: make([]float64, size)}
}

// push adds a new value to the buffer.
func (r *ringBuffer) push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// samples returns all valid samples in chronological order (oldest first).
func (r *ringBuffer) samples() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	start := (r.head - r.count + len(r.data)) % len(r.data)
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(start+i)%len(r.data)]
	}
	return result
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// renderSparkline maps samples onto block characters, normalized to the
// [min, max] generation range so the trail is comparable across redraws.
func renderSparkline(samples []float64, min, max float64) string {
	if len(samples) == 0 {
		return ""
	}
	if max <= min {
		max = min + 1
	}
	runes := make([]rune, len(samples))
	for i, v := range samples {
		norm := (v - min) / (max - min)
		if norm < 0 {
			norm = 0
		}
		if norm > 1 {
			norm = 1
		}
		idx := int(norm * float64(len(sparkRunes)-1))
		runes[i] = sparkRunes[idx]
	}
	return string(runes)
}
