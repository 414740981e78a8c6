package collector

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/denham/simtop/internal/metrics"
	"github.com/denham/simtop/internal/model"
	"github.com/denham/simtop/internal/sample"
)

// Collector drives the rolling sample generator on a fixed interval and
// delivers a snapshot to the UI after every tick. Ticks are strictly
// sequential: the snapshot channel is unbuffered, so the next tick is not
// scheduled until the consumer has taken the previous snapshot.
type Collector struct {
	mu       sync.Mutex
	gen      *sample.Generator
	sampler  sample.Sampler
	capacity int
	interval time.Duration

	snapCh chan model.Snapshot
	stopCh chan struct{}
	doneCh chan struct{}

	logger  *zap.Logger
	metrics *metrics.Metrics

	started bool
	stopped bool
}

// New creates a collector for the given variant. metrics may be nil.
func New(variant sample.Variant, sampler sample.Sampler, capacity int, interval time.Duration,
	logger *zap.Logger, m *metrics.Metrics) *Collector {

	return &Collector{
		gen:      sample.NewGenerator(variant, sampler, capacity),
		sampler:  sampler,
		capacity: capacity,
		interval: interval,
		snapCh:   make(chan model.Snapshot),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		logger:   logger,
		metrics:  m,
	}
}

// Start launches the tick loop and returns the snapshot channel. The first
// snapshot is produced immediately so the UI has data before the first
// interval elapses. The channel is closed on Stop.
func (c *Collector) Start() <-chan model.Snapshot {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return c.snapCh
	}
	c.started = true
	c.mu.Unlock()

	go c.run()
	return c.snapCh
}

// Stop terminates the tick loop and closes the snapshot channel.
func (c *Collector) Stop() {
	c.mu.Lock()
	if !c.started || c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	c.mu.Unlock()

	close(c.stopCh)
	<-c.doneCh
}

// SetInterval changes the tick interval; it takes effect after the
// currently pending tick fires.
func (c *Collector) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()
	c.logger.Info("interval changed", zap.Duration("interval", d))
}

// SetVariant swaps the active variant, discarding the current history. The
// next tick starts a fresh window for the new field set.
func (c *Collector) SetVariant(name string) error {
	variant, ok := sample.VariantByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", sample.ErrUnknownVariant, name)
	}
	c.mu.Lock()
	c.gen = sample.NewGenerator(variant, c.sampler, c.capacity)
	c.mu.Unlock()
	c.logger.Info("variant changed", zap.String("variant", name))
	return nil
}

func (c *Collector) run() {
	defer close(c.doneCh)

	// Immediate first tick, then interval-driven.
	if !c.deliver(c.tick()) {
		close(c.snapCh)
		return
	}

	timer := time.NewTimer(c.currentInterval())
	defer timer.Stop()

	for {
		select {
		case <-c.stopCh:
			close(c.snapCh)
			return
		case <-timer.C:
			if !c.deliver(c.tick()) {
				close(c.snapCh)
				return
			}
			timer.Reset(c.currentInterval())
		}
	}
}

// deliver sends a snapshot, giving up if Stop is called while the consumer
// is away. Returns false when the loop should exit.
func (c *Collector) deliver(snap model.Snapshot) bool {
	select {
	case c.snapCh <- snap:
		return true
	case <-c.stopCh:
		return false
	}
}

func (c *Collector) tick() model.Snapshot {
	c.mu.Lock()
	gen := c.gen
	interval := c.interval
	c.mu.Unlock()

	reading := gen.Tick()
	readings, latest, _ := gen.Snapshot()

	variant := gen.Variant()
	trends := make(map[string]sample.TrendLine, len(variant.Fields))
	for _, f := range variant.Fields {
		line, err := gen.Trend(f.Name)
		if err != nil {
			// Cannot happen after a successful Tick; log and skip the field.
			c.logger.Warn("trend computation failed",
				zap.String("field", f.Name), zap.Error(err))
			continue
		}
		trends[f.Name] = line
	}

	snap := model.Snapshot{
		Variant:  variant.Name,
		Title:    variant.Title,
		Readings: readings,
		Latest:   latest,
		Fields:   variant.Fields,
		Trends:   trends,
		Capacity: c.capacity,
		Interval: interval,
		Ticks:    gen.Ticks(),
	}

	if c.metrics != nil {
		c.metrics.Observe(snap)
	}
	c.logger.Debug("tick",
		zap.String("variant", variant.Name),
		zap.Time("at", reading.At),
		zap.Int("buffered", len(readings)),
	)
	return snap
}

func (c *Collector) currentInterval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}
