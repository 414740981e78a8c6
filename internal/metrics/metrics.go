package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/denham/simtop/internal/model"
)

// Metrics exposes dashboard state over a prometheus endpoint.
type Metrics struct {
	ticksTotal  prometheus.Counter
	bufferLen   prometheus.Gauge
	latestValue *prometheus.GaugeVec
	trendSlope  *prometheus.GaugeVec
}

// New registers the simtop collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		ticksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "simtop",
			Name:      "ticks_total",
			Help:      "Total number of generation ticks.",
		}),
		bufferLen: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "simtop",
			Name:      "history_length",
			Help:      "Number of readings currently buffered.",
		}),
		latestValue: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "simtop",
			Name:      "latest_value",
			Help:      "Most recently generated value per field.",
		}, []string{"variant", "field"}),
		trendSlope: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "simtop",
			Name:      "trend_slope",
			Help:      "Least-squares slope of the buffered series per field.",
		}, []string{"variant", "field"}),
	}
}

// Observe records one snapshot.
func (m *Metrics) Observe(snap model.Snapshot) {
	m.ticksTotal.Inc()
	m.bufferLen.Set(float64(len(snap.Readings)))
	for field, v := range snap.Latest.Values {
		m.latestValue.WithLabelValues(snap.Variant, field).Set(v)
	}
	for field, line := range snap.Trends {
		m.trendSlope.WithLabelValues(snap.Variant, field).Set(line.Slope)
	}
}

// Serve exposes /metrics on the given address in a background goroutine.
func Serve(addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
}
