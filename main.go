package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/denham/simtop/internal/collector"
	"github.com/denham/simtop/internal/config"
	"github.com/denham/simtop/internal/logging"
	"github.com/denham/simtop/internal/metrics"
	"github.com/denham/simtop/internal/sample"
	"github.com/denham/simtop/internal/ui"
)

var configFile = flag.String("config", "", "path to the configuration file (optional)")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// All logging goes to a rotating file so it doesn't interfere with the TUI.
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		metrics.Serve(cfg.Metrics.Addr, logger)
		logger.Info("metrics endpoint enabled", zap.String("addr", cfg.Metrics.Addr))
	}

	variant, _ := sample.VariantByName(cfg.Variant) // validated by config.Load
	sampler := sample.NewUniformSampler(cfg.Seed)

	c := collector.New(variant, sampler, cfg.Capacity, cfg.Interval, logger, m)
	snapCh := c.Start()
	defer c.Stop()

	logger.Info("simtop starting",
		zap.String("variant", cfg.Variant),
		zap.Int("capacity", cfg.Capacity),
		zap.Duration("interval", cfg.Interval),
	)

	model := ui.New(snapCh, cfg.Interval)
	model.SetController(c)

	prog := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := prog.Run(); err != nil {
		logger.Error("ui terminated", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
