// Package main sweeps asteroid diameter over a log-spaced grid and records
// impact metrics and defense outcomes for each step.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/impact/config"
	"github.com/pthm-cable/impact/geo"
	"github.com/pthm-cable/impact/scenario"
	"github.com/pthm-cable/impact/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	velocity := flag.Float64("velocity", 0, "Impact velocity in km/s (0 = use config)")
	minDiameter := flag.Float64("min", 0, "Smallest diameter in meters (0 = use config)")
	maxDiameter := flag.Float64("max", 0, "Largest diameter in meters (0 = use config)")
	steps := flag.Int("steps", 0, "Number of diameters (0 = use config)")
	leadTime := flag.Float64("lead-time", -1, "Warning time in years (-1 = use config)")
	target := flag.String("target", "", "Preset target name (empty = no population)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Derived.LogLevel})))

	v := pick(*velocity, cfg.Asteroid.VelocityKmPerSecond)
	lo := pick(*minDiameter, cfg.Sweep.MinDiameterMeters)
	hi := pick(*maxDiameter, cfg.Sweep.MaxDiameterMeters)
	n := *steps
	if n == 0 {
		n = cfg.Sweep.Steps
	}

	diameters, err := scenario.LogDiameters(lo, hi, n)
	if err != nil {
		log.Fatalf("invalid sweep: %v", err)
	}

	base := scenario.NewRequest(cfg, lo, v)
	base.Name = "sweep"
	if *leadTime >= 0 {
		base.LeadTimeYears = *leadTime
	}
	if cfg.Sweep.Population > 0 {
		pop := cfg.Sweep.Population
		base.Population = &pop
	}
	if *target != "" {
		t, ok := geo.LookupTarget(*target)
		if !ok {
			log.Fatalf("unknown target %q (available: %v)", *target, geo.TargetNames())
		}
		base.Name = t.Name
		base.Target = t.Point
		base.Population = &t.Population
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		log.Fatalf("failed to write config snapshot: %v", err)
	}

	start := time.Now()
	results, err := scenario.Sweep(base, diameters, scenario.DefaultCatalogs(), cfg.Globe.Radius)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	if err := om.WriteAssessments(results...); err != nil {
		log.Fatalf("failed to write assessments: %v", err)
	}

	stats := telemetry.ComputeSweepStats(results)
	if err := om.WriteStats(stats); err != nil {
		log.Fatalf("failed to write stats: %v", err)
	}

	slog.Info("sweep complete",
		"steps", len(results),
		"velocity_km_s", v,
		"lead_time_years", base.LeadTimeYears,
		"elapsed", time.Since(start).String(),
		"output", om.Dir(),
	)
	stats.LogStats()
}

// pick returns v unless it is zero, in which case fallback.
func pick(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
