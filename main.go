package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/impact/config"
	"github.com/pthm-cable/impact/geo"
	"github.com/pthm-cable/impact/scenario"
	"github.com/pthm-cable/impact/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	name := flag.String("name", "", "Scenario name (e.g. the asteroid designation)")
	diameter := flag.Float64("diameter", 0, "Asteroid diameter in meters")
	velocity := flag.Float64("velocity", 0, "Impact velocity in km/s (0 = use config)")
	density := flag.Float64("density", 0, "Asteroid density in kg/m³ (0 = use config)")
	population := flag.Int64("population", -1, "Population of the target area (-1 = unknown, or the preset's)")
	leadTime := flag.Float64("lead-time", -1, "Warning time in years (-1 = use config)")
	target := flag.String("target", "", "Preset target name (overrides -lat/-lon)")
	lat := flag.Float64("lat", 0, "Target latitude in degrees")
	lon := flag.Float64("lon", 0, "Target longitude in degrees")
	outputDir := flag.String("output-dir", "", "Output directory for CSV/JSON results and config snapshot")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stderr; stdout carries the assessment)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Derived.LogLevel}))
	slog.SetDefault(logger)

	v := *velocity
	if v == 0 {
		v = cfg.Asteroid.VelocityKmPerSecond
	}

	req := scenario.NewRequest(cfg, *diameter, v)
	req.Name = *name
	req.Target = geo.GeoPoint{LatitudeDeg: *lat, LongitudeDeg: *lon}
	if *density > 0 {
		req.Asteroid.DensityKgPerM3 = *density
	}
	if *leadTime >= 0 {
		req.LeadTimeYears = *leadTime
	}

	if *target != "" {
		t, ok := geo.LookupTarget(*target)
		if !ok {
			slog.Error("unknown target", "target", *target, "available", geo.TargetNames())
			os.Exit(2)
		}
		req.Target = t.Point
		if *population < 0 && t.Population > 0 {
			req.Population = &t.Population
		}
	}
	if *population >= 0 {
		req.Population = population
	}

	a, err := scenario.Assess(req, scenario.DefaultCatalogs(), cfg.Globe.Radius)
	if err != nil {
		slog.Error("assessment failed", "error", err)
		os.Exit(2)
	}

	record := telemetry.NewAssessmentRecord(a)
	slog.Info("assessment", "result", record)

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}
	if err := om.WriteAssessments(a); err != nil {
		slog.Error("failed to write assessment", "error", err)
	}
	if err := om.WriteAssessmentJSON("assessment.json", a); err != nil {
		slog.Error("failed to write assessment json", "error", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		slog.Error("failed to encode assessment", "error", err)
		os.Exit(1)
	}
}
