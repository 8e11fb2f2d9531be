package scenario

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// LogDiameters returns steps diameters evenly spaced in log10 between min and max.
func LogDiameters(minMeters, maxMeters float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}
	if minMeters <= 0 || maxMeters <= minMeters {
		return nil, fmt.Errorf("invalid diameter range [%g, %g]", minMeters, maxMeters)
	}
	return floats.LogSpan(make([]float64, steps), minMeters, maxMeters), nil
}

// Sweep assesses base once per diameter, keeping every other input fixed.
func Sweep(base Request, diameters []float64, cat Catalogs, globeRadius float64) ([]Assessment, error) {
	out := make([]Assessment, 0, len(diameters))
	for _, d := range diameters {
		req := base
		req.Asteroid.DiameterMeters = d
		req.Name = fmt.Sprintf("%s d=%.1fm", base.Name, d)

		a, err := Assess(req, cat, globeRadius)
		if err != nil {
			return nil, fmt.Errorf("diameter %g: %w", d, err)
		}
		out = append(out, a)
	}
	return out, nil
}
