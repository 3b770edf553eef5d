package chaos

import (
	"context"
	"runtime"
	"sync"

	"github.com/jskelin/physlab/internal/dynamo"
	"github.com/jskelin/physlab/internal/integrators"
	"github.com/jskelin/physlab/internal/physics"
)

// BifurcationPoint holds the post-transient strobed angles observed for
// one drive amplitude.
type BifurcationPoint struct {
	Gamma  float64
	Thetas []float64
}

// SweepConfig controls a bifurcation sweep over the drive amplitude.
type SweepConfig struct {
	GammaMin   float64
	GammaMax   float64
	GammaSteps int
	Section    SectionConfig
	Workers    int // 0 means GOMAXPROCS
}

func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		GammaMin:   0.9,
		GammaMax:   1.5,
		GammaSteps: 240,
		Section: SectionConfig{
			Dt:               0.01,
			TransientPeriods: 120,
			RecordPeriods:    60,
		},
	}
}

// BifurcationDiagram sweeps gamma and records the strobed angle set at
// each value. Parameter points are independent, so the sweep fans out
// across a bounded worker pool; each worker gets its own model and
// integrator to keep scratch state unshared.
func BifurcationDiagram(ctx context.Context, base *physics.DrivenPendulum, x0 dynamo.State, cfg SweepConfig) ([]BifurcationPoint, error) {
	if cfg.GammaSteps < 2 {
		cfg.GammaSteps = 2
	}
	step := (cfg.GammaMax - cfg.GammaMin) / float64(cfg.GammaSteps-1)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]BifurcationPoint, cfg.GammaSteps)
	errs := make([]error, cfg.GammaSteps)

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i := 0; i < cfg.GammaSteps; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			p := *base
			p.Gamma = cfg.GammaMin + float64(idx)*step

			points, err := Section(ctx, &p, integrators.NewRK4(), x0.Clone(), cfg.Section)
			if err != nil {
				errs[idx] = err
				return
			}

			thetas := dedupValues(points)
			results[idx] = BifurcationPoint{Gamma: p.Gamma, Thetas: thetas}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// dedupValues quantizes strobed angles to pick out the distinct branches
// of the attractor at this parameter value.
func dedupValues(points []Point) []float64 {
	seen := make(map[int]bool, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		key := int(p.Theta * 1000)
		if !seen[key] {
			seen[key] = true
			values = append(values, p.Theta)
		}
	}
	return values
}
