package chaos

import (
	"context"
	"math"

	"github.com/jskelin/physlab/internal/dynamo"
	"github.com/jskelin/physlab/internal/physics"
)

// Point is one strobed sample of the pendulum's phase plane.
type Point struct {
	Theta float64
	Omega float64
}

// SectionConfig controls Poincare sampling. The section is strobed once
// per drive period, so the integrator step is chosen as an exact divisor
// of the period.
type SectionConfig struct {
	Dt               float64 // requested step; snapped to period/n
	TransientPeriods int     // drive periods discarded before recording
	RecordPeriods    int     // drive periods recorded
}

func DefaultSectionConfig() SectionConfig {
	return SectionConfig{
		Dt:               0.01,
		TransientPeriods: 100,
		RecordPeriods:    400,
	}
}

// Section integrates the driven pendulum and samples (theta, omega) once
// per forcing period. A periodic orbit collapses onto a handful of points;
// a chaotic one smears into a fractal strange-attractor slice.
func Section(ctx context.Context, p *physics.DrivenPendulum, integ dynamo.Integrator, x0 dynamo.State, cfg SectionConfig) ([]Point, error) {
	period := p.DrivePeriod()
	stepsPerPeriod := int(math.Ceil(period / cfg.Dt))
	if stepsPerPeriod < 1 {
		stepsPerPeriod = 1
	}
	dt := period / float64(stepsPerPeriod)

	x := x0.Clone()
	t := 0.0

	for i := 0; i < cfg.TransientPeriods; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		for j := 0; j < stepsPerPeriod; j++ {
			x = integ.Step(p, x, t, dt)
			t += dt
		}
	}

	points := make([]Point, 0, cfg.RecordPeriods)
	for i := 0; i < cfg.RecordPeriods; i++ {
		select {
		case <-ctx.Done():
			return points, ctx.Err()
		default:
		}
		for j := 0; j < stepsPerPeriod; j++ {
			x = integ.Step(p, x, t, dt)
			t += dt
		}
		if !x.IsValid() {
			return points, dynamo.ErrInvalidState
		}
		points = append(points, Point{Theta: physics.WrapAngle(x[0]), Omega: x[1]})
	}

	return points, nil
}

// DistinctPoints counts strobe points that differ by more than eps in
// either coordinate; a period-n orbit yields n.
func DistinctPoints(points []Point, eps float64) int {
	distinct := make([]Point, 0, 8)
	for _, p := range points {
		found := false
		for _, d := range distinct {
			if math.Abs(p.Theta-d.Theta) < eps && math.Abs(p.Omega-d.Omega) < eps {
				found = true
				break
			}
		}
		if !found {
			distinct = append(distinct, p)
		}
	}
	return len(distinct)
}
