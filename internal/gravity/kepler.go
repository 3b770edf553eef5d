package gravity

import (
	"context"
	"errors"
	"math"

	"github.com/jskelin/physlab/internal/dynamo"
	"github.com/jskelin/physlab/internal/physics"
)

// ErrNoPeriod indicates an orbit that never completed during the
// integration window.
var ErrNoPeriod = errors.New("gravity: orbit did not complete a period")

// OrbitSample pairs an orbital radius with the simulated and analytic
// periods.
type OrbitSample struct {
	Radius    float64
	Period    float64
	Predicted float64
}

// MeasurePeriod integrates a circular orbit of the given radius and
// returns the time of first return: the trajectory starts on the +x axis
// moving up, so the period ends at the upward y zero-crossing with x>0.
// The crossing time is refined by linear interpolation between steps.
func MeasurePeriod(ctx context.Context, body *physics.TwoBody, integ dynamo.Integrator, radius, dt float64) (float64, error) {
	x := body.CircularState(radius)
	limit := 3 * body.CircularPeriod(radius)

	t := 0.0
	prevY := x[1]
	prevT := t
	started := false

	for t < limit {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		x = integ.Step(body, x, t, dt)
		t += dt

		if !x.IsValid() {
			return 0, dynamo.ErrInvalidState
		}

		// Skip the launch sample itself, then wait for y to go negative
		// (lower half-plane) before arming the crossing detector.
		if !started {
			if x[1] < 0 {
				started = true
			}
		} else if prevY < 0 && x[1] >= 0 && x[0] > 0 {
			frac := -prevY / (x[1] - prevY)
			return prevT + frac*dt, nil
		}

		prevY = x[1]
		prevT = t
	}

	return 0, ErrNoPeriod
}

// Sweep measures orbital periods over a range of radii.
func Sweep(ctx context.Context, body *physics.TwoBody, integ dynamo.Integrator, radii []float64, stepsPerOrbit int) ([]OrbitSample, error) {
	if stepsPerOrbit < 100 {
		stepsPerOrbit = 100
	}

	samples := make([]OrbitSample, 0, len(radii))
	for _, r := range radii {
		predicted := body.CircularPeriod(r)
		dt := predicted / float64(stepsPerOrbit)

		period, err := MeasurePeriod(ctx, body, integ, r, dt)
		if err != nil {
			return samples, err
		}
		samples = append(samples, OrbitSample{Radius: r, Period: period, Predicted: predicted})
	}
	return samples, nil
}

// FitPowerLaw fits T = C * r^slope by least squares in log-log space.
// Kepler's third law predicts slope 3/2.
func FitPowerLaw(samples []OrbitSample) (slope, intercept float64) {
	n := float64(len(samples))
	if n < 2 {
		return 0, 0
	}

	var sx, sy, sxx, sxy float64
	for _, s := range samples {
		lx := math.Log(s.Radius)
		ly := math.Log(s.Period)
		sx += lx
		sy += ly
		sxx += lx * lx
		sxy += lx * ly
	}

	slope = (n*sxy - sx*sy) / (n*sxx - sx*sx)
	intercept = (sy - slope*sx) / n
	return slope, intercept
}
