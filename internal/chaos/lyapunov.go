package chaos

import (
	"context"
	"math"

	"github.com/jskelin/physlab/internal/dynamo"
	"github.com/jskelin/physlab/internal/integrators"
	"github.com/jskelin/physlab/internal/physics"
)

// LyapunovExponent estimates the largest Lyapunov exponent with the
// trajectory-separation method: integrate two nearby trajectories,
// accumulate log growth of their separation, and renormalize the shadow
// back to the reference to stay in the linear regime.
//
// Positive means chaos; a damped periodic attractor contracts and
// produces a negative value.
func LyapunovExponent(ctx context.Context, sys dynamo.System, integ dynamo.Integrator, x0 dynamo.State, dt, duration, d0 float64) (float64, error) {
	if len(x0) == 0 || d0 <= 0 {
		return 0, dynamo.ErrBadConfig
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += d0

	t := 0.0
	sumLog := 0.0
	count := 0

	for t < duration {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		x = integ.Step(sys, x, t, dt)
		xp = integ.Step(sys, xp, t, dt)
		t += dt

		if !x.IsValid() || !xp.IsValid() {
			return 0, dynamo.ErrInvalidState
		}

		sep := separation(x, xp)
		if sep <= 0 {
			continue
		}

		sumLog += math.Log(sep / d0)
		count++

		// Renormalize the shadow trajectory back to distance d0.
		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if count == 0 {
		return 0, nil
	}
	return sumLog / (float64(count) * dt), nil
}

// separation measures distance in phase space, folding the angle
// coordinate so trajectories a full turn apart count as close.
func separation(x, xp dynamo.State) float64 {
	sum := 0.0
	for i := range x {
		diff := xp[i] - x[i]
		if i == 0 {
			diff = physics.WrapAngle(diff)
		}
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// ExponentPoint pairs a drive amplitude with its Lyapunov estimate.
type ExponentPoint struct {
	Gamma    float64
	Exponent float64
}

// LyapunovSweep estimates the largest exponent across a range of drive
// amplitudes, mapping out where the pendulum goes chaotic.
func LyapunovSweep(ctx context.Context, base *physics.DrivenPendulum, x0 dynamo.State, gammaMin, gammaMax float64, steps int, dt, duration float64) ([]ExponentPoint, error) {
	if steps < 2 {
		steps = 2
	}
	inc := (gammaMax - gammaMin) / float64(steps-1)

	out := make([]ExponentPoint, 0, steps)
	for i := 0; i < steps; i++ {
		p := *base
		p.Gamma = gammaMin + float64(i)*inc

		lam, err := LyapunovExponent(ctx, &p, integrators.NewRK4(), x0.Clone(), dt, duration, 1e-8)
		if err != nil {
			return out, err
		}
		out = append(out, ExponentPoint{Gamma: p.Gamma, Exponent: lam})
	}
	return out, nil
}
