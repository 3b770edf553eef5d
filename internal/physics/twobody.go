package physics

import (
	"fmt"
	"math"

	"github.com/jskelin/physlab/internal/dynamo"
)

// TwoBody models a planar orbit of a test mass around a fixed central
// body with gravitational parameter mu = G*M. State is [x, y, vx, vy],
// which matches the position/velocity split the leapfrog integrator wants.
type TwoBody struct {
	Mu        float64
	Softening float64
}

func NewTwoBody() *TwoBody {
	return &TwoBody{Mu: 1.0}
}

func (b *TwoBody) StateDim() int { return 4 }

func (b *TwoBody) Derive(s dynamo.State, _ float64) dynamo.State {
	x, y, vx, vy := s[0], s[1], s[2], s[3]

	r2 := x*x + y*y + b.Softening*b.Softening
	r := math.Sqrt(r2)
	inv3 := 1.0 / (r2 * r)

	return dynamo.State{vx, vy, -b.Mu * x * inv3, -b.Mu * y * inv3}
}

// Energy is the specific orbital energy v^2/2 - mu/r. Negative for bound
// orbits, zero on a parabolic escape trajectory.
func (b *TwoBody) Energy(s dynamo.State) float64 {
	r := math.Hypot(s[0], s[1])
	v2 := s[2]*s[2] + s[3]*s[3]
	return 0.5*v2 - b.Mu/r
}

// AngularMomentum is the specific angular momentum x*vy - y*vx.
func (b *TwoBody) AngularMomentum(s dynamo.State) float64 {
	return s[0]*s[3] - s[1]*s[2]
}

// CircularState places the test mass at (r, 0) with the exact speed
// sqrt(mu/r) for a circular orbit.
func (b *TwoBody) CircularState(r float64) dynamo.State {
	return dynamo.State{r, 0, 0, math.Sqrt(b.Mu / r)}
}

// EllipticState starts at perihelion of an orbit with semi-major axis a
// and eccentricity e.
func (b *TwoBody) EllipticState(a, e float64) dynamo.State {
	rp := a * (1 - e)
	vp := math.Sqrt(b.Mu / a * (1 + e) / (1 - e))
	return dynamo.State{rp, 0, 0, vp}
}

// CircularPeriod is the analytic Kepler period 2*pi*sqrt(r^3/mu).
func (b *TwoBody) CircularPeriod(r float64) float64 {
	return 2 * math.Pi * math.Sqrt(r*r*r/b.Mu)
}

func (b *TwoBody) Params() map[string]float64 {
	return map[string]float64{"mu": b.Mu, "softening": b.Softening}
}

func (b *TwoBody) SetParam(name string, value float64) error {
	switch name {
	case "mu":
		b.Mu = value
	case "softening":
		b.Softening = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
