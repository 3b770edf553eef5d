package physics

import (
	"fmt"
	"math"

	"github.com/jskelin/physlab/internal/dynamo"
)

// Projectile models 2D point-mass flight with quadratic air drag.
// State is [x, y, vx, vy]. Drag = 0 recovers the textbook parabola.
type Projectile struct {
	Mass    float64
	Drag    float64 // quadratic drag coefficient c in F = -c*|v|*v
	Gravity float64
}

func NewProjectile() *Projectile {
	return &Projectile{
		Mass:    1.0,
		Drag:    0.0,
		Gravity: 9.81,
	}
}

func (p *Projectile) StateDim() int { return 4 }

func (p *Projectile) Derive(x dynamo.State, _ float64) dynamo.State {
	vx, vy := x[2], x[3]
	speed := math.Hypot(vx, vy)

	ax := -p.Drag / p.Mass * speed * vx
	ay := -p.Gravity - p.Drag/p.Mass*speed*vy

	return dynamo.State{vx, vy, ax, ay}
}

func (p *Projectile) Energy(x dynamo.State) float64 {
	ke := 0.5 * p.Mass * (x[2]*x[2] + x[3]*x[3])
	pe := p.Mass * p.Gravity * x[1]
	return ke + pe
}

// LaunchState builds the initial state for a ground launch at the given
// speed and elevation angle (radians).
func LaunchState(speed, angle float64) dynamo.State {
	return dynamo.State{0, 0, speed * math.Cos(angle), speed * math.Sin(angle)}
}

// IdealRange is the drag-free range v^2 sin(2a)/g.
func (p *Projectile) IdealRange(speed, angle float64) float64 {
	return speed * speed * math.Sin(2*angle) / p.Gravity
}

// IdealApex is the drag-free maximum height (v sin a)^2 / 2g.
func (p *Projectile) IdealApex(speed, angle float64) float64 {
	vy := speed * math.Sin(angle)
	return vy * vy / (2 * p.Gravity)
}

// IdealFlightTime is the drag-free time of flight 2 v sin(a)/g.
func (p *Projectile) IdealFlightTime(speed, angle float64) float64 {
	return 2 * speed * math.Sin(angle) / p.Gravity
}

func (p *Projectile) Params() map[string]float64 {
	return map[string]float64{
		"mass":    p.Mass,
		"drag":    p.Drag,
		"gravity": p.Gravity,
	}
}

func (p *Projectile) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		p.Mass = value
	case "drag":
		p.Drag = value
	case "gravity":
		p.Gravity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
