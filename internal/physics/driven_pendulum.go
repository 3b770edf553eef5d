package physics

import (
	"fmt"
	"math"

	"github.com/jskelin/physlab/internal/dynamo"
)

// DrivenPendulum is a sinusoidally forced, damped pendulum:
//
//	theta'' = -(1/q) theta' - omega0^2 sin(theta) + gamma cos(driveFreq t)
//
// State is [theta, omega]. With q=2, driveFreq=2/3, omega0=1 the system
// passes through period doubling into chaos as gamma grows past ~1.08.
type DrivenPendulum struct {
	Omega0    float64 // natural frequency sqrt(g/L)
	Quality   float64 // damping quality factor q; damping term is omega/q
	Gamma     float64 // drive amplitude
	DriveFreq float64 // drive angular frequency
}

func NewDrivenPendulum() *DrivenPendulum {
	return &DrivenPendulum{
		Omega0:    1.0,
		Quality:   2.0,
		Gamma:     0.9,
		DriveFreq: 2.0 / 3.0,
	}
}

func (p *DrivenPendulum) StateDim() int { return 2 }

func (p *DrivenPendulum) Derive(x dynamo.State, t float64) dynamo.State {
	theta := x[0]
	omega := x[1]

	alpha := -omega/p.Quality - p.Omega0*p.Omega0*math.Sin(theta) + p.Gamma*math.Cos(p.DriveFreq*t)

	return dynamo.State{omega, alpha}
}

// DrivePeriod returns the forcing period 2*pi/driveFreq, the natural
// strobe interval for Poincare sections.
func (p *DrivenPendulum) DrivePeriod() float64 {
	return 2 * math.Pi / p.DriveFreq
}

// Energy is the mechanical energy of the unforced pendulum in units of
// m*L^2; useful for drift checks when gamma and damping are zero.
func (p *DrivenPendulum) Energy(x dynamo.State) float64 {
	ke := 0.5 * x[1] * x[1]
	pe := p.Omega0 * p.Omega0 * (1.0 - math.Cos(x[0]))
	return ke + pe
}

func (p *DrivenPendulum) Params() map[string]float64 {
	return map[string]float64{
		"omega0":     p.Omega0,
		"quality":    p.Quality,
		"gamma":      p.Gamma,
		"drive_freq": p.DriveFreq,
	}
}

func (p *DrivenPendulum) SetParam(name string, value float64) error {
	switch name {
	case "omega0":
		p.Omega0 = value
	case "quality":
		p.Quality = value
	case "gamma":
		p.Gamma = value
	case "drive_freq":
		p.DriveFreq = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// WrapAngle folds an angle into [-pi, pi).
func WrapAngle(theta float64) float64 {
	theta = math.Mod(theta+math.Pi, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta - math.Pi
}
