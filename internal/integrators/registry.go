package integrators

import (
	"fmt"

	"github.com/jskelin/physlab/internal/dynamo"
)

// ByName resolves an integrator from its CLI name.
func ByName(name string) (dynamo.Integrator, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	case "rk45":
		return NewRK45(), nil
	case "leapfrog":
		return NewLeapfrog(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

// Names lists the available integrators.
func Names() []string {
	return []string{"euler", "rk4", "rk45", "leapfrog"}
}
