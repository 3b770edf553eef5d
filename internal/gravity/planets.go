package gravity

// Physical constants (SI).
const (
	G       = 6.674e-11 // m^3 kg^-1 s^-2
	SunMass = 1.989e30  // kg
	AU      = 1.496e11  // m
)

// Planet carries the data needed for cosmic-velocity and Kepler tables.
type Planet struct {
	Name        string
	Mass        float64 // kg
	Radius      float64 // m
	OrbitRadius float64 // m, mean distance from the sun
}

// Planets lists the eight planets, innermost first.
var Planets = []Planet{
	{"mercury", 3.301e23, 2.4397e6, 5.79e10},
	{"venus", 4.867e24, 6.0518e6, 1.082e11},
	{"earth", 5.972e24, 6.371e6, 1.496e11},
	{"mars", 6.417e23, 3.3895e6, 2.279e11},
	{"jupiter", 1.898e27, 6.9911e7, 7.786e11},
	{"saturn", 5.683e26, 5.8232e7, 1.4335e12},
	{"uranus", 8.681e25, 2.5362e7, 2.8725e12},
	{"neptune", 1.024e26, 2.4622e7, 4.4951e12},
}

// PlanetByName looks a planet up case-sensitively by its lowercase name.
func PlanetByName(name string) (Planet, bool) {
	for _, p := range Planets {
		if p.Name == name {
			return p, true
		}
	}
	return Planet{}, false
}
