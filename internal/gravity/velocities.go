package gravity

import "math"

// FirstCosmic is the circular orbital speed at the body's surface,
// sqrt(GM/r). For Earth this is about 7.91 km/s.
func FirstCosmic(mass, radius float64) float64 {
	return math.Sqrt(G * mass / radius)
}

// SecondCosmic is the surface escape speed sqrt(2GM/r), about 11.19 km/s
// for Earth.
func SecondCosmic(mass, radius float64) float64 {
	return math.Sqrt(2 * G * mass / radius)
}

// ThirdCosmic is the launch speed needed to leave the solar system from
// a planet's surface, exploiting the planet's own orbital motion: the
// hyperbolic excess required is (sqrt(2)-1) times the orbital speed, and
// the launch speed combines that excess with the planet's escape speed.
// For Earth this is about 16.6 km/s.
func ThirdCosmic(p Planet) float64 {
	orbital := math.Sqrt(G * SunMass / p.OrbitRadius)
	excess := (math.Sqrt2 - 1) * orbital
	escape := SecondCosmic(p.Mass, p.Radius)
	return math.Sqrt(excess*excess + escape*escape)
}

// VelocityRow bundles the three thresholds for one planet, in m/s.
type VelocityRow struct {
	Planet Planet
	First  float64
	Second float64
	Third  float64
}

// VelocityTable computes all three cosmic velocities for every planet.
func VelocityTable() []VelocityRow {
	rows := make([]VelocityRow, 0, len(Planets))
	for _, p := range Planets {
		rows = append(rows, VelocityRow{
			Planet: p,
			First:  FirstCosmic(p.Mass, p.Radius),
			Second: SecondCosmic(p.Mass, p.Radius),
			Third:  ThirdCosmic(p),
		})
	}
	return rows
}
