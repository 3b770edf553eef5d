package gravity

import (
	"context"
	"math"
	"testing"

	"github.com/jskelin/physlab/internal/integrators"
	"github.com/jskelin/physlab/internal/physics"
)

func TestEarthCosmicVelocities(t *testing.T) {
	earth, ok := PlanetByName("earth")
	if !ok {
		t.Fatal("earth missing from the planet table")
	}

	// Textbook values: 7.91, 11.19 and about 16.6 km/s.
	if v := FirstCosmic(earth.Mass, earth.Radius) / 1000; math.Abs(v-7.91) > 0.02 {
		t.Errorf("first cosmic velocity %v km/s, want ~7.91", v)
	}
	if v := SecondCosmic(earth.Mass, earth.Radius) / 1000; math.Abs(v-11.19) > 0.02 {
		t.Errorf("second cosmic velocity %v km/s, want ~11.19", v)
	}
	if v := ThirdCosmic(earth) / 1000; math.Abs(v-16.6) > 0.1 {
		t.Errorf("third cosmic velocity %v km/s, want ~16.6", v)
	}
}

func TestVelocityOrdering(t *testing.T) {
	for _, row := range VelocityTable() {
		if row.Second <= row.First {
			t.Errorf("%s: escape speed must exceed orbital speed", row.Planet.Name)
		}
		if row.Third <= row.Second {
			t.Errorf("%s: solar escape must exceed planetary escape", row.Planet.Name)
		}
		// Escape is exactly sqrt(2) times orbital.
		if ratio := row.Second / row.First; math.Abs(ratio-math.Sqrt2) > 1e-9 {
			t.Errorf("%s: second/first ratio %v, want sqrt(2)", row.Planet.Name, ratio)
		}
	}
}

func TestPlanetByNameUnknown(t *testing.T) {
	if _, ok := PlanetByName("pluto"); ok {
		t.Error("pluto should not be in the table")
	}
}

func TestMeasurePeriodMatchesKepler(t *testing.T) {
	body := physics.NewTwoBody()

	radius := 1.5
	predicted := body.CircularPeriod(radius)
	dt := predicted / 4000

	period, err := MeasurePeriod(context.Background(), body, integrators.NewLeapfrog(), radius, dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rel := math.Abs(period-predicted) / predicted; rel > 1e-3 {
		t.Errorf("measured period %v, analytic %v (rel err %g)", period, predicted, rel)
	}
}

func TestSweepAndFitRecoversKeplerExponent(t *testing.T) {
	if testing.Short() {
		t.Skip("long integration")
	}

	body := physics.NewTwoBody()
	radii := []float64{1, 1.5, 2, 2.5, 3, 4}

	samples, err := Sweep(context.Background(), body, integrators.NewLeapfrog(), radii, 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != len(radii) {
		t.Fatalf("expected %d samples, got %d", len(radii), len(samples))
	}

	slope, intercept := FitPowerLaw(samples)
	if math.Abs(slope-1.5) > 0.02 {
		t.Errorf("fitted exponent %v, kepler predicts 1.5", slope)
	}
	// T = 2*pi*r^1.5 for mu=1, so the intercept is log(2*pi).
	if math.Abs(intercept-math.Log(2*math.Pi)) > 0.02 {
		t.Errorf("fitted intercept %v, want log(2*pi)=%v", intercept, math.Log(2*math.Pi))
	}
}

func TestFitPowerLawOnAnalyticData(t *testing.T) {
	body := physics.NewTwoBody()

	samples := make([]OrbitSample, 0, 5)
	for _, r := range []float64{1, 2, 3, 5, 8} {
		samples = append(samples, OrbitSample{Radius: r, Period: body.CircularPeriod(r)})
	}

	slope, _ := FitPowerLaw(samples)
	if math.Abs(slope-1.5) > 1e-12 {
		t.Errorf("exact data must fit exponent 1.5, got %v", slope)
	}
}

func TestFitPowerLawDegenerate(t *testing.T) {
	if slope, intercept := FitPowerLaw(nil); slope != 0 || intercept != 0 {
		t.Errorf("expected zero fit for empty input, got %v, %v", slope, intercept)
	}
}
