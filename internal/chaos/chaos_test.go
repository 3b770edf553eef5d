package chaos

import (
	"context"
	"math"
	"testing"

	"github.com/jskelin/physlab/internal/dynamo"
	"github.com/jskelin/physlab/internal/integrators"
	"github.com/jskelin/physlab/internal/physics"
)

func TestSectionPeriodicRegimeCollapses(t *testing.T) {
	if testing.Short() {
		t.Skip("long integration")
	}

	p := physics.NewDrivenPendulum()
	p.Gamma = 0.9 // period-1 attractor

	cfg := SectionConfig{Dt: 0.01, TransientPeriods: 150, RecordPeriods: 50}

	points, err := Section(context.Background(), p, integrators.NewRK4(), dynamo.State{0.2, 0}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 50 {
		t.Fatalf("expected 50 strobe points, got %d", len(points))
	}

	if n := DistinctPoints(points, 0.05); n > 2 {
		t.Errorf("periodic orbit should collapse to 1-2 strobe points, got %d", n)
	}
}

func TestSectionChaoticRegimeSpreads(t *testing.T) {
	if testing.Short() {
		t.Skip("long integration")
	}

	p := physics.NewDrivenPendulum()
	p.Gamma = 1.5 // strange attractor

	cfg := SectionConfig{Dt: 0.01, TransientPeriods: 100, RecordPeriods: 200}

	points, err := Section(context.Background(), p, integrators.NewRK4(), dynamo.State{0.2, 0}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := DistinctPoints(points, 0.05); n < 50 {
		t.Errorf("chaotic orbit should fill the section, got only %d distinct points", n)
	}
}

func TestSectionCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := physics.NewDrivenPendulum()
	_, err := Section(ctx, p, integrators.NewRK4(), dynamo.State{0.2, 0}, DefaultSectionConfig())
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDistinctPoints(t *testing.T) {
	points := []Point{
		{1.0, 2.0},
		{1.001, 2.001}, // same as first within eps
		{-1.0, 0.5},
	}
	if n := DistinctPoints(points, 0.01); n != 2 {
		t.Errorf("expected 2 distinct points, got %d", n)
	}
	if n := DistinctPoints(points, 1e-6); n != 3 {
		t.Errorf("with tiny eps expected 3, got %d", n)
	}
}

func TestLyapunovSignsDistinguishRegimes(t *testing.T) {
	if testing.Short() {
		t.Skip("long integration")
	}

	base := physics.NewDrivenPendulum()
	x0 := dynamo.State{0.2, 0}

	base.Gamma = 0.9
	lamPeriodic, err := LyapunovExponent(context.Background(), base, integrators.NewRK4(), x0, 0.01, 400, 1e-8)
	if err != nil {
		t.Fatalf("periodic estimate: %v", err)
	}
	if lamPeriodic >= 0 {
		t.Errorf("periodic regime should contract, got lambda=%v", lamPeriodic)
	}

	chaotic := physics.NewDrivenPendulum()
	chaotic.Gamma = 1.5
	lamChaotic, err := LyapunovExponent(context.Background(), chaotic, integrators.NewRK4(), x0, 0.01, 400, 1e-8)
	if err != nil {
		t.Fatalf("chaotic estimate: %v", err)
	}
	if lamChaotic <= 0 {
		t.Errorf("chaotic regime should diverge, got lambda=%v", lamChaotic)
	}
}

func TestLyapunovBadInput(t *testing.T) {
	p := physics.NewDrivenPendulum()

	if _, err := LyapunovExponent(context.Background(), p, integrators.NewRK4(), dynamo.State{}, 0.01, 1, 1e-8); err == nil {
		t.Error("expected error for empty state")
	}
	if _, err := LyapunovExponent(context.Background(), p, integrators.NewRK4(), dynamo.State{0.2, 0}, 0.01, 1, 0); err == nil {
		t.Error("expected error for zero separation")
	}
}

func TestBifurcationDiagramShape(t *testing.T) {
	if testing.Short() {
		t.Skip("long integration")
	}

	base := physics.NewDrivenPendulum()

	cfg := SweepConfig{
		GammaMin:   0.9,
		GammaMax:   1.1,
		GammaSteps: 8,
		Section:    SectionConfig{Dt: 0.02, TransientPeriods: 60, RecordPeriods: 30},
	}

	diagram, err := BifurcationDiagram(context.Background(), base, dynamo.State{0.2, 0}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diagram) != 8 {
		t.Fatalf("expected 8 parameter points, got %d", len(diagram))
	}

	for i, bp := range diagram {
		if len(bp.Thetas) == 0 {
			t.Errorf("point %d (gamma=%.3f) has no attractor samples", i, bp.Gamma)
		}
	}
	if diagram[0].Gamma != 0.9 || math.Abs(diagram[7].Gamma-1.1) > 1e-12 {
		t.Errorf("sweep endpoints wrong: %.3f .. %.3f", diagram[0].Gamma, diagram[7].Gamma)
	}

	// At gamma=0.9 the attractor is period-1; a single branch.
	if n := len(diagram[0].Thetas); n > 2 {
		t.Errorf("expected a single branch at gamma=0.9, got %d", n)
	}
}

func TestFFTPureTone(t *testing.T) {
	dt := 0.01
	n := 1024
	freq := 5.0

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	got := DominantFrequency(data, dt)
	resolution := 1.0 / (float64(n) * dt)
	if math.Abs(got-freq) > resolution {
		t.Errorf("dominant frequency %v, want %v within %v", got, freq, resolution)
	}
}

func TestPowerSpectrumPadsToPowerOfTwo(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 100))
	if len(ps) != 64 { // padded to 128, half returned
		t.Errorf("expected 64 bins, got %d", len(ps))
	}
}
