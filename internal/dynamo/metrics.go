package dynamo

import "math"

// EnergyDriftMetric tracks the worst relative energy departure seen over
// a run, for Hamiltonian systems.
type EnergyDriftMetric struct {
	sys      System
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDriftMetric(sys System) *EnergyDriftMetric {
	return &EnergyDriftMetric{sys: sys}
}

func (e *EnergyDriftMetric) Name() string { return "energy_drift_max" }

func (e *EnergyDriftMetric) Observe(x State, _ float64) {
	h, ok := e.sys.(Hamiltonian)
	if !ok {
		return
	}

	energy := h.Energy(x)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDriftMetric) Value() float64 { return e.maxDrift }

func (e *EnergyDriftMetric) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// PeakMetric records the largest absolute value one state variable
// reaches during a run.
type PeakMetric struct {
	name string
	idx  int
	peak float64
}

func NewPeakMetric(name string, idx int) *PeakMetric {
	return &PeakMetric{name: name, idx: idx}
}

func (p *PeakMetric) Name() string { return p.name }

func (p *PeakMetric) Observe(x State, _ float64) {
	if p.idx < len(x) {
		p.peak = math.Max(p.peak, math.Abs(x[p.idx]))
	}
}

func (p *PeakMetric) Value() float64 { return p.peak }

func (p *PeakMetric) Reset() { p.peak = 0 }
