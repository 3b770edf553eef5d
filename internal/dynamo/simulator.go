package dynamo

import (
	"context"
	"errors"
	"fmt"
	"math"
)

type Simulator struct {
	sys        System
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(x0) != s.sys.StateDim() {
		return nil, fmt.Errorf("%w: got %d, system wants %d", ErrDimensionMismatch, len(x0), s.sys.StateDim())
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([]State, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0
	dt := cfg.Dt

	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)

	initialEnergy := s.energy(x)

	for i := 0; t < cfg.Duration; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(x, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, t)
		}

		var newX State
		var stepErr error
		dtUsed := dt

		if cfg.Adaptive {
			var dtNext float64
			newX, dtUsed, dtNext, stepErr = s.adaptiveStep(x, t, dt, cfg)
			if stepErr != nil {
				result.Errors = append(result.Errors, &StepError{Step: i, Time: t, Wrapped: stepErr})
				break
			}
			dt = dtNext
		} else {
			newX = s.integrator.Step(s.sys, x, t, dt)
		}

		if cfg.ValidateState && !newX.IsValid() {
			result.Errors = append(result.Errors, &StepError{Step: i, Time: t, Wrapped: ErrInvalidState})
			break
		}

		x = newX
		t += dtUsed
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)
	}

	finalEnergy := s.energy(x)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps the simulation without recording, calling back on
// every step. Returning false from the callback stops the run.
func (s *Simulator) RunWithCallback(ctx context.Context, x0 State, cfg Config, callback func(State, float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	x := x0.Clone()
	t := 0.0

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(x, t) {
			return nil
		}

		x = s.integrator.Step(s.sys, x, t, cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !x.IsValid() {
			return fmt.Errorf("%w at t=%.4f", ErrInvalidState, t)
		}
	}

	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrBadConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrBadConfig, cfg.Duration)
	}
	if cfg.Adaptive && cfg.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive for adaptive stepping", ErrBadConfig)
	}
	return nil
}

func (s *Simulator) energy(x State) float64 {
	if h, ok := s.sys.(Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}

// adaptiveStep advances one error-controlled step. It returns the new
// state, the step size actually consumed, and the suggestion for the
// next step; time must advance by the consumed size only.
func (s *Simulator) adaptiveStep(x State, t, dt float64, cfg Config) (State, float64, float64, error) {
	if adaptive, ok := s.integrator.(AdaptiveIntegrator); ok {
		for {
			newX, dtSuggest, err := adaptive.StepAdaptive(s.sys, x, t, dt, cfg.Tolerance)
			if errors.Is(err, ErrToleranceExceeded) {
				if dtSuggest < cfg.MinDt {
					return nil, 0, 0, ErrStepTooSmall
				}
				dt = dtSuggest
				continue
			}
			if err != nil {
				return nil, 0, 0, err
			}
			dtSuggest = math.Min(math.Max(dtSuggest, cfg.MinDt), cfg.MaxDt)
			return newX, dt, dtSuggest, nil
		}
	}

	// Step doubling for fixed-step integrators: compare one full step
	// against two half steps and halve until the difference is within
	// tolerance.
	for {
		x1 := s.integrator.Step(s.sys, x, t, dt)
		xHalf := s.integrator.Step(s.sys, x, t, dt/2)
		x2 := s.integrator.Step(s.sys, xHalf, t+dt/2, dt/2)

		errEst := x1.Sub(x2).Norm()

		if errEst > cfg.Tolerance {
			if dt/2 < cfg.MinDt {
				return nil, 0, 0, ErrStepTooSmall
			}
			dt /= 2
			continue
		}

		dtNext := dt
		if errEst < cfg.Tolerance/10 && dt < cfg.MaxDt {
			dtNext = math.Min(dt*2, cfg.MaxDt)
		}
		return x2, dt, dtNext, nil
	}
}
