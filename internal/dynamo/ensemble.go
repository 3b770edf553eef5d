package dynamo

import (
	"context"
	"runtime"
	"sync"
)

// Ensemble runs one system from many initial conditions in parallel.
// Integrators may carry scratch state, so each worker builds its own
// through the factory.
type Ensemble struct {
	sys           System
	newIntegrator func() Integrator
	workers       int
}

func NewEnsemble(sys System, newIntegrator func() Integrator) *Ensemble {
	return &Ensemble{sys: sys, newIntegrator: newIntegrator}
}

// SetWorkers bounds the pool; zero or negative means GOMAXPROCS.
func (e *Ensemble) SetWorkers(n int) { e.workers = n }

// Run integrates every initial state with the shared config. Results are
// ordered like the inputs. The first failure is returned after all
// workers finish; successful members keep their results.
func (e *Ensemble) Run(ctx context.Context, initialStates []State, cfg Config) ([]*Result, error) {
	workers := e.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(initialStates))
	errs := make([]error, len(initialStates))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, x0 := range initialStates {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, x0 State) {
			defer wg.Done()
			defer func() { <-sem }()

			sim := New(e.sys, e.newIntegrator())
			results[idx], errs[idx] = sim.Run(ctx, x0.Clone(), cfg)
		}(i, x0)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
