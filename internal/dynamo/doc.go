// Package dynamo provides the simulation core shared by every experiment:
// state vectors, the [System] ODE interface, fixed and adaptive
// [Integrator] contracts, and the [Simulator] run loop with context
// cancellation, state validation, and energy-drift tracking.
package dynamo
