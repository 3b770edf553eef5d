// Package physics provides the ODE models behind the lab's experiments.
//
// Each model implements [dynamo.System]:
//
//   - [DrivenPendulum]: forced damped pendulum, chaotic for strong drive
//   - [Projectile]: 2D flight with quadratic drag
//   - [TwoBody]: planar Kepler orbit around a fixed central mass
//
// Models also implement [dynamo.Configurable] for parameter sweeps and
// [dynamo.Hamiltonian] where a conserved energy exists.
package physics
