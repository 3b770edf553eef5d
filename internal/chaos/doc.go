// Package chaos provides the standard diagnostics for the driven
// pendulum's route to chaos: Poincare sections strobed at the drive
// period, bifurcation diagrams over drive amplitude, largest-Lyapunov
// exponent estimation, and FFT power spectra.
package chaos
