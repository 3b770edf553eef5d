// Package circuit computes the equivalent resistance of a resistor
// network between two terminals by repeated series/parallel reduction.
// Topology is held in a lvlath multigraph; resistances live in a side
// table keyed by edge ID.
package circuit
