package circuit

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlath/core"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for netlist construction and reduction.
var (
	// ErrBadResistance indicates a negative resistance in the netlist.
	ErrBadResistance = errors.New("circuit: resistance must be non-negative")

	// ErrBadTerminals indicates missing, identical, or unknown terminals.
	ErrBadTerminals = errors.New("circuit: need two distinct terminals present in the network")

	// ErrIrreducible indicates a topology that series/parallel rules
	// cannot collapse (a bridge, e.g. an unbalanced Wheatstone).
	ErrIrreducible = errors.New("circuit: network is not series-parallel reducible")

	// ErrEmptyNetwork indicates a netlist with no resistors.
	ErrEmptyNetwork = errors.New("circuit: netlist has no resistors")

	// ErrOpenCircuit indicates no conducting path between the terminals.
	ErrOpenCircuit = errors.New("circuit: no path between terminals")
)

// Netlist is the YAML description of a resistor network.
type Netlist struct {
	Name      string     `yaml:"name"`
	Terminals []string   `yaml:"terminals"`
	Resistors []Resistor `yaml:"resistors"`
}

// Resistor is one branch of the netlist.
type Resistor struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Ohms float64 `yaml:"ohms"`
}

// Network holds the live topology during reduction. The graph carries
// node and branch bookkeeping (multi-edges and self-loops arise naturally
// while merging); resistance values live in a side table keyed by the
// graph's edge IDs.
type Network struct {
	g         *core.Graph
	ohms      map[string]float64
	terminalA string
	terminalB string
}

// LoadNetlist reads a YAML netlist from disk.
func LoadNetlist(path string) (*Netlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var nl Netlist
	if err := yaml.Unmarshal(data, &nl); err != nil {
		return nil, fmt.Errorf("circuit: parse %s: %w", path, err)
	}
	return &nl, nil
}

// Build validates the netlist and assembles the reduction graph.
func (nl *Netlist) Build() (*Network, error) {
	if len(nl.Resistors) == 0 {
		return nil, ErrEmptyNetwork
	}
	if len(nl.Terminals) != 2 || nl.Terminals[0] == nl.Terminals[1] {
		return nil, ErrBadTerminals
	}

	g, err := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	if err != nil {
		return nil, err
	}
	n := &Network{
		g:         g,
		ohms:      make(map[string]float64, len(nl.Resistors)),
		terminalA: nl.Terminals[0],
		terminalB: nl.Terminals[1],
	}

	for _, r := range nl.Resistors {
		if r.Ohms < 0 {
			return nil, fmt.Errorf("%w: %s-%s is %g", ErrBadResistance, r.From, r.To, r.Ohms)
		}
		if err := n.addBranch(r.From, r.To, r.Ohms); err != nil {
			return nil, err
		}
	}

	if !n.g.HasVertex(n.terminalA) || !n.g.HasVertex(n.terminalB) {
		return nil, fmt.Errorf("%w: %s, %s", ErrBadTerminals, n.terminalA, n.terminalB)
	}

	return n, nil
}

func (n *Network) addBranch(from, to string, ohms float64) error {
	if err := n.g.AddVertex(from); err != nil {
		return err
	}
	if err := n.g.AddVertex(to); err != nil {
		return err
	}
	id, err := n.g.AddEdge(from, to, 0)
	if err != nil {
		return err
	}
	n.ohms[id] = ohms
	return nil
}

// NodeCount reports remaining nodes, BranchCount remaining resistors.
func (n *Network) NodeCount() int   { return n.g.VertexCount() }
func (n *Network) BranchCount() int { return n.g.EdgeCount() }
