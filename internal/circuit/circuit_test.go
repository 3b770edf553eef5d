package circuit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reduce(t *testing.T, nl *Netlist) (float64, []Step) {
	t.Helper()
	net, err := nl.Build()
	require.NoError(t, err)
	r, steps, err := net.Reduce()
	require.NoError(t, err)
	return r, steps
}

func TestSeriesChain(t *testing.T) {
	nl := &Netlist{
		Terminals: []string{"a", "d"},
		Resistors: []Resistor{
			{"a", "b", 10},
			{"b", "c", 20},
			{"c", "d", 30},
		},
	}

	r, steps := reduce(t, nl)
	assert.InDelta(t, 60.0, r, 1e-9)
	assert.NotEmpty(t, steps)
}

func TestParallelPair(t *testing.T) {
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{
			{"a", "b", 6},
			{"a", "b", 3},
		},
	}

	r, _ := reduce(t, nl)
	assert.InDelta(t, 2.0, r, 1e-9)
}

func TestParallelOfThree(t *testing.T) {
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{
			{"a", "b", 10},
			{"a", "b", 10},
			{"a", "b", 10},
		},
	}

	r, _ := reduce(t, nl)
	assert.InDelta(t, 10.0/3.0, r, 1e-9)
}

func TestLadderNetwork(t *testing.T) {
	// a --10-- m --10-- b with a 20-ohm rung m-b in parallel with the
	// second 10: 10 + (10 || 20) = 10 + 20/3.
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{
			{"a", "m", 10},
			{"m", "b", 10},
			{"m", "b", 20},
		},
	}

	r, _ := reduce(t, nl)
	assert.InDelta(t, 10.0+20.0/3.0, r, 1e-9)
}

func TestMixedSeriesParallel(t *testing.T) {
	// Two parallel arms between a and b: 10+20 in series on one arm,
	// 30 on the other. (30 || 30) = 15.
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{
			{"a", "m", 10},
			{"m", "b", 20},
			{"a", "b", 30},
		},
	}

	r, _ := reduce(t, nl)
	assert.InDelta(t, 15.0, r, 1e-9)
}

func TestZeroOhmShortsParallelGroup(t *testing.T) {
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{
			{"a", "b", 100},
			{"a", "b", 0},
		},
	}

	r, _ := reduce(t, nl)
	assert.Equal(t, 0.0, r)
}

func TestDanglingBranchIgnored(t *testing.T) {
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{
			{"a", "b", 42},
			{"b", "stub", 7}, // carries no current
		},
	}

	r, steps := reduce(t, nl)
	assert.InDelta(t, 42.0, r, 1e-9)

	pruned := false
	for _, s := range steps {
		if s.Rule == "prune" {
			pruned = true
		}
	}
	assert.True(t, pruned, "expected a prune step")
}

func TestSelfLoopDropped(t *testing.T) {
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{
			{"a", "b", 5},
			{"a", "a", 99},
		},
	}

	r, _ := reduce(t, nl)
	assert.InDelta(t, 5.0, r, 1e-9)
}

func TestWheatstoneBridgeIrreducible(t *testing.T) {
	// Unbalanced bridge: no node is a pure series or parallel candidate.
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{
			{"a", "m", 10},
			{"a", "n", 20},
			{"m", "n", 5}, // bridge
			{"m", "b", 30},
			{"n", "b", 40},
		},
	}

	net, err := nl.Build()
	require.NoError(t, err)

	_, _, err = net.Reduce()
	assert.ErrorIs(t, err, ErrIrreducible)
}

func TestNegativeResistanceRejected(t *testing.T) {
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{{"a", "b", -1}},
	}

	_, err := nl.Build()
	assert.ErrorIs(t, err, ErrBadResistance)
}

func TestEmptyNetlistRejected(t *testing.T) {
	nl := &Netlist{Terminals: []string{"a", "b"}}

	_, err := nl.Build()
	assert.ErrorIs(t, err, ErrEmptyNetwork)
}

func TestBadTerminals(t *testing.T) {
	cases := []struct {
		name      string
		terminals []string
	}{
		{"missing", nil},
		{"single", []string{"a"}},
		{"identical", []string{"a", "a"}},
		{"unknown node", []string{"a", "zzz"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nl := &Netlist{
				Terminals: tc.terminals,
				Resistors: []Resistor{{"a", "b", 1}},
			}
			_, err := nl.Build()
			assert.ErrorIs(t, err, ErrBadTerminals)
		})
	}
}

func TestOpenCircuit(t *testing.T) {
	// Two components; nothing connects a to b.
	nl := &Netlist{
		Terminals: []string{"a", "b"},
		Resistors: []Resistor{
			{"a", "x", 10},
			{"b", "y", 10},
		},
	}

	net, err := nl.Build()
	require.NoError(t, err)

	_, _, err = net.Reduce()
	assert.ErrorIs(t, err, ErrOpenCircuit)
}

func TestLoadNetlistYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bridge.yaml")

	doc := `name: voltage divider
terminals: [in, out]
resistors:
  - {from: in, to: mid, ohms: 1000}
  - {from: mid, to: out, ohms: 2000}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	nl, err := LoadNetlist(path)
	require.NoError(t, err)
	assert.Equal(t, "voltage divider", nl.Name)
	assert.Len(t, nl.Resistors, 2)

	r, _ := reduce(t, nl)
	assert.InDelta(t, 3000.0, r, 1e-9)
}

func TestLoadNetlistMissingFile(t *testing.T) {
	_, err := LoadNetlist(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
