package circuit

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"
)

// Step records one applied reduction rule, for the --trace output.
type Step struct {
	Rule   string
	Detail string
}

// Reduce collapses the network with the textbook series/parallel rules
// until only the two terminals joined by a single equivalent resistor
// remain. Passes repeat until a pass makes no progress; leftover
// structure at that point means the topology contains a bridge and is
// not series-parallel reducible.
func (n *Network) Reduce() (float64, []Step, error) {
	var steps []Step

	for {
		progress := false

		if n.dropLoops(&steps) {
			progress = true
		}
		if merged, err := n.mergeParallel(&steps); err != nil {
			return 0, steps, err
		} else if merged {
			progress = true
		}
		if merged, err := n.mergeSeries(&steps); err != nil {
			return 0, steps, err
		} else if merged {
			progress = true
		}
		if pruned, err := n.pruneDangling(&steps); err != nil {
			return 0, steps, err
		} else if pruned {
			progress = true
		}

		if done, r, err := n.finished(); done {
			return r, steps, err
		}

		if !progress {
			return 0, steps, ErrIrreducible
		}
	}
}

// finished reports completion once only the terminals remain.
func (n *Network) finished() (bool, float64, error) {
	if n.g.VertexCount() != 2 {
		return false, 0, nil
	}
	edges := n.g.Edges()
	switch len(edges) {
	case 0:
		return true, 0, ErrOpenCircuit
	case 1:
		return true, n.ohms[edges[0].ID], nil
	default:
		// Parallel branches between the terminals; one more pass merges them.
		return false, 0, nil
	}
}

// dropLoops removes self-loops: a branch from a node back to itself
// carries no current between the terminals.
func (n *Network) dropLoops(steps *[]Step) bool {
	dropped := false
	for _, e := range n.g.Edges() {
		if e.From != e.To {
			continue
		}
		if err := n.g.RemoveEdge(e.ID); err != nil {
			continue
		}
		delete(n.ohms, e.ID)
		*steps = append(*steps, Step{Rule: "loop", Detail: fmt.Sprintf("dropped self-loop at %s", e.From)})
		dropped = true
	}
	return dropped
}

// mergeParallel combines every group of branches sharing the same pair
// of endpoints into one branch with 1/R = sum(1/Ri). A zero-ohm branch
// shorts the whole group.
func (n *Network) mergeParallel(steps *[]Step) (bool, error) {
	groups := make(map[[2]string][]*core.Edge)
	for _, e := range n.g.Edges() {
		if e.From == e.To {
			continue
		}
		key := pairKey(e.From, e.To)
		groups[key] = append(groups[key], e)
	}

	keys := make([][2]string, 0, len(groups))
	for k, g := range groups {
		if len(g) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i][0]+keys[i][1] < keys[j][0]+keys[j][1]
	})

	merged := false
	for _, key := range keys {
		group := groups[key]

		combined, shorted := 0.0, false
		conductance := 0.0
		for _, e := range group {
			r := n.ohms[e.ID]
			if r == 0 {
				shorted = true
				break
			}
			conductance += 1.0 / r
		}
		if !shorted {
			combined = 1.0 / conductance
		}

		for _, e := range group {
			if err := n.g.RemoveEdge(e.ID); err != nil {
				return merged, err
			}
			delete(n.ohms, e.ID)
		}
		if err := n.addBranch(key[0], key[1], combined); err != nil {
			return merged, err
		}

		*steps = append(*steps, Step{
			Rule:   "parallel",
			Detail: fmt.Sprintf("%d branches %s-%s -> %.6g ohm", len(group), key[0], key[1], combined),
		})
		merged = true
	}

	return merged, nil
}

// mergeSeries eliminates every non-terminal node with exactly two
// branches, replacing them with one branch of R1+R2. Both branches
// leading to the same far node collapse into a self-loop, which a later
// pass drops.
func (n *Network) mergeSeries(steps *[]Step) (bool, error) {
	merged := false

	for _, v := range n.g.Vertices() {
		if v == n.terminalA || v == n.terminalB {
			continue
		}
		incident, err := n.g.Neighbors(v)
		if err != nil || len(incident) != 2 {
			continue
		}
		e1, e2 := incident[0], incident[1]
		if e1.From == e1.To || e2.From == e2.To {
			continue
		}

		far1 := otherEnd(e1, v)
		far2 := otherEnd(e2, v)
		combined := n.ohms[e1.ID] + n.ohms[e2.ID]

		if err := n.g.RemoveEdge(e1.ID); err != nil {
			return merged, err
		}
		if err := n.g.RemoveEdge(e2.ID); err != nil {
			return merged, err
		}
		delete(n.ohms, e1.ID)
		delete(n.ohms, e2.ID)
		if err := n.g.RemoveVertex(v); err != nil {
			return merged, err
		}
		if err := n.addBranch(far1, far2, combined); err != nil {
			return merged, err
		}

		*steps = append(*steps, Step{
			Rule:   "series",
			Detail: fmt.Sprintf("%s absorbed: %s-%s -> %.6g ohm", v, far1, far2, combined),
		})
		merged = true
	}

	return merged, nil
}

// pruneDangling removes non-terminal stubs: nodes with at most one
// branch never carry current between the terminals.
func (n *Network) pruneDangling(steps *[]Step) (bool, error) {
	pruned := false

	for _, v := range n.g.Vertices() {
		if v == n.terminalA || v == n.terminalB {
			continue
		}
		incident, err := n.g.Neighbors(v)
		if err != nil || len(incident) > 1 {
			continue
		}
		for _, e := range incident {
			if err := n.g.RemoveEdge(e.ID); err != nil {
				return pruned, err
			}
			delete(n.ohms, e.ID)
		}
		if err := n.g.RemoveVertex(v); err != nil {
			return pruned, err
		}
		*steps = append(*steps, Step{Rule: "prune", Detail: fmt.Sprintf("removed dangling node %s", v)})
		pruned = true
	}

	return pruned, nil
}

func pairKey(a, b string) [2]string {
	if a < b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

func otherEnd(e *core.Edge, v string) string {
	if e.From == v {
		return e.To
	}
	return e.From
}
