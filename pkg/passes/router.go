// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package passes

import (
	"math/rand"
	"slices"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-qasmtrans/pkg/device"
	"github.com/consensys/go-qasmtrans/pkg/ir"
	"github.com/consensys/go-qasmtrans/pkg/util"
)

// lookahead bounds the future layer to this many gates past the smallest
// index still awaiting execution.  A heuristic constant, not a correctness
// parameter.
const lookahead = 20

// futureWeight discounts the future layer's contribution to the swap score
// relative to the current layer's.
const futureWeight = 0.5

// Route assigns every logical qubit of the circuit to a distinct physical
// qubit of the chip and inserts SWAP gates so that each two-qubit gate acts
// on adjacent physical qubits.  The gate sequence is rewritten into physical
// qubit space and the circuit's initial mapping is set to the layout under
// which its first gate executes.
//
// Routing runs three rounds: a forward round from a random layout seeded by
// seed, a backward round over the reversed two-qubit subcircuit, and a final
// forward round whose output is kept.  The warm-up rounds drive the layout
// towards a fixed point so the final round starts from a good initial
// placement.
func Route(circuit *ir.Circuit, chip *device.Chip, seed int64) error {
	n := circuit.NumQubits()
	//
	if n > chip.QubitNum {
		return &ChipTooSmallError{NumQubits: n, ChipQubits: chip.QubitNum}
	}
	//
	gates := circuit.Gates()
	twoq := make([]ir.Gate, 0, len(gates))
	//
	for _, g := range gates {
		if g.Ctrl != ir.None && g.Op != ir.OpMA {
			twoq = append(twoq, g)
		}
	}
	// Round 1: forward, from a random layout.
	l2p := rand.New(rand.NewSource(seed)).Perm(n)
	//
	l2p, _, _, err := oneRound(l2p, twoq, nil, chip)
	if err != nil {
		return err
	}
	// Round 2: backward.
	reversed := slices.Clone(twoq)
	slices.Reverse(reversed)
	//
	l2p, _, _, err = oneRound(l2p, reversed, nil, chip)
	if err != nil {
		return err
	}
	// Round 3: forward again, keeping the emitted sequence.  Its starting
	// layout is the layout under which the first emitted gate executes.
	initial := slices.Clone(l2p)
	//
	_, routed, swaps, err := oneRound(l2p, twoq, newSinglesIndex(gates), chip)
	if err != nil {
		return err
	}
	//
	log.Debugf("routing inserted %d swaps over %d two-qubit gates", swaps, len(twoq))
	//
	circuit.SetGates(routed)
	circuit.SetInitialMapping(initial)
	//
	return nil
}

// ============================================================================
// Dependency DAG
// ============================================================================

// Gate scheduling states.
const (
	stateUnseen = iota
	stateFuture
	stateCurrent
	stateExecuted
)

// noSucc marks an unused successor slot.
const noSucc = -1

// dag is the dependency graph over the two-qubit subcircuit.  Node i depends
// on node j when j is the latest earlier gate sharing a qubit with i.
type dag struct {
	// ops[i] holds the (logical) ctrl and target qubits of gate i.
	ops [][2]int
	// state of each gate (unseen, future, current, executed).
	state []int
	// dependency holds the number of unmet predecessors per gate.
	dependency []int
	// successors[i] holds, per qubit slot of gate i, the next gate reusing
	// that qubit (noSucc when none).
	successors [][2]int
	// firstLayer lists the gates with no predecessor at all.
	firstLayer []int
}

// newDag builds the dependency graph for the given two-qubit gates.
func newDag(twoq []ir.Gate) *dag {
	m := len(twoq)
	//
	d := &dag{
		ops:        make([][2]int, m),
		state:      make([]int, m),
		dependency: make([]int, m),
		successors: make([][2]int, m),
	}
	// last[q] is the most recent gate touching logical qubit q.
	last := make(map[int]int)
	//
	for i, g := range twoq {
		d.ops[i] = [2]int{g.Ctrl, g.Qubit}
		d.successors[i] = [2]int{noSucc, noSucc}
		//
		_, seenCtrl := last[g.Ctrl]
		_, seenQubit := last[g.Qubit]
		//
		switch {
		case !seenCtrl && !seenQubit:
			d.firstLayer = append(d.firstLayer, i)
			d.state[i] = stateCurrent
			d.dependency[i] = 0
		case seenCtrl != seenQubit:
			d.dependency[i] = 1
		default:
			d.dependency[i] = 2
		}
		//
		for j, q := range d.ops[i] {
			if pred, ok := last[q]; ok {
				// The slot of the predecessor whose qubit this gate reuses.
				slot := j
				if d.ops[pred][j] != q {
					slot = 1 - j
				}
				//
				d.successors[pred][slot] = i
			}
			//
			last[q] = i
		}
	}
	//
	return d
}

// maintain updates the current and future layers after the gates in executed
// have been placed.  Executed gates release their successors; once a
// successor's last dependency is met it joins the current layer.  The future
// layer is then refilled by scanning forward from the smallest index still
// current, promoting unseen gates into the lookahead window.  Both layers
// are kept sorted by gate index.
func (d *dag) maintain(current []int, executed map[int]bool, future []int) ([]int, []int) {
	updated := make([]int, 0, len(current))
	//
	for _, idx := range current {
		if !executed[idx] {
			updated = append(updated, idx)
			continue
		}
		//
		d.state[idx] = stateExecuted
		future = remove(future, idx)
		//
		for _, next := range d.successors[idx] {
			if next == noSucc {
				continue
			}
			//
			d.dependency[next]--
			//
			if d.dependency[next] == 0 {
				d.state[next] = stateCurrent
				future = remove(future, next)
				updated = append(updated, next)
			}
		}
	}
	//
	if len(updated) > 0 {
		start := slices.Min(updated)
		//
		for idx := start; idx < start+lookahead && idx < len(d.ops); idx++ {
			if d.state[idx] == stateUnseen {
				d.state[idx] = stateFuture
				future = append(future, idx)
			}
		}
	}
	//
	sort.Ints(updated)
	sort.Ints(future)
	//
	return updated, future
}

// initialLayers returns the starting current and future layers.
func (d *dag) initialLayers() ([]int, []int) {
	current := slices.Clone(d.firstLayer)
	sort.Ints(current)
	//
	var future []int
	//
	if len(current) > 0 {
		start := slices.Min(current)
		//
		for idx := start; idx < start+lookahead && idx < len(d.ops); idx++ {
			if d.state[idx] == stateUnseen {
				d.state[idx] = stateFuture
				future = append(future, idx)
			}
		}
	}
	//
	return current, future
}

func remove(xs []int, x int) []int {
	for i, v := range xs {
		if v == x {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	//
	return xs
}

// ============================================================================
// Single-qubit bookkeeping
// ============================================================================

// singlesIndex associates each two-qubit gate with the single-qubit gates
// which must be emitted immediately before it: those touching one of its
// qubits since the previous two-qubit gate on that qubit.
type singlesIndex struct {
	// gates holds all single-qubit gates in program order.
	gates []ir.Gate
	// before[k] lists indices into gates pending on two-qubit gate k.
	before [][]int
	// emitted marks singles already placed in the output.
	emitted []bool
}

// newSinglesIndex partitions the full gate sequence, excluding measure-all
// which is reconstructed by the emitter from the classical registers.
func newSinglesIndex(gates []ir.Gate) *singlesIndex {
	idx := &singlesIndex{}
	pending := make(map[int][]int)
	//
	for _, g := range gates {
		if g.Ctrl != ir.None && g.Op != ir.OpMA {
			k := len(idx.before)
			idx.before = append(idx.before, nil)
			//
			for _, q := range [2]int{g.Ctrl, g.Qubit} {
				idx.before[k] = append(idx.before[k], pending[q]...)
				delete(pending, q)
			}
		} else if g.Op != ir.OpMA {
			pending[g.Qubit] = append(pending[g.Qubit], len(idx.gates))
			idx.gates = append(idx.gates, g)
		}
	}
	//
	idx.emitted = make([]bool, len(idx.gates))
	//
	return idx
}

// emitBefore appends the singles pending on two-qubit gate k, translated
// through the current layout.
func (s *singlesIndex) emitBefore(out []ir.Gate, k int, l2p []int) []ir.Gate {
	for _, i := range s.before[k] {
		g := s.gates[i]
		g.Qubit = l2p[g.Qubit]
		out = append(out, g)
		s.emitted[i] = true
	}
	//
	return out
}

// emitRemaining appends all singles never consumed by a two-qubit gate,
// translated through the final layout.
func (s *singlesIndex) emitRemaining(out []ir.Gate, l2p []int) []ir.Gate {
	for i, g := range s.gates {
		if !s.emitted[i] {
			g.Qubit = l2p[g.Qubit]
			out = append(out, g)
		}
	}
	//
	return out
}

// ============================================================================
// Heuristic search
// ============================================================================

// heuristic scores a candidate layout: the mean distance over the current
// layer plus a discounted mean over the future layer.
func heuristic(l2p []int, current, future []int, d *dag, chip *device.Chip) float64 {
	if len(current) == 0 {
		return 0
	}
	//
	var cost float64
	//
	for _, idx := range current {
		op := d.ops[idx]
		cost += float64(chip.Distance(l2p[op[0]], l2p[op[1]]))
	}
	//
	cost /= float64(len(current))
	//
	if len(future) == 0 {
		return cost
	}
	//
	var futureCost float64
	//
	for _, idx := range future {
		op := d.ops[idx]
		futureCost += float64(chip.Distance(l2p[op[0]], l2p[op[1]]))
	}
	//
	return cost + futureWeight*futureCost/float64(len(future))
}

// inverseMapping computes the physical-to-logical mapping of l2p over a
// device of size qubits, marking unoccupied physicals with ir.None.
func inverseMapping(l2p []int, qubits int) []int {
	p2l := make([]int, qubits)
	//
	for p := range p2l {
		p2l[p] = ir.None
	}
	//
	for l, p := range l2p {
		p2l[p] = l
	}
	//
	return p2l
}

// forwardMapping inverts a physical-to-logical mapping back to
// logical-to-physical over n logical qubits.
func forwardMapping(p2l []int, n int) []int {
	l2p := make([]int, n)
	//
	for p, l := range p2l {
		if l != ir.None {
			l2p[l] = p
		}
	}
	//
	return l2p
}

// pickOneMovement selects the swap minimising the heuristic over all edges
// incident to a qubit of the current layer, applies it to l2p, and returns
// the swapped physical pair.  Ties break towards the first candidate in
// iteration order.
func pickOneMovement(l2p []int, current, future []int, d *dag, chip *device.Chip) util.Pair[int, int] {
	n := len(l2p)
	//
	var candidates []util.Pair[int, int]
	//
	for _, idx := range current {
		op := d.ops[idx]
		//
		for _, p := range [2]int{l2p[op[0]], l2p[op[1]]} {
			for _, q := range chip.EdgeList[p] {
				candidates = append(candidates, util.NewPair(p, q))
			}
		}
	}
	//
	best := 0
	bestScore := -1.0
	//
	for i, cand := range candidates {
		p2l := inverseMapping(l2p, chip.QubitNum)
		p2l[cand.Left], p2l[cand.Right] = p2l[cand.Right], p2l[cand.Left]
		score := heuristic(forwardMapping(p2l, n), current, future, d, chip)
		//
		if bestScore < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	//
	chosen := candidates[best]
	p2l := inverseMapping(l2p, chip.QubitNum)
	p2l[chosen.Left], p2l[chosen.Right] = p2l[chosen.Right], p2l[chosen.Left]
	copy(l2p, forwardMapping(p2l, n))
	//
	return chosen
}

// executableGates returns the current-layer gates whose qubits are adjacent
// under the given layout, in ascending index order.
func executableGates(l2p []int, current []int, d *dag, chip *device.Chip) ([]int, error) {
	var executable []int
	//
	for _, idx := range current {
		op := d.ops[idx]
		dist := chip.Distance(l2p[op[0]], l2p[op[1]])
		//
		if dist == device.Disconnected {
			return nil, &UnroutableError{Ctrl: op[0], Qubit: op[1]}
		}
		//
		if dist == 1 {
			executable = append(executable, idx)
		}
	}
	//
	return executable, nil
}

// oneRound routes the given two-qubit subcircuit starting from layout l2p.
// It returns the final layout, the emitted gate sequence (empty when singles
// is nil, as in the warm-up rounds) and the number of swaps inserted.
func oneRound(l2p []int, twoq []ir.Gate, singles *singlesIndex, chip *device.Chip) ([]int, []ir.Gate, int, error) {
	var (
		out   []ir.Gate
		swaps int
	)
	//
	mapping := slices.Clone(l2p)
	d := newDag(twoq)
	current, future := d.initialLayers()
	executed := 0
	//
	for executed < len(twoq) {
		executable, err := executableGates(mapping, current, d, chip)
		if err != nil {
			return nil, nil, 0, err
		}
		//
		if len(executable) > 0 {
			if singles != nil {
				for _, idx := range executable {
					out = singles.emitBefore(out, idx, mapping)
					//
					g := twoq[idx]
					g.Ctrl = mapping[g.Ctrl]
					g.Qubit = mapping[g.Qubit]
					out = append(out, g)
				}
			}
			//
			executedSet := make(map[int]bool, len(executable))
			for _, idx := range executable {
				executedSet[idx] = true
			}
			//
			current, future = d.maintain(current, executedSet, future)
			executed += len(executable)
		} else {
			pair := pickOneMovement(mapping, current, future, d, chip)
			//
			if singles != nil {
				out = append(out, ir.NewSwap(pair.Left, pair.Right))
			}
			//
			swaps++
		}
	}
	//
	if singles != nil {
		out = singles.emitRemaining(out, mapping)
	}
	//
	return mapping, out, swaps, nil
}
