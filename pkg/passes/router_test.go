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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-qasmtrans/pkg/device"
	"github.com/consensys/go-qasmtrans/pkg/ir"
)

// lineChip builds a path-graph device 0 - 1 - ... - (n-1).
func lineChip(t *testing.T, n int) *device.Chip {
	cfg := &device.Config{NumQubits: n}
	//
	for i := 0; i+1 < n; i++ {
		cfg.CxCoupling = append(cfg.CxCoupling, fmt.Sprintf("%d_%d", i, i+1))
	}
	//
	chip, err := device.NewChip(cfg, false, n)
	require.NoError(t, err)
	//
	return chip
}

// checkRouted asserts the routing invariants: every two-qubit gate acts on
// coupled physical qubits, and the initial mapping is a permutation.
func checkRouted(t *testing.T, circuit *ir.Circuit, chip *device.Chip) {
	for i, g := range circuit.Gates() {
		if g.Ctrl != ir.None {
			assert.True(t, chip.Adjacent(g.Ctrl, g.Qubit),
				"gate %d (%s) not executable", i, g.String())
		}
	}
	//
	mapping := circuit.InitialMapping()
	require.Len(t, mapping, circuit.NumQubits())
	//
	seen := make(map[int]bool)
	//
	for _, p := range mapping {
		assert.False(t, seen[p], "physical qubit %d mapped twice", p)
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, chip.QubitNum)
		seen[p] = true
	}
}

func TestRouteDistantPair(t *testing.T) {
	chip := lineChip(t, 4)
	//
	circuit := ir.NewCircuit(4)
	circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 0, 3))
	circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 0, 1))
	circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 1, 3))
	//
	require.NoError(t, Route(circuit, chip, 1))
	checkRouted(t, circuit, chip)
	// Every original two-qubit gate survives, possibly joined by swaps.
	assert.Equal(t, 3, countTwoQubit(circuit, false))
}

func TestRouteInterleavesSingles(t *testing.T) {
	chip := lineChip(t, 4)
	//
	circuit := ir.NewCircuit(4)
	circuit.AppendGate(ir.NewSingle(ir.OpH, 0))
	circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 0, 2))
	circuit.AppendGate(ir.NewRotation(ir.OpRZ, 2, 0.5))
	circuit.AppendGate(ir.NewSingle(ir.OpH, 3))
	//
	require.NoError(t, Route(circuit, chip, 7))
	checkRouted(t, circuit, chip)
	//
	counts := opCounts(circuit.Gates())
	assert.Equal(t, 2, counts[ir.OpH])
	assert.Equal(t, 1, counts[ir.OpRZ])
	assert.Equal(t, 1, counts[ir.OpCX])
	// The Hadamard on the control precedes its CX.
	gates := circuit.Gates()
	h := indexOfOp(gates, ir.OpH)
	cx := indexOfOp(gates, ir.OpCX)
	assert.Less(t, h, cx)
}

func TestRouteDropsMeasureAll(t *testing.T) {
	chip := lineChip(t, 3)
	//
	circuit := ir.NewCircuit(3)
	circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 0, 2))
	circuit.AppendGate(ir.NewMeasureAll(1))
	//
	require.NoError(t, Route(circuit, chip, 0))
	// Measurement is reconstructed by the emitter from the classical
	// registers, so routing drops the marker.
	assert.Equal(t, 0, opCounts(circuit.Gates())[ir.OpMA])
}

func TestRouteDeterministic(t *testing.T) {
	build := func() *ir.Circuit {
		circuit := ir.NewCircuit(5)
		circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 0, 4))
		circuit.AppendGate(ir.NewSingle(ir.OpH, 2))
		circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 1, 3))
		circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 2, 4))
		//
		return circuit
	}
	//
	chip := lineChip(t, 5)
	//
	first := build()
	require.NoError(t, Route(first, chip, 42))
	//
	second := build()
	require.NoError(t, Route(second, chip, 42))
	//
	assert.Equal(t, first.Gates(), second.Gates())
	assert.Equal(t, first.InitialMapping(), second.InitialMapping())
}

func TestRouteEmptyCircuit(t *testing.T) {
	chip := lineChip(t, 3)
	circuit := ir.NewCircuit(3)
	//
	require.NoError(t, Route(circuit, chip, 0))
	assert.Equal(t, 0, circuit.NumGates())
	assert.Len(t, circuit.InitialMapping(), 3)
}

func TestRouteChipTooSmall(t *testing.T) {
	chip := lineChip(t, 2)
	circuit := ir.NewCircuit(3)
	circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 0, 2))
	//
	err := Route(circuit, chip, 0)
	require.Error(t, err)
	assert.IsType(t, &ChipTooSmallError{}, err)
}

func TestRouteUnroutable(t *testing.T) {
	// Two disconnected islands of two qubits each: three mutually
	// interacting logical qubits cannot avoid crossing the gap.
	cfg := &device.Config{NumQubits: 4, CxCoupling: []string{"0_1", "2_3"}}
	chip, err := device.NewChip(cfg, false, 4)
	require.NoError(t, err)
	//
	circuit := ir.NewCircuit(3)
	circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 0, 1))
	circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 1, 2))
	circuit.AppendGate(ir.NewTwoQubit(ir.OpCX, 0, 2))
	//
	err = Route(circuit, chip, 0)
	require.Error(t, err)
	assert.IsType(t, &UnroutableError{}, err)
}

// countTwoQubit counts two-qubit gates, including swaps when swaps is set.
func countTwoQubit(circuit *ir.Circuit, swaps bool) int {
	count := 0
	//
	for _, g := range circuit.Gates() {
		if g.Ctrl != ir.None && (swaps || g.Op != ir.OpSWAP) {
			count++
		}
	}
	//
	return count
}

// indexOfOp returns the position of the first gate with the given operation.
func indexOfOp(gates []ir.Gate, op ir.Op) int {
	for i, g := range gates {
		if g.Op == op {
			return i
		}
	}
	//
	return -1
}
