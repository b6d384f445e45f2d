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
	"sort"

	"github.com/consensys/go-qasmtrans/pkg/ir"
)

// warpSize is the number of least-used qubits packed at the low end of the
// index space, aligning simulation warps on GPU backends.
const warpSize = 5

// Remap permutes logical qubit indices so that the five least-used qubits
// occupy indices 0..4 while the remainder fill in from the high end.  Gate
// operands are rewritten through the permutation; an existing initial
// mapping is composed with it.  No device information is consulted.
func Remap(circuit *ir.Circuit) {
	n := circuit.NumQubits()
	gates := circuit.Gates()
	//
	counts := make([]int, n)
	//
	for _, g := range gates {
		if g.Ctrl != ir.None {
			counts[g.Ctrl]++
		}
		//
		if g.Qubit != ir.None {
			counts[g.Qubit]++
		}
	}
	// Qubits in ascending order of use, ties by index.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	//
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] < counts[order[j]]
	})
	// perm[old] gives the new index of logical qubit old.
	perm := make([]int, n)
	//
	for rank, qubit := range order {
		if rank < warpSize {
			perm[qubit] = rank
		} else {
			perm[qubit] = n - 1 - (rank - warpSize)
		}
	}
	//
	remapped := make([]ir.Gate, len(gates))
	//
	for i, g := range gates {
		if g.Ctrl != ir.None {
			g.Ctrl = perm[g.Ctrl]
		}
		//
		if g.Qubit != ir.None {
			g.Qubit = perm[g.Qubit]
		}
		//
		if g.Extra != ir.None {
			g.Extra = perm[g.Extra]
		}
		//
		remapped[i] = g
	}
	//
	circuit.SetGates(remapped)
	//
	if mapping := circuit.InitialMapping(); len(mapping) != 0 {
		composed := make([]int, n)
		//
		for i := 0; i < n; i++ {
			composed[i] = perm[mapping[i]]
		}
		//
		circuit.SetInitialMapping(composed)
	}
}
