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
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-qasmtrans/pkg/ir"
)

// PreDecompose rewrites every three-qubit gate into an equivalent sequence of
// one- and two-qubit gates.  After this pass, no gate has arity three.  The
// pass is idempotent since its output contains no three-qubit gates.
func PreDecompose(circuit *ir.Circuit) {
	gates := circuit.Gates()
	out := make([]ir.Gate, 0, len(gates))
	//
	for _, g := range gates {
		switch g.Op {
		case ir.OpCCX:
			out = appendCCX(out, g.Qubit, g.Ctrl, g.Extra)
		case ir.OpCSWAP:
			out = appendCSWAP(out, g.Qubit, g.Ctrl, g.Extra)
		case ir.OpRCCX:
			out = appendRCCX(out, g.Qubit, g.Ctrl, g.Extra)
		default:
			out = append(out, g)
		}
	}
	//
	if len(out) != len(gates) {
		log.Debugf("pre-decomposition: %d gates -> %d gates", len(gates), len(out))
	}
	//
	circuit.SetGates(out)
}

// appendCCX appends the standard fifteen-gate Toffoli expansion over
// {H, T, TDG, CX}.
func appendCCX(out []ir.Gate, a, b, c int) []ir.Gate {
	return append(out,
		ir.NewSingle(ir.OpH, c),
		ir.NewTwoQubit(ir.OpCX, b, c),
		ir.NewSingle(ir.OpTDG, c),
		ir.NewTwoQubit(ir.OpCX, a, c),
		ir.NewSingle(ir.OpT, c),
		ir.NewTwoQubit(ir.OpCX, b, c),
		ir.NewSingle(ir.OpTDG, c),
		ir.NewTwoQubit(ir.OpCX, a, c),
		ir.NewSingle(ir.OpT, b),
		ir.NewSingle(ir.OpT, c),
		ir.NewSingle(ir.OpH, c),
		ir.NewTwoQubit(ir.OpCX, a, b),
		ir.NewSingle(ir.OpT, a),
		ir.NewSingle(ir.OpTDG, b),
		ir.NewTwoQubit(ir.OpCX, a, b),
	)
}

// appendCSWAP appends the Fredkin expansion: conjugate a Toffoli with CX
// gates on the swapped pair.
func appendCSWAP(out []ir.Gate, a, b, c int) []ir.Gate {
	out = append(out, ir.NewTwoQubit(ir.OpCX, c, b))
	out = appendCCX(out, a, b, c)
	out = append(out, ir.NewTwoQubit(ir.OpCX, c, b))
	//
	return out
}

// appendRCCX appends the relative-phase Toffoli expansion over {U, CX}.
func appendRCCX(out []ir.Gate, a, b, c int) []ir.Gate {
	pi := math.Pi
	//
	return append(out,
		ir.NewU(pi/2, 0, pi, c),
		ir.NewU(0, 0, pi/4, c),
		ir.NewTwoQubit(ir.OpCX, b, c),
		ir.NewU(0, 0, -pi/4, c),
		ir.NewTwoQubit(ir.OpCX, a, c),
		ir.NewU(0, 0, pi/4, c),
		ir.NewTwoQubit(ir.OpCX, b, c),
		ir.NewU(0, 0, -pi/4, c),
		ir.NewU(pi/2, 0, pi, c),
	)
}
