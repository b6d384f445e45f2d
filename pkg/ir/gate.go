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
package ir

import (
	"math"
	"strconv"
	"strings"
)

// None indicates an unused qubit slot on a gate.
const None = -1

// Gate describes a single operation over one, two or three qubits.  Gates are
// value types; passes rewrite circuits by constructing fresh gates rather
// than mutating shared state.
type Gate struct {
	// Op identifies the operation applied.
	Op Op
	// Qubit is the primary qubit: the target of one- and two-qubit gates,
	// the first operand of three-qubit gates.
	Qubit int
	// Ctrl is the control qubit, or None for single-qubit gates.
	Ctrl int
	// Extra is the third qubit of three-qubit gates, else None.
	Extra int
	// Arity gives the number of qubits this gate acts upon (1, 2 or 3).
	Arity int
	// Theta, Phi, Lam and Gamma are the angle parameters (radians), zero
	// when unused.
	Theta, Phi, Lam, Gamma float64
	// Repetition is the shot count of a measure-all gate.
	Repetition int
}

// NewSingle constructs a parameterless single-qubit gate.
func NewSingle(op Op, qubit int) Gate {
	return Gate{Op: op, Qubit: qubit, Ctrl: None, Extra: None, Arity: 1}
}

// NewRotation constructs a single-qubit gate parameterised by one angle
// (e.g. RX, RY, RZ, RI, P).
func NewRotation(op Op, qubit int, theta float64) Gate {
	return Gate{Op: op, Qubit: qubit, Ctrl: None, Extra: None, Arity: 1, Theta: theta}
}

// NewU constructs the generic single-qubit unitary U(theta,phi,lambda).
func NewU(theta, phi, lam float64, qubit int) Gate {
	return Gate{Op: OpU, Qubit: qubit, Ctrl: None, Extra: None, Arity: 1,
		Theta: theta, Phi: phi, Lam: lam}
}

// NewU1 constructs U1(lambda) as its U expansion U(0,0,lambda).
func NewU1(lam float64, qubit int) Gate {
	return NewU(0, 0, lam, qubit)
}

// NewU2 constructs U2(phi,lambda) as its U expansion U(pi/2,phi,lambda).
func NewU2(phi, lam float64, qubit int) Gate {
	return NewU(math.Pi/2, phi, lam, qubit)
}

// NewU3 constructs U3(theta,phi,lambda), an alias of U.
func NewU3(theta, phi, lam float64, qubit int) Gate {
	return NewU(theta, phi, lam, qubit)
}

// NewTwoQubit constructs a parameterless two-qubit gate.
func NewTwoQubit(op Op, ctrl, qubit int) Gate {
	return Gate{Op: op, Qubit: qubit, Ctrl: ctrl, Extra: None, Arity: 2}
}

// NewTwoQubitRotation constructs a two-qubit gate parameterised by one angle
// (e.g. CRX, CRZ, CP, RXX, RZZ, ZZ).
func NewTwoQubitRotation(op Op, ctrl, qubit int, theta float64) Gate {
	return Gate{Op: op, Qubit: qubit, Ctrl: ctrl, Extra: None, Arity: 2, Theta: theta}
}

// NewCU constructs the controlled generic unitary CU(theta,phi,lambda,gamma).
func NewCU(theta, phi, lam, gamma float64, ctrl, qubit int) Gate {
	return Gate{Op: OpCU, Qubit: qubit, Ctrl: ctrl, Extra: None, Arity: 2,
		Theta: theta, Phi: phi, Lam: lam, Gamma: gamma}
}

// NewCU1 constructs CU1(lambda) as its CU expansion CU(0,0,lambda,0).
func NewCU1(lam float64, ctrl, qubit int) Gate {
	return NewCU(0, 0, lam, 0, ctrl, qubit)
}

// NewCU3 constructs CU3(theta,phi,lambda) as CU(theta,phi,lambda,0).
func NewCU3(theta, phi, lam float64, ctrl, qubit int) Gate {
	return NewCU(theta, phi, lam, 0, ctrl, qubit)
}

// NewSwap constructs a SWAP gate exchanging two qubits.
func NewSwap(ctrl, qubit int) Gate {
	return NewTwoQubit(OpSWAP, ctrl, qubit)
}

// NewThreeQubit constructs a three-qubit gate (CCX, CSWAP, RCCX).
func NewThreeQubit(op Op, qubit, ctrl, extra int) Gate {
	return Gate{Op: op, Qubit: qubit, Ctrl: ctrl, Extra: extra, Arity: 3}
}

// NewMeasureAll constructs the terminal measure-all gate with the given
// repetition (shot) count.
func NewMeasureAll(repetition int) Gate {
	return Gate{Op: OpMA, Qubit: None, Ctrl: None, Extra: None, Arity: 1,
		Repetition: repetition}
}

// formatAngle renders an angle parameter in the shortest form which parses
// back to the same value.
func formatAngle(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders this gate in the textual assembly form, e.g.
// "CX q[0],q[1]" or "RZ(1.5707963267948966) q[2]".  Angles which are zero
// are suppressed.
func (g *Gate) String() string {
	var sb strings.Builder
	//
	sb.WriteString(g.Op.String())
	//
	if g.Theta != 0 || g.Phi != 0 || g.Lam != 0 {
		params := make([]string, 0, 3)
		//
		if g.Theta != 0 {
			params = append(params, formatAngle(g.Theta))
		}
		//
		if g.Phi != 0 {
			params = append(params, formatAngle(g.Phi))
		}
		//
		if g.Lam != 0 {
			params = append(params, formatAngle(g.Lam))
		}
		//
		sb.WriteString("(")
		sb.WriteString(strings.Join(params, ","))
		sb.WriteString(")")
	}
	//
	sb.WriteString(" ")
	//
	switch {
	case g.Extra != None:
		sb.WriteString("q[" + strconv.Itoa(g.Qubit) + "],q[" + strconv.Itoa(g.Ctrl) +
			"],q[" + strconv.Itoa(g.Extra) + "]")
	case g.Ctrl != None:
		sb.WriteString("q[" + strconv.Itoa(g.Ctrl) + "],q[" + strconv.Itoa(g.Qubit) + "]")
	default:
		sb.WriteString("q[" + strconv.Itoa(g.Qubit) + "]")
	}
	//
	return sb.String()
}
