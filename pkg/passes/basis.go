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
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-qasmtrans/pkg/ir"
)

// Mode selects the hardware target of the basis decomposition.
type Mode uint8

const (
	// ModeIBM targets superconducting devices with native {RZ, SX, X, CX}.
	ModeIBM Mode = iota
	// ModeIonQ targets trapped-ion devices with native {RZ, RX, RY, RXX}.
	ModeIonQ
	// ModeQuantinuum targets devices with native {RZ, U, ZZ}.
	ModeQuantinuum
	// ModeRigetti targets devices with native {RZ, RX, CZ}.
	ModeRigetti
	// ModeQuafu targets superconducting devices with native CZ.
	ModeQuafu
)

// modeNames gives the display name of each target, also used when deriving
// default output file names.
var modeNames = []string{"IBMQ", "IonQ", "Quantinuum", "Rigetti", "Quafu"}

// String returns the display name of this target.
func (m Mode) String() string {
	return modeNames[m]
}

// ParseMode maps a (case-insensitive) target name to its mode.
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(name) {
	case "ibmq", "ibm":
		return ModeIBM, true
	case "ionq":
		return ModeIonQ, true
	case "quantinuum":
		return ModeQuantinuum, true
	case "rigetti":
		return ModeRigetti, true
	case "quafu":
		return ModeQuafu, true
	}
	//
	return 0, false
}

// Shorthand builders for the universal basis.
func rz(theta float64, qubit int) ir.Gate {
	return ir.NewRotation(ir.OpRZ, qubit, theta)
}

func sx(qubit int) ir.Gate {
	return ir.NewSingle(ir.OpSX, qubit)
}

func x(qubit int) ir.Gate {
	return ir.NewSingle(ir.OpX, qubit)
}

func cx(ctrl, qubit int) ir.Gate {
	return ir.NewTwoQubit(ir.OpCX, ctrl, qubit)
}

// Decompose rewrites every gate of the circuit into the native basis of the
// given target.  A first pass lowers the full gate set onto
// {RZ, SX, X, CX, ID, MA, RESET}; a second pass then rewrites that universal
// basis into target-native gates.  Gates with no handler are passed through
// with a warning.
func Decompose(circuit *ir.Circuit, mode Mode) {
	universal := lowerUniversal(circuit.Gates())
	//
	if mode == ModeIBM {
		circuit.SetGates(universal)
		return
	}
	//
	circuit.SetGates(lowerTarget(universal, mode))
}

// ============================================================================
// Universal pass
// ============================================================================

// lowerUniversal rewrites arbitrary gates onto {RZ, SX, X, CX, ID, MA,
// RESET} by local algebraic identities.
func lowerUniversal(gates []ir.Gate) []ir.Gate {
	pi := math.Pi
	out := make([]ir.Gate, 0, len(gates)*2)
	//
	for _, g := range gates {
		q, c := g.Qubit, g.Ctrl
		//
		switch g.Op {
		case ir.OpH:
			out = appendH(out, q)
		case ir.OpT:
			out = append(out, rz(pi/4, q))
		case ir.OpTDG:
			out = append(out, rz(-pi/4, q))
		case ir.OpS:
			out = append(out, rz(pi/2, q))
		case ir.OpSDG:
			out = append(out, rz(-pi/2, q))
		case ir.OpZ:
			out = append(out, rz(pi, q))
		case ir.OpY:
			out = append(out, sx(q), rz(pi, q), sx(q), sx(q), sx(q))
		case ir.OpRX:
			out = appendH(out, q)
			out = append(out, rz(g.Theta, q))
			out = appendH(out, q)
		case ir.OpRY:
			out = append(out, sx(q), rz(g.Theta, q), sx(q), sx(q), sx(q))
		case ir.OpRI:
			out = append(out, rz(2*g.Theta, q), rz(pi, q))
		case ir.OpP:
			out = append(out, rz(g.Theta, q))
		case ir.OpU:
			out = appendU(out, g.Theta, g.Phi, g.Lam, q)
		case ir.OpCZ:
			out = appendH(out, q)
			out = append(out, cx(c, q))
			out = appendH(out, q)
		case ir.OpCY:
			out = append(out, rz(-pi/2, q), cx(c, q), rz(pi/2, q))
		case ir.OpCH:
			out = append(out,
				rz(-pi, q), sx(q), rz(3*pi/4, q), cx(c, q), rz(pi/4, q), sx(q))
		case ir.OpCS:
			out = append(out,
				rz(pi/4, c), cx(c, q), rz(-pi/4, q), cx(c, q), rz(pi/4, q))
		case ir.OpCSDG:
			out = append(out,
				rz(pi/2, q), sx(q), rz(pi/2, q), cx(c, q), rz(pi/2, q),
				rz(pi/4, c), sx(q), rz(pi/2, q), cx(c, q), rz(-pi/4, q),
				cx(c, q), rz(pi/4, q))
		case ir.OpCT:
			out = append(out,
				rz(pi/8, c), cx(c, q), rz(-pi/8, q), cx(c, q), rz(pi/8, q))
		case ir.OpCTDG:
			out = append(out,
				rz(-pi/8, c), cx(c, q), rz(pi/8, q), cx(c, q), rz(-pi/8, q))
		case ir.OpCRX:
			out = append(out,
				rz(pi/2, q), sx(q), rz(pi/2, q), rz(g.Theta/2, q), cx(c, q),
				rz(-g.Theta/2, q), cx(c, q), rz(pi/2, q), sx(q), rz(pi/2, q))
		case ir.OpCRY:
			out = append(out,
				sx(q), rz(pi+g.Theta/2, q), sx(q), rz(3*pi, q), cx(c, q),
				sx(q), rz(pi-g.Theta/2, q), sx(q), rz(3*pi, q), cx(c, q))
		case ir.OpCRZ:
			out = append(out,
				rz(g.Theta/2, q), cx(c, q), rz(-g.Theta/2, q), cx(c, q))
		case ir.OpCSX:
			out = append(out,
				rz(pi/2, q), rz(pi/4, c), sx(q), rz(pi/2, q), cx(c, q),
				rz(-pi/4, q), cx(c, q), rz(3*pi/4, q), sx(q), rz(pi/2, q))
		case ir.OpCP:
			out = append(out,
				rz(g.Theta/2, c), cx(c, q), rz(-g.Theta/2, q), cx(c, q),
				rz(g.Theta/2, q))
		case ir.OpCU:
			out = append(out,
				rz(g.Gamma, c), rz(g.Lam/2+g.Phi/2, c), rz(g.Lam/2-g.Phi/2, q),
				cx(c, q), rz(-g.Lam/2-g.Phi/2, q), sx(q), rz(pi-g.Theta/2, q),
				sx(q), rz(3*pi, q), cx(c, q), sx(q), rz(pi+g.Theta/2, q),
				sx(q), rz(3*pi+g.Phi, q))
		case ir.OpRXX:
			out = append(out,
				rz(pi/2, q), sx(q), rz(pi/2, q), rz(pi/2, c), sx(c), rz(pi/2, c),
				cx(c, q), rz(g.Theta, q), cx(c, q),
				rz(pi/2, q), sx(q), rz(pi/2, q), rz(pi/2, c), sx(c), rz(pi/2, c))
		case ir.OpRYY:
			out = append(out,
				sx(q), sx(c), cx(c, q), rz(g.Theta, q), cx(c, q),
				rz(-pi, q), sx(q), rz(-pi, q), rz(-pi, c), sx(c), rz(-pi, c))
		case ir.OpRZZ:
			out = append(out, cx(c, q), rz(g.Theta, q), cx(c, q))
		case ir.OpSWAP:
			out = append(out, cx(c, q), cx(q, c), cx(c, q))
		case ir.OpCX, ir.OpRZ, ir.OpSX, ir.OpX, ir.OpMA, ir.OpID, ir.OpRESET:
			out = append(out, g)
		default:
			log.Warnf("gate %s has no universal decomposition; passing through", g.Op)
			out = append(out, g)
		}
	}
	//
	return out
}

// appendH appends the Hadamard expansion X; SX; RZ(-pi/2); SX; X.
func appendH(out []ir.Gate, q int) []ir.Gate {
	return append(out, x(q), sx(q), rz(-math.Pi/2, q), sx(q), x(q))
}

// appendU appends the U(theta,phi,lambda) expansion, eliding the leading RZ
// when lambda is zero.
func appendU(out []ir.Gate, theta, phi, lam float64, q int) []ir.Gate {
	pi := math.Pi
	//
	if lam != 0 {
		out = append(out, rz(lam, q))
	}
	//
	return append(out, sx(q), rz(theta+pi, q), sx(q), rz(3*pi+phi, q))
}

// ============================================================================
// Target pass
// ============================================================================

// lowerTarget rewrites the universal basis {RZ, SX, X, CX} into the native
// gates of the given target.  Other gates pass through with a warning.
func lowerTarget(gates []ir.Gate, mode Mode) []ir.Gate {
	pi := math.Pi
	out := make([]ir.Gate, 0, len(gates)*2)
	//
	for _, g := range gates {
		q, c := g.Qubit, g.Ctrl
		//
		switch g.Op {
		case ir.OpRZ:
			out = append(out, g)
		case ir.OpSX:
			switch mode {
			case ModeQuantinuum:
				out = append(out, ir.NewU(pi/2, 0, 0, q))
			default:
				out = append(out, ir.NewRotation(ir.OpRX, q, pi/2))
			}
		case ir.OpX:
			switch mode {
			case ModeQuantinuum:
				out = append(out, ir.NewU(pi, 0, 0, q))
			default:
				out = append(out, ir.NewRotation(ir.OpRX, q, pi))
			}
		case ir.OpCX:
			switch mode {
			case ModeIonQ:
				out = append(out,
					ir.NewRotation(ir.OpRY, q, pi/2),
					ir.NewTwoQubitRotation(ir.OpRXX, c, q, pi/2),
					ir.NewRotation(ir.OpRX, c, -pi/2),
					ir.NewRotation(ir.OpRX, q, -pi/2),
					ir.NewRotation(ir.OpRY, q, -pi/2))
			case ModeQuantinuum:
				out = append(out,
					ir.NewU(-pi/2, pi/2, 0, q),
					ir.NewTwoQubitRotation(ir.OpZZ, c, q, pi/2),
					rz(-pi/2, c),
					ir.NewU(pi/2, pi, 0, q),
					rz(-pi/2, c))
			case ModeRigetti:
				out = append(out,
					rz(-pi/2, q),
					ir.NewRotation(ir.OpRX, q, -pi/2),
					rz(-pi/2, q),
					ir.NewTwoQubit(ir.OpCZ, c, q),
					rz(-pi/2, q),
					ir.NewRotation(ir.OpRX, q, -pi/2),
					rz(-pi/2, q))
			case ModeQuafu:
				out = append(out,
					ir.NewSingle(ir.OpH, q),
					ir.NewTwoQubit(ir.OpCZ, c, q),
					ir.NewSingle(ir.OpH, q))
			}
		default:
			log.Warnf("gate %s is not native to %s; passing through", g.Op, mode)
			out = append(out, g)
		}
	}
	//
	return out
}
