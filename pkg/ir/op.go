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

import "fmt"

// Op identifies a quantum operation.  Dispatch throughout the transpiler is
// on this discriminator rather than on operation names, which exist only at
// the textual boundary.
type Op uint8

const (
	// OpX is the Pauli-X gate.
	OpX Op = iota
	// OpY is the Pauli-Y gate.
	OpY
	// OpZ is the Pauli-Z gate.
	OpZ
	// OpH is the Hadamard gate.
	OpH
	// OpS is the phase gate sqrt(Z).
	OpS
	// OpSDG is the inverse phase gate.
	OpSDG
	// OpT is the T gate (fourth root of Z).
	OpT
	// OpTDG is the inverse T gate.
	OpTDG
	// OpRI is a global-phase rotation.
	OpRI
	// OpRX is a rotation about the X axis.
	OpRX
	// OpRY is a rotation about the Y axis.
	OpRY
	// OpRZ is a rotation about the Z axis.
	OpRZ
	// OpSX is the sqrt(X) gate.
	OpSX
	// OpP is the phase rotation gate.
	OpP
	// OpU is the generic single-qubit unitary U(theta,phi,lambda).
	OpU
	// OpCX is the controlled-X gate.
	OpCX
	// OpCY is the controlled-Y gate.
	OpCY
	// OpCZ is the controlled-Z gate.
	OpCZ
	// OpCH is the controlled Hadamard.
	OpCH
	// OpCS is the controlled phase gate.
	OpCS
	// OpCSDG is the controlled inverse phase gate.
	OpCSDG
	// OpCT is the controlled T gate.
	OpCT
	// OpCTDG is the controlled inverse T gate.
	OpCTDG
	// OpCRI is the controlled global-phase rotation.
	OpCRI
	// OpCRX is the controlled X rotation.
	OpCRX
	// OpCRY is the controlled Y rotation.
	OpCRY
	// OpCRZ is the controlled Z rotation.
	OpCRZ
	// OpCSX is the controlled sqrt(X) gate.
	OpCSX
	// OpCP is the controlled phase rotation.
	OpCP
	// OpCU is the controlled generic unitary CU(theta,phi,lambda,gamma).
	OpCU
	// OpRXX is the two-qubit XX interaction.
	OpRXX
	// OpRYY is the two-qubit YY interaction.
	OpRYY
	// OpRZZ is the two-qubit ZZ interaction.
	OpRZZ
	// OpID is the identity gate.
	OpID
	// OpSWAP exchanges two qubits.
	OpSWAP
	// OpM measures a single qubit.
	OpM
	// OpMA measures all qubits.
	OpMA
	// OpRESET resets a qubit to |0>.
	OpRESET
	// OpZZ is the native ZZ interaction of trapped-ion targets.
	OpZZ
	// OpCSWAP is the controlled SWAP (Fredkin) gate.
	OpCSWAP
	// OpCCX is the doubly-controlled X (Toffoli) gate.
	OpCCX
	// OpRCCX is the relative-phase Toffoli gate.
	OpRCCX
	// numOps bounds the operation set.
	numOps
)

// opNames maps each operation to its canonical (upper case) textual name.
var opNames = [numOps]string{
	"X", "Y", "Z", "H", "S", "SDG", "T", "TDG", "RI", "RX", "RY", "RZ",
	"SX", "P", "U", "CX", "CY", "CZ", "CH", "CS", "CSDG", "CT", "CTDG",
	"CRI", "CRX", "CRY", "CRZ", "CSX", "CP", "CU", "RXX", "RYY", "RZZ",
	"ID", "SWAP", "M", "MA", "RESET", "ZZ", "CSWAP", "CCX", "RCCX",
}

// String returns the canonical name of this operation.
func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	//
	return fmt.Sprintf("OP(%d)", uint8(op))
}

// ParseOp maps a canonical (upper case) operation name back to its
// discriminator, returning false if the name is not recognised.
func ParseOp(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	//
	return numOps, false
}
