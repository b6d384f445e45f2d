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

import "fmt"

// ChipTooSmallError indicates the circuit requires more qubits than the
// target device provides.  The pipeline aborts before any pass runs.
type ChipTooSmallError struct {
	// NumQubits required by the circuit.
	NumQubits int
	// ChipQubits available on the device.
	ChipQubits int
}

func (e *ChipTooSmallError) Error() string {
	return fmt.Sprintf("circuit requires %d qubits but device has only %d",
		e.NumQubits, e.ChipQubits)
}

// UnroutableError indicates the coupling graph is disconnected between the
// physical locations of a required qubit pair.
type UnroutableError struct {
	// Ctrl and Qubit are the logical qubits of the gate which could not be
	// routed.
	Ctrl, Qubit int
}

func (e *UnroutableError) Error() string {
	return fmt.Sprintf("no path between qubits %d and %d on the coupling graph",
		e.Ctrl, e.Qubit)
}

// UnknownGateError indicates an operation with no handler where one is
// required.
type UnknownGateError struct {
	// Name of the offending operation.
	Name string
}

func (e *UnknownGateError) Error() string {
	return fmt.Sprintf("unknown gate %q", e.Name)
}
