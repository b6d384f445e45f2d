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

// Circuit owns an ordered sequence of gates over a fixed number of logical
// qubits, together with the classical registers declared by the source
// program and (once routing has run) the initial logical-to-physical layout.
type Circuit struct {
	numQubits int
	gates     []Gate
	cregs     *CregMap
	// initialMapping is the logical-to-physical layout under which the
	// first gate executes.  Empty until routing assigns one.
	initialMapping []int
}

// NewCircuit constructs an empty circuit over the given number of qubits.
func NewCircuit(numQubits int) *Circuit {
	return &Circuit{
		numQubits: numQubits,
		cregs:     NewCregMap(),
	}
}

// NumQubits returns the number of logical qubits this circuit acts upon.
func (c *Circuit) NumQubits() int {
	return c.numQubits
}

// NumGates returns the number of gates currently in this circuit.
func (c *Circuit) NumGates() int {
	return len(c.gates)
}

// Gates returns the gate sequence in execution order.  The returned slice is
// borrowed and must not be mutated by the caller.
func (c *Circuit) Gates() []Gate {
	return c.gates
}

// AppendGate appends one gate to this circuit.  After routing, gates
// reference physical qubits and may legitimately exceed NumQubits; index
// validation is therefore the frontend's concern.
func (c *Circuit) AppendGate(g Gate) {
	c.gates = append(c.gates, g)
}

// SetGates replaces the gate sequence wholesale.  Passes use this to swap in
// a rewritten sequence once complete.
func (c *Circuit) SetGates(gates []Gate) {
	c.gates = gates
}

// InitialMapping returns the logical-to-physical layout assigned by routing,
// or an empty slice before routing has run.
func (c *Circuit) InitialMapping() []int {
	return c.initialMapping
}

// SetInitialMapping records the logical-to-physical layout under which the
// first gate executes.
func (c *Circuit) SetInitialMapping(mapping []int) {
	c.initialMapping = mapping
}

// Cregs returns the classical registers declared by the source program.
func (c *Circuit) Cregs() *CregMap {
	return c.cregs
}

// SetCregs installs the classical registers declared by the source program.
func (c *Circuit) SetCregs(cregs *CregMap) {
	c.cregs = cregs
}
