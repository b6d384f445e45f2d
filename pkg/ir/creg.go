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
	"github.com/bits-and-blooms/bitset"
)

// Creg describes one classical register declared by the source program.  The
// transpiler core carries these opaquely; only measurement binding and
// load-time conditionals read them.
type Creg struct {
	// Width is the number of classical bits in this register.
	Width int
	// QubitIndices lists the qubits measured into this register, in bit
	// order.
	QubitIndices []int
	// Value holds the register's current classical value, bit per slot.
	Value *bitset.BitSet
}

// NewCreg constructs a zeroed classical register of the given width.
func NewCreg(width int) *Creg {
	return &Creg{
		Width:        width,
		QubitIndices: make([]int, width),
		Value:        bitset.New(uint(width)),
	}
}

// Uint64 returns the register value as an unsigned integer.  Registers wider
// than 64 bits are truncated to their low 64 bits.
func (c *Creg) Uint64() uint64 {
	words := c.Value.Bytes()
	if len(words) == 0 {
		return 0
	}
	//
	return words[0]
}

// CregMap is an insertion-ordered collection of named classical registers.
// Iteration order matters since emitted measurements follow declaration
// order.
type CregMap struct {
	names []string
	regs  map[string]*Creg
}

// NewCregMap constructs an empty register collection.
func NewCregMap() *CregMap {
	return &CregMap{regs: make(map[string]*Creg)}
}

// Declare adds a new register under the given name, returning false if the
// name is already taken.
func (m *CregMap) Declare(name string, width int) bool {
	if _, ok := m.regs[name]; ok {
		return false
	}
	//
	m.names = append(m.names, name)
	m.regs[name] = NewCreg(width)
	//
	return true
}

// Get returns the register of the given name, or nil.
func (m *CregMap) Get(name string) *Creg {
	return m.regs[name]
}

// Len returns the number of declared registers.
func (m *CregMap) Len() int {
	return len(m.names)
}

// Names returns register names in declaration order.
func (m *CregMap) Names() []string {
	return m.names
}
