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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCregMapDeclare(t *testing.T) {
	cregs := NewCregMap()
	//
	assert.True(t, cregs.Declare("C", 3))
	assert.True(t, cregs.Declare("D", 1))
	// Redeclaration is rejected.
	assert.False(t, cregs.Declare("C", 5))
	//
	assert.Equal(t, 2, cregs.Len())
	assert.Equal(t, 3, cregs.Get("C").Width)
	assert.Nil(t, cregs.Get("E"))
}

func TestCregMapOrder(t *testing.T) {
	cregs := NewCregMap()
	// Iteration follows declaration order, not lexical order.
	cregs.Declare("Z", 1)
	cregs.Declare("A", 1)
	cregs.Declare("M", 1)
	//
	assert.Equal(t, []string{"Z", "A", "M"}, cregs.Names())
}

func TestCregUint64(t *testing.T) {
	creg := NewCreg(8)
	assert.Equal(t, uint64(0), creg.Uint64())
	//
	creg.Value.Set(0)
	creg.Value.Set(2)
	assert.Equal(t, uint64(5), creg.Uint64())
	//
	creg.Value.Clear(0)
	assert.Equal(t, uint64(4), creg.Uint64())
}

func TestCircuitCregs(t *testing.T) {
	circuit := NewCircuit(2)
	assert.Equal(t, 0, circuit.Cregs().Len())
	//
	cregs := NewCregMap()
	cregs.Declare("C", 2)
	circuit.SetCregs(cregs)
	//
	assert.Same(t, cregs, circuit.Cregs())
}
