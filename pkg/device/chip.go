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
package device

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// Disconnected is the distance reported between physical qubits with no
// connecting path.
const Disconnected = math.MaxInt

// Chip is an immutable descriptor of a hardware device: its physical qubit
// count, coupling graph and all-pairs shortest-path distances.
type Chip struct {
	// QubitNum is the number of physical qubits on the device.
	QubitNum int
	// AdjMat is the symmetric adjacency matrix of the coupling graph.
	AdjMat [][]bool
	// EdgeList gives, for each physical qubit, its neighbours on the
	// coupling graph.
	EdgeList [][]int
	// Dist holds shortest-path hop counts between all pairs of physical
	// qubits, with Disconnected marking unreachable pairs.
	Dist [][]int
}

// NewChip constructs a chip from a device configuration.  When limited is
// set, couplings with an endpoint at or beyond numQubits are dropped before
// graph construction, shrinking the device to the circuit's size.
func NewChip(cfg *Config, limited bool, numQubits int) (*Chip, error) {
	pairs, err := cfg.couplings()
	if err != nil {
		return nil, err
	}
	//
	n := cfg.NumQubits
	if limited {
		n = numQubits
	}
	//
	chip := &Chip{
		QubitNum: n,
		AdjMat:   make([][]bool, n),
		EdgeList: make([][]int, n),
		Dist:     make([][]int, n),
	}
	//
	for i := range chip.AdjMat {
		chip.AdjMat[i] = make([]bool, n)
	}
	//
	dropped := 0
	//
	for _, pair := range pairs {
		from, to := pair[0], pair[1]
		//
		if limited && (from >= n || to >= n) {
			dropped++
			continue
		}
		// Couplings are directed in the configuration but the router only
		// cares about adjacency.
		chip.AdjMat[from][to] = true
		chip.AdjMat[to][from] = true
	}
	//
	if dropped > 0 {
		log.Debugf("dropped %d couplings outside the %d-qubit window", dropped, n)
	}
	//
	for p := range chip.EdgeList {
		for q := 0; q < n; q++ {
			if chip.AdjMat[p][q] {
				chip.EdgeList[p] = append(chip.EdgeList[p], q)
			}
		}
	}
	//
	chip.floyd()
	//
	return chip, nil
}

// Distance returns the shortest-path hop count between two physical qubits.
func (c *Chip) Distance(p, q int) int {
	return c.Dist[p][q]
}

// Adjacent reports whether two physical qubits share a coupling.
func (c *Chip) Adjacent(p, q int) bool {
	return c.AdjMat[p][q]
}

// floyd fills the distance matrix using the Floyd-Warshall recurrence.
func (c *Chip) floyd() {
	n := c.QubitNum
	//
	for i := 0; i < n; i++ {
		row := make([]int, n)
		//
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				row[j] = 0
			case c.AdjMat[i][j]:
				row[j] = 1
			default:
				row[j] = Disconnected
			}
		}
		//
		c.Dist[i] = row
	}
	//
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if c.Dist[i][k] == Disconnected {
				continue
			}
			//
			for j := 0; j < n; j++ {
				if c.Dist[k][j] == Disconnected {
					continue
				}
				//
				if d := c.Dist[i][k] + c.Dist[k][j]; d < c.Dist[i][j] {
					c.Dist[i][j] = d
				}
			}
		}
	}
}
