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
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-qasmtrans/pkg/device"
	"github.com/consensys/go-qasmtrans/pkg/ir"
	"github.com/consensys/go-qasmtrans/pkg/util"
)

// Options configure one transpilation run.
type Options struct {
	// Mode selects the hardware target of the basis decomposition.
	Mode Mode
	// Seed drives the router's initial random layout, making runs
	// reproducible.
	Seed int64
	// Remap enables the warp-alignment permutation pass ahead of routing.
	Remap bool
}

// Transpile lowers the circuit onto the given chip: pre-decomposition of
// three-qubit gates, layout and routing, then basis decomposition for the
// selected target.  On success the circuit holds only target-native gates
// over physical qubits.
func Transpile(circuit *ir.Circuit, chip *device.Chip, opts Options) error {
	if n := circuit.NumQubits(); n > chip.QubitNum {
		return &ChipTooSmallError{NumQubits: n, ChipQubits: chip.QubitNum}
	}
	//
	stats := util.NewPerfStats()
	//
	if opts.Remap {
		runPass("remap", circuit, func() { Remap(circuit) })
	}
	//
	runPass("pre-decompose", circuit, func() { PreDecompose(circuit) })
	//
	var err error
	//
	runPass("route", circuit, func() { err = Route(circuit, chip, opts.Seed) })
	//
	if err != nil {
		return err
	}
	//
	runPass("decompose", circuit, func() { Decompose(circuit, opts.Mode) })
	//
	stats.Log("transpile")
	//
	return nil
}

// runPass times one pass and reports its resulting gate count.
func runPass(name string, circuit *ir.Circuit, pass func()) {
	stats := util.NewPerfStats()
	pass()
	stats.Log(name)
	log.Debugf("%s: circuit now has %d gates", name, circuit.NumGates())
}
