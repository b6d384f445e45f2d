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
package qasm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-qasmtrans/pkg/ir"
	"github.com/consensys/go-qasmtrans/pkg/passes"
)

// DefaultOutputName derives the output file name for a transpiled circuit
// from the input path and the selected target: transpiled_<target>_<base>,
// placed alongside the input.
func DefaultOutputName(input string, mode passes.Mode) string {
	dir, base := filepath.Split(input)
	return filepath.Join(dir, fmt.Sprintf("transpiled_%s_%s", mode, base))
}

// WriteFile writes the circuit to the given path and logs a gate summary.
func WriteFile(circuit *ir.Circuit, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	//
	defer file.Close()
	//
	counts, err := Write(file, circuit)
	if err != nil {
		return err
	}
	//
	log.Infof("wrote %s: %d gates", path, circuit.NumGates())
	log.Debugf("basis gate breakdown: %s", formatCounts(counts))
	//
	return nil
}

// Write emits the circuit in source form: header, classical register
// declarations, one lowercased line per gate, then the measurement lines
// reconstructed from the classical registers.  Measure-all markers are
// dropped since measurements are emitted separately.  Returns the per-op
// gate counts.
func Write(writer io.Writer, circuit *ir.Circuit) (map[string]int, error) {
	out := bufio.NewWriter(writer)
	counts := make(map[string]int)
	cregs := circuit.Cregs()
	//
	fmt.Fprintf(out, "OPENQASM 2.0;\n")
	fmt.Fprintf(out, "include \"qelib1.inc\";\n")
	fmt.Fprintf(out, "qreg q[%d];\n", circuit.NumQubits())
	//
	for _, name := range cregs.Names() {
		fmt.Fprintf(out, "creg %s[%d];\n", strings.ToLower(name), cregs.Get(name).Width)
	}
	//
	for _, g := range circuit.Gates() {
		if g.Op == ir.OpMA {
			continue
		}
		//
		fmt.Fprintf(out, "%s;\n", strings.ToLower(g.String()))
		counts[strings.ToLower(g.Op.String())]++
	}
	//
	if err := writeMeasurements(out, circuit); err != nil {
		return nil, err
	}
	//
	return counts, out.Flush()
}

// writeMeasurements emits one measure line per classical register slot.  The
// measured physical qubit is looked up through the initial mapping at the
// running slot index, which assumes the frontend bound classical bit i to
// logical qubit i.
func writeMeasurements(out *bufio.Writer, circuit *ir.Circuit) error {
	var (
		mapping = circuit.InitialMapping()
		cregs   = circuit.Cregs()
		index   = 0
	)
	//
	for _, name := range cregs.Names() {
		for range cregs.Get(name).QubitIndices {
			if index >= len(mapping) {
				log.Warnf("classical bit %d has no mapped qubit; dropping measurement", index)
				return nil
			}
			//
			physical := mapping[index]
			//
			if physical >= circuit.NumQubits() {
				log.Warnf("physical qubit %d out of range; dropping measurement", physical)
				index++
				//
				continue
			}
			//
			fmt.Fprintf(out, "measure q[%d] -> %s[%d];\n", physical, strings.ToLower(name), index)
			index++
		}
	}
	//
	return nil
}

// formatCounts renders the gate counts in a stable order.
func formatCounts(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	//
	for name := range counts {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	var builder strings.Builder
	//
	for i, name := range names {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		fmt.Fprintf(&builder, "%s:%d", name, counts[name])
	}
	//
	return builder.String()
}
