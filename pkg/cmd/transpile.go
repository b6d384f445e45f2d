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
package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-qasmtrans/pkg/device"
	"github.com/consensys/go-qasmtrans/pkg/passes"
	"github.com/consensys/go-qasmtrans/pkg/qasm"
)

var transpileCmd = &cobra.Command{
	Use:   "transpile [flags]",
	Short: "transpile a circuit onto a hardware target.",
	Long: `Transpile a circuit in OPENQASM 2.0 form onto a given device: three-qubit
	 gates are decomposed, qubits are laid out and routed against the device
	 coupling graph, and the result is rewritten into the native gate set of
	 the selected target.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		input := GetString(cmd, "input")
		config := GetString(cmd, "config")
		//
		mode, ok := passes.ParseMode(GetString(cmd, "mode"))
		if !ok {
			fmt.Printf("unknown target %q\n", GetString(cmd, "mode"))
			os.Exit(2)
		}
		// Parse the circuit
		program, err := qasm.ParseFile(input)
		if err != nil {
			log.Errorf("%s: %v", input, err)
			os.Exit(1)
		}
		//
		circuit, err := program.Circuit()
		if err != nil {
			log.Errorf("%s: %v", input, err)
			os.Exit(1)
		}
		// Load the device
		cfg, err := device.ReadConfig(config)
		if err != nil {
			log.Errorf("%s: %v", config, err)
			os.Exit(1)
		}
		//
		chip, err := device.NewChip(cfg, GetFlag(cmd, "limited"), circuit.NumQubits())
		if err != nil {
			log.Errorf("%s: %v", config, err)
			os.Exit(1)
		}
		// Run the pipeline
		seed := GetInt64(cmd, "seed")
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		//
		opts := passes.Options{
			Mode:  mode,
			Seed:  seed,
			Remap: GetFlag(cmd, "remap"),
		}
		//
		if err := passes.Transpile(circuit, chip, opts); err != nil {
			log.Errorf("transpile: %v", err)
			os.Exit(1)
		}
		// Write the result
		output := GetString(cmd, "output")
		if output == "" {
			output = qasm.DefaultOutputName(input, mode)
		}
		//
		if err := qasm.WriteFile(circuit, output); err != nil {
			log.Errorf("%s: %v", output, err)
			os.Exit(1)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(transpileCmd)
	transpileCmd.Flags().StringP("input", "i", "", "circuit file to transpile.")
	transpileCmd.Flags().StringP("config", "c", "", "device configuration file.")
	transpileCmd.Flags().StringP("mode", "m", "ibmq", "hardware target (ibmq, ionq, quantinuum, rigetti, quafu).")
	transpileCmd.Flags().StringP("output", "o", "", "output file (defaults next to the input).")
	transpileCmd.Flags().Bool("limited", false, "restrict the coupling graph to the circuit's qubit count.")
	transpileCmd.Flags().Bool("remap", false, "pack the least-used qubits at the low indices before routing.")
	transpileCmd.Flags().Int64("seed", 0, "seed for the initial random layout (time-based when unset).")
	transpileCmd.MarkFlagRequired("input")
	transpileCmd.MarkFlagRequired("config")
}
