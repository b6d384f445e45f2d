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

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-qasmtrans/pkg/device"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "list the known device backends.",
	Long:  `List the device backends with bundled configurations, along with their qubit counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		backends := device.KnownBackends()
		// Lay entries out in columns, sized to the terminal width when attached
		// to one and to 80 characters otherwise.
		width := 80
		if term.IsTerminal(0) {
			if w, _, err := term.GetSize(0); err == nil {
				width = w
			}
		}
		//
		entries := make([]string, len(backends))
		longest := 0
		//
		for i, backend := range backends {
			entries[i] = fmt.Sprintf("%s (%d qubits)", backend.Name, backend.Qubits)
			longest = max(longest, len(entries[i]))
		}
		//
		columns := max(1, width/(longest+2))
		//
		for i, entry := range entries {
			fmt.Printf("%-*s", longest+2, entry)
			//
			if (i+1)%columns == 0 || i == len(entries)-1 {
				fmt.Println()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
