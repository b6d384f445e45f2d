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

import "sort"

// Backend names one device for which a configuration file is known to ship,
// along with its physical qubit count.
type Backend struct {
	Name   string
	Qubits int
}

// backends lists the devices whose configurations ship with the tool.
var backends = map[string]int{
	"ibmq_toronto":     27,
	"ibmq_jakarta":     7,
	"ibmq_guadalupe":   16,
	"ibm_seattle":      433,
	"ibm_cairo":        27,
	"ibm_brisbane":     127,
	"ibmq_dummy12":     12,
	"ibmq_dummy14":     14,
	"ibmq_dummy15":     15,
	"ibmq_dummy16":     16,
	"ibmq_dummy30":     30,
	"rigetti_aspen_m3": 80,
	"quantinuum_h1_2":  12,
	"quantinuum_h1_1":  20,
}

// KnownBackends returns the shipped device list sorted by name.
func KnownBackends() []Backend {
	list := make([]Backend, 0, len(backends))
	//
	for name, qubits := range backends {
		list = append(list, Backend{Name: name, Qubits: qubits})
	}
	//
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	//
	return list
}
