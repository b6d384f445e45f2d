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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"
)

// Config mirrors a device configuration file.  Couplings are directed pairs
// "A_B"; the induced graph is treated as undirected.
type Config struct {
	// NumQubits is the number of physical qubits on the device.
	NumQubits int `json:"num_qubits"`
	// CxCoupling lists hardware couplings as "A_B" strings.
	CxCoupling []string `json:"cx_coupling"`
}

// ReadConfig loads a device configuration from a JSON file.
func ReadConfig(filename string) (*Config, error) {
	var cfg Config
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	if err := json.Unmarshal(bytes, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	if cfg.NumQubits <= 0 {
		return nil, fmt.Errorf("%s: missing or invalid num_qubits", filename)
	}
	//
	return &cfg, nil
}

// couplings decodes the "A_B" pairs, rejecting malformed entries and
// endpoints outside the device.
func (c *Config) couplings() ([][2]int, error) {
	pairs := make([][2]int, 0, len(c.CxCoupling))
	//
	for _, s := range c.CxCoupling {
		lhs, rhs, ok := strings.Cut(s, "_")
		if !ok {
			return nil, fmt.Errorf("malformed coupling %q", s)
		}
		//
		from, err := strconv.Atoi(lhs)
		if err != nil {
			return nil, fmt.Errorf("malformed coupling %q", s)
		}
		//
		to, err := strconv.Atoi(rhs)
		if err != nil {
			return nil, fmt.Errorf("malformed coupling %q", s)
		}
		//
		if from < 0 || from >= c.NumQubits || to < 0 || to >= c.NumQubits {
			return nil, fmt.Errorf("coupling %q outside device of %d qubits", s, c.NumQubits)
		}
		//
		pairs = append(pairs, [2]int{from, to})
	}
	//
	return pairs, nil
}
