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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineConfig describes a path graph 0 - 1 - ... - (n-1).
func lineConfig(n int) *Config {
	cfg := &Config{NumQubits: n}
	//
	for i := 0; i+1 < n; i++ {
		cfg.CxCoupling = append(cfg.CxCoupling, fmt.Sprintf("%d_%d", i, i+1))
	}
	//
	return cfg
}

func TestChipLineGraph(t *testing.T) {
	chip, err := NewChip(lineConfig(4), false, 4)
	require.NoError(t, err)
	//
	assert.Equal(t, 4, chip.QubitNum)
	// Couplings are undirected.
	assert.True(t, chip.Adjacent(0, 1))
	assert.True(t, chip.Adjacent(1, 0))
	assert.False(t, chip.Adjacent(0, 2))
	//
	assert.Equal(t, []int{1}, chip.EdgeList[0])
	assert.Equal(t, []int{0, 2}, chip.EdgeList[1])
	//
	assert.Equal(t, 0, chip.Distance(2, 2))
	assert.Equal(t, 1, chip.Distance(0, 1))
	assert.Equal(t, 2, chip.Distance(0, 2))
	assert.Equal(t, 3, chip.Distance(0, 3))
	assert.Equal(t, chip.Distance(3, 0), chip.Distance(0, 3))
}

func TestChipDisconnected(t *testing.T) {
	cfg := &Config{NumQubits: 4, CxCoupling: []string{"0_1", "2_3"}}
	//
	chip, err := NewChip(cfg, false, 4)
	require.NoError(t, err)
	//
	assert.Equal(t, 1, chip.Distance(0, 1))
	assert.Equal(t, Disconnected, chip.Distance(0, 2))
	assert.Equal(t, Disconnected, chip.Distance(1, 3))
}

func TestChipLimited(t *testing.T) {
	// Limited construction shrinks the device to the circuit width, dropping
	// couplings outside the window.
	chip, err := NewChip(lineConfig(4), true, 2)
	require.NoError(t, err)
	//
	assert.Equal(t, 2, chip.QubitNum)
	assert.True(t, chip.Adjacent(0, 1))
	assert.Len(t, chip.AdjMat, 2)
	assert.Len(t, chip.Dist, 2)
}

func TestChipMalformedCoupling(t *testing.T) {
	tests := []struct {
		name     string
		coupling string
	}{
		{"no separator", "01"},
		{"bad lhs", "x_1"},
		{"bad rhs", "0_y"},
		{"out of range", "0_9"},
		{"negative", "-1_0"},
	}
	//
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := &Config{NumQubits: 3, CxCoupling: []string{test.coupling}}
			//
			_, err := NewChip(cfg, false, 3)
			assert.Error(t, err)
		})
	}
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	data := `{"num_qubits": 3, "cx_coupling": ["0_1", "1_2"]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	//
	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	//
	assert.Equal(t, 3, cfg.NumQubits)
	assert.Equal(t, []string{"0_1", "1_2"}, cfg.CxCoupling)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	//
	_, err := ReadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	//
	garbled := filepath.Join(dir, "garbled.json")
	require.NoError(t, os.WriteFile(garbled, []byte("{"), 0o600))
	//
	_, err = ReadConfig(garbled)
	assert.Error(t, err)
	// A configuration without num_qubits describes no device.
	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"cx_coupling": []}`), 0o600))
	//
	_, err = ReadConfig(empty)
	assert.Error(t, err)
}

func TestKnownBackends(t *testing.T) {
	list := KnownBackends()
	require.NotEmpty(t, list)
	//
	for i, backend := range list {
		assert.Positive(t, backend.Qubits, backend.Name)
		//
		if i > 0 {
			assert.Less(t, list[i-1].Name, backend.Name)
		}
	}
}
