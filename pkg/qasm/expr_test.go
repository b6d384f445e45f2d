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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprLiterals(t *testing.T) {
	checkExpr(t, "2", 2)
	checkExpr(t, "3.25", 3.25)
	checkExpr(t, "1E-2", 0.01)
	checkExpr(t, "PI", math.Pi)
}

func TestExprArithmetic(t *testing.T) {
	checkExpr(t, "1+2", 3)
	checkExpr(t, "7-3", 4)
	checkExpr(t, "2*3", 6)
	checkExpr(t, "7/2", 3.5)
	checkExpr(t, "PI/2", math.Pi/2)
	checkExpr(t, "2*PI", 2*math.Pi)
	checkExpr(t, "3*PI/4", 3*math.Pi/4)
}

func TestExprPrecedence(t *testing.T) {
	checkExpr(t, "1+2*3", 7)
	checkExpr(t, "2*3+1", 7)
	checkExpr(t, "8-4/2", 6)
	checkExpr(t, "3^2", 9)
	checkExpr(t, "2*3^2", 18)
	checkExpr(t, "(1+2)*3", 9)
	checkExpr(t, "2^3^2", 512)
}

func TestExprNegation(t *testing.T) {
	checkExpr(t, "-2", -2)
	checkExpr(t, "-PI", -math.Pi)
	checkExpr(t, "-PI/2", -math.Pi/2)
	checkExpr(t, "3--2", 5)
	checkExpr(t, "3*-2", -6)
	checkExpr(t, "-(1+2)", -3)
}

func TestExprFunctions(t *testing.T) {
	checkExpr(t, "SIN(0)", 0)
	checkExpr(t, "SIN(PI/2)", 1)
	checkExpr(t, "COS(0)", 1)
	checkExpr(t, "COS(PI)", -1)
	checkExpr(t, "2*SIN(PI/2)+1", 3)
}

func TestExprErrors(t *testing.T) {
	for _, input := range []string{
		"FOO",
		"1+FOO",
		"(1+2",
		"1+",
		"SIN()",
		"1 2",
	} {
		tokens, err := scanLine(input)
		require.NoError(t, err, input)
		//
		_, err = evalExpr(tokens)
		assert.Error(t, err, input)
	}
}

// checkExpr lexes the given expression and compares its value.
func checkExpr(t *testing.T, input string, expected float64) {
	t.Helper()
	//
	tokens, err := scanLine(input)
	require.NoError(t, err, input)
	//
	value, err := evalExpr(tokens)
	require.NoError(t, err, input)
	//
	assert.InDelta(t, expected, value, 1e-12, input)
}
