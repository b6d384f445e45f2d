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
	"testing"
)

func TestLexer_01(t *testing.T) {
	checkLexer(t, "QREG Q[4];",
		token{tokSymbol, "QREG"},
		token{tokSymbol, "Q"},
		token{tokLSquare, "["},
		token{tokNumber, "4"},
		token{tokRSquare, "]"},
		token{tokSemi, ";"})
}

func TestLexer_02(t *testing.T) {
	checkLexer(t, "CX Q[0],Q[1];",
		token{tokSymbol, "CX"},
		token{tokSymbol, "Q"},
		token{tokLSquare, "["},
		token{tokNumber, "0"},
		token{tokRSquare, "]"},
		token{tokComma, ","},
		token{tokSymbol, "Q"},
		token{tokLSquare, "["},
		token{tokNumber, "1"},
		token{tokRSquare, "]"},
		token{tokSemi, ";"})
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "RZ(PI/2) Q[0];",
		token{tokSymbol, "RZ"},
		token{tokLParen, "("},
		token{tokSymbol, "PI"},
		token{tokDiv, "/"},
		token{tokNumber, "2"},
		token{tokRParen, ")"},
		token{tokSymbol, "Q"},
		token{tokLSquare, "["},
		token{tokNumber, "0"},
		token{tokRSquare, "]"},
		token{tokSemi, ";"})
}

func TestLexer_04(t *testing.T) {
	// Arrow and equality fold into single tokens.
	checkLexer(t, "MEASURE Q[0] -> C[0];",
		token{tokSymbol, "MEASURE"},
		token{tokSymbol, "Q"},
		token{tokLSquare, "["},
		token{tokNumber, "0"},
		token{tokRSquare, "]"},
		token{tokArrow, "->"},
		token{tokSymbol, "C"},
		token{tokLSquare, "["},
		token{tokNumber, "0"},
		token{tokRSquare, "]"},
		token{tokSemi, ";"})
}

func TestLexer_05(t *testing.T) {
	checkLexer(t, "IF (C == 3) X Q[0];",
		token{tokSymbol, "IF"},
		token{tokLParen, "("},
		token{tokSymbol, "C"},
		token{tokEq, "=="},
		token{tokNumber, "3"},
		token{tokRParen, ")"},
		token{tokSymbol, "X"},
		token{tokSymbol, "Q"},
		token{tokLSquare, "["},
		token{tokNumber, "0"},
		token{tokRSquare, "]"},
		token{tokSemi, ";"})
}

func TestLexer_06(t *testing.T) {
	// Numeric literals with fractions and exponents.
	checkLexer(t, "3.14 1E-5 2.5E3 7",
		token{tokNumber, "3.14"},
		token{tokNumber, "1E-5"},
		token{tokNumber, "2.5E3"},
		token{tokNumber, "7"})
}

func TestLexer_07(t *testing.T) {
	// Comments run to end of line.
	checkLexer(t, "X Q[0]; // FLIP THE FIRST QUBIT",
		token{tokSymbol, "X"},
		token{tokSymbol, "Q"},
		token{tokLSquare, "["},
		token{tokNumber, "0"},
		token{tokRSquare, "]"},
		token{tokSemi, ";"})
}

func TestLexer_08(t *testing.T) {
	// String literals drop their quotes.
	checkLexer(t, "INCLUDE \"QELIB1.INC\";",
		token{tokSymbol, "INCLUDE"},
		token{tokString, "QELIB1.INC"},
		token{tokSemi, ";"})
}

func TestLexer_09(t *testing.T) {
	checkLexer(t, "-PI + 2*3 - 4^2",
		token{tokSub, "-"},
		token{tokSymbol, "PI"},
		token{tokAdd, "+"},
		token{tokNumber, "2"},
		token{tokMul, "*"},
		token{tokNumber, "3"},
		token{tokSub, "-"},
		token{tokNumber, "4"},
		token{tokPow, "^"},
		token{tokNumber, "2"})
}

func TestLexer_10(t *testing.T) {
	checkLexer(t, "GATE MAJ A,B,C { CX C,B; }",
		token{tokSymbol, "GATE"},
		token{tokSymbol, "MAJ"},
		token{tokSymbol, "A"},
		token{tokComma, ","},
		token{tokSymbol, "B"},
		token{tokComma, ","},
		token{tokSymbol, "C"},
		token{tokLCurly, "{"},
		token{tokSymbol, "CX"},
		token{tokSymbol, "C"},
		token{tokComma, ","},
		token{tokSymbol, "B"},
		token{tokSemi, ";"},
		token{tokRCurly, "}"})
}

func TestLexer_11(t *testing.T) {
	checkLexer(t, "")
	checkLexer(t, "   \t  ")
	checkLexer(t, "// NOTHING HERE")
}

func TestLexer_12(t *testing.T) {
	// Characters outside the grammar are rejected.
	if _, err := scanLine("X Q[0] @"); err == nil {
		t.Error("expected a lexing error")
	}
	//
	if _, err := scanLine("\"UNTERMINATED"); err == nil {
		t.Error("expected a lexing error")
	}
}

// ============================================================================
// Framework
// ============================================================================

func checkLexer(t *testing.T, input string, expected ...token) {
	t.Helper()
	//
	tokens, err := scanLine(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens, expected %d", len(tokens), len(expected))
	}
	//
	for i, tok := range tokens {
		if tok != expected[i] {
			t.Errorf("token %d: got {%d %q}, expected {%d %q}",
				i, tok.kind, tok.value, expected[i].kind, expected[i].value)
		}
	}
}
