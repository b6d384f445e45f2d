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
	"fmt"

	"github.com/consensys/go-qasmtrans/pkg/util"
	"github.com/consensys/go-qasmtrans/pkg/util/source"
)

// Token kinds produced by the lexer.  The semicolon is a token of its own
// since it terminates statements and separates the instructions of a gate
// body.
const (
	tokSymbol uint = iota
	tokNumber
	tokString
	tokLParen
	tokRParen
	tokLSquare
	tokRSquare
	tokLCurly
	tokRCurly
	tokComma
	tokSemi
	tokArrow
	tokEq
	tokAdd
	tokSub
	tokMul
	tokDiv
	tokPow
	tokWhitespace
)

// token pairs a kind with the text it covers.  String literals carry their
// contents without the surrounding quotes.
type token struct {
	kind  uint
	value string
}

// scanLine tokenises one (upper-cased) source line, discarding whitespace and
// comments.  An error is returned when a character matches no token class.
func scanLine(line string) ([]token, error) {
	runes := []rune(line)
	lexer := source.NewLexer(runes, qasmScanner())
	raw := lexer.Collect()
	//
	if lexer.Remaining() > 0 {
		index := len(runes) - int(lexer.Remaining())
		return nil, fmt.Errorf("unexpected character %q at column %d", runes[index], index+1)
	}
	//
	tokens := make([]token, 0, len(raw))
	//
	for _, t := range raw {
		if t.Kind == tokWhitespace {
			continue
		}
		//
		value := string(runes[t.Span.Start():t.Span.End()])
		//
		if t.Kind == tokString {
			value = value[1 : len(value)-1]
		}
		//
		tokens = append(tokens, token{t.Kind, value})
	}
	//
	return tokens, nil
}

// qasmScanner assembles the scanner covering the full lexical grammar.
// Two-character tokens come before their one-character prefixes.
func qasmScanner() source.Scanner[rune] {
	return source.Or(
		word(tokArrow, "->"),
		word(tokEq, "=="),
		&commentScanner{},
		&numberScanner{},
		&symbolScanner{},
		&stringScanner{},
		source.One[rune](tokLParen, '('),
		source.One[rune](tokRParen, ')'),
		source.One[rune](tokLSquare, '['),
		source.One[rune](tokRSquare, ']'),
		source.One[rune](tokLCurly, '{'),
		source.One[rune](tokRCurly, '}'),
		source.One[rune](tokComma, ','),
		source.One[rune](tokSemi, ';'),
		source.One[rune](tokAdd, '+'),
		source.One[rune](tokSub, '-'),
		source.One[rune](tokMul, '*'),
		source.One[rune](tokDiv, '/'),
		source.One[rune](tokPow, '^'),
		source.Many(tokWhitespace, ' ', '\t', '\r'),
	)
}

// word matches an exact rune sequence.
func word(tag uint, text string) source.Scanner[rune] {
	return &wordScanner{tag, []rune(text)}
}

type wordScanner struct {
	tag   uint
	runes []rune
}

func (p *wordScanner) Scan(items []rune) util.Option[source.Token] {
	if len(items) < len(p.runes) {
		return util.None[source.Token]()
	}
	//
	for i, r := range p.runes {
		if items[i] != r {
			return util.None[source.Token]()
		}
	}
	//
	return util.Some(source.Token{Kind: p.tag, Span: source.NewSpan(0, len(p.runes))})
}

// commentScanner consumes "//" and everything after it on the line.
type commentScanner struct{}

func (p *commentScanner) Scan(items []rune) util.Option[source.Token] {
	if len(items) < 2 || items[0] != '/' || items[1] != '/' {
		return util.None[source.Token]()
	}
	//
	return util.Some(source.Token{Kind: tokWhitespace, Span: source.NewSpan(0, len(items))})
}

// numberScanner matches decimal literals with an optional fraction and
// exponent.  Input lines are upper-cased so the exponent marker is 'E'.
type numberScanner struct{}

func (p *numberScanner) Scan(items []rune) util.Option[source.Token] {
	i := 0
	//
	for i < len(items) && isDigit(items[i]) {
		i++
	}
	//
	if i == 0 {
		return util.None[source.Token]()
	}
	//
	if i < len(items) && items[i] == '.' {
		i++
		for i < len(items) && isDigit(items[i]) {
			i++
		}
	}
	//
	if i < len(items) && items[i] == 'E' {
		j := i + 1
		if j < len(items) && (items[j] == '+' || items[j] == '-') {
			j++
		}
		//
		if j < len(items) && isDigit(items[j]) {
			for j < len(items) && isDigit(items[j]) {
				j++
			}
			//
			i = j
		}
	}
	//
	return util.Some(source.Token{Kind: tokNumber, Span: source.NewSpan(0, i)})
}

// symbolScanner matches identifiers: a letter or underscore followed by
// letters, digits and underscores.
type symbolScanner struct{}

func (p *symbolScanner) Scan(items []rune) util.Option[source.Token] {
	if len(items) == 0 || !isLetter(items[0]) {
		return util.None[source.Token]()
	}
	//
	i := 1
	for i < len(items) && (isLetter(items[i]) || isDigit(items[i])) {
		i++
	}
	//
	return util.Some(source.Token{Kind: tokSymbol, Span: source.NewSpan(0, i)})
}

// stringScanner matches a double-quoted literal, as found on include lines.
type stringScanner struct{}

func (p *stringScanner) Scan(items []rune) util.Option[source.Token] {
	if len(items) == 0 || items[0] != '"' {
		return util.None[source.Token]()
	}
	//
	for i := 1; i < len(items); i++ {
		if items[i] == '"' {
			return util.Some(source.Token{Kind: tokString, Span: source.NewSpan(0, i + 1)})
		}
	}
	//
	return util.None[source.Token]()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_'
}
