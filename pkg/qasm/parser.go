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
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-qasmtrans/pkg/ir"
	"github.com/consensys/go-qasmtrans/pkg/passes"
)

// maxQubits bounds the total width of all quantum registers.  Classical
// register values travel through a 64-bit word on the measurement path, which
// leaves room for 63 qubit indices.
const maxQubits = 63

// Fixed token positions within a statement, after the lexer has folded
// "->" and "==" into single tokens.
const (
	instName          = 0
	instRegName       = 1
	instRegWidth      = 3
	instGateName      = 1
	instMeasureQreg   = 1
	instMeasureQubit  = 3
	instMeasureCreg   = 6
	instMeasureCbit   = 8
	instIfCreg        = 2
	instIfValue       = 4
	instIfBody        = 6
	instWholeCregName = 3
)

// gateShape gives the operand counts of each built-in gate; its keys are the
// full default gate set recognised without a preceding gate definition.
var gateShape = map[string]struct{ qubits, params int }{
	"X": {1, 0}, "Y": {1, 0}, "Z": {1, 0}, "H": {1, 0},
	"S": {1, 0}, "SDG": {1, 0}, "T": {1, 0}, "TDG": {1, 0},
	"SX": {1, 0}, "ID": {1, 0}, "RESET": {1, 0}, "U0": {1, 0},
	"RX": {1, 1}, "RY": {1, 1}, "RZ": {1, 1}, "RI": {1, 1}, "P": {1, 1},
	"U1": {1, 1}, "U2": {1, 2}, "U": {1, 3}, "U3": {1, 3},
	"CX": {2, 0}, "CY": {2, 0}, "CZ": {2, 0}, "CH": {2, 0},
	"CS": {2, 0}, "CSDG": {2, 0}, "CT": {2, 0}, "CTDG": {2, 0},
	"CSX": {2, 0}, "SWAP": {2, 0},
	"CRX": {2, 1}, "CRY": {2, 1}, "CRZ": {2, 1}, "CP": {2, 1},
	"RXX": {2, 1}, "RYY": {2, 1}, "RZZ": {2, 1}, "CU1": {2, 1},
	"CU3": {2, 3}, "CU": {2, 4},
	"CCX": {3, 0}, "CSWAP": {3, 0}, "RCCX": {3, 0},
}

// qreg is a quantum register: a named window of the global qubit index
// space.
type qreg struct {
	name   string
	width  int
	offset int
}

// definedGate is a user gate definition, stored as the token bodies of its
// instructions for later inlining.
type definedGate struct {
	name   string
	params []string
	qubits []string
	body   [][]token
}

// statement is one parsed program statement: either a gate application, a
// measurement, or a conditional block.
type statement struct {
	name   string
	params []float64
	qubits []int
	// measurement
	cregName  string
	cregIndex int
	measured  int
	// conditional
	ifValue uint64
	body    []statement
}

// Program is a parsed source file: the register declarations plus the
// flattened statement list, with user gate definitions already inlined.
type Program struct {
	numQubits  int
	cregs      *ir.CregMap
	statements []statement
}

// Parser turns source text into a Program.  Gate definitions are inlined at
// their use sites, so the resulting statement list contains only default
// gates, measurements and conditionals.
type Parser struct {
	qregs      map[string]qreg
	cregs      *ir.CregMap
	defined    map[string]definedGate
	offset     int
	statements []statement
}

// ParseFile reads and parses the given source file.
func ParseFile(filename string) (*Program, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	//
	defer file.Close()
	//
	return Parse(file)
}

// Parse reads a full program from the given reader.
func Parse(reader io.Reader) (*Program, error) {
	parser := &Parser{
		qregs:   make(map[string]qreg),
		cregs:   ir.NewCregMap(),
		defined: make(map[string]definedGate),
	}
	//
	if err := parser.run(reader); err != nil {
		return nil, err
	}
	//
	return &Program{parser.offset, parser.cregs, parser.statements}, nil
}

// NumQubits returns the total width of all quantum registers.
func (p *Program) NumQubits() int {
	return p.numQubits
}

// Cregs returns the classical registers in declaration order.
func (p *Program) Cregs() *ir.CregMap {
	return p.cregs
}

// Circuit lowers the program onto a fresh circuit.  Measurements bind their
// classical register slots rather than producing gates; if any were present,
// a single measure-all gate closes the circuit.  Conditional blocks apply
// only when the register value matches at this point, since nothing updates
// classical registers during transpilation.
func (p *Program) Circuit() (*ir.Circuit, error) {
	circuit := ir.NewCircuit(p.numQubits)
	circuit.SetCregs(p.cregs)
	measured := false
	//
	for _, stmt := range p.statements {
		if stmt.name == "IF" {
			creg := p.cregs.Get(stmt.cregName)
			if creg == nil {
				return nil, fmt.Errorf("conditional references unknown register %q", stmt.cregName)
			}
			//
			if creg.Uint64() != stmt.ifValue {
				continue
			}
			//
			for _, inner := range stmt.body {
				if err := p.lower(circuit, inner, &measured); err != nil {
					return nil, err
				}
			}
			//
			continue
		}
		//
		if err := p.lower(circuit, stmt, &measured); err != nil {
			return nil, err
		}
	}
	//
	if measured {
		circuit.AppendGate(ir.NewMeasureAll(1))
	}
	//
	return circuit, nil
}

// lower appends the gates of one statement to the circuit.
func (p *Program) lower(circuit *ir.Circuit, stmt statement, measured *bool) error {
	if stmt.name == "MEASURE" {
		creg := p.cregs.Get(stmt.cregName)
		if creg == nil {
			return fmt.Errorf("measurement into unknown register %q", stmt.cregName)
		} else if stmt.cregIndex < 0 || stmt.cregIndex >= creg.Width {
			return fmt.Errorf("bit %d out of range for register %q", stmt.cregIndex, stmt.cregName)
		}
		//
		creg.QubitIndices[stmt.cregIndex] = stmt.measured
		*measured = true
		// Emitted measurements read logical qubit i from classical bit i,
		// counting bits across registers in declaration order.
		bit := stmt.cregIndex
		//
		for _, name := range p.cregs.Names() {
			if name == stmt.cregName {
				break
			}
			//
			bit += p.cregs.Get(name).Width
		}
		//
		if bit != stmt.measured {
			log.Warnf("qubit %d measured into classical bit %d; emitted measurements assume bit i holds qubit i",
				stmt.measured, bit)
		}
		//
		return nil
	}
	//
	gate, err := buildGate(stmt)
	if err != nil {
		return err
	}
	//
	circuit.AppendGate(gate)
	//
	return nil
}

// run drives the statement loop over the input.
func (p *Parser) run(reader io.Reader) error {
	lines := bufio.NewScanner(reader)
	//
	for {
		inst, err := p.nextStatement(lines)
		if err != nil {
			return err
		} else if inst == nil {
			return lines.Err()
		} else if len(inst) == 0 {
			continue
		}
		//
		if err := p.parseStatement(inst); err != nil {
			return err
		}
	}
}

// nextStatement assembles the tokens of one statement, reading further lines
// until the terminating semicolon, or until the closing brace of a gate
// body.  A nil slice signals end of input.
func (p *Parser) nextStatement(lines *bufio.Scanner) ([]token, error) {
	var inst []token
	//
	braced := false
	//
	for {
		if done(inst, braced) {
			return inst, nil
		}
		//
		if !lines.Scan() {
			if len(inst) != 0 {
				return nil, fmt.Errorf("unterminated statement at end of file")
			}
			//
			return nil, nil
		}
		//
		tokens, err := scanLine(strings.ToUpper(lines.Text()))
		if err != nil {
			return nil, err
		}
		//
		for _, t := range tokens {
			if t.kind == tokLCurly {
				braced = true
			}
			//
			inst = append(inst, t)
		}
		//
		if len(inst) == 0 {
			// Blank or comment-only line before the statement started.
			return inst, nil
		}
	}
}

// done checks whether the token buffer forms a complete statement.
func done(inst []token, braced bool) bool {
	if len(inst) == 0 {
		return false
	}
	//
	if braced {
		return inst[len(inst)-1].kind == tokRCurly
	}
	//
	return inst[len(inst)-1].kind == tokSemi
}

// parseStatement dispatches one complete statement on its leading token.
func (p *Parser) parseStatement(inst []token) error {
	// Strip the terminating semicolon of unbraced statements.
	if inst[len(inst)-1].kind == tokSemi {
		inst = inst[:len(inst)-1]
	}
	//
	if len(inst) == 0 {
		return nil
	}
	//
	switch inst[instName].value {
	case "OPENQASM", "INCLUDE":
		return nil
	case "QREG":
		return p.parseQreg(inst)
	case "CREG":
		return p.parseCreg(inst)
	case "GATE":
		return p.parseGateDefinition(inst)
	case "IF":
		return p.parseIf(inst)
	}
	//
	return p.parseGate(inst, &p.statements)
}

// parseQreg handles "qreg name[width];", assigning the register the next
// window of the global qubit index space.
func (p *Parser) parseQreg(inst []token) error {
	if len(inst) < 5 || inst[instRegWidth].kind != tokNumber {
		return fmt.Errorf("malformed quantum register declaration")
	}
	//
	name := inst[instRegName].value
	//
	width, err := strconv.Atoi(inst[instRegWidth].value)
	if err != nil || width <= 0 {
		return fmt.Errorf("invalid width for quantum register %q", name)
	}
	//
	if p.offset+width > maxQubits {
		return fmt.Errorf("program exceeds %d qubits", maxQubits)
	}
	//
	p.qregs[name] = qreg{name, width, p.offset}
	p.offset += width
	//
	return nil
}

// parseCreg handles "creg name[width];".
func (p *Parser) parseCreg(inst []token) error {
	if len(inst) < 5 || inst[instRegWidth].kind != tokNumber {
		return fmt.Errorf("malformed classical register declaration")
	}
	//
	name := inst[instRegName].value
	//
	width, err := strconv.Atoi(inst[instRegWidth].value)
	if err != nil || width <= 0 {
		return fmt.Errorf("invalid width for classical register %q", name)
	}
	//
	if !p.cregs.Declare(name, width) {
		return fmt.Errorf("classical register %q redeclared", name)
	}
	//
	return nil
}

// parseGateDefinition handles "gate name(params) qubits { body }", storing
// the body instructions for inlining at use sites.
func (p *Parser) parseGateDefinition(inst []token) error {
	lcurly := -1
	//
	for i, t := range inst {
		if t.kind == tokLCurly {
			lcurly = i
			break
		}
	}
	//
	if lcurly < 0 || len(inst) < 3 {
		return fmt.Errorf("malformed gate definition")
	}
	//
	def := definedGate{name: inst[instGateName].value}
	paramStart, paramEnd, qubitStart, qubitEnd := operandIndices(inst, 1, lcurly)
	//
	if paramStart >= 0 {
		for _, t := range inst[paramStart:paramEnd] {
			if t.kind == tokComma {
				continue
			} else if t.kind != tokSymbol {
				return fmt.Errorf("invalid parameter %q in definition of %q", t.value, def.name)
			}
			//
			def.params = append(def.params, t.value)
		}
	}
	//
	for _, t := range inst[qubitStart:qubitEnd] {
		if t.kind == tokComma {
			continue
		} else if t.kind != tokSymbol {
			return fmt.Errorf("invalid qubit %q in definition of %q", t.value, def.name)
		}
		//
		def.qubits = append(def.qubits, t.value)
	}
	// Split the braced body at semicolons.
	start := lcurly + 1
	//
	for i := lcurly + 1; i < len(inst); i++ {
		if inst[i].kind == tokSemi {
			def.body = append(def.body, inst[start:i])
			start = i + 1
		}
	}
	//
	p.defined[def.name] = def
	//
	return nil
}

// parseIf handles "if (creg == value) gate ...;", keeping the conditional
// body as a nested statement.
func (p *Parser) parseIf(inst []token) error {
	if len(inst) <= instIfBody || inst[instIfValue].kind != tokNumber {
		return fmt.Errorf("malformed conditional")
	}
	//
	value, err := strconv.ParseUint(inst[instIfValue].value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid conditional value %q", inst[instIfValue].value)
	}
	//
	stmt := statement{
		name:     "IF",
		cregName: inst[instIfCreg].value,
		ifValue:  value,
	}
	//
	if err := p.parseGate(inst[instIfBody:], &stmt.body); err != nil {
		return err
	}
	//
	p.statements = append(p.statements, stmt)
	//
	return nil
}

// parseGate handles a gate application or measurement, appending the
// resulting statements to out.
func (p *Parser) parseGate(inst []token, out *[]statement) error {
	name := inst[instName].value
	//
	if name == "MEASURE" {
		return p.parseMeasure(inst, out)
	} else if name == "BARRIER" {
		return nil
	}
	//
	if _, ok := p.defined[name]; ok {
		return p.parseDefinedGate(inst, out)
	}
	//
	if _, ok := gateShape[name]; ok {
		return p.parseNativeGate(inst, out)
	}
	//
	log.Warnf("undefined instruction %q; skipping", name)
	//
	return nil
}

// parseMeasure handles both single-bit and whole-register measurements.
func (p *Parser) parseMeasure(inst []token, out *[]statement) error {
	if len(inst) > instMeasureCbit && inst[2].kind == tokLSquare {
		// measure q[i] -> c[j]
		reg, ok := p.qregs[inst[instMeasureQreg].value]
		if !ok {
			return fmt.Errorf("measurement of unknown register %q", inst[instMeasureQreg].value)
		}
		//
		qubit, err := strconv.Atoi(inst[instMeasureQubit].value)
		if err != nil || qubit < 0 || qubit >= reg.width {
			return fmt.Errorf("qubit index out of range for register %q", reg.name)
		}
		//
		bit, err := strconv.Atoi(inst[instMeasureCbit].value)
		if err != nil {
			return fmt.Errorf("invalid classical bit index %q", inst[instMeasureCbit].value)
		}
		//
		*out = append(*out, statement{
			name:      "MEASURE",
			cregName:  inst[instMeasureCreg].value,
			cregIndex: bit,
			measured:  reg.offset + qubit,
		})
		//
		return nil
	}
	// measure q -> c
	if len(inst) <= instWholeCregName {
		return fmt.Errorf("malformed measurement")
	}
	//
	reg, ok := p.qregs[inst[instMeasureQreg].value]
	if !ok {
		return fmt.Errorf("measurement of unknown register %q", inst[instMeasureQreg].value)
	}
	//
	for i := 0; i < reg.width; i++ {
		*out = append(*out, statement{
			name:      "MEASURE",
			cregName:  inst[instWholeCregName].value,
			cregIndex: i,
			measured:  reg.offset + i,
		})
	}
	//
	return nil
}

// parseNativeGate handles an application of a built-in gate, replicating it
// across whole-register operands.
func (p *Parser) parseNativeGate(inst []token, out *[]statement) error {
	paramStart, paramEnd, qubitStart, qubitEnd := operandIndices(inst, 0, len(inst))
	//
	params, err := p.parseParams(inst, paramStart, paramEnd)
	if err != nil {
		return err
	}
	//
	repetition, operands, err := p.parseQubits(inst, qubitStart, qubitEnd)
	if err != nil {
		return err
	}
	//
	name := inst[instName].value
	//
	if shape := gateShape[name]; len(operands) != shape.qubits || len(params) != shape.params {
		return fmt.Errorf("gate %s expects %d qubits and %d parameters",
			strings.ToLower(name), shape.qubits, shape.params)
	}
	//
	for i := 0; i < repetition; i++ {
		stmt := statement{name: name, params: params}
		//
		for _, operand := range operands {
			if len(operand) == 1 {
				stmt.qubits = append(stmt.qubits, operand[0])
			} else {
				stmt.qubits = append(stmt.qubits, operand[i])
			}
		}
		//
		*out = append(*out, stmt)
	}
	//
	return nil
}

// parseDefinedGate inlines a user gate definition, substituting parameter
// and qubit symbols in each body instruction, then parsing it as usual.
func (p *Parser) parseDefinedGate(inst []token, out *[]statement) error {
	def := p.defined[inst[instName].value]
	paramStart, paramEnd, qubitStart, qubitEnd := operandIndices(inst, 0, len(inst))
	//
	params, err := p.parseParams(inst, paramStart, paramEnd)
	if err != nil {
		return err
	}
	//
	if len(params) != len(def.params) {
		return fmt.Errorf("gate %q expects %d parameters, got %d", def.name, len(def.params), len(params))
	}
	//
	repetition, operands, err := p.parseQubits(inst, qubitStart, qubitEnd)
	if err != nil {
		return err
	}
	//
	if len(operands) != len(def.qubits) {
		return fmt.Errorf("gate %q expects %d qubits, got %d", def.name, len(def.qubits), len(operands))
	}
	//
	for i := 0; i < repetition; i++ {
		qubits := make([]int, len(operands))
		//
		for j, operand := range operands {
			if len(operand) == 1 {
				qubits[j] = operand[0]
			} else {
				qubits[j] = operand[i]
			}
		}
		//
		for _, body := range def.body {
			dup := make([]token, len(body))
			copy(dup, body)
			//
			for k := range dup {
				if dup[k].kind != tokSymbol {
					continue
				}
				//
				if idx := indexOf(def.params, dup[k].value); idx >= 0 {
					dup[k] = token{tokNumber, strconv.FormatFloat(params[idx], 'g', -1, 64)}
				} else if idx := indexOf(def.qubits, dup[k].value); idx >= 0 {
					dup[k] = token{tokNumber, strconv.Itoa(qubits[idx])}
				}
			}
			//
			if len(dup) == 0 {
				continue
			}
			//
			if err := p.parseGate(dup, out); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

// parseParams evaluates the comma-separated parameter expressions.
func (p *Parser) parseParams(inst []token, start, end int) ([]float64, error) {
	if start < 0 {
		return nil, nil
	}
	//
	var params []float64
	//
	cur := start
	//
	for i := start; i < end; i++ {
		if inst[i].kind == tokComma {
			value, err := evalExpr(inst[cur:i])
			if err != nil {
				return nil, err
			}
			//
			params = append(params, value)
			cur = i + 1
		}
	}
	//
	value, err := evalExpr(inst[cur:end])
	if err != nil {
		return nil, err
	}
	//
	return append(params, value), nil
}

// parseQubits resolves the operand list to global qubit indices.  A bare
// register name stands for all of its qubits and sets the replication count;
// bare numbers arise from inlined gate bodies.
func (p *Parser) parseQubits(inst []token, start, end int) (int, [][]int, error) {
	if start < 0 || start >= end {
		return 0, nil, fmt.Errorf("no qubits found")
	}
	//
	repetition := 1
	//
	var operands [][]int
	//
	for i := start; i < end; {
		var operand []int
		//
		switch {
		case inst[i].kind == tokNumber:
			qubit, err := strconv.Atoi(inst[i].value)
			if err != nil {
				return 0, nil, fmt.Errorf("invalid qubit %q", inst[i].value)
			}
			//
			operand = append(operand, qubit)
			i++
		case inst[i].kind == tokSymbol:
			reg, ok := p.qregs[inst[i].value]
			if !ok {
				return 0, nil, fmt.Errorf("unknown quantum register %q", inst[i].value)
			}
			//
			if i+1 < end && inst[i+1].kind == tokLSquare {
				if i+3 >= end || inst[i+2].kind != tokNumber {
					return 0, nil, fmt.Errorf("malformed qubit index on register %q", reg.name)
				}
				//
				index, err := strconv.Atoi(inst[i+2].value)
				if err != nil || index < 0 || index >= reg.width {
					return 0, nil, fmt.Errorf("qubit index out of range for register %q", reg.name)
				}
				//
				operand = append(operand, reg.offset+index)
				i += 4
			} else {
				for j := 0; j < reg.width; j++ {
					operand = append(operand, reg.offset+j)
				}
				//
				repetition = reg.width
				i++
			}
		default:
			return 0, nil, fmt.Errorf("unexpected token %q in qubit list", inst[i].value)
		}
		//
		operands = append(operands, operand)
		// Step over the separating comma, if any.
		if i < end && inst[i].kind == tokComma {
			i++
		}
	}
	//
	return repetition, operands, nil
}

// operandIndices locates the parameter and qubit windows of a gate token
// sequence starting at the given offset.  Parameters, when present, sit
// between the opening parenthesis and the last closing one; qubits follow.
func operandIndices(inst []token, start, end int) (paramStart, paramEnd, qubitStart, qubitEnd int) {
	last := -1
	//
	for i := end - 1; i > start; i-- {
		if inst[i].kind == tokRParen {
			last = i
			break
		}
	}
	//
	if last < 0 {
		return -1, -1, start + 1, end
	}
	//
	return start + 2, last, last + 1, end
}

// indexOf returns the position of target in names, or -1.
func indexOf(names []string, target string) int {
	for i, name := range names {
		if name == target {
			return i
		}
	}
	//
	return -1
}

// buildGate lowers one statement onto an IR gate.
func buildGate(stmt statement) (ir.Gate, error) {
	var (
		q = stmt.qubits
		a = stmt.params
	)
	//
	switch stmt.name {
	case "U", "U3":
		return ir.NewU(a[0], a[1], a[2], q[0]), nil
	case "U2":
		return ir.NewU2(a[0], a[1], q[0]), nil
	case "U1":
		return ir.NewU1(a[0], q[0]), nil
	case "U0":
		return ir.NewSingle(ir.OpID, q[0]), nil
	case "X":
		return ir.NewSingle(ir.OpX, q[0]), nil
	case "Y":
		return ir.NewSingle(ir.OpY, q[0]), nil
	case "Z":
		return ir.NewSingle(ir.OpZ, q[0]), nil
	case "H":
		return ir.NewSingle(ir.OpH, q[0]), nil
	case "S":
		return ir.NewSingle(ir.OpS, q[0]), nil
	case "SDG":
		return ir.NewSingle(ir.OpSDG, q[0]), nil
	case "T":
		return ir.NewSingle(ir.OpT, q[0]), nil
	case "TDG":
		return ir.NewSingle(ir.OpTDG, q[0]), nil
	case "SX":
		return ir.NewSingle(ir.OpSX, q[0]), nil
	case "ID":
		return ir.NewSingle(ir.OpID, q[0]), nil
	case "RESET":
		return ir.NewSingle(ir.OpRESET, q[0]), nil
	case "RX":
		return ir.NewRotation(ir.OpRX, q[0], a[0]), nil
	case "RY":
		return ir.NewRotation(ir.OpRY, q[0], a[0]), nil
	case "RZ":
		return ir.NewRotation(ir.OpRZ, q[0], a[0]), nil
	case "RI":
		return ir.NewRotation(ir.OpRI, q[0], a[0]), nil
	case "P":
		return ir.NewRotation(ir.OpP, q[0], a[0]), nil
	case "CX":
		return ir.NewTwoQubit(ir.OpCX, q[0], q[1]), nil
	case "CY":
		return ir.NewTwoQubit(ir.OpCY, q[0], q[1]), nil
	case "CZ":
		return ir.NewTwoQubit(ir.OpCZ, q[0], q[1]), nil
	case "CH":
		return ir.NewTwoQubit(ir.OpCH, q[0], q[1]), nil
	case "CS":
		return ir.NewTwoQubit(ir.OpCS, q[0], q[1]), nil
	case "CSDG":
		return ir.NewTwoQubit(ir.OpCSDG, q[0], q[1]), nil
	case "CT":
		return ir.NewTwoQubit(ir.OpCT, q[0], q[1]), nil
	case "CTDG":
		return ir.NewTwoQubit(ir.OpCTDG, q[0], q[1]), nil
	case "CSX":
		return ir.NewTwoQubit(ir.OpCSX, q[0], q[1]), nil
	case "SWAP":
		return ir.NewSwap(q[0], q[1]), nil
	case "CRX":
		return ir.NewTwoQubitRotation(ir.OpCRX, q[0], q[1], a[0]), nil
	case "CRY":
		return ir.NewTwoQubitRotation(ir.OpCRY, q[0], q[1], a[0]), nil
	case "CRZ":
		return ir.NewTwoQubitRotation(ir.OpCRZ, q[0], q[1], a[0]), nil
	case "CP":
		return ir.NewTwoQubitRotation(ir.OpCP, q[0], q[1], a[0]), nil
	case "RXX":
		return ir.NewTwoQubitRotation(ir.OpRXX, q[0], q[1], a[0]), nil
	case "RYY":
		return ir.NewTwoQubitRotation(ir.OpRYY, q[0], q[1], a[0]), nil
	case "RZZ":
		return ir.NewTwoQubitRotation(ir.OpRZZ, q[0], q[1], a[0]), nil
	case "CU":
		return ir.NewCU(a[0], a[1], a[2], a[3], q[0], q[1]), nil
	case "CU1":
		return ir.NewCU1(a[0], q[0], q[1]), nil
	case "CU3":
		return ir.NewCU3(a[0], a[1], a[2], q[0], q[1]), nil
	case "CCX":
		return ir.NewThreeQubit(ir.OpCCX, q[0], q[1], q[2]), nil
	case "CSWAP":
		return ir.NewThreeQubit(ir.OpCSWAP, q[0], q[1], q[2]), nil
	case "RCCX":
		return ir.NewThreeQubit(ir.OpRCCX, q[0], q[1], q[2]), nil
	}
	//
	return ir.Gate{}, &passes.UnknownGateError{Name: stmt.name}
}
