/*
Author: Jeff Berkowitz
Copyright (C) 2024 Jeff Berkowitz

This file is part of the Q1 toolchain.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation, either version 3
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see http://www.gnu.org/licenses/.
*/

package asmcore

import (
	"fmt"

	"github.com/gmofishsauce/q1/internal/asmexpr"
	"github.com/gmofishsauce/q1/internal/asmsrc"
	"github.com/gmofishsauce/q1/internal/asmsym"
)

// record is one non-empty source line, carrying the address assigned
// to it in Pass 1 so Pass 2 never has to recompute addresses or
// re-run the label/statement parse.
type record struct {
	lineNo  int
	raw     string
	address uint16
	stmt    Statement
}

// Context holds everything that outlives a single source line: the
// symbol table, the macro table (populated by the preprocessor before
// Pass1 runs), and the per-line bookkeeping built up across the
// two passes. A fresh Context is used per assembly run; nothing here
// is package-global, so nothing needs resetting between runs.
type Context struct {
	Symbols *asmsym.SymbolTable
	Macros  *asmsym.MacroTable

	records []record
	errors  []error
}

func NewContext() *Context {
	return &Context{
		Symbols: asmsym.MakeSymbolTable(),
		Macros:  asmsym.MakeMacroTable(),
	}
}

// Errors returns every error accumulated so far across Pass 1 and
// (if it ran) Pass 2.
func (c *Context) Errors() []error {
	return c.errors
}

func (c *Context) addError(lineNo int, err error) {
	c.errors = append(c.errors, fmt.Errorf("line %d: %w", lineNo, err))
}

// Pass1 walks the preprocessed source lines, assigning each
// instruction an address and defining any label found at the start
// of its line. Expressions are not evaluated here: an operand may
// refer to a symbol defined later in the file, so evaluation is
// deferred to Pass 2 once every label has an address. Errors are
// accumulated, not returned immediately, so a single bad line doesn't
// hide every other mistake in the file; the caller checks Errors()
// after Pass1 returns to decide whether to run Pass2.
func (c *Context) Pass1(lines []string) {
	var address uint16
	for i, raw := range lines {
		lineNo := i + 1
		prepared := asmsrc.PrepareLine(raw)
		label, rest, hasLabel := asmsrc.ParseLabel(prepared)

		stmt, err := ParseStatement(rest)
		if err != nil {
			c.addError(lineNo, err)
			continue
		}
		stmt.SourceLine = raw
		stmt.Label, stmt.HasLabel = label, hasLabel

		if hasLabel && label != "" {
			if err := c.Symbols.Define(label, address); err != nil {
				c.addError(lineNo, err)
			}
		}

		if stmt.IsEmpty() {
			continue
		}

		c.records = append(c.records, record{
			lineNo:  lineNo,
			raw:     raw,
			address: address,
			stmt:    stmt,
		})
		address += uint16(stmt.Instruction.Size())
	}
}

// EncodedLine is one record's emitted bytes, kept alongside its
// address and original source text for the listing encoder.
type EncodedLine struct {
	Address uint16
	Bytes   []byte
	Source  string
}

// Pass2 evaluates each statement's operand expression, now that every
// label has a known address, and emits the final byte stream plus a
// per-line breakdown for the listing encoder. It should only be
// called when Pass1 left Errors() empty.
//
// Expression evaluation errors are recoverable: an undefined symbol,
// a division by zero, or a missing ')' each resolve to a usable value
// (see asmexpr.Evaluate) instead of aborting the statement, so every
// line still contributes the exact byte count Pass1 reserved for it
// and every later statement's address stays the one Pass1 assigned.
// The error is still recorded, so the caller sees the assembly failed.
func (c *Context) Pass2() []EncodedLine {
	var lines []EncodedLine
	resolver := asmexpr.ResolverFunc(c.Symbols.Get)

	for _, rec := range c.records {
		ins := rec.stmt.Instruction
		var operand uint16
		if ins.Operand != OperandNone {
			toks := asmexpr.Tokenize(rec.stmt.OperandText)
			v, err := asmexpr.Evaluate(toks, resolver)
			if err != nil {
				c.addError(rec.lineNo, err)
			}
			operand = v
		}

		var bytes []byte
		switch ins.Operand {
		case OperandNone:
			bytes = []byte{ins.Opcode}
		case OperandAddr:
			bytes = []byte{ins.Opcode, byte(operand >> 8), byte(operand)}
		case OperandWord:
			bytes = []byte{byte(operand >> 8), byte(operand)}
		case OperandByte:
			bytes = []byte{byte(operand)}
		}

		lines = append(lines, EncodedLine{
			Address: rec.address,
			Bytes:   bytes,
			Source:  rec.raw,
		})
	}

	return lines
}
