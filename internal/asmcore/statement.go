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
	"strings"
)

// Statement is one parsed line of source: an optional label, the
// matched instruction, and the unparsed operand expression text (if
// the instruction takes one).
type Statement struct {
	Label       string
	HasLabel    bool
	Instruction Instruction
	OperandText string
	SourceLine  string // original text, for listings
}

// ParseStatement matches rest (the statement text after any label has
// already been removed by asmsrc.ParseLabel) against the instruction
// table. An empty rest (a label-only line, or a blank line) is
// returned as an empty Statement (IsEmpty reports true) and a nil
// error: it simply contributes no bytes.
func ParseStatement(rest string) (Statement, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Statement{}, nil
	}
	ins, remainder, ok := LookupInstruction(rest)
	if !ok {
		return Statement{}, fmt.Errorf("unrecognized mnemonic in %q", rest)
	}
	remainder = strings.TrimSpace(remainder)
	if ins.Operand == OperandNone {
		if remainder != "" {
			return Statement{}, fmt.Errorf("%s takes no operand, found %q", ins.Mnemonic, remainder)
		}
	} else if remainder == "" {
		return Statement{}, fmt.Errorf("%s requires an operand", ins.Mnemonic)
	}
	return Statement{Instruction: ins, OperandText: remainder}, nil
}

// IsEmpty reports whether a statement contributes no bytes (blank or
// label-only line).
func (s Statement) IsEmpty() bool {
	return s.Instruction.Mnemonic == ""
}
