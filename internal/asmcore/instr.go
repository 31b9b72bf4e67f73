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

// Package asmcore implements the Q1 statement parser, the two-pass
// driver, and the output encoders. It depends on asmexpr for integer
// expressions and asmsym for the symbol table, but owns the
// instruction set knowledge itself: the simulator, in internal/q1vm,
// keeps its own independent copy of the opcode map rather than
// sharing one, the same way the original assembler and simulator each
// carried their own table.
package asmcore

// OperandKind describes how many bytes of operand a statement
// contributes to the output, and how those bytes are produced.
type OperandKind struct {
	k int
}

var OperandNone OperandKind = OperandKind{0}
var OperandAddr OperandKind = OperandKind{1}  // 2-byte, big-endian
var OperandByte OperandKind = OperandKind{2}  // db: 1 raw byte
var OperandWord OperandKind = OperandKind{3}  // dw: 2 raw bytes, big-endian

// Pseudo-opcodes. Chosen high enough to never collide with a real
// class/function nibble pair (high nibble is at most 3 for real
// instructions).
const (
	OpByte = 0xFE // db
	OpWord = 0xFD // dw
)

type Instruction struct {
	Mnemonic string
	Opcode   byte
	Operand  OperandKind
}

// Size returns the total encoded size in bytes, including the opcode
// byte for real instructions (db/dw have no opcode byte of their own;
// the "byte" they emit IS the operand).
func (ins Instruction) Size() int {
	switch ins.Operand {
	case OperandNone:
		return 1
	case OperandAddr, OperandWord:
		if ins.Opcode == OpWord {
			return 2
		}
		return 3
	case OperandByte:
		return 1
	}
	return 1
}

// instructionTable lists every real mnemonic in class/function nibble
// order, plus the two pseudo-ops. Grouped to mirror spec: Jump/Call
// (0x00-0x0F), LoadStore (0x10-0x18), Math (0x20-0x28), Misc
// (0x30-0x38).
var instructionTable = []Instruction{
	{"j", 0x00, OperandAddr},
	{"jc", 0x01, OperandAddr},
	{"jz", 0x02, OperandAddr},
	{"jcz", 0x03, OperandAddr},
	{"jn", 0x04, OperandAddr},
	{"jcn", 0x05, OperandAddr},
	{"jzn", 0x06, OperandAddr},
	{"jczn", 0x07, OperandAddr},

	{"c", 0x08, OperandAddr},
	{"cc", 0x09, OperandAddr},
	{"cz", 0x0A, OperandAddr},
	{"ccz", 0x0B, OperandAddr},
	{"cn", 0x0C, OperandAddr},
	{"ccn", 0x0D, OperandAddr},
	{"czn", 0x0E, OperandAddr},
	{"cczn", 0x0F, OperandAddr},

	{"ldb", 0x10, OperandAddr},
	{"ldc", 0x11, OperandAddr},
	{"lxh", 0x12, OperandAddr},
	{"lxl", 0x13, OperandAddr},

	{"stb", 0x14, OperandAddr},
	{"stc", 0x15, OperandAddr},
	{"sxh", 0x16, OperandAddr},
	{"sxl", 0x17, OperandAddr},
	{"sta", 0x18, OperandAddr},

	{"and", 0x20, OperandNone},
	{"or", 0x21, OperandNone},
	{"shl", 0x22, OperandNone},
	{"shr", 0x23, OperandNone},
	{"add", 0x24, OperandNone},
	{"inc", 0x25, OperandNone},
	{"dec", 0x26, OperandNone},
	{"not", 0x27, OperandNone},
	{"clr", 0x28, OperandNone},

	{"mab", 0x30, OperandNone},
	{"mac", 0x31, OperandNone},
	{"sax", 0x32, OperandNone},
	{"sbx", 0x33, OperandNone},
	{"scx", 0x34, OperandNone},
	{"lbx", 0x35, OperandNone},
	{"lcx", 0x36, OperandNone},
	{"ret", 0x37, OperandNone},
	{"hlt", 0x38, OperandNone},

	{"db", OpByte, OperandByte},
	{"dw", OpWord, OperandWord},
}

// LookupInstruction finds the instruction whose mnemonic is the
// longest prefix of rest such that the match is followed by a word
// boundary (end of string or whitespace). This guarantees "jczn" is
// matched in preference to "j" even though both are valid prefixes of
// the same input, which a naive first-match-in-table-order scan does
// not guarantee once entries are reordered or extended.
func LookupInstruction(rest string) (Instruction, string, bool) {
	best := -1
	bestLen := -1
	for i, ins := range instructionTable {
		n := len(ins.Mnemonic)
		if len(rest) < n || rest[:n] != ins.Mnemonic {
			continue
		}
		if len(rest) > n && !isBoundary(rest[n]) {
			continue
		}
		if n > bestLen {
			bestLen = n
			best = i
		}
	}
	if best < 0 {
		return Instruction{}, rest, false
	}
	ins := instructionTable[best]
	remainder := rest[bestLen:]
	for len(remainder) > 0 && isBoundary(remainder[0]) {
		remainder = remainder[1:]
	}
	return ins, remainder, true
}

func isBoundary(c byte) bool {
	return c == ' ' || c == '\t'
}
