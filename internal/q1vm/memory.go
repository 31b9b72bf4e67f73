/*
Copyright © 2024 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify it
under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful, but
WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public
License along with this program. If not, see
<http://www.gnu.org/licenses/>.
*/

// Package q1vm implements the Q1 instruction set: registers, flags,
// memory, the per-class dispatch tables and the fetch-execute loop.
// It shares no code with internal/asmcore; the two keep independent
// copies of opcode knowledge, the same way the original assembler and
// simulator each carried their own table.
package q1vm

// Memory is the byte-level access interface of the machine's single
// address space; FlatMemory implements it with a flat 64KiB array.
// Machine holds a *FlatMemory directly, not a Memory, so another
// implementation cannot be substituted into a Machine.
type Memory interface {
	LoadByte(addr uint16) byte
	StoreByte(addr uint16, v byte)
}

// FlatMemory is a plain 64KiB array, initialized to 0xFF to match the
// original simulator's memset before a program is loaded.
type FlatMemory struct {
	data [1 << 16]byte
}

func NewFlatMemory() *FlatMemory {
	m := &FlatMemory{}
	for i := range m.data {
		m.data[i] = 0xFF
	}
	return m
}

func (m *FlatMemory) LoadByte(addr uint16) byte {
	return m.data[addr]
}

func (m *FlatMemory) StoreByte(addr uint16, v byte) {
	m.data[addr] = v
}

// Load copies program into memory starting at address 0, truncating
// at 65536 bytes. It returns the number of bytes actually loaded and
// whether the input was truncated, so the caller can emit the same
// "input file too large" warning the original simulator printed.
func (m *FlatMemory) Load(program []byte) (loaded int, truncated bool) {
	n := len(program)
	if n > len(m.data) {
		n = len(m.data)
		truncated = true
	}
	copy(m.data[:n], program[:n])
	return n, truncated
}
