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

package q1vm

import "fmt"

// instClass is the opcode's high nibble.
type instClass int

const (
	classJumpCall  instClass = 0
	classLoadStore instClass = 1
	classMath      instClass = 2
	classMisc      instClass = 3
)

func classOf(opcode byte) instClass {
	return instClass(opcode >> 4)
}

func funcOf(opcode byte) int {
	return int(opcode & 0x0F)
}

// execJumpCall implements every j*/jc*/c*/cc* variant from a single
// function, the way the original decoded the class: the function
// nibble's low three bits select which flags gate the branch, and bit
// 3 selects call (save return address) versus plain jump.
func (m *Machine) execJumpCall(fn int) {
	if fn < 0x0 || fn > 0xF {
		m.reportInvalid("JumpCall", fn)
		return
	}
	operand := m.fetchWord()

	cFunc := fn&0x1 != 0
	zFunc := fn&0x2 != 0
	nFunc := fn&0x4 != 0
	isCall := fn&0x8 != 0

	taken := (!cFunc || m.CF) && (!zFunc || m.Z) && (!nFunc || m.N)
	if !taken {
		return
	}
	if isCall {
		m.SetX(m.P)
	}
	m.P = operand
}

// execLoadStore implements ldb/ldc/lxh/lxl/stb/stc/sxh/sxl/sta. Every
// function in this class carries a 16-bit address operand immediately
// following the opcode, fetched here before any of them touch memory.
func (m *Machine) execLoadStore(fn int) {
	operand := m.fetchWord()
	switch fn {
	case 0x0: // ldb
		m.B = m.Mem.LoadByte(operand)
	case 0x1: // ldc
		m.C = m.Mem.LoadByte(operand)
	case 0x2: // lxh
		m.XH = m.Mem.LoadByte(operand)
	case 0x3: // lxl
		m.XL = m.Mem.LoadByte(operand)
	case 0x4: // stb
		m.Mem.StoreByte(operand, m.B)
	case 0x5: // stc
		m.Mem.StoreByte(operand, m.C)
	case 0x6: // sxh
		m.Mem.StoreByte(operand, m.XH)
	case 0x7: // sxl
		m.Mem.StoreByte(operand, m.XL)
	case 0x8: // sta
		m.Mem.StoreByte(operand, m.A)
	default:
		m.reportInvalid("LoadStore", fn)
	}
}

func (m *Machine) setZN(v uint8) {
	m.Z = v == 0
	m.N = v&0x80 != 0
}

func (m *Machine) execMath(fn int) {
	switch fn {
	case 0x0: // and
		m.A = m.B & m.C
		m.CF = false
		m.setZN(m.A)
	case 0x1: // or
		m.A = m.B | m.C
		m.CF = false
		m.setZN(m.A)
	case 0x2: // shl
		carry := m.B>>7 != 0
		m.A = m.B << 1
		m.CF = carry
		m.setZN(m.A)
	case 0x3: // shr
		carry := m.B&0x01 != 0
		m.A = m.B >> 1
		m.CF = carry
		m.setZN(m.A)
	case 0x4: // add
		temp := int(m.B) + int(m.C)
		m.A = uint8(temp)
		m.CF = temp > 255
		m.setZN(m.A)
	case 0x5: // inc
		m.CF = m.B == 0xFF
		m.A = m.B + 1
		m.setZN(m.A)
	case 0x6: // dec
		m.CF = m.B == 0x00
		m.A = m.B - 1
		m.setZN(m.A)
	case 0x7: // not
		m.A = ^m.B
		m.CF = false
		m.setZN(m.A)
	case 0x8: // clr
		m.A = 0
		m.CF = false
		m.setZN(m.A)
	default:
		m.reportInvalid("Math", fn)
	}
}

func (m *Machine) execMisc(fn int) {
	switch fn {
	case 0x0: // mab
		m.B = m.A
	case 0x1: // mac
		m.C = m.A
	case 0x2: // sax
		m.Mem.StoreByte(m.X(), m.A)
	case 0x3: // sbx
		m.Mem.StoreByte(m.X(), m.B)
	case 0x4: // scx
		m.Mem.StoreByte(m.X(), m.C)
	case 0x5: // lbx
		m.B = m.Mem.LoadByte(m.X())
	case 0x6: // lcx
		m.C = m.Mem.LoadByte(m.X())
	case 0x7: // ret
		m.P = m.X()
	case 0x8: // hlt
		m.Halted = true
	default:
		m.reportInvalid("Misc", fn)
	}
}

// reportInvalid records an out-of-range function code within an
// instruction class. The machine does not halt; it continues with the
// next instruction (for LoadStore, past the operand already fetched),
// same as the original simulator's behavior on an unrecognized opcode.
func (m *Machine) reportInvalid(class string, fn int) {
	m.Errors = append(m.Errors, fmt.Sprintf("ERROR: invalid %s instruction (fn=%X)", class, fn))
}
