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

// Clock costs per instruction class. Jump/Call and LoadStore classes
// involve a memory operand fetch on real hardware and cost more than
// the register-only Math/Misc classes.
const (
	ClocksJumpOrLoadStore = 21
	ClocksMathOrMisc      = 9
)

// Machine is the full simulator state: registers, flags, program
// counter, the halted latch, the running clock count, and memory.
// A fresh Machine starts in the original simulator's documented
// power-on state: every register and flag is 0xFF/true, and memory is
// filled with 0xFF (done by NewFlatMemory).
type Machine struct {
	A, B, C uint8
	XH, XL  uint8
	P       uint16
	Z       bool // zero flag
	CF      bool // carry flag (named CF to avoid colliding with register C)
	N       bool // negative flag
	Halted  bool
	Clocks  uint64
	Mem     *FlatMemory

	// Errors accumulates one message per invalid opcode encountered by
	// Step. The machine does not halt on an invalid instruction; it
	// reports and continues, matching the original simulator.
	Errors []string
}

func NewMachine() *Machine {
	return &Machine{
		A: 0xFF, B: 0xFF, C: 0xFF,
		XH: 0xFF, XL: 0xFF,
		P:   0,
		Z:   true,
		CF:  true,
		N:   true,
		Mem: NewFlatMemory(),
	}
}

// X returns the 16-bit address register formed by XH:XL.
func (m *Machine) X() uint16 {
	return uint16(m.XH)<<8 | uint16(m.XL)
}

// SetX stores a 16-bit address into XH:XL.
func (m *Machine) SetX(addr uint16) {
	m.XH = byte(addr >> 8)
	m.XL = byte(addr)
}

func (m *Machine) fetchByte() byte {
	b := m.Mem.LoadByte(m.P)
	m.P++
	return b
}

func (m *Machine) fetchWord() uint16 {
	hi := m.fetchByte()
	lo := m.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}
