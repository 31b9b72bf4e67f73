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

// Step fetches, decodes and executes exactly one instruction,
// advancing Clocks by the cost of its class. It does nothing if the
// machine is already halted; callers loop on !m.Halted.
func (m *Machine) Step() {
	if m.Halted {
		return
	}

	opcode := m.fetchByte()
	class := classOf(opcode)
	fn := funcOf(opcode)

	switch class {
	case classJumpCall:
		m.execJumpCall(fn)
		m.Clocks += ClocksJumpOrLoadStore
	case classLoadStore:
		m.execLoadStore(fn)
		m.Clocks += ClocksJumpOrLoadStore
	case classMath:
		m.execMath(fn)
		m.Clocks += ClocksMathOrMisc
	case classMisc:
		m.execMisc(fn)
		m.Clocks += ClocksMathOrMisc
	default:
		m.Errors = append(m.Errors, fmt.Sprintf("ERROR: invalid instruction class %X (opcode=%02X)", int(class), opcode))
	}
}

// Run steps the machine until it halts. status, if non-nil, is
// called after every step with the machine itself; this is how
// cmd/q1sim drives its optional ANSI status display without the
// core loop knowing anything about terminals.
func (m *Machine) Run(status func(*Machine)) {
	for !m.Halted {
		m.Step()
		if status != nil {
			status(m)
		}
	}
}
