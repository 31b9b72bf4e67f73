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
package main

import (
	"fmt"
	"io"

	"github.com/gmofishsauce/q1/internal/q1vm"
)

// newStatusReporter returns a Run callback that clears the terminal
// and prints register/flag state every interval instructions. This is
// the simulator's named external collaborator: it knows nothing about
// the fetch-execute loop beyond the read-only Machine it's handed,
// and the core never calls it unless the caller opts in.
func newStatusReporter(w io.Writer, interval int) func(*q1vm.Machine) {
	count := 0
	return func(m *q1vm.Machine) {
		count++
		if count%interval != 0 && !m.Halted {
			return
		}
		fmt.Fprint(w, "\033[2J\033[;H")
		fmt.Fprintf(w, "P=%04X A=%02X B=%02X C=%02X XH=%02X XL=%02X\n",
			m.P, m.A, m.B, m.C, m.XH, m.XL)
		fmt.Fprintf(w, "Z=%v C=%v N=%v halted=%v clocks=%d\n",
			m.Z, m.CF, m.N, m.Halted, m.Clocks)
	}
}
