/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

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

package asmsym

import "testing"

func check(t *testing.T, a1 any, a2 any) {
	if a1 != a2 {
		t.Errorf("%[1]v (a %[1]T) != %[2]v (a %[2]T)", a1, a2)
	}
}

func TestSymbolDefineGet(t *testing.T) {
	st := MakeSymbolTable()
	err := st.Define("start", 0x100)
	check(t, err, nil)

	addr, err := st.Get("start")
	check(t, err, nil)
	check(t, addr, uint16(0x100))
}

func TestSymbolRedefine(t *testing.T) {
	st := MakeSymbolTable()
	check(t, st.Define("loop", 0), nil)
	if err := st.Define("loop", 1); err == nil {
		t.Errorf("Define(\"loop\") second time: fail expected")
	}
}

func TestSymbolUndefined(t *testing.T) {
	st := MakeSymbolTable()
	if _, err := st.Get("nope"); err == nil {
		t.Errorf("Get(\"nope\"): fail expected")
	}
	check(t, st.Has("nope"), false)
}
