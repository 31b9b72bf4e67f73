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

// Package asmsym holds the assembler's symbol and macro tables. Both
// tables use the same indexed-append-once shape: a name is looked up
// through a map into a slice of entries, so iteration order matches
// definition order for listings and diagnostics.
package asmsym

import "fmt"

type symbolEntry struct {
	name    string
	address uint16
}

// SymbolTable maps label names to the u16 address they were defined
// at. Redefinition is an error; the table never overwrites an entry.
type SymbolTable struct {
	indexes map[string]int
	entries []symbolEntry
}

func MakeSymbolTable() *SymbolTable {
	return &SymbolTable{
		indexes: make(map[string]int),
	}
}

// Define records name at address. Returns an error if name is already
// defined, without modifying the table.
func (st *SymbolTable) Define(name string, address uint16) error {
	if _, ok := st.indexes[name]; ok {
		return fmt.Errorf("symbol %q redefined", name)
	}
	st.indexes[name] = len(st.entries)
	st.entries = append(st.entries, symbolEntry{name: name, address: address})
	return nil
}

// Get returns the address defined for name, or an error if it was
// never defined.
func (st *SymbolTable) Get(name string) (uint16, error) {
	i, ok := st.indexes[name]
	if !ok {
		return 0, fmt.Errorf("undefined symbol %q", name)
	}
	return st.entries[i].address, nil
}

// Has reports whether name has been defined.
func (st *SymbolTable) Has(name string) bool {
	_, ok := st.indexes[name]
	return ok
}

// Len returns the number of defined symbols.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}
