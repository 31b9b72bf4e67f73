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

// listingByteFieldWidth is the fixed column width of the hex byte
// area in a listing line, including its trailing separator space.
// Lines whose encoded bytes print shorter than this are padded with
// spaces so every source-line column lines up regardless of how many
// bytes an instruction emitted.
const listingByteFieldWidth = 16

// EncodeRaw concatenates every line's bytes in address order: this is
// the same bytes a loader reads directly into memory at address 0.
func EncodeRaw(lines []EncodedLine) []byte {
	var out []byte
	for _, l := range lines {
		out = append(out, l.Bytes...)
	}
	return out
}

// EncodeHex renders one byte per line as two uppercase hex digits,
// in address order, with no addresses or annotations. Intended for
// tools that want the byte stream but not a binary file.
func EncodeHex(lines []EncodedLine) string {
	var b strings.Builder
	for _, l := range lines {
		for _, by := range l.Bytes {
			fmt.Fprintf(&b, "%02X\n", by)
		}
	}
	return b.String()
}

// EncodeListing renders an address-prefixed, byte-annotated listing:
// for each line, the 4-digit hex address, the encoded bytes as
// space-separated hex padded to a fixed column width, and the
// original source text.
func EncodeListing(lines []EncodedLine) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%04X ", l.Address)

		byteField := hexBytes(l.Bytes)
		b.WriteString(byteField)
		for i := len(byteField); i < listingByteFieldWidth; i++ {
			b.WriteByte(' ')
		}

		b.WriteString(l.Source)
		b.WriteByte('\n')
	}
	return b.String()
}

func hexBytes(bs []byte) string {
	var b strings.Builder
	for i, by := range bs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", by)
	}
	return b.String()
}
