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

// Package asmsrc turns raw source lines into statement text ready for
// the parser: comment stripping, whitespace trimming, case folding,
// label extraction, and the #include/#define preprocessor pass.
package asmsrc

import "strings"

// PrepareLine applies, in order, the same steps the original assembler
// applied: strip embedded whitespace runs down to single spaces, cut
// everything from the first ';' comment marker onward, trim leading
// and trailing space, and fold to lower case. Mnemonics, directives
// and symbol names are case-insensitive as a result; string literals
// are not supported by this assembler so case folding never touches
// user-meaningful text.
func PrepareLine(line string) string {
	line = collapseWhitespace(line)
	line = stripComment(line)
	line = strings.TrimSpace(line)
	line = strings.ToLower(line)
	return line
}

// collapseWhitespace replaces runs of tabs and spaces with a single
// space, so later matching never has to special-case tabs.
func collapseWhitespace(s string) string {
	var b strings.Builder
	inRun := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteByte(c)
	}
	return b.String()
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		return s[:i]
	}
	return s
}

// ParseLabel splits a prepared line into an optional label and the
// remaining statement text. A label is everything before the first
// ':'; its presence is signalled by ok.
func ParseLabel(prepared string) (label string, rest string, ok bool) {
	i := strings.IndexByte(prepared, ':')
	if i < 0 {
		return "", prepared, false
	}
	return strings.TrimSpace(prepared[:i]), strings.TrimSpace(prepared[i+1:]), true
}
