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

package asmsrc

import (
	"fmt"
	"strings"

	"github.com/gmofishsauce/q1/internal/asmsym"
)

const DefaultMaxIncludeDepth = 8

const includeDirective = "#include"
const defineDirective = "#define"
const endDirective = "#end"

// Opener loads the raw lines of a source file. cmd/q1asm supplies one
// backed by os.Open; tests supply one backed by an in-memory map so
// the preprocessor can be exercised without touching the filesystem.
type Opener func(path string) ([]string, error)

// Preprocessor expands #include files and captures #define/#end macro
// bodies into a macro table. Macro bodies are captured, never written
// to the output: this assembler never expands a macro invocation back
// into source text, so #define exists today only to make the source
// table available to later tooling (a formatter, a cross-reference
// report) and to reserve the syntax.
type Preprocessor struct {
	Macros   *asmsym.MacroTable
	MaxDepth int
	open     Opener

	lines  []string
	errors []error
}

func New(macros *asmsym.MacroTable, open Opener) *Preprocessor {
	return &Preprocessor{
		Macros:   macros,
		MaxDepth: DefaultMaxIncludeDepth,
		open:     open,
	}
}

// Run processes path and returns the flattened, directive-free lines
// ready for PrepareLine and the statement parser, plus every error
// found along the way. Errors are accumulated across the whole
// include tree rather than stopping at the first one, the same way
// Pass1 accumulates statement errors: one bad #include shouldn't hide
// every other mistake in the file.
func (p *Preprocessor) Run(path string) ([]string, []error) {
	p.lines = nil
	p.errors = nil
	p.processFile(path, 0)
	return p.lines, p.errors
}

func (p *Preprocessor) addError(err error) {
	p.errors = append(p.errors, err)
}

func (p *Preprocessor) processFile(path string, depth int) {
	if depth >= p.MaxDepth {
		p.addError(fmt.Errorf("%s: include depth reaches %d, probable include cycle", path, p.MaxDepth))
		return
	}
	raw, err := p.open(path)
	if err != nil {
		p.addError(fmt.Errorf("opening %s: %w", path, err))
		return
	}

	var currentMacro string
	inMacro := false

	for lineNo, line := range raw {
		trimmed := strings.TrimRight(line, "\r\n")
		lower := strings.ToLower(strings.TrimSpace(trimmed))

		switch {
		case inMacro && lower == endDirective:
			inMacro = false
			currentMacro = ""

		case inMacro:
			if currentMacro == "" {
				// The #define that opened this body failed to
				// register (e.g. a duplicate name); its lines are
				// still consumed so they don't leak into the output,
				// but there is no macro left to append them to.
				continue
			}
			if err := p.Macros.Append(currentMacro, trimmed); err != nil {
				p.addError(fmt.Errorf("%s:%d: %w", path, lineNo+1, err))
			}

		case lower == endDirective:
			p.addError(fmt.Errorf("%s:%d: #end without matching #define", path, lineNo+1))

		case strings.HasPrefix(lower, includeDirective):
			incPath, ok := directiveArg(trimmed, includeDirective)
			if !ok {
				p.addError(fmt.Errorf("%s:%d: malformed #include", path, lineNo+1))
				continue
			}
			p.processFile(incPath, depth+1)

		case strings.HasPrefix(lower, defineDirective):
			name, ok := directiveArg(trimmed, defineDirective)
			if !ok {
				p.addError(fmt.Errorf("%s:%d: malformed #define", path, lineNo+1))
				continue
			}
			name = strings.ToLower(name)
			if err := p.Macros.Begin(name); err != nil {
				p.addError(fmt.Errorf("%s:%d: %w", path, lineNo+1, err))
				currentMacro = ""
				inMacro = true
				continue
			}
			currentMacro = name
			inMacro = true

		case strings.HasPrefix(lower, "#"):
			p.addError(fmt.Errorf("%s:%d: unknown directive %q", path, lineNo+1, trimmed))

		default:
			p.lines = append(p.lines, trimmed)
		}
	}

	if inMacro {
		p.addError(fmt.Errorf("%s: #define %s missing #end", path, currentMacro))
	}
}

// directiveArg extracts the argument following a directive keyword,
// tolerating any run of one or more spaces or tabs between the two
// (the original assembler located the argument at a fixed byte
// offset past the keyword, which silently dropped the first
// character of the path whenever the directive wasn't followed by
// exactly one space; this version simply skips whitespace).
func directiveArg(line string, keyword string) (string, bool) {
	rest := line[len(keyword):]
	i := 0
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	arg := strings.TrimSpace(rest[i:])
	if arg == "" {
		return "", false
	}
	return arg, true
}
