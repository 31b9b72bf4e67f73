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
	"github.com/gmofishsauce/q1/internal/asmsrc"
)

// Result holds everything a caller could want out of one assembly
// run: the symbol table (useful for a -list output or diagnostics),
// the per-line encoded output, and every error collected across both
// passes.
type Result struct {
	Context *Context
	Lines   []EncodedLine
	Errors  []error
}

// Assemble runs the full pipeline: preprocess, Pass 1, and (only if
// Pass 1 reported no errors) Pass 2. A preprocessing or Pass 1 error
// means addresses were never fully resolved, so Pass 2 and therefore
// output generation are skipped entirely: Result.Lines is nil. A
// Pass 2 error is a recoverable expression problem (undefined symbol,
// division by zero, missing paren); Result.Lines is still populated,
// address-stable around the bad statement, with Result.Errors
// reporting what went wrong.
func Assemble(path string, open asmsrc.Opener, maxIncludeDepth int) *Result {
	ctx := NewContext()
	pre := asmsrc.New(ctx.Macros, open)
	if maxIncludeDepth > 0 {
		pre.MaxDepth = maxIncludeDepth
	}

	lines, errs := pre.Run(path)
	if len(errs) > 0 {
		return &Result{Context: ctx, Errors: errs}
	}

	ctx.Pass1(lines)
	if len(ctx.Errors()) > 0 {
		return &Result{Context: ctx, Errors: ctx.Errors()}
	}

	encoded := ctx.Pass2()
	return &Result{Context: ctx, Lines: encoded, Errors: ctx.Errors()}
}
