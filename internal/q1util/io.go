package q1util

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

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
)

// Assert panics with msg if b is false. Used for invariants that should
// never be false given the rest of the package's own bookkeeping.
func Assert(b bool, msg string) {
	if !b {
		panic("assertion failure: " + msg)
	}
}

// Fatal prints s to stderr, prefixed with the calling program's name,
// and exits with status 2. Used by the cmd/ entry points, never by the
// internal packages, which return errors instead.
func Fatal(prog string, s string) {
	Pr(prog, s)
	os.Exit(2)
}

// Pr writes s to stderr prefixed with prog.
func Pr(prog string, s string) {
	fmt.Fprintln(os.Stderr, prog+": "+s)
}

// Dbg writes a formatted debug line to stderr tagged with the caller's
// function name. Gated by the caller; this function does no gating
// itself.
func Dbg(s string, args ...any) {
	dbgN(2, s, args...)
}

func dbgN(n int, s string, args ...any) {
	pc, _, _, ok := runtime.Caller(n)
	details := runtime.FuncForPC(pc)
	where := "???"
	if ok && details != nil {
		where = details.Name()
	}
	s = "[at " + where + "]: " + s + "\n"
	fmt.Fprintf(os.Stderr, s, args...)
}

// DbgStack dumps the current goroutine's stack to stderr.
func DbgStack() {
	debug.PrintStack()
}
