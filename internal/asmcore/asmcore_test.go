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
	"testing"

	"github.com/gmofishsauce/q1/internal/asmsrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openerFor(files map[string][]string) asmsrc.Opener {
	return func(path string) ([]string, error) {
		lines, ok := files[path]
		if !ok {
			return nil, fmt.Errorf("no such file %q", path)
		}
		return lines, nil
	}
}

func assembleLines(t *testing.T, lines []string) []byte {
	t.Helper()
	files := map[string][]string{"main.q1": lines}
	result := Assemble("main.q1", openerFor(files), 0)
	require.Empty(t, result.Errors)
	return EncodeRaw(result.Lines)
}

func TestAssembleAluSequence(t *testing.T) {
	bytes := assembleLines(t, []string{
		"clr", "inc", "mab", "inc", "mab", "inc", "sta $100", "hlt",
	})
	assert.Equal(t,
		[]byte{0x28, 0x25, 0x30, 0x25, 0x30, 0x25, 0x18, 0x01, 0x00, 0x38},
		bytes)
}

func TestAssembleForwardReferenceJump(t *testing.T) {
	files := map[string][]string{
		"main.q1": {"j forward", "hlt", "forward: clr"},
	}
	result := Assemble("main.q1", openerFor(files), 0)
	require.Empty(t, result.Errors)
	bytes := EncodeRaw(result.Lines)
	assert.Equal(t, []byte{0x00, 0x00, 0x04, 0x38, 0x28}, bytes)
}

func TestAssembleDbExpression(t *testing.T) {
	bytes := assembleLines(t, []string{"db 2+3*4"})
	assert.Equal(t, []byte{0x0E}, bytes)
}

func TestAssembleDbHexAndBinary(t *testing.T) {
	files := map[string][]string{
		"main.q1": {"db $ff", "db %10101010"},
	}
	result := Assemble("main.q1", openerFor(files), 0)
	require.Empty(t, result.Errors)
	assert.Equal(t, []byte{0xFF, 0xAA}, EncodeRaw(result.Lines))
}

func TestAssembleDuplicateSymbolIsError(t *testing.T) {
	files := map[string][]string{
		"main.q1": {"start: clr", "start: inc"},
	}
	result := Assemble("main.q1", openerFor(files), 0)
	assert.NotEmpty(t, result.Errors)
	assert.Nil(t, result.Lines)
}

func TestAssembleUndefinedSymbolRecoversAndKeepsOffsetsStable(t *testing.T) {
	// "missing" never resolves, so its db should emit 0, but the jmp
	// after it must still land at the address Pass1 assigned: the
	// undefined-symbol error must not swallow the db's byte.
	files := map[string][]string{
		"main.q1": {"db missing", "j here", "here: hlt"},
	}
	result := Assemble("main.q1", openerFor(files), 0)
	assert.NotEmpty(t, result.Errors)
	require.NotNil(t, result.Lines)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x04, 0x38}, EncodeRaw(result.Lines))
}

func TestAssembleIncludeAndMacro(t *testing.T) {
	files := map[string][]string{
		"main.q1": {
			"#define greet",
			"clr",
			"#end",
			"#include lib.q1",
			"hlt",
		},
		"lib.q1": {"inc"},
	}
	result := Assemble("main.q1", openerFor(files), 0)
	require.Empty(t, result.Errors)
	assert.Equal(t, []byte{0x25, 0x38}, EncodeRaw(result.Lines))

	body, ok := result.Context.Macros.Find("greet")
	require.True(t, ok)
	assert.Equal(t, []string{"clr"}, body)
}

func TestEncodeListingPadsByteField(t *testing.T) {
	files := map[string][]string{"main.q1": {"j $1234"}}
	result := Assemble("main.q1", openerFor(files), 0)
	require.Empty(t, result.Errors)
	listing := EncodeListing(result.Lines)
	assert.Contains(t, listing, "0000 00 12 34")
	assert.Contains(t, listing, "j $1234")
	assert.Equal(t, "0000 00 12 34        j $1234\n", listing)
}

func TestEncodeHexOneBytePerLine(t *testing.T) {
	files := map[string][]string{"main.q1": {"db $ff", "db %10101010"}}
	result := Assemble("main.q1", openerFor(files), 0)
	require.Empty(t, result.Errors)
	assert.Equal(t, "FF\nAA\n", EncodeHex(result.Lines))
}
