/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package asmexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalStr(t *testing.T, s string, sym Resolver) uint16 {
	t.Helper()
	v, err := Evaluate(Tokenize(s), sym)
	require.NoError(t, err)
	return v
}

func TestEvaluateLiterals(t *testing.T) {
	assert.Equal(t, uint16(14), evalStr(t, "2+3*4", nil))
	assert.Equal(t, uint16(0xFF), evalStr(t, "$ff", nil))
	assert.Equal(t, uint16(0xAA), evalStr(t, "%10101010", nil))
}

func TestEvaluateSingleRHSPerLevel(t *testing.T) {
	// "1+2+3" stops after the first "+2": level1 does not chain a
	// second "+3", so the remaining "+3" is a trailing token error.
	_, err := Evaluate(Tokenize("1+2+3"), nil)
	assert.Error(t, err)
}

func TestEvaluateParens(t *testing.T) {
	assert.Equal(t, uint16(20), evalStr(t, "(2+3)*4", nil))
}

func TestEvaluateSymbol(t *testing.T) {
	sym := ResolverFunc(func(name string) (uint16, error) {
		if name == "start" {
			return 0x100, nil
		}
		return 0, assert.AnError
	})
	assert.Equal(t, uint16(0x100), evalStr(t, "start", sym))
}

func TestEvaluateUndefinedSymbolRecoversToZero(t *testing.T) {
	sym := ResolverFunc(func(name string) (uint16, error) {
		return 0, assert.AnError
	})
	v, err := Evaluate(Tokenize("missing"), sym)
	assert.Error(t, err)
	assert.Equal(t, uint16(0), v)
}

func TestEvaluateDivideByZeroRecoversToZero(t *testing.T) {
	v, err := Evaluate(Tokenize("1/0"), nil)
	assert.Error(t, err)
	assert.Equal(t, uint16(0), v)
}

func TestEvaluateMissingParenRecoversToInnerValue(t *testing.T) {
	v, err := Evaluate(Tokenize("(1+2"), nil)
	assert.Error(t, err)
	assert.Equal(t, uint16(3), v)
}
