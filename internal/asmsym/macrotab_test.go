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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroCapture(t *testing.T) {
	mt := MakeMacroTable()
	require.NoError(t, mt.Begin("greet"))
	require.NoError(t, mt.Append("greet", "clr"))
	require.NoError(t, mt.Append("greet", "inc"))

	body, ok := mt.Find("greet")
	require.True(t, ok)
	assert.Equal(t, []string{"clr", "inc"}, body)
}

func TestMacroRedefineRejected(t *testing.T) {
	mt := MakeMacroTable()
	require.NoError(t, mt.Begin("m"))
	assert.Error(t, mt.Begin("m"))
}

func TestMacroAppendBeforeBeginRejected(t *testing.T) {
	mt := MakeMacroTable()
	assert.Error(t, mt.Append("nope", "line"))
}

func TestMacroFindMissing(t *testing.T) {
	mt := MakeMacroTable()
	_, ok := mt.Find("missing")
	assert.False(t, ok)
}
