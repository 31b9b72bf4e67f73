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

package q1cfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gmofishsauce/q1/internal/q1cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesOriginalConstants(t *testing.T) {
	cfg := q1cfg.DefaultConfig()
	assert.Equal(t, 8, cfg.Assembler.IncludeDepth)
	assert.Equal(t, "list", cfg.Assembler.DefaultFormat)
	assert.Equal(t, 0, cfg.Simulator.StatusInterval)
	assert.Equal(t, uint8(0xFF), cfg.Simulator.SeedA)
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := q1cfg.LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, q1cfg.DefaultConfig(), cfg)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q1.toml")

	cfg := q1cfg.DefaultConfig()
	cfg.Assembler.IncludeDepth = 3
	cfg.Simulator.StatusInterval = 1000
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := q1cfg.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromMalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is not [ toml"), 0644))

	_, err := q1cfg.LoadFrom(path)
	assert.Error(t, err)
}
