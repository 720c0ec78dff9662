package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/knotgrid/knot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig stores a TOML config in a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knothash.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(append([]string{"-config", writeConfig(t, "")}, args...), &out)

	return out.String(), err
}

// TestRun_Checksum prints the single-round checksum over a ring from the config.
func TestRun_Checksum(t *testing.T) {
	var out bytes.Buffer
	cfg := writeConfig(t, "ring_size = 5\n")
	err := run([]string{"-config", cfg, "-checksum", "-input", "3,4,1,5"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "12\n", out.String())
}

// TestRun_ChecksumParseError surfaces a bad token instead of guessing.
func TestRun_ChecksumParseError(t *testing.T) {
	_, err := runArgs(t, "-checksum", "-input", "3,x")
	assert.ErrorIs(t, err, knot.ErrParse)
}

// TestRun_Hash prints the digest and honours -verify.
func TestRun_Hash(t *testing.T) {
	out, err := runArgs(t, "-hash", "-input", "AoC 2017")
	require.NoError(t, err)
	assert.Equal(t, "33efeb34ea91902bb2f59c9920caa6cd\n", out)

	_, err = runArgs(t, "-hash", "-input", "AoC 2017", "-verify", "33efeb34ea91902bb2f59c9920caa6cd")
	assert.NoError(t, err)

	_, err = runArgs(t, "-hash", "-input", "AoC 2018", "-verify", "33efeb34ea91902bb2f59c9920caa6cd")
	assert.ErrorIs(t, err, errMismatch)

	_, err = runArgs(t, "-hash", "-input", "x", "-verify", "NOT-HEX")
	assert.ErrorIs(t, err, knot.ErrDigestFormat)
}

// TestRun_HashFromFile reads the input from a file, trailing newline included.
func TestRun_HashFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n"), 0o600))

	out, err := runArgs(t, "-hash", "-file", path)
	require.NoError(t, err)
	assert.Equal(t, "3efbe78a8d82f29979031a4aa0b16a9d\n", out)
}

// TestRun_GridRender prints the configured corner and the counts.
func TestRun_GridRender(t *testing.T) {
	var out bytes.Buffer
	cfg := writeConfig(t, "grid_width = 4\ngrid_height = 2\nworkers = 2\n")
	err := run([]string{"-config", cfg, "-grid", "-render", "-input", "flqrgnkx"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "##.#\n.#.#\nused: 8108\nregions: 1242\n", out.String())
}

// TestRun_NoMode reports usage.
func TestRun_NoMode(t *testing.T) {
	_, err := runArgs(t, "-input", "x")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

// TestRun_OrphanModifiers rejects modifiers given without their mode.
func TestRun_OrphanModifiers(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"VerifyWithChecksum", []string{"-checksum", "-input", "3,4", "-verify", "a2582a3a0e66e6e86e3812dcb672a272"}},
		{"VerifyAlone", []string{"-input", "x", "-verify", "a2582a3a0e66e6e86e3812dcb672a272"}},
		{"RenderWithHash", []string{"-hash", "-input", "x", "-render"}},
		{"ViewWithChecksum", []string{"-checksum", "-input", "1", "-view"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runArgs(t, tc.args...)
			assert.ErrorIs(t, err, flag.ErrHelp)
			assert.Empty(t, out, "nothing is computed")
		})
	}
}

// TestLoadConfig covers defaults, overrides and file errors.
func TestLoadConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")

	conf, err := loadConfig(missing, false)
	require.NoError(t, err, "implicit missing file falls back to defaults")
	assert.Equal(t, defaultConf(), conf)
	assert.Nil(t, conf.gridOptions())

	_, err = loadConfig(missing, true)
	assert.Error(t, err, "explicit missing file is an error")

	conf, err = loadConfig(writeConfig(t, "ring_size = 16\nworkers = 3\n"), true)
	require.NoError(t, err)
	assert.Equal(t, 16, conf.RingSize)
	assert.Equal(t, 3, conf.Workers)
	assert.Equal(t, 8, conf.GridWidth)
	assert.Len(t, conf.gridOptions(), 1)

	_, err = loadConfig(writeConfig(t, "ring_size = \"big\"\n"), true)
	assert.Error(t, err)
}
