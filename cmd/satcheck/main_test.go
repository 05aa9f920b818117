package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_File(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--no-color", filepath.Join("..", "..", "internal", "scene", "testdata", "crates.yaml")}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "floor overlaps ramp\n", out.String())
}

func TestRun_Stdin(t *testing.T) {
	var out bytes.Buffer
	points := "0 0\n0 1\n1 1\n1 0\n\n2 2\n2 3\n3 3\n3 2\n"
	err := run([]string{"--no-color"}, strings.NewReader(points), &out)
	require.NoError(t, err)
	assert.Equal(t, "no overlaps\n", out.String())
}

func TestRun_Draw(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.png")
	err := run([]string{"--no-color", "--draw", path, "--scale", "5"}, strings.NewReader("0 0\n0 1\n1 1\n"), &out)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"--bogus"}, nil, &out))
	assert.Error(t, run([]string{"does-not-exist.yaml"}, nil, &out))
	assert.Error(t, run(nil, strings.NewReader("0 0\n2 1\n0 2\n1 1\n"), &out))
}

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-v", "--draw", "x.png", "scene.svg"})
	require.NoError(t, err)
	assert.True(t, opts.verbose)
	assert.Equal(t, "x.png", opts.drawPath)
	assert.Equal(t, "scene.svg", opts.scenePath)
	assert.Equal(t, 40.0, opts.scale)
	assert.False(t, opts.imgcat)
}
