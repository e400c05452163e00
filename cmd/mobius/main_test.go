package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/mobius"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { mobius.SetLogger(nil) })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_TextOutput(t *testing.T) {
	out, err := execute(t, "", "--radius", "5", "--width", "2", "--resolution", "200")
	require.NoError(t, err)

	assert.Contains(t, out, "Output")
	assert.Contains(t, out, "Approximate Surface Area: 63.56")
	assert.Contains(t, out, "Approximate Edge Length: 63.1")
}

func TestRoot_JSONOutput(t *testing.T) {
	out, err := execute(t, "", "-R", "10", "-w", "5", "-n", "400", "--format", "JSON")
	require.NoError(t, err)

	var rep mobius.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep), out)
	assert.Equal(t, 400, rep.Resolution)
	assert.InDelta(t, 316.56, rep.SurfaceArea, 3.2)
	assert.InDelta(t, 126.67, rep.EdgeLength, 1.3)
}

func TestRoot_InvalidParameter(t *testing.T) {
	_, err := execute(t, "", "--radius", "0", "--width", "5", "--resolution", "100")
	assert.ErrorIs(t, err, mobius.ErrInvalidParameter)

	_, err = execute(t, "", "--resolution", "1")
	assert.ErrorIs(t, err, mobius.ErrInvalidParameter)
}

func TestRoot_Interactive(t *testing.T) {
	out, err := execute(t, "5\n2\n200\n", "--interactive")
	require.NoError(t, err)

	assert.Contains(t, out, "Radius from center to midline of the strip: ")
	assert.Contains(t, out, "Enter Width of the strip: ")
	assert.Contains(t, out, "Enter the value of Resolution: ")
	assert.Contains(t, out, "Approximate Surface Area: 63.56")

	_, err = execute(t, "5\n", "-i")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = execute(t, "five\n2\n10\n", "-i")
	assert.ErrorContains(t, err, "radius")
}

func TestRoot_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "mobius.toml")
	plotPath := filepath.Join(dir, "strip.png")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[surface]
radius = 5.0
width = 2.0
resolution = 40

[render]
width = 240
height = 180

[output]
format = "json"
`), 0o644))

	out, err := execute(t, "", "--config", cfgPath, "--resolution", "60", "--plot", plotPath)
	require.NoError(t, err)

	var rep mobius.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep), out)
	assert.Equal(t, 60, rep.Resolution, "flag overrides file")
	assert.Equal(t, 5.0, rep.Radius)

	f, err := os.Open(plotPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Width)
	assert.Equal(t, 180, img.Height)
}

func TestConverge(t *testing.T) {
	out, err := execute(t, "", "converge", "--resolutions", "100,200,400", "-R", "5", "-w", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5, out)
	assert.True(t, strings.HasPrefix(lines[1], "100"))
	assert.True(t, strings.HasPrefix(lines[3], "400"))
	assert.Equal(t, "converging: true", lines[4])
}
