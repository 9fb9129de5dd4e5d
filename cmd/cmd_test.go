package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run 执行命令，返回标准输出与标准错误
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParse(t *testing.T) {
	out, _, err := run(t, "parse", "5k6", "1.5E3", "500µH", "bogus")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"5k6", "5600.0"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1.5E3", "1500.0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"500µH", "0.0005"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"bogus", "nan"}, strings.Fields(lines[3]))

	_, _, err = run(t, "parse")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out, _, err := run(t, "format", "1500", "--unit", "Ohm")
	require.NoError(t, err)
	assert.Equal(t, "1.5 kOhm\n", out)

	out, _, err = run(t, "format", "0.0005", "2m", "-u", "H", "-p", "1")
	require.NoError(t, err)
	assert.Equal(t, "500.0 µH\n2.0 mH\n", out)
}

func TestPolar(t *testing.T) {
	out, _, err := run(t, "polar", "Z", "3+4i")
	require.NoError(t, err)
	assert.Equal(t, "5.0 Ohm ∠ 0.927 radians\n", out)

	out, _, err = run(t, "polar", "impedance", "3+4i", "--degrees", "-p", "2")
	require.NoError(t, err)
	assert.Equal(t, "5.0 Ohm ∠ 53.13°\n", out)

	_, _, err = run(t, "polar", "R", "3+4i")
	assert.Error(t, err, "电阻不接受复数")
	_, _, err = run(t, "polar", "Q", "1")
	assert.Error(t, err)
	_, _, err = run(t, "polar", "R", "bogus")
	assert.Error(t, err)
}

func TestImpedance(t *testing.T) {
	out, _, err := run(t, "impedance", "L", "1m", "--freq", "1k")
	require.NoError(t, err)
	assert.Contains(t, out, "Inductance")
	assert.Contains(t, out, "1.0 kHz")
	assert.Contains(t, out, "(0.0 Ohm)+(6.283 Ohm)j")
	assert.Contains(t, out, "∠ 90.0°")

	_, _, err = run(t, "impedance", "R", "1k")
	assert.Error(t, err)
	_, _, err = run(t, "impedance", "C", "1n", "--freq", "x")
	assert.Error(t, err)
}

func TestCombine(t *testing.T) {
	out, _, err := run(t, "parallel", "R", "1k", "1k")
	require.NoError(t, err)
	assert.Equal(t, "500.0 Ohm\n", out)

	out, _, err = run(t, "series", "C", "1n", "3n")
	require.NoError(t, err)
	assert.Equal(t, "750.0 pF\n", out)

	_, _, err = run(t, "series", "V", "1", "2")
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, _, err := run(t, "sweep", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 31)
	assert.Equal(t, []string{"FREQUENCY", "|H|", "GAIN", "PHASE"}, strings.Fields(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "500.0 Hz"))
}

func TestSweepJSON(t *testing.T) {
	dir := t.TempDir()
	html := filepath.Join(dir, "bode.html")
	plot := filepath.Join(dir, "bode.png")

	out, stderr, err := run(t, "sweep",
		"--circuit", "divider", "--set", "Z1=100,Z2=1uF",
		"--format", "json", "--html", html, "--plot", plot,
		"--log-level", "info", "--log-format", "json",
	)
	require.NoError(t, err)

	var points []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	assert.Len(t, points, 30)
	assert.Contains(t, stderr, `"msg":"-3 dB"`)

	for _, path := range []string{html, plot} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestSweepConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rlc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[circuit]
kind = "rlc-tank"

[sweep]
mode = "linear"
start = 90000
stop = 110000
step = 150
`), 0o644))

	out, _, err := run(t, "sweep", "--config", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 135)

	out, _, err = run(t, "sweep", "--circuit", "Divider", "--log-level", "error")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 31)

	_, _, err = run(t, "sweep", "--circuit", "bandpass", "--log-level", "error")
	assert.Error(t, err)
	_, _, err = run(t, "sweep", "--set", "R9=1k", "--log-level", "error")
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := setupLogger(&buf, "WARN", "json")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = setupLogger(&buf, "loud", "text")
	assert.Error(t, err)
	_, err = setupLogger(&buf, "info", "xml")
	assert.Error(t, err)
}
