package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soltixdb/varint/internal/varint"
)

func TestRun_Encode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, "encode", false, []string{"0", "300"}))
	assert.Equal(t, "0\t00\t1\n300\tac02\t2\n", out.String())
}

func TestRun_SignedRoundtrip(t *testing.T) {
	line, err := encodeArg("-2232334", true)
	require.NoError(t, err)
	assert.Equal(t, "-2232334\t9bc09002\t4", line)

	line, err = decodeArg("9bc09002", true)
	require.NoError(t, err)
	assert.Equal(t, "9bc09002\t-2232334\t4", line)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(&out, "transcode", false, []string{"1"}))
	assert.Error(t, run(&out, "encode", false, []string{"-1"}))
	assert.Error(t, run(&out, "decode", false, []string{"xyz"}))

	err := run(&out, "decode", false, []string{"8080"})
	assert.ErrorIs(t, err, varint.ErrIncomplete)
}

func TestNewLogger_Quiet(t *testing.T) {
	logger, err := newLogger(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewLogger_ExplicitConfigMustLoad(t *testing.T) {
	_, err := newLogger(filepath.Join(t.TempDir(), "missing.yaml"), false)
	assert.Error(t, err)
}

func TestNewLogger_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "vlq.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "logging:\n  level: warn\n  format: json\n  output_path: " + logPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	logger, err := newLogger(cfgPath, false)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Error("vlq failed", "error", errors.New("bad input"))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "bad input")
}

func TestNewLogger_Discovered(t *testing.T) {
	// No config.yaml in the package directory: defaults apply.
	logger, err := newLogger("", false)
	require.NoError(t, err)
	require.NotNil(t, logger)
}
