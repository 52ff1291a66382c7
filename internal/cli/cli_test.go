package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tickseq/internal/app"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want app.Config
	}{
		{
			name: "positional path with defaults",
			args: []string{"main.hcl"},
			want: app.Config{ScriptPath: "main.hcl", LogFormat: "json", LogLevel: "info"},
		},
		{
			name: "long flag wins over shorthand and positional",
			args: []string{"-script", "a.hcl", "-s", "b.hcl", "c.hcl"},
			want: app.Config{ScriptPath: "a.hcl", LogFormat: "json", LogLevel: "info"},
		},
		{
			name: "all options",
			args: []string{"-s", "dir", "-log-format", "TEXT", "-log-level", "debug", "-tick", "250ms", "-max-ticks", "40", "-healthcheck-port", "9090"},
			want: app.Config{
				ScriptPath:      "dir",
				LogFormat:       "text",
				LogLevel:        "debug",
				Tick:            250 * time.Millisecond,
				MaxTicks:        40,
				HealthcheckPort: 9090,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, tc.want, *cfg)
		})
	}
}

func TestParse_EnvDefaults(t *testing.T) {
	t.Setenv(EnvLogFormat, "text")
	t.Setenv(EnvLogLevel, "warn")

	cfg, _, err := Parse([]string{"main.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)

	cfg, _, err = Parse([]string{"-log-level", "error", "main.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "flags override the environment")
}

func TestParse_ShouldExit(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(args, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-nope"}, wantMsg: "flag provided but not defined"},
		{name: "bad log format", args: []string{"-log-format", "xml", "a.hcl"}, wantMsg: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud", "a.hcl"}, wantMsg: "invalid log-level"},
		{name: "bad duration", args: []string{"-tick", "soon", "a.hcl"}, wantMsg: "invalid value"},
		{name: "negative max ticks", args: []string{"-max-ticks", "-1", "a.hcl"}, wantMsg: "max-ticks must not be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TICKSEQ_TEST_FROM_FILE=yes\nTICKSEQ_TEST_PRESET=file\n"), 0o600))

	t.Setenv("TICKSEQ_TEST_PRESET", "process")
	t.Cleanup(func() { os.Unsetenv("TICKSEQ_TEST_FROM_FILE") })

	require.NoError(t, LoadEnv(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "yes", os.Getenv("TICKSEQ_TEST_FROM_FILE"))
	assert.Equal(t, "process", os.Getenv("TICKSEQ_TEST_PRESET"), "existing variables win")
}

func TestLoadEnv_Malformed(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BAD-KEY=1\n"), 0o600))

	err := LoadEnv(envFile)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}
