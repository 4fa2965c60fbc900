package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "esdump.yaml", configFileName)
	assert.Equal(t, 1, currentConfigVersion)
	assert.Equal(t, "ESDUMP", envPrefix)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, "testdata/es5.js", viper.GetString(fixturesCorpusKey))
	assert.Equal(t, "es5_fixtures_test.go", viper.GetString(fixturesOutputKey))
	assert.Equal(t, "es5", viper.GetString(fixturesPrefixKey))
	assert.Equal(t, "fixtures", viper.GetString(fixturesPackageKey))
	assert.Equal(t, 1, viper.GetInt(checkParallelKey))
	assert.Equal(t, defaultLogFilename, viper.GetString(logFilenameKey))
}

func TestParseSlogLevel(t *testing.T) {
	cases := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"  ERROR  ", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"8", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := parseSlogLevel(tc.value, slog.LevelInfo); got != tc.want {
			t.Errorf("parseSlogLevel(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestWrittenConfigIsValidYAML(t *testing.T) {
	target := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, viper.WriteConfigAs(target))

	raw, err := os.ReadFile(target)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &parsed))

	assert.Contains(t, parsed, "fixtures")
	assert.Contains(t, parsed, "check")
	assert.Contains(t, parsed, "log")
	assert.Contains(t, parsed, "version")
}
