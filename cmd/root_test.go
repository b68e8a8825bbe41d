package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sodam-labs/sodam/internal/config"
)

// useTestConfig points the package config at a fresh SQLite database.
func useTestConfig(t *testing.T) {
	t.Helper()
	prev := cfg
	cfg = &config.Config{
		Store: config.StoreConfig{
			Driver:      config.DriverSQLite,
			DatabaseURL: filepath.Join(t.TempDir(), "sodam.db"),
		},
		Batch: config.BatchConfig{Concurrency: 2, MaxItems: 100},
		Server: config.ServerConfig{
			Port:             8080,
			ReadTimeoutSecs:  15,
			WriteTimeoutSecs: 30,
			RateLimitRPS:     50,
			RateLimitBurst:   100,
			CORSOrigins:      []string{"*"},
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
	}
	t.Cleanup(func() { cfg = prev })
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"serve", "score", "batch", "profiles", "areas"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "sodam", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestScoreCommand_Flags(t *testing.T) {
	for _, name := range []string{"category", "features", "file"} {
		require.NotNil(t, scoreCmd.Flags().Lookup(name), "score command should have --%s flag", name)
	}
}

func TestBatchCommand_Flags(t *testing.T) {
	flag := batchCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "json", flag.DefValue)

	for _, name := range []string{"category", "input", "output"} {
		require.NotNil(t, batchCmd.Flags().Lookup(name), "batch command should have --%s flag", name)
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)

	seed := serveCmd.Flags().Lookup("no-seed")
	require.NotNil(t, seed)
	assert.Equal(t, "false", seed.DefValue)
}

func TestProfilesCommand_Flags(t *testing.T) {
	flag := profilesCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "table", flag.DefValue)
}

func TestAreasCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range areasCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range []string{"import", "list", "get", "put"} {
		assert.True(t, names[name], "expected areas subcommand %q not found", name)
	}

	flag := areasListCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "100", flag.DefValue)
}
