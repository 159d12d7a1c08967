package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dsbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultSize, cfg.Size)
	assert.Equal(t, int64(DefaultSeed), cfg.Seed)
	assert.Equal(t, WorkloadNames(), cfg.Workloads)
	assert.True(t, cfg.Verify)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `size: 500
seed: 7
workloads: [heap, trie]
verify: false
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Size)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, []string{"heap", "trie"}, cfg.Workloads)
	assert.False(t, cfg.Verify)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("DSBENCH_SIZE", "42")
	t.Setenv("DSBENCH_WORKLOADS", "avl,segment")
	t.Setenv("DSBENCH_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(writeConfig(t, "size: 100\n"))
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Size, "env wins over the file")
	assert.Equal(t, []string{"avl", "segment"}, cfg.Workloads)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "size: 0\n"))
	require.NoError(t, err)
	require.ErrorIs(t, cfg.Validate(), ErrInvalidSize)

	cfg, err = LoadConfig(writeConfig(t, "workloads: [avl, btree]\n"))
	require.NoError(t, err)
	err = cfg.Validate()
	require.ErrorIs(t, err, ErrUnknownWorkload)
	assert.Contains(t, err.Error(), `"btree"`)

	cfg, err = LoadConfig(writeConfig(t, "log_level: loud\n"))
	require.NoError(t, err)
	require.ErrorIs(t, cfg.Validate(), ErrInvalidLogLevel)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Size: 1, Workloads: []string{"avl"}, LogLevel: "error"}
	require.NoError(t, cfg.Validate())

	cfg.Workloads = nil
	require.ErrorIs(t, cfg.Validate(), ErrNoWorkloads)
}
