package app

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/termbridge/internal/config"
)

func restoreLogOutput(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestOpenLogCreatesMissingConfigDir(t *testing.T) {
	restoreLogOutput(t)
	dir := filepath.Join(t.TempDir(), "termbridge")
	cfg := config.Config{Debug: true, ConfigFile: filepath.Join(dir, "config.toml")}

	logger, closeLog, err := openLog(cfg)
	require.NoError(t, err)

	logger.Print("bring-up started")
	closeLog()

	data, err := os.ReadFile(filepath.Join(dir, debugLogName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "bring-up started")
}

func TestOpenLogDisabledDiscards(t *testing.T) {
	restoreLogOutput(t)
	dir := t.TempDir()

	logger, closeLog, err := openLog(config.Config{ConfigFile: filepath.Join(dir, "config.toml")})
	require.NoError(t, err)
	require.NotNil(t, logger)
	closeLog()

	_, err = os.Stat(filepath.Join(dir, debugLogName))
	assert.True(t, os.IsNotExist(err))
}
