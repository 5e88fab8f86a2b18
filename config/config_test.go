package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	LoadConfig(t.TempDir())

	assert.Equal(t, "8080", AppConfig.Server.Port)
	assert.Equal(t, "info", AppConfig.Log.Level)
	assert.Equal(t, 10*time.Minute, AppConfig.JWT.TTL)
	assert.False(t, AppConfig.Redis.Enabled)
	assert.Empty(t, AppConfig.Accounts)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: "9090"
jwt:
  ttl: 5m
accounts:
  - owner: Ada Lovelace
    pin: 1815
    interest_rate: 1.1
    movements: [100, -20.5]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644))
	t.Setenv("LOG_LEVEL", "debug")

	LoadConfig(dir)

	assert.Equal(t, "9090", AppConfig.Server.Port)
	assert.Equal(t, "debug", AppConfig.Log.Level)
	assert.Equal(t, 5*time.Minute, AppConfig.JWT.TTL)
	require.Len(t, AppConfig.Accounts, 1)
	assert.Equal(t, "Ada Lovelace", AppConfig.Accounts[0].Owner)
	assert.Equal(t, 1815, AppConfig.Accounts[0].Pin)
	assert.Equal(t, []float64{100, -20.5}, AppConfig.Accounts[0].Movements)
}
