package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("REDIS_ADDRESS", "cache:6380")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("DB_USER", "arctic")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "cache:6380", cfg.Redis.Address)
	assert.Equal(t, "s3cret", cfg.Token.Secret)
	assert.Equal(t, "arctic", cfg.DB.User)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Expedition.StateTTL)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 100, cfg.Expedition.TranscriptLimit)
}

func TestFromViper_File(t *testing.T) {
	const doc = `
server:
  port: 8080
  read_timeout: 5
db:
  host: oracle.local
  port: 1522
  user: chronicler
  password: pw
  name: ARCTIC
expedition:
  state_ttl: 2
  history_limit: 5
  transcript_limit: 40
catalog:
  path: /etc/chronicler/content.yaml
`
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	require.NoError(t, v.ReadConfig(strings.NewReader(doc)))

	cfg := fromViper(v)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 2*time.Hour, cfg.Expedition.StateTTL)
	assert.Equal(t, 5, cfg.Expedition.HistoryLimit)
	assert.Equal(t, 40, cfg.Expedition.TranscriptLimit)
	assert.Equal(t, "/etc/chronicler/content.yaml", cfg.Catalog.Path)
	assert.Equal(t, "oracle://chronicler:pw@oracle.local:1522/ARCTIC", cfg.GetDSN())
}
