package config

import (
	"os"
	"path/filepath"
	"testing"

	"dao/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg core.Config
	require.NoError(t, Load("", &cfg))

	assert.Equal(t, "dao", cfg.App.Name)
	assert.Equal(t, "1000", cfg.App.Treasury)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, defaultMembers(), cfg.Members)
}

func TestLoadYaml(t *testing.T) {
	data := `
app:
  name: guild
  treasury: "2500.5"
members:
  - id: dave
    balance: 7
server:
  port: 8080
`
	filename := filepath.Join(t.TempDir(), "dao.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(data), 0o600))

	var cfg core.Config
	require.NoError(t, Load(filename, &cfg))

	assert.Equal(t, "guild", cfg.App.Name)
	assert.Equal(t, "2500.5", cfg.App.Treasury)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, defaultHost, cfg.Server.Host)
	require.Len(t, cfg.Members, 1)
	assert.Equal(t, core.MemberConfig{ID: "dave", Balance: 7}, cfg.Members[0])
}
