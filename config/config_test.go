package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todod/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// An empty file keeps every default in place.
	path := writeConfigFile(t, "")

	cfg, err := config.Load([]string{path}, nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Store.Type)
	assert.Equal(t, "todod.db", cfg.Store.DSN)
	assert.Equal(t, "todos", cfg.Store.Table)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "X-Auth-Token", cfg.Auth.Header)
	assert.Equal(t, "X-Auth-Token", cfg.CORS.CredentialHeader)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  serve_frontend: true
store:
  type: dynamo
  table: Todos
  region: eu-west-1
auth:
  enabled: true
  token: sekrit
  identity: frontend-client
log:
  level: debug
`)

	cfg, err := config.Load([]string{path}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.ServeFrontend)
	assert.Equal(t, "dynamo", cfg.Store.Type)
	assert.Equal(t, "Todos", cfg.Store.Table)
	assert.Equal(t, "eu-west-1", cfg.Store.Region)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "sekrit", cfg.Auth.Token)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_LaterFileOverrides(t *testing.T) {
	base := writeConfigFile(t, "server:\n  port: 9090\n")
	override := writeConfigFile(t, "server:\n  port: 9191\n")

	cfg, err := config.Load([]string{base, override}, nil)
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfigFile(t, "store:\n  type: sqlite\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("store-type", "", "")
	flags.Int("port", 0, "")
	require.NoError(t, flags.Parse([]string{"--store-type=memory", "--port=7070"}))

	cfg, err := config.Load([]string{path}, flags)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Type)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_CORSHeaderFollowsAuthHeader(t *testing.T) {
	// The CORS whitelist must track a customized gate header, or
	// browsers strip the credential from every real request.
	path := writeConfigFile(t, `
auth:
  enabled: true
  header: X-Api-Key
  token: sekrit
`)

	cfg, err := config.Load([]string{path}, nil)
	require.NoError(t, err)
	assert.Equal(t, "X-Api-Key", cfg.Auth.Header)
	assert.Equal(t, "X-Api-Key", cfg.CORS.CredentialHeader)
}

func TestLoad_ExplicitCORSHeaderWins(t *testing.T) {
	path := writeConfigFile(t, `
auth:
  header: X-Api-Key
cors:
  credential_header: X-Other
`)

	cfg, err := config.Load([]string{path}, nil)
	require.NoError(t, err)
	assert.Equal(t, "X-Other", cfg.CORS.CredentialHeader)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "store:\n  type: sqlite\n")
	t.Setenv("TODOD_STORE_TYPE", "memory")

	cfg, err := config.Load([]string{path}, nil)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Type)
}

func TestLoad_InvalidStoreType(t *testing.T) {
	path := writeConfigFile(t, "store:\n  type: cassandra\n")

	_, err := config.Load([]string{path}, nil)
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 70000\n")

	_, err := config.Load([]string{path}, nil)
	assert.Error(t, err)
}

func TestLoad_AuthEnabledRequiresToken(t *testing.T) {
	path := writeConfigFile(t, "auth:\n  enabled: true\n")

	_, err := config.Load([]string{path}, nil)
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: loud\n")

	_, err := config.Load([]string{path}, nil)
	assert.Error(t, err)
}
