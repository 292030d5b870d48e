package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: auth
  log:
    level: debug
jwt:
  secret: ""
  issuer: https://auth.example.com
  accessTokenTTL: 30m
oauth:
  providers:
    github:
      enabled: true
      clientId: yaml-client
      scopes: [read:user, user:email]
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("OAUTH_PROVIDERS_GITHUB_CLIENTID", "env-client")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "https://auth.example.com", cfg.JWT.Issuer)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenTTL)
	require.Contains(t, cfg.OAuth.Providers, "github")
	assert.Equal(t, "env-client", cfg.OAuth.Providers["github"].ClientID)
	assert.Equal(t, []string{"read:user", "user:email"}, cfg.OAuth.Providers["github"].Scopes)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "auth", cfg.Env.ServiceName)
	assert.Equal(t, 3121, cfg.HTTP.Port)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 8, cfg.Auth.PasswordMinLength)
	assert.Equal(t, 32, cfg.Auth.PasswordMaxLength)
	assert.Equal(t, 3, cfg.Auth.UsernameMinLength)
	assert.Equal(t, 32, cfg.Auth.UsernameMaxLength)
	assert.Equal(t, 10*time.Minute, cfg.OAuth.StateTTL)
	assert.Nil(t, cfg.Mongo)
	// zero TTL means non-expiring tokens and must survive defaulting
	assert.Zero(t, cfg.JWT.AccessTokenTTL)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.JWT.Secret = "secret"
		cfg.JWT.Issuer = "issuer"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = " " }, wantErr: "jwt.secret"},
		{name: "missing issuer", mutate: func(c *Config) { c.JWT.Issuer = "" }, wantErr: "jwt.issuer"},
		{name: "negative ttl", mutate: func(c *Config) { c.JWT.AccessTokenTTL = -time.Second }, wantErr: "accessTokenTTL"},
		{name: "password bounds", mutate: func(c *Config) { c.Auth.PasswordMinLength = 40 }, wantErr: "passwordMinLength"},
		{name: "username bounds", mutate: func(c *Config) { c.Auth.UsernameMinLength = 40 }, wantErr: "usernameMinLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
