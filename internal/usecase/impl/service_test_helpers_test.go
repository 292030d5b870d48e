package impl

import (
	"io"
	"log/slog"
	"time"

	"envybase/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			PasswordMinLength: 8,
			PasswordMaxLength: 32,
			UsernameMinLength: 3,
			UsernameMaxLength: 32,
		},
		OAuth: &config.OAuthConfig{
			StateTTL: 5 * time.Minute,
		},
	}
	cfg.Env.ServiceName = "auth"

	return cfg
}
