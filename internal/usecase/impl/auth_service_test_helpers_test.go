package impl

import (
	"io"
	"log/slog"

	"credence/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			Seed: &config.SeedConfig{
				Email:    "admin@example.com",
				Password: "password123",
				Name:     "Admin",
			},
		},
	}
}
