package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"bcryptCost": 10,
			"seed": map[string]any{
				"email": "admin@example.com",
			},
		},
		"database": map[string]any{
			"path": "data/app.db",
		},
		"env": map[string]any{
			"serviceName": "credence",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "AUTH_SEED_EMAIL", want: "auth.seed.email"},
		{envKey: "DATABASE_PATH", want: "database.path"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
