package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"session": map[string]any{
			"cookieName": "",
		},
		"guard": map[string]any{
			"publicPaths": []any{},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "GUARD_PUBLICPATHS", want: "guard.publicPaths"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("BcryptCost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.Session.CookieName != "session_token" {
		t.Fatalf("CookieName = %q, want session_token", cfg.Session.CookieName)
	}
	if got := cfg.Guard.PublicPaths; len(got) != 2 || got[0] != "/login" || got[1] != "/register" {
		t.Fatalf("PublicPaths = %v", got)
	}
	if got := cfg.Guard.ProtectedPrefixes; len(got) != 1 || got[0] != "/dashboard" {
		t.Fatalf("ProtectedPrefixes = %v", got)
	}
}
