package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"userName": "user",
		},
		"http": map[string]any{
			"resetBaseUrl": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "HTTP_RESETBASEURL", want: "http.resetBaseUrl"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
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
