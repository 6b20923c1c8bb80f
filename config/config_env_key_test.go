package config

import "testing"

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"admin": map[string]any{
			"sessionTimeout": "30m",
			"emergencyLogin": map[string]any{
				"enabled": true,
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ADMIN_SESSIONTIMEOUT", want: "admin.sessionTimeout"},
		{envKey: "ADMIN_EMERGENCYLOGIN_ENABLED", want: "admin.emergencyLogin.enabled"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		// Keys without a camelCase counterpart fall through lowercased.
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
