package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"payment": map[string]any{
			"secretKey":         "",
			"defaultCardToken":  "",
			"maxNetworkRetries": 0,
		},
		"secretKey": map[string]any{"access": ""},
		"rateLimit": map[string]any{"rps": 5},
		"redis":     map[string]any{"addr": ""},
	}

	testCases := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PAYMENT_SECRETKEY", want: "payment.secretKey"},
		{envKey: "PAYMENT_MAXNETWORKRETRIES", want: "payment.maxNetworkRetries"},
		{envKey: "RATELIMIT_RPS", want: "rateLimit.rps"},
		{envKey: "REDIS_ADDR", want: "redis.addr"},
		// Underscores inside a key name cannot be told apart from separators.
		{envKey: "PAYMENT_DEFAULT_CARD_TOKEN", want: "payment.default.card.token"},
		// Unknown keys keep their lowercased segments.
		{envKey: "PUBSUB__PROVIDER", want: "pubsub.provider"},
	}

	for _, tc := range testCases {
		t.Run(tc.envKey, func(t *testing.T) {
			assert.Equal(t, tc.want, canonicalizeEnvKey(tc.envKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "defaultcardtoken", normalizeToken("default-Card_Token"))
	assert.Equal(t, "v2", normalizeToken("v.2"))
}
