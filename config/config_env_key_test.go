package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "sklad",
		},
		"rateLimit": map[string]any{
			"requestsPerSecond": 10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "aligns with camelCase yaml key",
			in:   "POSTGRES_SSLMODE",
			want: "postgres.sslMode",
		},
		{
			name: "aligns nested camelCase key",
			in:   "POSTGRES_DBNAME",
			want: "postgres.dbName",
		},
		{
			name: "aligns top-level camelCase section",
			in:   "RATELIMIT_REQUESTSPERSECOND",
			want: "rateLimit.requestsPerSecond",
		},
		{
			name: "secret key section",
			in:   "SECRETKEY_ACCESS",
			want: "secretKey.access",
		},
		{
			name: "unknown key falls back to lowercase",
			in:   "SOMETHING_ELSE",
			want: "something.else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.in, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "dbname", normalizeToken("db-Name"))
	assert.Equal(t, "", normalizeToken("___"))
}
