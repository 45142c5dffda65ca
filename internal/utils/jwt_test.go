package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return s
}

func TestParseUsername(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    string
		wantErr bool
	}{
		{
			name:   "preferred_username wins",
			claims: jwt.MapClaims{"preferred_username": "demo", "sub": "0b6f6c1e"},
			want:   "demo",
		},
		{
			name:   "falls back to sub",
			claims: jwt.MapClaims{"sub": "demo"},
			want:   "demo",
		},
		{
			name:   "empty preferred_username falls back to sub",
			claims: jwt.MapClaims{"preferred_username": "", "sub": "demo"},
			want:   "demo",
		},
		{
			name:    "no claims",
			claims:  jwt.MapClaims{"scope": "openid"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUsername(signedToken(t, tt.claims))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUsername_NoClaimsSentinel(t *testing.T) {
	_, err := ParseUsername(signedToken(t, jwt.MapClaims{"scope": "openid"}))
	assert.ErrorIs(t, err, ErrNoUsernameClaim)
}

func TestParseUsername_Malformed(t *testing.T) {
	_, err := ParseUsername("not.a.token")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "no token", header: "Bearer ", wantErr: true},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
