package auth

import (
	"testing"
	"time"

	"playbox/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
		OTP: config.OTPConfig{
			Length:      6,
			MaxAttempts: 5,
			ResendAfter: 30 * time.Second,
		},
	}
}

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	svc := &service{config: testConfig()}

	pair, err := svc.generateTokenPair("user-123", "+919876543210", "USER")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "+919876543210", claims.Phone)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "access", claims.Type)

	refreshClaims, err := svc.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	svc := &service{config: testConfig()}
	pair, err := svc.generateTokenPair("user-123", "+919876543210", "USER")
	require.NoError(t, err)

	other := &service{config: &config.Config{JWT: config.JWTConfig{
		Secret:           "different-secret",
		JWTExpiresIn:     15 * time.Minute,
		RefreshExpiresIn: 24 * time.Hour,
	}}}

	_, err = other.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"+91 98765 43210", "+919876543210", false},
		{"9876543210", "9876543210", false},
		{"(987) 654-3210", "9876543210", false},
		{"12345", "", true},
		{"not-a-phone", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := normalizePhone(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPhone, "input %q", tt.in)
		} else {
			require.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit", code)
	}

	// Zero length falls back to the default
	code, err = GenerateOTP(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}
