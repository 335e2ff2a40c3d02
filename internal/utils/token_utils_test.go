package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSigner_RoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	signer := NewTokenSigner("secret", "contabil", time.Hour)
	signer.now = func() time.Time { return now }

	token, expiresAt, err := signer.Sign("user-1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	userID, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenSigner_Rejects(t *testing.T) {
	signer := NewTokenSigner("secret", "contabil", time.Hour)
	valid, _, err := signer.Sign("user-1")
	require.NoError(t, err)

	otherIssuer, _, err := NewTokenSigner("secret", "someone-else", time.Hour).Sign("user-1")
	require.NoError(t, err)
	otherSecret, _, err := NewTokenSigner("other-secret", "contabil", time.Hour).Sign("user-1")
	require.NoError(t, err)
	expired, _, err := NewTokenSigner("secret", "contabil", -time.Minute).Sign("user-1")
	require.NoError(t, err)
	noSubject, _, err := signer.Sign("")
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer: "contabil", Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer: "contabil", Subject: "user-1",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "foreign issuer", token: otherIssuer, wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "wrong secret", token: otherSecret, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "expired", token: expired, wantErr: jwt.ErrTokenExpired},
		{name: "other algorithm", token: hs512, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "no expiry", token: noExpiry, wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "no subject", token: noSubject, wantErr: ErrMissingSubject},
		{name: "garbage", token: "not.a.token", wantErr: jwt.ErrTokenMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signer.Verify(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = signer.Verify(valid)
	assert.NoError(t, err)
}
