package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestHashPassword_RejectsUnhashableInput(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "empty", password: "", wantErr: ErrPasswordEmpty},
		{name: "over 72 bytes", password: strings.Repeat("a", MaxPasswordBytes+1), wantErr: ErrPasswordTooLong},
		{name: "multibyte runes over the byte limit", password: strings.Repeat("ç", 40), wantErr: ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HashPassword(tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckPasswordHash_NeverMatchesWithoutHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("s3cret-pass", ""))

	hash, err := HashPassword(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash(strings.Repeat("a", MaxPasswordBytes), hash))
	assert.False(t, CheckPasswordHash(strings.Repeat("a", MaxPasswordBytes)+"b", hash))
}
