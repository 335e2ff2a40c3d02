package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestGenerateTitleCode(t *testing.T) {
	date := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)
	code, err := GenerateTitleCode(date)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^TIT-20240309-[0-9A-F]{6}$`), code)

	other, err := GenerateTitleCode(date)
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}
