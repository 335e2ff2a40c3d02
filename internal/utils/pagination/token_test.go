package pagination

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	c := Cursor{
		Date:      time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "7b7c1a0e-5d1f-4e53-9a43-7c3b7b1c3b10",
	}

	token := EncodeCursor(c)
	assert.NotEmpty(t, token)

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, c.Date.Equal(decoded.Date))
	assert.True(t, c.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, c.ID, decoded.ID)
}

func TestDecodeCursorError(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{"invalid base64", "this is not base64!", "base64 decode"},
		{"missing fields", encodeFields("2023-05-15T00:00:00Z"), "split"},
		{"empty id", encodeFields("2023-05-15T00:00:00Z", "2023-05-15T00:00:00Z", ""), "split"},
		{"bad date", encodeFields("yesterday", "2023-05-15T00:00:00Z", "x"), "date parse"},
		{"bad created_at", encodeFields("2023-05-15T00:00:00Z", "later", "x"), "created_at parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCursorBefore(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	c := Cursor{Date: day, CreatedAt: day.Add(time.Hour), ID: "m"}

	assert.True(t, c.Before(Cursor{Date: day.Add(-24 * time.Hour), CreatedAt: day.Add(5 * time.Hour), ID: "z"}))
	assert.True(t, c.Before(Cursor{Date: day, CreatedAt: day, ID: "z"}))
	assert.True(t, c.Before(Cursor{Date: day, CreatedAt: day.Add(time.Hour), ID: "a"}))
	assert.False(t, c.Before(c))
	assert.False(t, c.Before(Cursor{Date: day.Add(24 * time.Hour), CreatedAt: day, ID: "a"}))
}

func encodeFields(fields ...string) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}
