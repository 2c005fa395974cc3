package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ops@example.com"))
	assert.False(t, IsEmail("ops"))
	assert.False(t, IsEmail(""))
}

func TestOnlyDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"20-12345678-3", "20123456783"},
		{"  12.345.678 ", "12345678"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OnlyDigits(tt.in), tt.in)
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "****", Mask("short"))
	assert.Equal(t, "AP****7890", Mask("APP_USR-1234567890"))
}
