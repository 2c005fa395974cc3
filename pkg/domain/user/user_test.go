package user

import (
	"strings"
	"testing"

	"github.com/amirasaad/backoffice/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	u, err := New("operator", "Ops@Example.com", "password123", RoleAgent)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", u.Email)
	assert.Equal(t, RoleAgent, u.Role)
	assert.True(t, u.Active)
	assert.True(t, utils.CheckPasswordHash("password123", u.Password))
}

func TestNew_DefaultsToViewer(t *testing.T) {
	u, err := New("viewer", "v@example.com", "password123", "")
	require.NoError(t, err)
	assert.Equal(t, RoleViewer, u.Role)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("", "a@b.com", "password", RoleAdmin)
	require.Error(t, err)

	_, err = New("user", "", "password", RoleAdmin)
	require.Error(t, err)

	_, err = New("user", "a@b.com", strings.Repeat("x", 73), RoleAdmin)
	require.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = New("user", "a@b.com", "password", Role("root"))
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestParseRole(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"admin", RoleAdmin, false},
		{" Agent ", RoleAgent, false},
		{"", RoleViewer, false},
		{"superuser", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidRole)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestHasAnyRole(t *testing.T) {
	assert.True(t, HasAnyRole(RoleAgent, RoleAdmin, RoleAgent))
	assert.False(t, HasAnyRole(RoleViewer, RoleAdmin, RoleAgent))
}
