package mapper

import (
	"encoding/json"
	"testing"

	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapUserToRead(t *testing.T) {
	u, err := user.New("alice", "alice@example.com", "password", user.RoleAgent)
	require.NoError(t, err)
	u.Names = "Alice"

	read := MapUserToRead(u)
	assert.Equal(t, u.ID, read.ID)
	assert.Equal(t, "agent", read.Role)
	assert.Equal(t, "Alice", read.Names)

	raw, err := json.Marshal(read)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), u.Password)
}

func TestMapUsersToRead(t *testing.T) {
	assert.Empty(t, MapUsersToRead(nil))
	assert.NotNil(t, MapUsersToRead(nil))
}
