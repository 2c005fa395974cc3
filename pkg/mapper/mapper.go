// Package mapper converts domain aggregates to their read DTOs where no
// service owns the conversion.
package mapper

import (
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
)

// MapUserToRead maps a domain User to its public view. The password hash is
// never copied.
func MapUserToRead(u *user.User) dto.UserRead {
	return dto.UserRead{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Names:     u.Names,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// MapUsersToRead maps a slice of users.
func MapUsersToRead(users []*user.User) []dto.UserRead {
	out := make([]dto.UserRead, 0, len(users))
	for _, u := range users {
		out = append(out, MapUserToRead(u))
	}
	return out
}
