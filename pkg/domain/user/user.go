package user

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserUnauthorized is returned when credentials do not match an active user.
	ErrUserUnauthorized = errors.New("user unauthorized")
	// ErrInvalidRole is returned for roles outside admin, agent and viewer.
	ErrInvalidRole = errors.New("invalid role")
	// ErrPasswordTooLong is returned for passwords bcrypt would truncate.
	ErrPasswordTooLong = errors.New("password too long")
)

// Role is the backoffice permission level of a user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleAgent  Role = "agent"
	RoleViewer Role = "viewer"
)

// ParseRole validates a role name. An empty name defaults to viewer.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleAgent, RoleViewer:
		return r, nil
	case "":
		return RoleViewer, nil
	default:
		return "", ErrInvalidRole
	}
}

// User represents a backoffice operator.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Names     string    `json:"names"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// New creates a new active User with a hashed password and current timestamps.
func New(username, email, password string, role Role) (*User, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}
	if len(password) > utils.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}
	if role == "" {
		role = RoleViewer
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     strings.ToLower(email),
		Password:  hashedPassword,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetPassword replaces the stored hash.
func (u *User) SetPassword(password string) error {
	if len(password) > utils.MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasAnyRole reports whether the user holds one of roles.
func HasAnyRole(role Role, roles ...Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
