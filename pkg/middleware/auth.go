// Package middleware provides the fiber authentication and authorization
// handlers for JWT users and API key clients.
package middleware

import (
	"context"
	"errors"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain/apikey"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// APIKeyHeader carries a raw API key.
const APIKeyHeader = "X-API-Key"

const principalKey = "principal"

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     user.Role
	// APIKey is set when the caller authenticated with a key instead of a JWT.
	APIKey *apikey.APIKey
}

// IsAPIKey reports whether the caller used an API key.
func (p *Principal) IsAPIKey() bool {
	return p.APIKey != nil
}

// KeyAuthenticator resolves raw API keys.
type KeyAuthenticator interface {
	Authenticate(ctx context.Context, raw string) (*apikey.APIKey, error)
	HasPermission(key *apikey.APIKey, perm string) error
}

// GetPrincipal returns the caller stored by one of the auth middlewares.
func GetPrincipal(c *fiber.Ctx) (*Principal, bool) {
	p, ok := c.Locals(principalKey).(*Principal)
	return p, ok && p != nil
}

// JwtProtected validates a bearer token (or a token query parameter, used by
// websocket clients) and stores the caller.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     jwtware.SigningKey{Key: []byte(cfg.Secret)},
		TokenLookup:    "header:Authorization,query:token",
		SuccessHandler: storeClaims,
		ErrorHandler:   jwtError,
	})
}

func storeClaims(c *fiber.Ctx) error {
	token, _ := c.Locals("user").(*jwt.Token)
	claims, err := auth.ClaimsFromToken(token)
	if err != nil {
		return deny(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid or expired JWT")
	}
	c.Locals(principalKey, &Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	})
	return c.Next()
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return deny(c, fiber.StatusBadRequest, "Bad Request", "Missing or malformed JWT")
	}
	return deny(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid or expired JWT")
}

// APIKeyProtected requires an API key granting perm.
func APIKeyProtected(keys KeyAuthenticator, perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(APIKeyHeader)
		if raw == "" {
			return deny(c, fiber.StatusUnauthorized, "Unauthorized", "Missing API key")
		}
		return withKey(c, keys, raw, perm)
	}
}

// Authenticated accepts either an API key granting perm or a valid JWT.
func Authenticated(cfg *config.Jwt, keys KeyAuthenticator, perm string) fiber.Handler {
	jwtHandler := JwtProtected(cfg)
	return func(c *fiber.Ctx) error {
		if raw := c.Get(APIKeyHeader); raw != "" {
			return withKey(c, keys, raw, perm)
		}
		return jwtHandler(c)
	}
}

func withKey(c *fiber.Ctx, keys KeyAuthenticator, raw, perm string) error {
	key, err := keys.Authenticate(c.UserContext(), raw)
	if err != nil {
		return deny(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid API key")
	}
	if err := keys.HasPermission(key, perm); err != nil {
		return deny(c, fiber.StatusForbidden, "Forbidden", "API key lacks permission "+perm)
	}
	c.Locals(principalKey, &Principal{UserID: key.OwnerID, APIKey: key})
	return c.Next()
}

// RequireRole lets JWT callers with one of roles through. API key callers
// are refused.
func RequireRole(roles ...user.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok {
			return deny(c, fiber.StatusUnauthorized, "Unauthorized", "missing user context")
		}
		if p.IsAPIKey() || !user.HasAnyRole(p.Role, roles...) {
			return deny(c, fiber.StatusForbidden, "Forbidden", "insufficient role")
		}
		return c.Next()
	}
}

// deny writes the same problem document as webapi/common without importing it.
func deny(c *fiber.Ctx, status int, title, detail string) error {
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(fiber.Map{
		"type":     "about:blank",
		"title":    title,
		"status":   status,
		"detail":   detail,
		"instance": c.OriginalURL(),
	})
}
