package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/repository"
	repouser "github.com/amirasaad/backoffice/pkg/repository/user"
	"github.com/amirasaad/backoffice/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user"

// dummyHash is compared against when the identity is unknown so that
// missing users take as long as wrong passwords.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Strategy authenticates users and issues credentials for them.
type Strategy interface {
	Login(ctx context.Context, identity, password string) (*user.User, error)
	GetCurrentUserID(ctx context.Context) (uuid.UUID, error)
	GenerateToken(ctx context.Context, u *user.User) (string, error)
}

// Claims is the identity carried by a backoffice JWT.
type Claims struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Role     user.Role
}

type Service struct {
	uow      repository.UnitOfWork
	strategy Strategy
	logger   *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, strategy: strategy, logger: logger}
}

func NewWithBasic(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return New(uow, &BasicAuthStrategy{uow: uow, logger: logger}, logger)
}

func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(uow, &JWTStrategy{uow: uow, cfg: cfg, logger: logger}, logger)
}

func (s *Service) CheckPasswordHash(
	password, hash string,
) bool {
	return utils.CheckPasswordHash(password, hash)
}

func (s *Service) ValidEmail(email string) bool {
	return utils.IsEmail(email)
}

// GetCurrentUserID extracts the user id from a parsed token.
func (s *Service) GetCurrentUserID(
	token *jwt.Token,
) (uuid.UUID, error) {
	return s.strategy.GetCurrentUserID(
		context.WithValue(context.Background(), userContextKey, token),
	)
}

// GetCurrentClaims extracts every backoffice claim from a parsed token.
func (s *Service) GetCurrentClaims(token *jwt.Token) (*Claims, error) {
	return ClaimsFromToken(token)
}

func (s *Service) Login(
	ctx context.Context,
	identity, password string,
) (u *user.User, err error) {
	log := s.logger.With("context", "Login")
	log.Debug("Login called", "identity", identity)
	u, err = s.strategy.Login(ctx, identity, password)
	if err != nil {
		log.Error("Login failed", "identity", identity, "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

func (s *Service) GenerateToken(
	ctx context.Context,
	u *user.User,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	log.Debug("GenerateToken called")
	token, err := s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Info("GenerateToken successful")
	return token, nil
}

// ClaimsFromToken reads the backoffice claims out of token.
func ClaimsFromToken(token *jwt.Token) (*Claims, error) {
	if token == nil {
		return nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", user.ErrUserUnauthorized, err)
	}
	out := &Claims{UserID: id}
	out.Username, _ = claims["username"].(string)
	out.Email, _ = claims["email"].(string)
	if role, ok := claims["role"].(string); ok {
		out.Role = user.Role(role)
	} else {
		out.Role = user.RoleViewer
	}
	return out, nil
}

// JWTStrategy implements Strategy with HS256 tokens.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger}
}

func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	u *user.User,
) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  u.ID.String(),
		"username": u.Username,
		"email":    u.Email,
		"role":     string(u.Role),
		"exp":      time.Now().Add(s.cfg.Expiry).Unix(),
	})
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *JWTStrategy) Login(
	ctx context.Context,
	identity, password string,
) (*user.User, error) {
	log := s.logger.With("context", "Login", "identity", identity)
	return login(ctx, s.uow, log, identity, password)
}

func (s *JWTStrategy) GetCurrentUserID(
	ctx context.Context,
) (uuid.UUID, error) {
	token, ok := ctx.Value(userContextKey).(*jwt.Token)
	if !ok {
		return uuid.Nil, user.ErrUserUnauthorized
	}
	claims, err := ClaimsFromToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// BasicAuthStrategy checks passwords without issuing tokens. The CLI uses it.
type BasicAuthStrategy struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func NewBasicAuthStrategy(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *BasicAuthStrategy {
	return &BasicAuthStrategy{uow: uow, logger: logger}
}

func (s *BasicAuthStrategy) Login(
	ctx context.Context,
	identity, password string,
) (*user.User, error) {
	return login(ctx, s.uow, s.logger.With("identity", identity), identity, password)
}

func (s *BasicAuthStrategy) GetCurrentUserID(ctx context.Context) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (s *BasicAuthStrategy) GenerateToken(ctx context.Context, u *user.User) (string, error) {
	return "", nil
}

func login(
	ctx context.Context,
	uow repository.UnitOfWork,
	log *slog.Logger,
	identity, password string,
) (*user.User, error) {
	repo, err := repository.Repo[repouser.Repository](uow)
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository: %w", err)
	}
	var u *user.User
	if utils.IsEmail(identity) {
		u, err = repo.GetByEmail(ctx, strings.ToLower(identity))
	} else {
		u, err = repo.GetByUsername(ctx, identity)
	}
	if errors.Is(err, domain.ErrNotFound) {
		_ = utils.CheckPasswordHash(password, dummyHash)
		log.Info("Login rejected: unknown identity")
		return nil, user.ErrUserUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, u.Password) {
		log.Info("Login rejected: wrong password")
		return nil, user.ErrUserUnauthorized
	}
	if !u.Active {
		log.Info("Login rejected: inactive user")
		return nil, user.ErrUserUnauthorized
	}
	return u, nil
}
