package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/task-management-api/internal/domain/entity"
	repo "github.com/oksasatya/task-management-api/internal/domain/repository"
	"github.com/oksasatya/task-management-api/pkg/helpers"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike; login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is the single signal for any token or lookup failure
	// while resolving the current user.
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthService orchestrates registration, login, and current-user resolution.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// TokenResult carries a minted access token and its expiry.
type TokenResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Register hashes the password and creates the user. A duplicate email is a
// client error, not a server one.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		s.Logger.WithError(err).Error("password hashing failed")
		return nil, err
	}
	u := &entity.User{Email: email, Username: username, HashedPassword: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		s.Logger.WithError(err).WithField("email", email).Error("user creation failed")
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and mints an access token with the user id as
// subject.
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TokenResult{}, ErrInvalidCredentials
		}
		return TokenResult{}, err
	}
	if !helpers.CompareHashAndPassword(u.HashedPassword, password) {
		return TokenResult{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID.Hex())
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("token generation failed")
		return TokenResult{}, err
	}
	return TokenResult{AccessToken: token, ExpiresAt: exp}, nil
}

// ResolveCurrentUser validates the token and loads its subject. Any failure
// in either step collapses into ErrUnauthorized.
func (s *AuthService) ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	u, err := s.Users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}
