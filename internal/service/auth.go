package service

import (
	"context"
	"errors"

	"github.com/dkmezza/auth-service/internal/domain"
	"github.com/dkmezza/auth-service/internal/model"
	"github.com/dkmezza/auth-service/internal/repository"
	"github.com/dkmezza/auth-service/pkg/jwtutil"
)

// AuthService orchestrates registration, login and identity lookups.
type AuthService struct {
	users repository.UserRepository
	jwt   *jwtutil.JWTUtil
}

// NewAuthService creates an AuthService over the given store and codec.
func NewAuthService(users repository.UserRepository, jwt *jwtutil.JWTUtil) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Register creates a new user with the given role. Returns
// domain.ErrAlreadyExists when the email is taken.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (model.UserView, error) {
	if err := model.ValidateRegistration(email, password); err != nil {
		return model.UserView{}, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return model.UserView{}, domain.ErrAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return model.UserView{}, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return model.UserView{}, err
	}

	user := model.NewUser(email, hashed, role)
	// The store's unique index on email is the arbiter for concurrent
	// registrations; the lookup above only gives the common case a
	// clean error.
	if err := s.users.Create(ctx, user); err != nil {
		return model.UserView{}, err
	}

	return user.View(), nil
}

// Login authenticates the email/password pair and mints a signed
// token. A missing user and a wrong password both return
// domain.ErrInvalidCredentials so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !CheckPassword(password, user.Password) {
		return "", domain.ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(user.Email, user.Role, user.ID.String())
}

// CurrentUser returns the public identity view for the given email.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (model.UserView, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return model.UserView{}, err
	}
	return user.View(), nil
}
