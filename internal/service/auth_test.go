package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkmezza/auth-service/internal/domain"
	"github.com/dkmezza/auth-service/internal/model"
	"github.com/dkmezza/auth-service/internal/repository"
	"github.com/dkmezza/auth-service/pkg/jwtutil"
)

func newAuthService() (*AuthService, *jwtutil.JWTUtil) {
	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "test-key", ExpirationHours: 1})
	return NewAuthService(repository.NewMemoryUserRepository(), jwt), jwt
}

func TestRegisterThenLogin(t *testing.T) {
	svc, jwt := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "secret1", "user")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "", user.ID.String())

	token, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	email, err := jwt.ExtractEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	userID, err := jwt.ExtractUserID(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), userID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	first, err := svc.Register(ctx, "alice@example.com", "secret1", "user")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@example.com", "other-password", "admin")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	// The stored record is unchanged from the first registration
	current, err := svc.CurrentUser(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)
	assert.Equal(t, "user", current.Role)
}

func TestRegisterDefaultsRole(t *testing.T) {
	svc, _ := newAuthService()

	user, err := svc.Register(context.Background(), "alice@example.com", "secret1", "")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultRole, user.Role)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	for name, input := range map[string]struct{ email, password string }{
		"blank email":    {"", "secret1"},
		"invalid email":  {"not-an-address", "secret1"},
		"blank password": {"alice@example.com", ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(ctx, input.email, input.password, "user")
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Violations)
		})
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "secret1", "user")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice@example.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "secret1")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice@example.com", "secret1", "user")
	require.NoError(t, err)

	current, err := svc.CurrentUser(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, registered, current)

	_, err = svc.CurrentUser(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHashPasswordSaltedButVerifiable(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret1", first))
	assert.True(t, CheckPassword("secret1", second))
	assert.False(t, CheckPassword("secret2", first))
}
