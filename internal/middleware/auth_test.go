package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkmezza/auth-service/pkg/jwtutil"
)

func newAuthTestServer(t *testing.T) (*echo.Echo, *jwtutil.JWTUtil) {
	t.Helper()
	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "test-key", ExpirationHours: 1})

	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		userID := c.Get(ContextUserID).(uuid.UUID)
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": userID.String(),
			"email":   c.Get(ContextEmail),
			"role":    c.Get(ContextRole),
		})
	}, AuthMiddleware(jwt))
	return e, jwt
}

func doRequest(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	e, jwt := newAuthTestServer(t)
	userID := uuid.New()

	token, err := jwt.GenerateToken("alice@example.com", "user", userID.String())
	require.NoError(t, err)

	rec := doRequest(e, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	e, _ := newAuthTestServer(t)

	rec := doRequest(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	e, jwt := newAuthTestServer(t)

	token, err := jwt.GenerateToken("alice@example.com", "user", uuid.New().String())
	require.NoError(t, err)

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		rec := doRequest(e, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	e, _ := newAuthTestServer(t)

	rec := doRequest(e, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	e, _ := newAuthTestServer(t)

	expired := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "test-key", ExpirationHours: -1})
	token, err := expired.GenerateToken("alice@example.com", "user", uuid.New().String())
	require.NoError(t, err)

	rec := doRequest(e, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareMalformedUserIDClaim(t *testing.T) {
	e, jwt := newAuthTestServer(t)

	token, err := jwt.GenerateToken("alice@example.com", "user", "not-a-uuid")
	require.NoError(t, err)

	rec := doRequest(e, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
