package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dkmezza/auth-service/internal/domain"
	"github.com/dkmezza/auth-service/internal/middleware"
	"github.com/dkmezza/auth-service/internal/model"
	"github.com/dkmezza/auth-service/internal/service"
	"github.com/dkmezza/auth-service/pkg/logger"
	"github.com/dkmezza/auth-service/prometheus"
)

// AuthHandler exposes registration, login and current-user endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	// Parse request
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	// Public registrations always get the default role
	user, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, model.DefaultRole)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			log.Error("User already exists", zap.String("email", req.Email))
			prometheus.RecordAuthError("email_already_exists")
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			log.Error("Invalid registration data", zap.Strings("violations", verr.Violations))
			prometheus.RecordAuthError("incomplete_registration")
			return writeError(c, err, "user")
		}
		log.Error("Failed to create user", zap.Error(err))
		prometheus.RecordAuthError("user_creation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	log.Info("User registered", zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	// Parse request
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Missing user and wrong password are reported identically
			log.Error("Login failed", zap.String("email", req.Email))
			prometheus.RecordAuthError("login_failure")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	// Increment active tokens gauge
	prometheus.IncreaseActiveTokens()

	log.Info("User logged in", zap.String("email", req.Email))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// Me returns the authenticated user's public identity.
func (h *AuthHandler) Me(c echo.Context) error {
	log := logger.FromContext(c)

	email, ok := c.Get(middleware.ContextEmail).(string)
	if !ok {
		log.Error("Failed to get email from context")
		prometheus.RecordAuthError("context_missing_email")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	user, err := h.auth.CurrentUser(c.Request().Context(), email)
	if err != nil {
		log.Error("User not found", zap.String("email", email), zap.Error(err))
		prometheus.RecordAuthError("user_not_found")
		return writeError(c, err, "user")
	}

	return c.JSON(http.StatusOK, user)
}

func MetricsHandler(c echo.Context) error {
	handler := prometheus.GetPrometheusHandler()
	handler.ServeHTTP(c.Response(), c.Request())
	return nil
}
