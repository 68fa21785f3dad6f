package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dkmezza/auth-service/internal/middleware"
	"github.com/dkmezza/auth-service/internal/service"
	"github.com/dkmezza/auth-service/pkg/logger"
	"github.com/dkmezza/auth-service/prometheus"
)

// TenantHandler exposes tenant CRUD endpoints. Every mutation records
// the authenticated caller extracted by the auth middleware.
type TenantHandler struct {
	tenants *service.TenantService
}

func NewTenantHandler(tenants *service.TenantService) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

// List returns all tenants
func (h *TenantHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("list")

	defer prometheus.TrackDBOperation("query")(time.Now())

	tenants, err := h.tenants.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to retrieve tenants", zap.Error(err))
		return writeError(c, err, "tenant")
	}

	return c.JSON(http.StatusOK, tenants)
}

// Create handles tenant creation
func (h *TenantHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("create")

	// Get user ID from context (set by AuthMiddleware)
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		log.Error("Failed to get user ID from context")
		prometheus.RecordAuthError("unauthorized_tenant_creation")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	// Parse request. created_by is never read from the body.
	var req struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse tenant creation request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	tenant, err := h.tenants.Create(c.Request().Context(), req.Name, req.Status, userID)
	if err != nil {
		log.Error("Failed to create tenant", zap.String("name", req.Name), zap.Error(err))
		return writeError(c, err, "tenant")
	}

	log.Info("Tenant created",
		zap.String("name", tenant.Name),
		zap.String("id", tenant.ID.String()),
		zap.String("created_by", tenant.CreatedBy.String()))

	return c.JSON(http.StatusCreated, tenant)
}

// Get retrieves tenant details
func (h *TenantHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid tenant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tenant ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	tenant, err := h.tenants.Get(c.Request().Context(), id)
	if err != nil {
		log.Error("Tenant not found", zap.String("id", id.String()), zap.Error(err))
		return writeError(c, err, "tenant")
	}

	return c.JSON(http.StatusOK, tenant)
}

// Update changes a tenant's name and status
func (h *TenantHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("update")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid tenant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tenant ID"})
	}

	// Any created_by in the body is ignored; the creator is immutable
	var req struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse tenant update request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	tenant, err := h.tenants.Update(c.Request().Context(), id, req.Name, req.Status)
	if err != nil {
		log.Error("Failed to update tenant", zap.String("id", id.String()), zap.Error(err))
		return writeError(c, err, "tenant")
	}

	log.Info("Tenant updated", zap.String("id", tenant.ID.String()), zap.String("name", tenant.Name))
	return c.JSON(http.StatusOK, tenant)
}

// Delete removes a tenant. Deleting a missing id still returns 204.
func (h *TenantHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid tenant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tenant ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := h.tenants.Delete(c.Request().Context(), id); err != nil {
		log.Error("Failed to delete tenant", zap.String("id", id.String()), zap.Error(err))
		return writeError(c, err, "tenant")
	}

	log.Info("Tenant deleted", zap.String("id", id.String()))
	return c.NoContent(http.StatusNoContent)
}
