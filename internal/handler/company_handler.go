package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dkmezza/auth-service/internal/middleware"
	"github.com/dkmezza/auth-service/internal/service"
	"github.com/dkmezza/auth-service/pkg/logger"
	"github.com/dkmezza/auth-service/prometheus"
)

// CompanyHandler exposes company CRUD endpoints.
type CompanyHandler struct {
	companies *service.CompanyService
}

func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// List returns a page of the tenant's companies
func (h *CompanyHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCompanyOperation("list")

	tenantID, err := uuid.Parse(c.QueryParam("tenant_id"))
	if err != nil {
		log.Error("Invalid tenant ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id query parameter is required"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	defer prometheus.TrackDBOperation("query")(time.Now())

	result, err := h.companies.List(c.Request().Context(), tenantID, page, pageSize)
	if err != nil {
		log.Error("Failed to retrieve companies", zap.Error(err))
		return writeError(c, err, "company")
	}

	return c.JSON(http.StatusOK, result)
}

// Create handles company creation under a tenant
func (h *CompanyHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCompanyOperation("create")

	// Get user ID from context (set by AuthMiddleware)
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		log.Error("Failed to get user ID from context")
		prometheus.RecordAuthError("unauthorized_company_creation")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	// created_by is never read from the body
	var req struct {
		Name        string    `json:"name"`
		Description string    `json:"description"`
		TenantID    uuid.UUID `json:"tenant_id"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse company creation request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	company, err := h.companies.Create(c.Request().Context(), req.Name, req.Description, req.TenantID, userID)
	if err != nil {
		log.Error("Failed to create company", zap.String("name", req.Name), zap.Error(err))
		return writeError(c, err, "company")
	}

	log.Info("Company created",
		zap.String("name", company.Name),
		zap.String("id", company.ID.String()),
		zap.String("tenant_id", company.TenantID.String()))

	return c.JSON(http.StatusCreated, company)
}

// Get retrieves company details
func (h *CompanyHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCompanyOperation("get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid company ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid company ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	company, err := h.companies.Get(c.Request().Context(), id)
	if err != nil {
		log.Error("Company not found", zap.String("id", id.String()), zap.Error(err))
		return writeError(c, err, "company")
	}

	return c.JSON(http.StatusOK, company)
}

// Update changes a company's name and description
func (h *CompanyHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCompanyOperation("update")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid company ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid company ID"})
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse company update request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	company, err := h.companies.Update(c.Request().Context(), id, req.Name, req.Description)
	if err != nil {
		log.Error("Failed to update company", zap.String("id", id.String()), zap.Error(err))
		return writeError(c, err, "company")
	}

	log.Info("Company updated", zap.String("id", company.ID.String()), zap.String("name", company.Name))
	return c.JSON(http.StatusOK, company)
}

// Delete removes a company
func (h *CompanyHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCompanyOperation("delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid company ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid company ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := h.companies.Delete(c.Request().Context(), id); err != nil {
		log.Error("Failed to delete company", zap.String("id", id.String()), zap.Error(err))
		return writeError(c, err, "company")
	}

	log.Info("Company deleted", zap.String("id", id.String()))
	return c.NoContent(http.StatusNoContent)
}
