package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkmezza/auth-service/internal/model"
	"github.com/dkmezza/auth-service/internal/repository"
)

// Company list pagination bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CompanyPage is one page of a tenant's companies.
type CompanyPage struct {
	Companies []model.Company `json:"companies"`
	Total     int64           `json:"total"`
	Page      int             `json:"page"`
	PageSize  int             `json:"page_size"`
}

// CompanyService owns company records, each scoped to a tenant and
// tagged with the creating user's ID.
type CompanyService struct {
	companies repository.CompanyRepository
	tenants   repository.TenantRepository
}

// NewCompanyService creates a CompanyService over the given stores.
func NewCompanyService(companies repository.CompanyRepository, tenants repository.TenantRepository) *CompanyService {
	return &CompanyService{companies: companies, tenants: tenants}
}

// List returns one page of the tenant's companies, newest first.
// page is 1-based; out-of-range sizes are clamped.
func (s *CompanyService) List(ctx context.Context, tenantID uuid.UUID, page, pageSize int) (*CompanyPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	companies, total, err := s.companies.FindByTenant(ctx, tenantID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &CompanyPage{
		Companies: companies,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Create validates and persists a new company under the given tenant.
// createdBy must come from a verified token's user_id claim. The
// tenant must exist; a duplicate name within the tenant surfaces as
// domain.ErrAlreadyExists from the store's composite unique index.
func (s *CompanyService) Create(ctx context.Context, name, description string, tenantID, createdBy uuid.UUID) (*model.Company, error) {
	if err := model.ValidateCompany(name, tenantID); err != nil {
		return nil, err
	}

	if _, err := s.tenants.FindByID(ctx, tenantID); err != nil {
		return nil, err
	}

	company := model.NewCompany(name, description, tenantID, createdBy)
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Get returns the company with the given id or domain.ErrNotFound.
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// Update changes a company's name and description. Tenant and creator
// are immutable.
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, name, description string) (*model.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := model.ValidateCompany(name, company.TenantID); err != nil {
		return nil, err
	}

	company.Name = name
	company.Description = description
	if err := s.companies.Save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes the company. Deleting a missing id succeeds.
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.companies.Delete(ctx, id)
}
