package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkmezza/auth-service/internal/model"
	"github.com/dkmezza/auth-service/internal/repository"
)

// TenantService owns tenant records. Every created tenant is tagged
// with the authenticated caller's user ID.
type TenantService struct {
	tenants repository.TenantRepository
}

// NewTenantService creates a TenantService over the given store.
func NewTenantService(tenants repository.TenantRepository) *TenantService {
	return &TenantService{tenants: tenants}
}

// List returns all tenants, newest first.
func (s *TenantService) List(ctx context.Context) ([]model.Tenant, error) {
	return s.tenants.FindAll(ctx)
}

// Create validates and persists a new tenant. createdBy must come
// from a verified token's user_id claim, never from request input.
// Name collisions are arbitrated by the store's unique index and
// surface as domain.ErrAlreadyExists.
func (s *TenantService) Create(ctx context.Context, name, status string, createdBy uuid.UUID) (*model.Tenant, error) {
	if err := model.ValidateTenant(name, status); err != nil {
		return nil, err
	}

	tenant := model.NewTenant(name, status, createdBy)
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// Get returns the tenant with the given id or domain.ErrNotFound.
func (s *TenantService) Get(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	return s.tenants.FindByID(ctx, id)
}

// Update changes a tenant's name and status. CreatedBy is immutable:
// the stored value is carried over regardless of input.
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, name, status string) (*model.Tenant, error) {
	if err := model.ValidateTenant(name, status); err != nil {
		return nil, err
	}

	tenant, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant.Name = name
	if status != "" {
		tenant.Status = status
	}
	if err := s.tenants.Save(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// Delete removes the tenant. Deleting a missing id succeeds.
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tenants.Delete(ctx, id)
}
