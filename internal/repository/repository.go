package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkmezza/auth-service/internal/model"
)

// UserRepository is the durable mapping from email to user record.
// Implementations return domain.ErrNotFound for missing records and
// domain.ErrAlreadyExists for unique-constraint violations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// TenantRepository stores tenant records. The store's unique index on
// name arbitrates concurrent creation of the same tenant.
type TenantRepository interface {
	FindAll(ctx context.Context) ([]model.Tenant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tenant, error)
	Create(ctx context.Context, tenant *model.Tenant) error
	Save(ctx context.Context, tenant *model.Tenant) error
	// Delete is a no-op for missing ids.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyRepository stores company records scoped to a tenant.
type CompanyRepository interface {
	// FindByTenant returns a page of the tenant's companies, newest
	// first, along with the total count for that tenant.
	FindByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]model.Company, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	Save(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}
