package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkmezza/auth-service/internal/domain"
	"github.com/dkmezza/auth-service/internal/model"
)

// In-memory repository implementations backing tests and local runs
// without a database. They enforce the same uniqueness rules as the
// postgres schema: email, tenant name, and company name per tenant.

// MemoryUserRepository implements UserRepository in memory.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == user.Email {
			return domain.ErrAlreadyExists
		}
	}
	stamp(&user.CreatedAt, &user.UpdatedAt)
	r.users = append(r.users, *user)
	return nil
}

// MemoryTenantRepository implements TenantRepository in memory.
type MemoryTenantRepository struct {
	mu      sync.RWMutex
	tenants []model.Tenant
}

func NewMemoryTenantRepository() *MemoryTenantRepository {
	return &MemoryTenantRepository{}
}

func (r *MemoryTenantRepository) FindAll(_ context.Context) ([]model.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Newest first, matching the postgres ordering
	out := make([]model.Tenant, 0, len(r.tenants))
	for i := len(r.tenants) - 1; i >= 0; i-- {
		out = append(out, r.tenants[i])
	}
	return out, nil
}

func (r *MemoryTenantRepository) FindByID(_ context.Context, id uuid.UUID) (*model.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.tenants {
		if r.tenants[i].ID == id {
			tenant := r.tenants[i]
			return &tenant, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryTenantRepository) Create(_ context.Context, tenant *model.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tenants {
		if r.tenants[i].Name == tenant.Name {
			return domain.ErrAlreadyExists
		}
	}
	stamp(&tenant.CreatedAt, &tenant.UpdatedAt)
	r.tenants = append(r.tenants, *tenant)
	return nil
}

func (r *MemoryTenantRepository) Save(_ context.Context, tenant *model.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tenants {
		if r.tenants[i].ID == tenant.ID {
			tenant.UpdatedAt = time.Now()
			r.tenants[i] = *tenant
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryTenantRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tenants {
		if r.tenants[i].ID == id {
			r.tenants = append(r.tenants[:i], r.tenants[i+1:]...)
			return nil
		}
	}
	// Missing id is not an error
	return nil
}

// MemoryCompanyRepository implements CompanyRepository in memory.
type MemoryCompanyRepository struct {
	mu        sync.RWMutex
	companies []model.Company
}

func NewMemoryCompanyRepository() *MemoryCompanyRepository {
	return &MemoryCompanyRepository{}
}

func (r *MemoryCompanyRepository) FindByTenant(_ context.Context, tenantID uuid.UUID, offset, limit int) ([]model.Company, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var scoped []model.Company
	for i := len(r.companies) - 1; i >= 0; i-- {
		if r.companies[i].TenantID == tenantID {
			scoped = append(scoped, r.companies[i])
		}
	}
	total := int64(len(scoped))
	if offset >= len(scoped) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(scoped) {
		end = len(scoped)
	}
	return scoped[offset:end], total, nil
}

func (r *MemoryCompanyRepository) FindByID(_ context.Context, id uuid.UUID) (*model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.companies {
		if r.companies[i].ID == id {
			company := r.companies[i]
			return &company, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryCompanyRepository) Create(_ context.Context, company *model.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.companies {
		if r.companies[i].TenantID == company.TenantID && r.companies[i].Name == company.Name {
			return domain.ErrAlreadyExists
		}
	}
	stamp(&company.CreatedAt, &company.UpdatedAt)
	r.companies = append(r.companies, *company)
	return nil
}

func (r *MemoryCompanyRepository) Save(_ context.Context, company *model.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.companies {
		if r.companies[i].ID == company.ID {
			company.UpdatedAt = time.Now()
			r.companies[i] = *company
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryCompanyRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.companies {
		if r.companies[i].ID == id {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return nil
		}
	}
	return nil
}

func stamp(createdAt, updatedAt *time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}
