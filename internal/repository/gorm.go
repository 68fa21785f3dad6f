package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dkmezza/auth-service/internal/domain"
	"github.com/dkmezza/auth-service/internal/model"
)

// translateError maps gorm errors to domain errors. Requires
// TranslateError enabled on the gorm config so driver-specific
// unique-violation errors arrive as gorm.ErrDuplicatedKey.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	default:
		return err
	}
}

// GormUserRepository implements UserRepository over gorm.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *model.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

// GormTenantRepository implements TenantRepository over gorm.
type GormTenantRepository struct {
	db *gorm.DB
}

func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

func (r *GormTenantRepository) FindAll(ctx context.Context) ([]model.Tenant, error) {
	var tenants []model.Tenant
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tenants).Error; err != nil {
		return nil, translateError(err)
	}
	return tenants, nil
}

func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	var tenant model.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *GormTenantRepository) Create(ctx context.Context, tenant *model.Tenant) error {
	return translateError(r.db.WithContext(ctx).Create(tenant).Error)
}

func (r *GormTenantRepository) Save(ctx context.Context, tenant *model.Tenant) error {
	return translateError(r.db.WithContext(ctx).Save(tenant).Error)
}

func (r *GormTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Deleting a missing id is not an error
	return translateError(r.db.WithContext(ctx).Delete(&model.Tenant{}, "id = ?", id).Error)
}

// GormCompanyRepository implements CompanyRepository over gorm.
type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]model.Company, int64, error) {
	var total int64
	scoped := r.db.WithContext(ctx).Model(&model.Company{}).Where("tenant_id = ?", tenantID)
	if err := scoped.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var companies []model.Company
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&companies).Error
	if err != nil {
		return nil, 0, translateError(err)
	}
	return companies, total, nil
}

func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &company, nil
}

func (r *GormCompanyRepository) Create(ctx context.Context, company *model.Company) error {
	return translateError(r.db.WithContext(ctx).Create(company).Error)
}

func (r *GormCompanyRepository) Save(ctx context.Context, company *model.Company) error {
	return translateError(r.db.WithContext(ctx).Save(company).Error)
}

func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Delete(&model.Company{}, "id = ?", id).Error)
}
