package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkmezza/auth-service/internal/domain"
)

// Company represents a company record scoped to a tenant. Names are
// unique within a tenant, not globally.
type Company struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_company_name_tenant"`
	Description string    `json:"description" gorm:"type:text"`
	TenantID    uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_company_name_tenant;index"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCompany constructs a Company with a generated ID.
func NewCompany(name, description string, tenantID, createdBy uuid.UUID) *Company {
	return &Company{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		TenantID:    tenantID,
		CreatedBy:   createdBy,
	}
}

// ValidateCompany checks company input at the service boundary.
func ValidateCompany(name string, tenantID uuid.UUID) error {
	var violations []string
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		violations = append(violations, "name is required")
	} else if len(trimmed) > 255 {
		violations = append(violations, "name must be at most 255 characters")
	}
	if tenantID == uuid.Nil {
		violations = append(violations, "tenant_id is required")
	}
	if len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}
	return nil
}
