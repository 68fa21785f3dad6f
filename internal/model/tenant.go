package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkmezza/auth-service/internal/domain"
)

// Tenant statuses accepted at the API boundary. The column itself is
// plain varchar; the closed set is enforced by ValidateTenant.
const (
	TenantStatusActive    = "ACTIVE"
	TenantStatusInactive  = "INACTIVE"
	TenantStatusSuspended = "SUSPENDED"
)

// Tenant represents a tenant organization. CreatedBy records the user
// who created it and never changes after creation.
type Tenant struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Status    string    `json:"status" gorm:"type:varchar(50);not null"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTenant constructs a Tenant with a generated ID. An empty status
// defaults to ACTIVE.
func NewTenant(name, status string, createdBy uuid.UUID) *Tenant {
	if status == "" {
		status = TenantStatusActive
	}
	return &Tenant{
		ID:        uuid.New(),
		Name:      name,
		Status:    status,
		CreatedBy: createdBy,
	}
}

// ValidateTenant checks tenant input against the boundary constraints:
// name non-blank and 2-100 characters, status one of the known set
// (empty is allowed and defaults to ACTIVE).
func ValidateTenant(name, status string) error {
	var violations []string
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		violations = append(violations, "name is required")
	} else if len(trimmed) < 2 || len(trimmed) > 100 {
		violations = append(violations, "name must be between 2 and 100 characters")
	}
	switch status {
	case "", TenantStatusActive, TenantStatusInactive, TenantStatusSuspended:
	default:
		violations = append(violations, "status must be one of ACTIVE, INACTIVE, SUSPENDED")
	}
	if len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}
	return nil
}
