package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkmezza/auth-service/internal/domain"
)

// DefaultRole is assigned to users registered through the public API.
const DefaultRole = "user"

// User represents the user model stored in the database
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	Role      string    `json:"role" gorm:"type:varchar(50);not null;default:'user'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser constructs a User with a generated ID. The password argument
// must already be hashed.
func NewUser(email, hashedPassword, role string) *User {
	if role == "" {
		role = DefaultRole
	}
	return &User{
		ID:       uuid.New(),
		Email:    email,
		Password: hashedPassword,
		Role:     role,
	}
}

// UserView is the public projection of a User. The password hash never
// leaves the service layer.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// View returns the public projection of the user.
func (u *User) View() UserView {
	return UserView{ID: u.ID, Email: u.Email, Role: u.Role}
}

// ValidateRegistration checks registration input before any hashing or
// storage happens.
func ValidateRegistration(email, password string) error {
	var violations []string
	if strings.TrimSpace(email) == "" {
		violations = append(violations, "email is required")
	} else if !strings.Contains(email, "@") {
		violations = append(violations, "email must be a valid address")
	}
	if password == "" {
		violations = append(violations, "password is required")
	}
	if len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}
	return nil
}
