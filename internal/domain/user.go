package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleApplicant = "APPLICANT"
	RoleRecruiter = "RECRUITER"
)

type User struct {
	ID        string    `json:"id"` // JWT subject
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Caller is the authenticated identity passed explicitly into every service operation
type Caller struct {
	UserID string
	Role   string
}

// Scope is the visibility restriction applied to resume queries.
// An empty OwnerID means every row is visible.
type Scope struct {
	OwnerID string
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

type AuthUsecase interface {
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
