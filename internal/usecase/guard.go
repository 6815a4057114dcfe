package usecase

import (
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

// ScopeFor returns the rows a caller may see: applicants their own, recruiters all
func ScopeFor(caller domain.Caller) (domain.Scope, error) {
	if caller.UserID == "" {
		return domain.Scope{}, apperror.Unauthorized("User not authenticated")
	}

	switch caller.Role {
	case domain.RoleApplicant:
		return domain.Scope{OwnerID: caller.UserID}, nil
	case domain.RoleRecruiter:
		return domain.Scope{}, nil
	default:
		return domain.Scope{}, apperror.Forbidden("Unknown role")
	}
}

// RequireRole fails before any data access when the caller lacks the role
func RequireRole(caller domain.Caller, role string) error {
	if caller.UserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if caller.Role != role {
		return apperror.Forbidden("Only " + role + " users can perform this action")
	}
	return nil
}
