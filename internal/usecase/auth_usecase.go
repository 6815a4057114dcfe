package usecase

import (
	"context"
	"errors"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// GetCurrentUser loads the caller's profile; the role stored here is authoritative
func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
