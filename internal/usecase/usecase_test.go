package usecase_test

import (
	"context"

	"go-resume-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) List(ctx context.Context, filter domain.ResumeFilter) ([]domain.Resume, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, id int64, ownerID string) (*domain.Resume, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Update(ctx context.Context, id int64, ownerID string, patch domain.ResumePatch) (*domain.Resume, error) {
	args := m.Called(ctx, id, ownerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Delete(ctx context.Context, id int64, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

func (m *MockResumeRepo) ChangeStatus(ctx context.Context, change domain.StatusChange) (*domain.ResumeStatusLog, error) {
	args := m.Called(ctx, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeStatusLog), args.Error(1)
}

type MockResumeLogRepo struct {
	mock.Mock
}

func (m *MockResumeLogRepo) ListByResumeID(ctx context.Context, resumeID int64) ([]domain.ResumeStatusLog, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResumeStatusLog), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var (
	applicant      = domain.Caller{UserID: "applicant-1", Role: domain.RoleApplicant}
	otherApplicant = domain.Caller{UserID: "applicant-2", Role: domain.RoleApplicant}
	recruiter      = domain.Caller{UserID: "recruiter-1", Role: domain.RoleRecruiter}
)

func strPtr(s string) *string { return &s }
