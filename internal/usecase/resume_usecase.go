package usecase

import (
	"context"
	"errors"
	"strings"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	validate   *validator.Validate
}

// NewResumeUsecase creates the applicant-facing resume service
func NewResumeUsecase(resumeRepo domain.ResumeRepository, validate *validator.Validate) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo, validate: validate}
}

// resumeInput carries the content rules shared by create and edit (min counts characters)
type resumeInput struct {
	Title   string `validate:"required,not_blank"`
	Content string `validate:"required,min=150"`
}

// CreateResume stores a new resume in APPLY status for the calling applicant
func (uc *resumeUsecase) CreateResume(ctx context.Context, caller domain.Caller, title, content string) (*domain.ResumeSummary, error) {
	if err := RequireRole(caller, domain.RoleApplicant); err != nil {
		return nil, err
	}

	if err := uc.validate.Struct(resumeInput{Title: title, Content: content}); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	resume := &domain.Resume{
		UserID:  caller.UserID,
		Title:   title,
		Content: content,
		Status:  domain.ResumeStatusApply,
	}
	if err := uc.resumeRepo.Create(ctx, resume); err != nil {
		return nil, apperror.Internal(err)
	}

	return resume.Summary(), nil
}

// ListResumes returns the resumes visible to the caller.
// sort falls back to newest first when absent or not asc/desc.
func (uc *resumeUsecase) ListResumes(ctx context.Context, caller domain.Caller, sort, statusFilter string) ([]domain.Resume, error) {
	scope, err := ScopeFor(caller)
	if err != nil {
		return nil, err
	}

	statuses, err := parseStatusFilter(statusFilter)
	if err != nil {
		return nil, err
	}

	resumes, err := uc.resumeRepo.List(ctx, domain.ResumeFilter{
		OwnerID:   scope.OwnerID,
		Statuses:  statuses,
		SortOrder: parseSort(sort),
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return resumes, nil
}

// GetResume returns one resume; anything outside the caller's scope is reported as missing
func (uc *resumeUsecase) GetResume(ctx context.Context, caller domain.Caller, resumeID int64) (*domain.Resume, error) {
	scope, err := ScopeFor(caller)
	if err != nil {
		return nil, err
	}

	resume, err := uc.resumeRepo.GetByID(ctx, resumeID, scope.OwnerID)
	if err != nil {
		return nil, mapResumeErr(err)
	}
	return resume, nil
}

// UpdateResume edits title and/or content of an owned resume
func (uc *resumeUsecase) UpdateResume(ctx context.Context, caller domain.Caller, resumeID int64, patch domain.ResumePatch) (*domain.Resume, error) {
	if err := RequireRole(caller, domain.RoleApplicant); err != nil {
		return nil, err
	}

	if patch.Title == nil && patch.Content == nil {
		return nil, apperror.Validation([]string{"Provide a title or content to update"})
	}

	// Only the supplied fields are checked
	var (
		input  resumeInput
		fields []string
	)
	if patch.Title != nil {
		input.Title = *patch.Title
		fields = append(fields, "Title")
	}
	if patch.Content != nil {
		input.Content = *patch.Content
		fields = append(fields, "Content")
	}
	if err := uc.validate.StructPartial(input, fields...); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	resume, err := uc.resumeRepo.Update(ctx, resumeID, caller.UserID, patch)
	if err != nil {
		return nil, mapResumeErr(err)
	}
	return resume, nil
}

// DeleteResume permanently removes an owned resume
func (uc *resumeUsecase) DeleteResume(ctx context.Context, caller domain.Caller, resumeID int64) (*domain.DeleteResult, error) {
	if err := RequireRole(caller, domain.RoleApplicant); err != nil {
		return nil, err
	}

	if err := uc.resumeRepo.Delete(ctx, resumeID, caller.UserID); err != nil {
		return nil, mapResumeErr(err)
	}
	return &domain.DeleteResult{UserID: caller.UserID}, nil
}

func mapResumeErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Resume not found")
	}
	return apperror.Internal(err)
}

func parseSort(sort string) string {
	switch strings.ToLower(strings.TrimSpace(sort)) {
	case domain.SortAsc:
		return domain.SortAsc
	default:
		return domain.SortDesc
	}
}

// parseStatusFilter accepts one status or a comma separated list, case-insensitive
func parseStatusFilter(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var statuses []string
	for _, part := range strings.Split(raw, ",") {
		status := strings.ToUpper(strings.TrimSpace(part))
		if status == "" {
			continue
		}
		if !domain.IsValidResumeStatus(status) {
			return nil, apperror.Validation([]string{
				"Status: must be one of: " + strings.Join(domain.ResumeStatuses, ", "),
			})
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
