package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type recruiterUsecase struct {
	resumeRepo domain.ResumeRepository
	logRepo    domain.ResumeLogRepository
	validate   *validator.Validate
}

// NewRecruiterUsecase creates the recruiter review service
func NewRecruiterUsecase(
	resumeRepo domain.ResumeRepository,
	logRepo domain.ResumeLogRepository,
	validate *validator.Validate,
) domain.RecruiterUsecase {
	return &recruiterUsecase{
		resumeRepo: resumeRepo,
		logRepo:    logRepo,
		validate:   validate,
	}
}

type changeStatusInput struct {
	Status string `validate:"required,resume_status"`
	Reason string `validate:"required,not_blank"`
}

// ChangeStatus moves a resume to any workflow status and records the transition.
// Transitions are intentionally unrestricted; every one is logged with its reason.
func (uc *recruiterUsecase) ChangeStatus(ctx context.Context, caller domain.Caller, resumeID int64, status, reason string) (*domain.ResumeStatusLog, error) {
	// 1. Role
	if err := RequireRole(caller, domain.RoleRecruiter); err != nil {
		return nil, err
	}

	// 2. Input
	if err := uc.validate.Struct(changeStatusInput{Status: status, Reason: reason}); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	// 3. Atomic update + log
	entry, err := uc.resumeRepo.ChangeStatus(ctx, domain.StatusChange{
		ResumeID:    resumeID,
		RecruiterID: caller.UserID,
		Status:      status,
		Reason:      reason,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}

	logger.Log.Infow("Resume status changed",
		"resume_id", resumeID,
		"recruiter_id", caller.UserID,
		"previous_status", entry.PreviousStatus,
		"status", entry.Status,
	)
	return entry, nil
}

// ListStatusLogs returns the transition history of a resume, newest first
func (uc *recruiterUsecase) ListStatusLogs(ctx context.Context, caller domain.Caller, resumeID int64) ([]domain.ResumeStatusLog, error) {
	if err := RequireRole(caller, domain.RoleRecruiter); err != nil {
		return nil, err
	}

	logs, err := uc.logRepo.ListByResumeID(ctx, resumeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return logs, nil
}

// ExportStatusLogs renders the history as xlsx (default) or csv
func (uc *recruiterUsecase) ExportStatusLogs(ctx context.Context, caller domain.Caller, resumeID int64, format string) (*domain.ExportFile, error) {
	if err := RequireRole(caller, domain.RoleRecruiter); err != nil {
		return nil, err
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = domain.ExportFormatXLSX
	}
	if format != domain.ExportFormatXLSX && format != domain.ExportFormatCSV {
		return nil, apperror.Validation([]string{"Export format: must be one of: xlsx, csv"})
	}

	logs, err := uc.logRepo.ListByResumeID(ctx, resumeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	base := fmt.Sprintf("resume_%d_status_logs_%s", resumeID, time.Now().Format("20060102_150405"))

	var file *domain.ExportFile
	switch format {
	case domain.ExportFormatCSV:
		file, err = exportLogsCSV(logs)
	default:
		file, err = exportLogsExcel(logs)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	file.Filename = base + "." + format
	return file, nil
}
