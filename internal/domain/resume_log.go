package domain

import (
	"context"
	"time"
)

// ResumeStatusLog is an immutable audit record of one status transition
type ResumeStatusLog struct {
	ID             int64     `json:"logId"`
	ResumeID       int64     `json:"resumeId"`
	RecruiterID    string    `json:"recruiterId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"createdAt"`

	// Joined from users
	RecruiterName *string `json:"recruiterName,omitempty"`
}

// Export formats for status logs
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

// ExportFile is a rendered status log export
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ResumeLogRepository reads the append-only status history.
// Rows are only ever written by ResumeRepository.ChangeStatus.
type ResumeLogRepository interface {
	ListByResumeID(ctx context.Context, resumeID int64) ([]ResumeStatusLog, error)
}

// RecruiterUsecase is the recruiter-facing review service
type RecruiterUsecase interface {
	ChangeStatus(ctx context.Context, caller Caller, resumeID int64, status, reason string) (*ResumeStatusLog, error)
	ListStatusLogs(ctx context.Context, caller Caller, resumeID int64) ([]ResumeStatusLog, error)
	ExportStatusLogs(ctx context.Context, caller Caller, resumeID int64, format string) (*ExportFile, error)
}
