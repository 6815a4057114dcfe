package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("resource not found")

// Resume status constants
const (
	ResumeStatusApply      = "APPLY"
	ResumeStatusDrop       = "DROP"
	ResumeStatusInterview1 = "INTERVIEW1"
	ResumeStatusInterview2 = "INTERVIEW2"
	ResumeStatusFinalPass  = "FINAL_PASS"
)

// ResumeStatuses is the closed set of workflow states. Any state may move to any other.
var ResumeStatuses = []string{
	ResumeStatusApply,
	ResumeStatusDrop,
	ResumeStatusInterview1,
	ResumeStatusInterview2,
	ResumeStatusFinalPass,
}

// MinResumeContentLength is counted in characters (Unicode code points).
const MinResumeContentLength = 150

// Sort orders for resume listing
const (
	SortDesc = "desc"
	SortAsc  = "asc"
)

// IsValidResumeStatus reports whether status belongs to the workflow.
func IsValidResumeStatus(status string) bool {
	for _, s := range ResumeStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Resume is an applicant-owned document carrying a workflow status
type Resume struct {
	ID        int64     `json:"resumeId"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Joined from users
	Name *string `json:"name,omitempty"`
}

// ResumeSummary is the subset returned after creation
type ResumeSummary struct {
	ID        int64     `json:"resumeId"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary trims a resume down to the creation response fields
func (r *Resume) Summary() *ResumeSummary {
	return &ResumeSummary{
		ID:        r.ID,
		Title:     r.Title,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ResumeFilter narrows a resume listing. An empty OwnerID means all owners.
type ResumeFilter struct {
	OwnerID   string
	Statuses  []string
	SortOrder string
}

// ResumePatch holds the optional fields of an edit. nil means "leave unchanged".
type ResumePatch struct {
	Title   *string
	Content *string
}

// StatusChange is the input of the transactional status update
type StatusChange struct {
	ResumeID    int64
	RecruiterID string
	Status      string
	Reason      string
}

// DeleteResult confirms a deletion
type DeleteResult struct {
	UserID string `json:"userId"`
}

// ResumeRepository is the persistence gateway for resumes
type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	List(ctx context.Context, filter ResumeFilter) ([]Resume, error)
	// GetByID returns ErrNotFound when the resume is absent or not owned by ownerID.
	// An empty ownerID disables the ownership check.
	GetByID(ctx context.Context, id int64, ownerID string) (*Resume, error)
	Update(ctx context.Context, id int64, ownerID string, patch ResumePatch) (*Resume, error)
	Delete(ctx context.Context, id int64, ownerID string) error
	// ChangeStatus updates the status and appends the log row in one read-committed transaction.
	ChangeStatus(ctx context.Context, change StatusChange) (*ResumeStatusLog, error)
}

// ResumeUsecase is the applicant-facing resume service
type ResumeUsecase interface {
	CreateResume(ctx context.Context, caller Caller, title, content string) (*ResumeSummary, error)
	ListResumes(ctx context.Context, caller Caller, sort, statusFilter string) ([]Resume, error)
	GetResume(ctx context.Context, caller Caller, resumeID int64) (*Resume, error)
	UpdateResume(ctx context.Context, caller Caller, resumeID int64, patch ResumePatch) (*Resume, error)
	DeleteResume(ctx context.Context, caller Caller, resumeID int64) (*DeleteResult, error)
}
