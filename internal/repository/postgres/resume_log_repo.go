package postgres

import (
	"context"

	"go-resume-backend/internal/domain"
)

type resumeLogRepo struct {
	db DB
}

// NewResumeLogRepository creates the read side of the status history
func NewResumeLogRepository(db DB) domain.ResumeLogRepository {
	return &resumeLogRepo{db: db}
}

// ListByResumeID returns every log row of a resume, newest first, with the recruiter's name
func (r *resumeLogRepo) ListByResumeID(ctx context.Context, resumeID int64) ([]domain.ResumeStatusLog, error) {
	query := `
		SELECT l.log_id, l.resume_id, l.recruiter_id, l.previous_status, l.status, l.reason, l.created_at, u.name
		FROM resume_status_logs l
		LEFT JOIN users u ON u.id = l.recruiter_id
		WHERE l.resume_id = $1
		ORDER BY l.created_at DESC, l.log_id DESC`

	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []domain.ResumeStatusLog{}
	for rows.Next() {
		var l domain.ResumeStatusLog
		if err := rows.Scan(
			&l.ID, &l.ResumeID, &l.RecruiterID, &l.PreviousStatus, &l.Status, &l.Reason, &l.CreatedAt, &l.RecruiterName,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
