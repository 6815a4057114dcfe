package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-resume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

const resumeColumns = `r.resume_id, r.user_id, r.title, r.content, r.status, r.created_at, r.updated_at, u.name`

type resumeRepo struct {
	db DB
}

// NewResumeRepository creates the resume persistence gateway
func NewResumeRepository(db DB) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

// Create inserts a new resume; id, status default and timestamps come back from the database
func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (user_id, title, content, status)
		VALUES ($1, $2, $3, $4)
		RETURNING resume_id, created_at, updated_at`

	if resume.Status == "" {
		resume.Status = domain.ResumeStatusApply
	}

	return r.db.QueryRow(ctx, query,
		resume.UserID,
		resume.Title,
		resume.Content,
		resume.Status,
	).Scan(&resume.ID, &resume.CreatedAt, &resume.UpdatedAt)
}

// List returns resumes matching the filter with the owner's name joined.
// Content is left out of list rows.
func (r *resumeRepo) List(ctx context.Context, filter domain.ResumeFilter) ([]domain.Resume, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		conditions = append(conditions, fmt.Sprintf("r.user_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		args = append(args, pq.Array(filter.Statuses))
		conditions = append(conditions, fmt.Sprintf("r.status = ANY($%d::text[])", len(args)))
	}

	query := `
		SELECT r.resume_id, r.user_id, r.title, r.status, r.created_at, r.updated_at, u.name
		FROM resumes r
		LEFT JOIN users u ON u.id = r.user_id`
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}

	// Only whitelisted literals reach the ORDER BY clause
	order := "DESC"
	if filter.SortOrder == domain.SortAsc {
		order = "ASC"
	}
	query += fmt.Sprintf("\n\t\tORDER BY r.created_at %s, r.resume_id %s", order, order)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumes := []domain.Resume{}
	for rows.Next() {
		var res domain.Resume
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.Title, &res.Status, &res.CreatedAt, &res.UpdatedAt, &res.Name,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, res)
	}
	return resumes, rows.Err()
}

// GetByID fetches one resume; ownerID restricts it to the owner when non-empty
func (r *resumeRepo) GetByID(ctx context.Context, id int64, ownerID string) (*domain.Resume, error) {
	query := `
		SELECT ` + resumeColumns + `
		FROM resumes r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.resume_id = $1`
	args := []interface{}{id}
	if ownerID != "" {
		query += " AND r.user_id = $2"
		args = append(args, ownerID)
	}

	var res domain.Resume
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&res.ID, &res.UserID, &res.Title, &res.Content, &res.Status, &res.CreatedAt, &res.UpdatedAt, &res.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Update writes only the supplied fields of an owned resume and refreshes updated_at
func (r *resumeRepo) Update(ctx context.Context, id int64, ownerID string, patch domain.ResumePatch) (*domain.Resume, error) {
	query := `
		UPDATE resumes
		SET title = COALESCE($3, title),
		    content = COALESCE($4, content),
		    updated_at = NOW()
		WHERE resume_id = $1 AND user_id = $2
		RETURNING resume_id, user_id, title, content, status, created_at, updated_at,
		          (SELECT name FROM users WHERE id = resumes.user_id)`

	var res domain.Resume
	err := r.db.QueryRow(ctx, query, id, ownerID, patch.Title, patch.Content).Scan(
		&res.ID, &res.UserID, &res.Title, &res.Content, &res.Status, &res.CreatedAt, &res.UpdatedAt, &res.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete permanently removes an owned resume. Its status logs are kept.
func (r *resumeRepo) Delete(ctx context.Context, id int64, ownerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE resume_id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ChangeStatus runs read, update and log insert in one READ COMMITTED transaction.
// The FOR UPDATE lock makes a concurrent change on the same resume wait for this commit,
// so it reads this transaction's status as its previous status.
func (r *resumeRepo) ChangeStatus(ctx context.Context, change domain.StatusChange) (*domain.ResumeStatusLog, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 1. Current status
	var previous string
	err = tx.QueryRow(ctx,
		`SELECT status FROM resumes WHERE resume_id = $1 FOR UPDATE`, change.ResumeID,
	).Scan(&previous)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read resume status: %w", err)
	}

	// 2. New status
	if _, err := tx.Exec(ctx,
		`UPDATE resumes SET status = $1, updated_at = NOW() WHERE resume_id = $2`,
		change.Status, change.ResumeID,
	); err != nil {
		return nil, fmt.Errorf("update resume status: %w", err)
	}

	// 3. Audit row
	entry := &domain.ResumeStatusLog{
		ResumeID:       change.ResumeID,
		RecruiterID:    change.RecruiterID,
		PreviousStatus: previous,
		Status:         change.Status,
		Reason:         change.Reason,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO resume_status_logs (resume_id, recruiter_id, previous_status, status, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING log_id, created_at`,
		entry.ResumeID, entry.RecruiterID, entry.PreviousStatus, entry.Status, entry.Reason,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert status log: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit status change: %w", err)
	}
	return entry, nil
}
