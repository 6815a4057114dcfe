package postgres

import (
	"context"
	"testing"
	"time"

	"go-resume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeLogRepoListNewestFirst(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeLogRepository(mock)
	newer := time.Now().UTC()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(`FROM resume_status_logs l[\s\S]*ORDER BY l.created_at DESC`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{
			"log_id", "resume_id", "recruiter_id", "previous_status", "status", "reason", "created_at", "name",
		}).
			AddRow(int64(2), int64(7), "rec-1", "INTERVIEW1", "INTERVIEW2", "strong", newer, strPtr("Lee")).
			AddRow(int64(1), int64(7), "rec-1", "APPLY", "INTERVIEW1", "passed screening", older, strPtr("Lee")))

	logs, err := repo.ListByResumeID(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, int64(2), logs[0].ID)
	require.NotNil(t, logs[0].RecruiterName)
	assert.Equal(t, "Lee", *logs[0].RecruiterName)
	assert.Equal(t, "APPLY", logs[1].PreviousStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id, email, name, role").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "role", "created_at", "updated_at"}).
			AddRow("user-1", "kim@example.com", "Kim", "APPLICANT", now, now))

	user, err := repo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "APPLICANT", user.Role)
	assert.Equal(t, "Kim", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT id, email, name, role").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
