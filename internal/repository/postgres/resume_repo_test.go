package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-resume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func strPtr(s string) *string { return &s }

func TestResumeRepoCreateDefaultsStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO resumes").
		WithArgs("user-1", "Backend Engineer", "content", domain.ResumeStatusApply).
		WillReturnRows(pgxmock.NewRows([]string{"resume_id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	res := &domain.Resume{UserID: "user-1", Title: "Backend Engineer", Content: "content"}
	require.NoError(t, repo.Create(context.Background(), res))

	assert.Equal(t, int64(11), res.ID)
	assert.Equal(t, domain.ResumeStatusApply, res.Status)
	assert.Equal(t, now, res.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepoListScopesByOwnerAndStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`WHERE r.user_id = \$1 AND r.status = ANY\(\$2::text\[\]\)\s+ORDER BY r.created_at ASC`).
		WithArgs("user-1", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"resume_id", "user_id", "title", "status", "created_at", "updated_at", "name"}).
			AddRow(int64(1), "user-1", "First", "APPLY", now, now, strPtr("Kim")).
			AddRow(int64(2), "user-1", "Second", "APPLY", now, now, (*string)(nil)))

	resumes, err := repo.List(context.Background(), domain.ResumeFilter{
		OwnerID:   "user-1",
		Statuses:  []string{"APPLY"},
		SortOrder: domain.SortAsc,
	})
	require.NoError(t, err)
	require.Len(t, resumes, 2)
	require.NotNil(t, resumes[0].Name)
	assert.Equal(t, "Kim", *resumes[0].Name)
	assert.Nil(t, resumes[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepoListAllDefaultsToNewestFirst(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)

	mock.ExpectQuery(`LEFT JOIN users u ON u.id = r.user_id\s+ORDER BY r.created_at DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"resume_id", "user_id", "title", "status", "created_at", "updated_at", "name"}))

	resumes, err := repo.List(context.Background(), domain.ResumeFilter{})
	require.NoError(t, err)
	assert.NotNil(t, resumes)
	assert.Empty(t, resumes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepoGetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)

	mock.ExpectQuery(`WHERE r.resume_id = \$1 AND r.user_id = \$2`).
		WithArgs(int64(5), "user-2").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 5, "user-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepoUpdatePassesNilForAbsentFields(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("UPDATE resumes").
		WithArgs(int64(3), "user-1", strPtr("New title"), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"resume_id", "user_id", "title", "content", "status", "created_at", "updated_at", "name"}).
			AddRow(int64(3), "user-1", "New title", "old content", "INTERVIEW1", now, now, strPtr("Kim")))

	res, err := repo.Update(context.Background(), 3, "user-1", domain.ResumePatch{Title: strPtr("New title")})
	require.NoError(t, err)
	assert.Equal(t, "New title", res.Title)
	assert.Equal(t, "old content", res.Content)
	assert.Equal(t, "INTERVIEW1", res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepoUpdateNotOwned(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)

	mock.ExpectQuery("UPDATE resumes").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), 3, "intruder", domain.ResumePatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepoDelete(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)

	mock.ExpectExec("DELETE FROM resumes").WithArgs(int64(3), "user-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM resumes").WithArgs(int64(3), "user-1").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Delete(context.Background(), 3, "user-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3, "user-1"), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepoChangeStatusCommits(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery(`SELECT status FROM resumes WHERE resume_id = \$1 FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("APPLY"))
	mock.ExpectExec("UPDATE resumes SET status").
		WithArgs("INTERVIEW1", int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO resume_status_logs").
		WithArgs(int64(7), "recruiter-1", "APPLY", "INTERVIEW1", "passed screening").
		WillReturnRows(pgxmock.NewRows([]string{"log_id", "created_at"}).AddRow(int64(99), now))
	mock.ExpectCommit()

	entry, err := repo.ChangeStatus(context.Background(), domain.StatusChange{
		ResumeID:    7,
		RecruiterID: "recruiter-1",
		Status:      "INTERVIEW1",
		Reason:      "passed screening",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), entry.ID)
	assert.Equal(t, "APPLY", entry.PreviousStatus)
	assert.Equal(t, "INTERVIEW1", entry.Status)
	assert.Equal(t, now, entry.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepoChangeStatusMissingResumeWritesNothing(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery("SELECT status FROM resumes").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.ChangeStatus(context.Background(), domain.StatusChange{ResumeID: 404, RecruiterID: "r", Status: "DROP", Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeRepoChangeStatusRollsBackWhenLogInsertFails(t *testing.T) {
	mock := newMock(t)
	repo := NewResumeRepository(mock)
	insertErr := errors.New("insert failed")

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery("SELECT status FROM resumes").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("INTERVIEW1"))
	mock.ExpectExec("UPDATE resumes SET status").
		WithArgs("DROP", int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO resume_status_logs").
		WithArgs(int64(7), "r", "INTERVIEW1", "DROP", "no show").
		WillReturnError(insertErr)
	mock.ExpectRollback()

	_, err := repo.ChangeStatus(context.Background(), domain.StatusChange{ResumeID: 7, RecruiterID: "r", Status: "DROP", Reason: "no show"})
	assert.ErrorIs(t, err, insertErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
