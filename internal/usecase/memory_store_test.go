package usecase_test

import (
	"context"
	"sync"
	"time"

	"go-resume-backend/internal/domain"
)

// memoryStore serializes status changes the way the row lock does in Postgres
type memoryStore struct {
	mu      sync.Mutex
	resumes map[int64]*domain.Resume
	logs    []domain.ResumeStatusLog
	nextID  int64
	nextLog int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{resumes: map[int64]*domain.Resume{}}
}

func (s *memoryStore) Create(_ context.Context, r *domain.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	r.ID = s.nextID
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	s.resumes[r.ID] = &cp
	return nil
}

func (s *memoryStore) List(_ context.Context, f domain.ResumeFilter) ([]domain.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Resume{}
	for _, r := range s.resumes {
		if f.OwnerID == "" || r.UserID == f.OwnerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *memoryStore) GetByID(_ context.Context, id int64, ownerID string) (*domain.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resumes[id]
	if !ok || (ownerID != "" && r.UserID != ownerID) {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *memoryStore) Update(_ context.Context, id int64, ownerID string, p domain.ResumePatch) (*domain.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resumes[id]
	if !ok || r.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
	cp := *r
	return &cp, nil
}

func (s *memoryStore) Delete(_ context.Context, id int64, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resumes[id]
	if !ok || r.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(s.resumes, id)
	return nil
}

func (s *memoryStore) ChangeStatus(_ context.Context, c domain.StatusChange) (*domain.ResumeStatusLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resumes[c.ResumeID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.nextLog++
	entry := domain.ResumeStatusLog{
		ID:             s.nextLog,
		ResumeID:       c.ResumeID,
		RecruiterID:    c.RecruiterID,
		PreviousStatus: r.Status,
		Status:         c.Status,
		Reason:         c.Reason,
		CreatedAt:      time.Now(),
	}
	r.Status = c.Status
	s.logs = append(s.logs, entry)
	return &entry, nil
}

func (s *memoryStore) ListByResumeID(_ context.Context, resumeID int64) ([]domain.ResumeStatusLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.ResumeStatusLog{}
	for i := len(s.logs) - 1; i >= 0; i-- {
		if s.logs[i].ResumeID == resumeID {
			out = append(out, s.logs[i])
		}
	}
	return out, nil
}
