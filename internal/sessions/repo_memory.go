package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is the in-memory Repo used in tests and when no database is
// configured.
type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
	answers  map[string][]Answer
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		sessions: make(map[string]Session),
		answers:  make(map[string][]Answer),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok || s.UserID != userID {
		return Session{}, ErrNotFound
	}
	s.Answers = append([]Answer(nil), r.answers[id]...)
	return s, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, id string, status Status, completedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.Status = status
	s.CompletedAt = completedAt
	r.sessions[id] = s
	return nil
}

func (r *MemoryRepo) AddAnswer(ctx context.Context, a Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[a.SessionID]; !ok {
		return ErrNotFound
	}
	for _, existing := range r.answers[a.SessionID] {
		if existing.QuestionID == a.QuestionID {
			return ErrDuplicateAnswer
		}
	}
	r.answers[a.SessionID] = append(r.answers[a.SessionID], a)
	return nil
}
