package recommendations

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu        sync.RWMutex
	byID      map[string]MealRecommendation
	bySession map[string]string // sessionID -> recommendation id
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:      make(map[string]MealRecommendation),
		bySession: make(map[string]string),
	}
}

// Upsert stores the recommendation, replacing any existing one for the session.
func (r *MemoryRepo) Upsert(ctx context.Context, rec MealRecommendation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existingID, ok := r.bySession[rec.SessionID]; ok && existingID != rec.ID {
		delete(r.byID, existingID)
	}
	r.byID[rec.ID] = rec
	r.bySession[rec.SessionID] = rec.ID
	return nil
}

// GetByID returns a recommendation owned by userID.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (MealRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return MealRecommendation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok || rec.UserID != userID {
		return MealRecommendation{}, ErrNotFound
	}
	return rec, nil
}

// GetBySession returns the recommendation for a session, if any.
func (r *MemoryRepo) GetBySession(ctx context.Context, sessionID string) (MealRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return MealRecommendation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bySession[sessionID]
	if !ok {
		return MealRecommendation{}, ErrNotFound
	}
	return r.byID[id], nil
}

// UpdateReaction records the user's reaction on an owned recommendation.
func (r *MemoryRepo) UpdateReaction(ctx context.Context, userID, id string, reaction Reaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok || rec.UserID != userID {
		return ErrNotFound
	}
	rec.UserReaction = &reaction
	r.byID[id] = rec
	return nil
}
