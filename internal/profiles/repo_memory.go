package profiles

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]UserProfile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]UserProfile)}
}

// Get returns the profile for a user.
func (r *MemoryRepo) Get(ctx context.Context, userID string) (UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return UserProfile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.data[userID]
	if !ok {
		return UserProfile{}, ErrNotFound
	}
	return profile, nil
}

// Create stores a profile for a user.
func (r *MemoryRepo) Create(ctx context.Context, profile UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[profile.ID] = profile
	return nil
}
