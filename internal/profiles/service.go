package profiles

import (
	"context"
	"errors"
)

// Service contains business logic for user profiles.
type Service struct {
	Repo Repo
}

// GetOrCreate returns the user's profile, creating the default one on first
// touch so the question flow always has preference input to work with.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (UserProfile, error) {
	if userID == "" {
		return UserProfile{}, errors.New("user id required")
	}

	profile, err := s.Repo.Get(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return UserProfile{}, err
	}

	profile = DefaultProfile(userID)
	if err := s.Repo.Create(ctx, profile); err != nil {
		return UserProfile{}, err
	}
	return profile, nil
}
