package profiles

import "context"

// Repo defines persistence operations for user profiles.
type Repo interface {
	Get(ctx context.Context, userID string) (UserProfile, error)
	Create(ctx context.Context, profile UserProfile) error
}
