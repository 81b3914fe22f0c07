package recommendations

import "context"

// Repo defines persistence operations for meal recommendations.
type Repo interface {
	// Upsert stores the recommendation for its session, replacing any
	// previous one. At most one recommendation exists per session.
	Upsert(ctx context.Context, rec MealRecommendation) error
	GetByID(ctx context.Context, userID, id string) (MealRecommendation, error)
	GetBySession(ctx context.Context, sessionID string) (MealRecommendation, error)
	UpdateReaction(ctx context.Context, userID, id string, reaction Reaction) error
}
