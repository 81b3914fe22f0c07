package profiles

import "time"

// UserProfile holds a user's stored meal preferences. It is read-only input
// to the question and recommendation flow.
type UserProfile struct {
	ID              string
	PreferredGenres []CuisineGenre
	Allergies       []string
	SpicePreference SpiceLevel
	BudgetRange     BudgetRange
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultProfile returns the profile created on first touch for a user.
func DefaultProfile(userID string) UserProfile {
	now := time.Now().UTC()
	return UserProfile{
		ID:              userID,
		PreferredGenres: []CuisineGenre{},
		Allergies:       []string{},
		SpicePreference: SpiceMedium,
		BudgetRange:     BudgetModerate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
