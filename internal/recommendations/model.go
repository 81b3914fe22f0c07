package recommendations

import (
	"strings"
	"time"

	"github.com/takumines/meal-finder/internal/profiles"
)

// MealSource is the closed set of recommendation provenance values.
type MealSource string

const (
	SourceRecommendation MealSource = "recommendation"
	SourceManualEntry    MealSource = "manual_entry"
)

// ParseMealSource normalizes raw input; unknown values map to recommendation.
func ParseMealSource(raw string) MealSource {
	switch MealSource(strings.ToLower(strings.TrimSpace(raw))) {
	case SourceManualEntry:
		return SourceManualEntry
	default:
		return SourceRecommendation
	}
}

// Reaction is a user's reaction to a recommendation.
type Reaction string

const (
	ReactionLiked    Reaction = "liked"
	ReactionDisliked Reaction = "disliked"
	ReactionSaved    Reaction = "saved"
)

// ParseReaction normalizes raw input, reporting whether it is a known reaction.
func ParseReaction(raw string) (Reaction, bool) {
	val := Reaction(strings.ToLower(strings.TrimSpace(raw)))
	switch val {
	case ReactionLiked, ReactionDisliked, ReactionSaved:
		return val, true
	}
	return "", false
}

// Generated is the meal recommendation shape produced by the orchestrator.
// The JSON tags match the shape requested from the model.
type Generated struct {
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	CuisineGenre       profiles.CuisineGenre `json:"cuisine_genre"`
	SpiceLevel         profiles.SpiceLevel   `json:"spice_level"`
	EstimatedPrice     int                   `json:"estimated_price"`
	CookingTimeMinutes int                   `json:"cooking_time_minutes"`
	Ingredients        []string              `json:"ingredients"`
	Instructions       []string              `json:"instructions"`
	MealSource         MealSource            `json:"meal_source"`
	ConfidenceScore    float64               `json:"confidence_score"`
	Reasoning          string                `json:"reasoning"`
}

// MealRecommendation is the persisted recommendation for a session. At most
// one exists per session; regenerating upserts in place.
type MealRecommendation struct {
	ID        string
	SessionID string
	UserID    string
	Generated
	UserReaction *Reaction
	CreatedAt    time.Time
}

// AnswerInput is one answered question fed into recommendation generation.
type AnswerInput struct {
	QuestionID string
	Response   bool
}
