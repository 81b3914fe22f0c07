package sessions

import (
	"math"

	"github.com/takumines/meal-finder/internal/recommendations"
)

// MaxQuestions caps how many answers a single session may accumulate.
const MaxQuestions = 10

// Progress summarizes how far through the question budget a session is.
type Progress struct {
	Current    int     `json:"current"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ProgressFor computes progress from an answer count. Current never exceeds
// the question limit and the percentage is rounded to a whole number.
func ProgressFor(answered int) Progress {
	if answered > MaxQuestions {
		answered = MaxQuestions
	}
	return Progress{
		Current:    answered,
		Total:      MaxQuestions,
		Percentage: math.Round(float64(answered) / float64(MaxQuestions) * 100),
	}
}

// CanContinue reports whether another question may still be asked.
func CanContinue(answered int) bool {
	return answered < MaxQuestions
}

// ShouldOfferRecommendation reports whether enough answers exist to
// generate a recommendation.
func ShouldOfferRecommendation(answered int) bool {
	return answered >= recommendations.MinAnswers
}

// IsComplete reports whether the question budget is used up.
func IsComplete(answered int) bool {
	return answered >= MaxQuestions
}
