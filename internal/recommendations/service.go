package recommendations

import (
	"context"
	"strings"
	"time"

	"github.com/takumines/meal-finder/internal/llm"
	"github.com/takumines/meal-finder/internal/profiles"
	"github.com/takumines/meal-finder/internal/shared/metrics"
	"github.com/takumines/meal-finder/internal/shared/telemetry"
)

// MinAnswers is the minimum number of answers required before a
// recommendation may be generated.
const MinAnswers = 3

// Orchestrator generates meal recommendations: AI first, canned per-time-slot
// template on any AI failure. Once the answer precondition holds it cannot
// fail.
type Orchestrator struct {
	LLM llm.Client
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator(client llm.Client) *Orchestrator {
	return &Orchestrator{LLM: client}
}

// Generate builds a recommendation from the profile and full answer set.
// Returns ErrInsufficientAnswers below MinAnswers; every AI failure
// (transport, timeout, malformed JSON) degrades to the fallback template.
func (o *Orchestrator) Generate(ctx context.Context, profile profiles.UserProfile, answers []AnswerInput, timeOfDay profiles.TimeSlot, location *profiles.Location) (Generated, error) {
	if len(answers) < MinAnswers {
		return Generated{}, ErrInsufficientAnswers
	}

	start := time.Now()
	defer func() {
		metrics.ObserveRecommendationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	raw, err := o.generateAI(ctx, profile, answers, timeOfDay, location)
	if err != nil {
		telemetry.Warn("recommendation.ai_fallback", map[string]any{
			"time_of_day":  string(timeOfDay),
			"answer_count": len(answers),
			"err":          err.Error(),
		})
		metrics.IncRecommendationFallback()
		return fallbackRecommendation(profile, timeOfDay), nil
	}

	return validate(raw, profile), nil
}

func (o *Orchestrator) generateAI(ctx context.Context, profile profiles.UserProfile, answers []AnswerInput, timeOfDay profiles.TimeSlot, location *profiles.Location) (rawGenerated, error) {
	text, err := o.LLM.CompleteText(ctx, buildPrompt(profile, answers, timeOfDay, location), generateSystemInstruction)
	if err != nil {
		return rawGenerated{}, err
	}

	// Models occasionally wrap JSON in a markdown fence; strip it before
	// parsing. Mistyped fields degrade individually inside decodeGenerated;
	// only an unparseable document counts as an AI failure.
	raw, err := decodeGenerated([]byte(stripFence(text)))
	if err != nil {
		return rawGenerated{}, err
	}
	return raw, nil
}

func stripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
