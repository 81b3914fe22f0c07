package questions

import (
	"context"

	"github.com/google/uuid"

	"github.com/takumines/meal-finder/internal/llm"
	"github.com/takumines/meal-finder/internal/profiles"
	"github.com/takumines/meal-finder/internal/shared/metrics"
	"github.com/takumines/meal-finder/internal/shared/telemetry"
)

// Generator produces the next question for a session: system catalog first,
// then AI generation, then the canned rotation. It never returns an error;
// AI failures are absorbed by the fallback.
type Generator struct {
	LLM        llm.Client
	Classifier Classifier
}

// NewGenerator constructs a Generator with the keyword classifier.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{
		LLM:        client,
		Classifier: KeywordClassifier{},
	}
}

// Next returns the next question given the ids of already-answered questions
// in answer order. The first CatalogSize turns of every session are the
// deterministic system questions.
func (g *Generator) Next(ctx context.Context, profile profiles.UserProfile, answeredIDs []string, timeOfDay profiles.TimeSlot, location *profiles.Location) Question {
	answered := make(map[string]struct{}, len(answeredIDs))
	for _, id := range answeredIDs {
		answered[id] = struct{}{}
	}
	if q := NextUnanswered(answered); q != nil {
		return *q
	}

	answerCount := len(answeredIDs)
	text, err := g.LLM.CompleteText(ctx, buildPrompt(profile, answerCount, timeOfDay, location), generateSystemInstruction)
	if err != nil || text == "" {
		telemetry.Warn("question.ai_fallback", map[string]any{
			"answer_count": answerCount,
			"err":          errString(err),
		})
		metrics.IncQuestionFallback()
		return FallbackQuestion(answerCount)
	}

	classifier := g.Classifier
	if classifier == nil {
		classifier = KeywordClassifier{}
	}

	return Question{
		ID:               uuid.NewString(),
		Text:             text,
		Category:         classifier.Categorize(text),
		Priority:         10 + answerCount,
		IsSystemQuestion: false,
		QuestionIndex:    answerCount + 1,
	}
}

func errString(err error) string {
	if err == nil {
		return "empty response"
	}
	return err.Error()
}
