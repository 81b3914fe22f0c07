package recommendations

import (
	"context"
	"errors"
	"testing"

	"github.com/takumines/meal-finder/internal/profiles"
)

type fakeLLM struct {
	text string
	err  error
}

func (f *fakeLLM) CompleteText(ctx context.Context, prompt, systemInstruction string) (string, error) {
	return f.text, f.err
}

func threeAnswers() []AnswerInput {
	return []AnswerInput{
		{QuestionID: "q1", Response: true},
		{QuestionID: "q2", Response: false},
		{QuestionID: "q3", Response: true},
	}
}

func TestGenerateRequiresMinimumAnswers(t *testing.T) {
	orch := NewOrchestrator(&fakeLLM{})
	profile := profiles.DefaultProfile("user-1")

	_, err := orch.Generate(context.Background(), profile, threeAnswers()[:2], profiles.TimeLunch, nil)
	if !errors.Is(err, ErrInsufficientAnswers) {
		t.Fatalf("expected ErrInsufficientAnswers, got %v", err)
	}
}

func TestGenerateParsesAIResponse(t *testing.T) {
	orch := NewOrchestrator(&fakeLLM{text: `{
		"name": "親子丼",
		"description": "ふわとろ卵の親子丼",
		"cuisine_genre": "japanese",
		"spice_level": "mild",
		"estimated_price": 800,
		"cooking_time_minutes": 20,
		"ingredients": ["鶏肉", "卵", "ご飯"],
		"instructions": ["鶏肉を煮る", "卵でとじる"],
		"meal_source": "recommendation",
		"confidence_score": 0.9,
		"reasoning": "和食の気分に合わせました"
	}`})
	profile := profiles.DefaultProfile("user-1")

	got, err := orch.Generate(context.Background(), profile, threeAnswers(), profiles.TimeDinner, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Name != "親子丼" {
		t.Fatalf("expected AI meal, got %q", got.Name)
	}
	if got.ConfidenceScore != 0.9 {
		t.Fatalf("expected confidence 0.9, got %f", got.ConfidenceScore)
	}
	if got.EstimatedPrice != 800 {
		t.Fatalf("expected price 800, got %d", got.EstimatedPrice)
	}
}

func TestGenerateStripsMarkdownFence(t *testing.T) {
	orch := NewOrchestrator(&fakeLLM{text: "```json\n{\"name\": \"パスタ\", \"cuisine_genre\": \"italian\"}\n```"})
	profile := profiles.DefaultProfile("user-1")

	got, err := orch.Generate(context.Background(), profile, threeAnswers(), profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Name != "パスタ" {
		t.Fatalf("expected fenced JSON to parse, got %q", got.Name)
	}
	if got.CuisineGenre != profiles.GenreItalian {
		t.Fatalf("expected italian, got %q", got.CuisineGenre)
	}
}

func TestGenerateFallsBackOnAIError(t *testing.T) {
	orch := NewOrchestrator(&fakeLLM{err: errors.New("service unavailable")})
	profile := profiles.DefaultProfile("user-1")

	got, err := orch.Generate(context.Background(), profile, threeAnswers(), profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("fallback path must not fail, got %v", err)
	}
	if got.Name != "カレーライス" {
		t.Fatalf("expected lunch fallback meal, got %q", got.Name)
	}
	if got.ConfidenceScore != 0.6 {
		t.Fatalf("expected fallback confidence 0.6, got %f", got.ConfidenceScore)
	}
	if got.Reasoning != "基本的な推薦を提供しました" {
		t.Fatalf("expected fallback reasoning, got %q", got.Reasoning)
	}
}

func TestGenerateKeepsAIMealWhenOneFieldIsMistyped(t *testing.T) {
	orch := NewOrchestrator(&fakeLLM{text: `{
		"name": "ビーフカレー",
		"description": "じっくり煮込んだカレー",
		"cuisine_genre": "indian",
		"spice_level": "hot",
		"estimated_price": 900,
		"cooking_time_minutes": 60,
		"ingredients": "牛肉とご飯",
		"instructions": ["煮込む"],
		"meal_source": "recommendation",
		"confidence_score": 0.8,
		"reasoning": "スパイス好きのため"
	}`})
	profile := profiles.DefaultProfile("user-1")

	got, err := orch.Generate(context.Background(), profile, threeAnswers(), profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Name != "ビーフカレー" {
		t.Fatalf("one mistyped field must not discard the AI meal, got %q", got.Name)
	}
	if len(got.Ingredients) != 0 {
		t.Fatalf("expected string-typed ingredients to become an empty list, got %v", got.Ingredients)
	}
	if len(got.Instructions) != 1 {
		t.Fatalf("expected instructions preserved, got %v", got.Instructions)
	}
	if got.ConfidenceScore != 0.8 {
		t.Fatalf("expected AI confidence, got %f", got.ConfidenceScore)
	}
}

func TestGenerateFallsBackOnMalformedJSON(t *testing.T) {
	orch := NewOrchestrator(&fakeLLM{text: "ごめんなさい、JSONを出力できません"})
	profile := profiles.DefaultProfile("user-1")

	got, err := orch.Generate(context.Background(), profile, threeAnswers(), profiles.TimeBreakfast, nil)
	if err != nil {
		t.Fatalf("fallback path must not fail, got %v", err)
	}
	if got.Name != "和風朝食セット" {
		t.Fatalf("expected breakfast fallback meal, got %q", got.Name)
	}
}

func TestFallbackRecommendationRespectsProfile(t *testing.T) {
	profile := profiles.DefaultProfile("user-1")
	profile.SpicePreference = profiles.SpiceHot
	profile.BudgetRange = profiles.BudgetBudget

	got := fallbackRecommendation(profile, profiles.TimeDinner)
	if got.SpiceLevel != profiles.SpiceHot {
		t.Fatalf("expected spice from profile, got %q", got.SpiceLevel)
	}
	// 800 yen exceeds the budget band, so it clamps to the band max.
	if got.EstimatedPrice != 500 {
		t.Fatalf("expected price clamped to 500, got %d", got.EstimatedPrice)
	}
}
