package sessions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/takumines/meal-finder/internal/profiles"
	"github.com/takumines/meal-finder/internal/questions"
	"github.com/takumines/meal-finder/internal/recommendations"
)

type fakeLLM struct {
	text string
	err  error
}

func (f *fakeLLM) CompleteText(ctx context.Context, prompt, systemInstruction string) (string, error) {
	return f.text, f.err
}

func newTestService(llmErr error) *Service {
	client := &fakeLLM{text: "生成された質問ですか？", err: llmErr}
	return NewService(
		NewMemoryRepo(),
		&profiles.Service{Repo: profiles.NewMemoryRepo()},
		questions.NewGenerator(client),
		recommendations.NewOrchestrator(client),
		recommendations.NewMemoryRepo(),
	)
}

func answerN(t *testing.T, svc *Service, userID, sessionID string, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		q, _, err := svc.NextQuestion(ctx, userID, sessionID)
		if err != nil {
			t.Fatalf("NextQuestion %d: %v", i, err)
		}
		if _, _, err := svc.SubmitAnswer(ctx, userID, sessionID, q.ID, i%2 == 0, 900); err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
	}
}

func TestCreateStartsActiveSession(t *testing.T) {
	svc := newTestService(nil)

	sess, err := svc.Create(context.Background(), "guest:u1", profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Status != StatusActive {
		t.Fatalf("expected active, got %q", sess.Status)
	}
	if sess.ID == "" {
		t.Fatal("expected generated session id")
	}
}

func TestSubmitAnswerRejectsDuplicateQuestion(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	sess, err := svc.Create(ctx, "guest:u1", profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	q, _, err := svc.NextQuestion(ctx, "guest:u1", sess.ID)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if _, _, err := svc.SubmitAnswer(ctx, "guest:u1", sess.ID, q.ID, true, 500); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	_, _, err = svc.SubmitAnswer(ctx, "guest:u1", sess.ID, q.ID, false, 500)
	if !errors.Is(err, ErrDuplicateAnswer) {
		t.Fatalf("expected ErrDuplicateAnswer, got %v", err)
	}
}

func TestSubmitAnswerRejectsExhaustedSession(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	sess, err := svc.Create(ctx, "guest:u1", profiles.TimeDinner, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	answerN(t, svc, "guest:u1", sess.ID, MaxQuestions)

	_, _, err = svc.NextQuestion(ctx, "guest:u1", sess.ID)
	if !errors.Is(err, ErrSessionExhausted) {
		t.Fatalf("expected ErrSessionExhausted from NextQuestion, got %v", err)
	}

	_, _, err = svc.SubmitAnswer(ctx, "guest:u1", sess.ID, "extra-question", true, 500)
	if !errors.Is(err, ErrSessionExhausted) {
		t.Fatalf("expected ErrSessionExhausted from SubmitAnswer, got %v", err)
	}
}

func TestAnswerOrdinalsFollowSubmissionOrder(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	sess, err := svc.Create(ctx, "guest:u1", profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	answerN(t, svc, "guest:u1", sess.ID, 4)

	got, _, err := svc.Get(ctx, "guest:u1", sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Answers) != 4 {
		t.Fatalf("expected 4 answers, got %d", len(got.Answers))
	}
	for i, a := range got.Answers {
		if a.QuestionIndex != i {
			t.Fatalf("answer %d has questionIndex %d", i, a.QuestionIndex)
		}
	}
}

func TestCompleteRequiresMinimumAnswers(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	sess, err := svc.Create(ctx, "guest:u1", profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	answerN(t, svc, "guest:u1", sess.ID, 2)

	_, err = svc.Complete(ctx, "guest:u1", sess.ID)
	if !errors.Is(err, recommendations.ErrInsufficientAnswers) {
		t.Fatalf("expected ErrInsufficientAnswers, got %v", err)
	}

	got, _, err := svc.Get(ctx, "guest:u1", sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusActive {
		t.Fatalf("failed completion must leave the session active, got %q", got.Status)
	}
}

func TestCompleteStoresRecommendationAndTransitions(t *testing.T) {
	svc := newTestService(fmt.Errorf("llm down"))
	ctx := context.Background()

	sess, err := svc.Create(ctx, "guest:u1", profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	answerN(t, svc, "guest:u1", sess.ID, 3)

	rec, err := svc.Complete(ctx, "guest:u1", sess.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if rec.Name != "カレーライス" {
		t.Fatalf("expected lunch fallback meal with AI down, got %q", rec.Name)
	}
	if rec.ConfidenceScore != 0.6 {
		t.Fatalf("expected fallback confidence 0.6, got %f", rec.ConfidenceScore)
	}

	got, stored, err := svc.Get(ctx, "guest:u1", sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q", got.Status)
	}
	if got.CompletedAt == nil {
		t.Fatal("expected completedAt to be set")
	}
	if stored == nil || stored.SessionID != sess.ID {
		t.Fatal("expected stored recommendation for the session")
	}
}

func TestTerminalSessionsRejectFurtherActions(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	sess, err := svc.Create(ctx, "guest:u1", profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Abandon(ctx, "guest:u1", sess.ID); err != nil {
		t.Fatalf("Abandon: %v", err)
	}

	if _, err := svc.Abandon(ctx, "guest:u1", sess.ID); !errors.Is(err, ErrSessionNotActive) {
		t.Fatalf("expected ErrSessionNotActive on repeat abandon, got %v", err)
	}
	if _, err := svc.Complete(ctx, "guest:u1", sess.ID); !errors.Is(err, ErrSessionNotActive) {
		t.Fatalf("expected ErrSessionNotActive on complete after abandon, got %v", err)
	}
	if _, _, err := svc.NextQuestion(ctx, "guest:u1", sess.ID); !errors.Is(err, ErrSessionNotActive) {
		t.Fatalf("expected ErrSessionNotActive on next question, got %v", err)
	}
	if _, _, err := svc.SubmitAnswer(ctx, "guest:u1", sess.ID, "q", true, 100); !errors.Is(err, ErrSessionNotActive) {
		t.Fatalf("expected ErrSessionNotActive on answer, got %v", err)
	}
}

func TestSessionsAreScopedToOwner(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	sess, err := svc.Create(ctx, "guest:u1", profiles.TimeLunch, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, _, err := svc.Get(ctx, "guest:u2", sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another user, got %v", err)
	}
}
