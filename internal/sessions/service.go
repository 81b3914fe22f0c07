package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/takumines/meal-finder/internal/profiles"
	"github.com/takumines/meal-finder/internal/questions"
	"github.com/takumines/meal-finder/internal/recommendations"
	"github.com/takumines/meal-finder/internal/shared/metrics"
	"github.com/takumines/meal-finder/internal/shared/telemetry"
)

// Service drives the session lifecycle: creation, question flow, answer
// collection and the completed/abandoned transitions.
type Service struct {
	Repo         Repo
	Profiles     *profiles.Service
	Generator    *questions.Generator
	Orchestrator *recommendations.Orchestrator
	RecRepo      recommendations.Repo

	// now is swappable in tests.
	now func() time.Time
}

func NewService(repo Repo, prof *profiles.Service, gen *questions.Generator, orch *recommendations.Orchestrator, recRepo recommendations.Repo) *Service {
	return &Service{
		Repo:         repo,
		Profiles:     prof,
		Generator:    gen,
		Orchestrator: orch,
		RecRepo:      recRepo,
		now:          time.Now,
	}
}

// Create starts a new active session for the user.
func (s *Service) Create(ctx context.Context, userID string, timeOfDay profiles.TimeSlot, location *profiles.Location) (Session, error) {
	if _, err := s.Profiles.GetOrCreate(ctx, userID); err != nil {
		return Session{}, err
	}

	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		TimeOfDay: timeOfDay,
		Location:  location,
		Status:    StatusActive,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}

	metrics.IncSessionStarted()
	telemetry.Info("session.created", map[string]any{
		"session_id":  sess.ID,
		"user_id":     userID,
		"time_of_day": string(timeOfDay),
	})
	return sess, nil
}

// Get returns the session with its answers and, when one exists, its
// recommendation.
func (s *Service) Get(ctx context.Context, userID, id string) (Session, *recommendations.MealRecommendation, error) {
	sess, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return Session{}, nil, err
	}

	rec, err := s.RecRepo.GetBySession(ctx, id)
	if errors.Is(err, recommendations.ErrNotFound) {
		return sess, nil, nil
	}
	if err != nil {
		return Session{}, nil, err
	}
	return sess, &rec, nil
}

// NextQuestion returns the next question for an active session. Generation
// never fails; only the session state can reject the request.
func (s *Service) NextQuestion(ctx context.Context, userID, id string) (questions.Question, Session, error) {
	sess, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return questions.Question{}, Session{}, err
	}
	if sess.Status != StatusActive {
		return questions.Question{}, Session{}, ErrSessionNotActive
	}
	if len(sess.Answers) >= MaxQuestions {
		return questions.Question{}, Session{}, ErrSessionExhausted
	}

	profile, err := s.Profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return questions.Question{}, Session{}, err
	}

	q := s.Generator.Next(ctx, profile, sess.AnsweredQuestionIDs(), sess.TimeOfDay, sess.Location)
	return q, sess, nil
}

// SubmitAnswer records one yes/no response. Duplicate question ids and
// exhausted sessions are rejected; the answer's ordinal index is the answer
// count at submission time.
func (s *Service) SubmitAnswer(ctx context.Context, userID, id, questionID string, response bool, responseTimeMs int) (Answer, Session, error) {
	if questionID == "" {
		return Answer{}, Session{}, ErrInvalidInput
	}

	sess, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return Answer{}, Session{}, err
	}
	if sess.Status != StatusActive {
		return Answer{}, Session{}, ErrSessionNotActive
	}
	if len(sess.Answers) >= MaxQuestions {
		return Answer{}, Session{}, ErrSessionExhausted
	}
	if sess.HasAnswered(questionID) {
		return Answer{}, Session{}, ErrDuplicateAnswer
	}

	answer := Answer{
		ID:             uuid.NewString(),
		SessionID:      id,
		QuestionID:     questionID,
		Response:       response,
		ResponseTimeMs: responseTimeMs,
		QuestionIndex:  len(sess.Answers),
		AnsweredAt:     s.now().UTC(),
	}
	if err := s.Repo.AddAnswer(ctx, answer); err != nil {
		return Answer{}, Session{}, err
	}

	sess.Answers = append(sess.Answers, answer)
	return answer, sess, nil
}

// Complete generates and stores the session's recommendation, then marks the
// session completed. The recommendation step cannot fail once enough answers
// exist, so a completed session always has a recommendation.
func (s *Service) Complete(ctx context.Context, userID, id string) (recommendations.MealRecommendation, error) {
	sess, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return recommendations.MealRecommendation{}, err
	}
	if sess.Status != StatusActive {
		return recommendations.MealRecommendation{}, ErrSessionNotActive
	}

	profile, err := s.Profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return recommendations.MealRecommendation{}, err
	}

	inputs := make([]recommendations.AnswerInput, 0, len(sess.Answers))
	for _, a := range sess.Answers {
		inputs = append(inputs, recommendations.AnswerInput{QuestionID: a.QuestionID, Response: a.Response})
	}

	generated, err := s.Orchestrator.Generate(ctx, profile, inputs, sess.TimeOfDay, sess.Location)
	if err != nil {
		return recommendations.MealRecommendation{}, err
	}

	rec := recommendations.MealRecommendation{
		ID:        uuid.NewString(),
		SessionID: id,
		UserID:    userID,
		Generated: generated,
		CreatedAt: s.now().UTC(),
	}
	if err := s.RecRepo.Upsert(ctx, rec); err != nil {
		return recommendations.MealRecommendation{}, err
	}

	completedAt := s.now().UTC()
	if err := s.Repo.UpdateStatus(ctx, id, StatusCompleted, &completedAt); err != nil {
		return recommendations.MealRecommendation{}, err
	}

	metrics.IncSessionCompleted()
	telemetry.Info("session.completed", map[string]any{
		"session_id":        id,
		"status_transition": "active->completed",
		"answer_count":      len(sess.Answers),
	})
	return rec, nil
}

// Abandon marks an active session abandoned. The transition is explicit;
// idle sessions are never reaped automatically.
func (s *Service) Abandon(ctx context.Context, userID, id string) (Session, error) {
	sess, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return Session{}, err
	}
	if sess.Status != StatusActive {
		return Session{}, ErrSessionNotActive
	}

	completedAt := s.now().UTC()
	if err := s.Repo.UpdateStatus(ctx, id, StatusAbandoned, &completedAt); err != nil {
		return Session{}, err
	}
	sess.Status = StatusAbandoned
	sess.CompletedAt = &completedAt

	metrics.IncSessionAbandoned()
	telemetry.Info("session.abandoned", map[string]any{
		"session_id":        id,
		"status_transition": "active->abandoned",
	})
	return sess, nil
}
