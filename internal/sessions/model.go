package sessions

import (
	"strings"
	"time"

	"github.com/takumines/meal-finder/internal/profiles"
)

// Status is the closed set of session states. A session leaves active at
// most once; completed and abandoned are terminal.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// ParseStatus normalizes raw input, reporting whether it is a known status.
func ParseStatus(raw string) (Status, bool) {
	val := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch val {
	case StatusActive, StatusCompleted, StatusAbandoned:
		return val, true
	}
	return "", false
}

// Session is one user's end-to-end question-and-recommendation interaction.
type Session struct {
	ID          string
	UserID      string
	TimeOfDay   profiles.TimeSlot
	Location    *profiles.Location
	Status      Status
	CreatedAt   time.Time
	CompletedAt *time.Time
	Answers     []Answer
}

// Answer records one boolean response within a session. At most one answer
// exists per (session, question) pair.
type Answer struct {
	ID             string
	SessionID      string
	QuestionID     string
	Response       bool
	ResponseTimeMs int
	QuestionIndex  int
	AnsweredAt     time.Time
}

// AnsweredQuestionIDs returns the question ids in answer order.
func (s Session) AnsweredQuestionIDs() []string {
	ids := make([]string, 0, len(s.Answers))
	for _, a := range s.Answers {
		ids = append(ids, a.QuestionID)
	}
	return ids
}

// HasAnswered reports whether the session already answered questionID.
func (s Session) HasAnswered(questionID string) bool {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return true
		}
	}
	return false
}
