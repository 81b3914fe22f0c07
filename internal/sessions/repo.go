package sessions

import (
	"context"
	"time"
)

// Repo persists sessions and their answers. GetByID loads answers in
// answer order so callers can derive progress without a second query.
type Repo interface {
	Create(ctx context.Context, s Session) error
	GetByID(ctx context.Context, userID, id string) (Session, error)
	UpdateStatus(ctx context.Context, id string, status Status, completedAt *time.Time) error
	AddAnswer(ctx context.Context, a Answer) error
}
