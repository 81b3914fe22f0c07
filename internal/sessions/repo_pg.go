package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/takumines/meal-finder/internal/profiles"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, s Session) error {
	var loc []byte
	if s.Location != nil {
		b, err := json.Marshal(s.Location)
		if err != nil {
			return fmt.Errorf("marshal location: %w", err)
		}
		loc = b
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO question_sessions (id, user_id, time_of_day, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, string(s.TimeOfDay), loc, string(s.Status), s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Session, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, time_of_day, location, status, created_at, completed_at
		FROM question_sessions
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)

	var (
		s           Session
		timeOfDay   string
		loc         []byte
		status      string
		completedAt sql.NullTime
	)
	err := row.Scan(&s.ID, &s.UserID, &timeOfDay, &loc, &status, &s.CreatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("scan session: %w", err)
	}
	s.TimeOfDay = profiles.TimeSlot(timeOfDay)
	s.Status = Status(status)
	if completedAt.Valid {
		t := completedAt.Time
		s.CompletedAt = &t
	}
	if len(loc) > 0 {
		var l profiles.Location
		if err := json.Unmarshal(loc, &l); err != nil {
			return Session{}, fmt.Errorf("unmarshal location: %w", err)
		}
		s.Location = &l
	}

	answers, err := r.listAnswers(ctx, id)
	if err != nil {
		return Session{}, err
	}
	s.Answers = answers
	return s, nil
}

func (r *PGRepo) listAnswers(ctx context.Context, sessionID string) ([]Answer, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, session_id, question_id, response, response_time_ms, question_index, answered_at
		FROM answers
		WHERE session_id = $1
		ORDER BY question_index ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.ID, &a.SessionID, &a.QuestionID, &a.Response, &a.ResponseTimeMs, &a.QuestionIndex, &a.AnsweredAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, status Status, completedAt *time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE question_sessions
		SET status = $2, completed_at = $3
		WHERE id = $1`,
		id, string(status), completedAt,
	)
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) AddAnswer(ctx context.Context, a Answer) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO answers (id, session_id, question_id, response, response_time_ms, question_index, answered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.SessionID, a.QuestionID, a.Response, a.ResponseTimeMs, a.QuestionIndex, a.AnsweredAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateAnswer
		}
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}
