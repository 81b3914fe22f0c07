package sessions

import "errors"

var (
	ErrNotFound         = errors.New("session not found")
	ErrSessionNotActive = errors.New("session is not active")
	ErrSessionExhausted = errors.New("session reached the question limit")
	ErrDuplicateAnswer  = errors.New("question already answered in this session")
	ErrInvalidInput     = errors.New("invalid session input")
)
