package recommendations

import "errors"

var (
	ErrNotFound            = errors.New("recommendation not found")
	ErrInsufficientAnswers = errors.New("insufficient answers for recommendation generation")
	ErrInvalidReaction     = errors.New("invalid reaction")
)
