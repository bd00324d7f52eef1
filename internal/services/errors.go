package services

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
	ErrBadCreds = errors.New("invalid usuario or password")
)

// ValidationError aggregates every field problem found in one request, so
// the caller sees all of them at once instead of the first.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func validationErr(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}
