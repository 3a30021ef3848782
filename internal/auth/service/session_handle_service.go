package service

import (
	"github.com/google/uuid"

	apperrors "github.com/allisson/gamestats/internal/errors"
)

// sessionHandleService implements SessionHandleService with random UUIDv4 values.
type sessionHandleService struct{}

// NewHandle returns a random UUIDv4 string.
func (s *sessionHandleService) NewHandle() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate session handle")
	}
	return id.String(), nil
}

// NewSessionHandleService creates a new SessionHandleService.
func NewSessionHandleService() SessionHandleService {
	return &sessionHandleService{}
}
