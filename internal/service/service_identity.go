package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/store"
	"github.com/vparshin/go-note-keeper/models"
)

type identityService struct {
	userRepository store.UserRepository

	logger *logger.Logger
	now    func() time.Time
}

func NewIdentityService(userRepository store.UserRepository, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository: userRepository,
		logger:         logger,
		now:            time.Now,
	}
}

// EnsureOwner guarantees the owner row for callerID exists before any note
// operation runs. The derived email is a placeholder; the first call wins
// and later calls never overwrite stored fields.
func (s *identityService) EnsureOwner(ctx context.Context, callerID string) error {
	if callerID == "" {
		return ErrEmptyCallerID
	}

	owner := models.User{
		UserID:    callerID,
		Email:     fmt.Sprintf("%s@example.com", callerID),
		CreatedAt: s.now().UTC(),
	}

	return s.userRepository.EnsureUser(ctx, owner)
}
