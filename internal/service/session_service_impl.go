package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Create(ctx context.Context, wish string) (*domain.Session, error) {
	wish = strings.TrimSpace(wish)
	if err := domain.ValidateWish(wish); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.New().String(),
		Wish:      wish,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) SaveEmail(ctx context.Context, id, email string) error {
	email = strings.TrimSpace(email)
	if err := domain.ValidateEmail(email); err != nil {
		return err
	}
	if _, err := s.sessions.GetByID(ctx, id); err != nil {
		return err
	}
	return s.sessions.SetEmail(ctx, id, email)
}
