package repository

import (
	"context"

	"github.com/emmavds/softseason/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// SetSummary writes the summary sentence. The plan orchestrator calls
	// it exactly once, inside the plan-persisting transaction.
	SetSummary(ctx context.Context, id, summary string) error
	SetEmail(ctx context.Context, id, email string) error
	Delete(ctx context.Context, id string) error
}

type QuestionRepo interface {
	Create(ctx context.Context, q *domain.Question) error
	GetByID(ctx context.Context, id string) (*domain.Question, error)
	// ListBySession returns the session's questions ordered by index ascending.
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Question, error)
	// GetByIndex returns the question at the given index for a session.
	GetByIndex(ctx context.Context, sessionID string, index int) (*domain.Question, error)
}

type AnswerRepo interface {
	Create(ctx context.Context, a *domain.Answer) error
	// FirstByQuestion returns the earliest answer referencing the question,
	// or (nil, nil) when the question is unanswered. Later duplicates are
	// tolerated and ignored.
	FirstByQuestion(ctx context.Context, questionID string) (*domain.Answer, error)
}

type DailyTaskRepo interface {
	// CreateBatch inserts all tasks. Run it inside a transaction so a
	// partial batch is never visible.
	CreateBatch(ctx context.Context, tasks []*domain.DailyTask) error
	GetByID(ctx context.Context, id string) (*domain.DailyTask, error)
	// ListBySession returns the session's tasks ordered by day index.
	ListBySession(ctx context.Context, sessionID string) ([]*domain.DailyTask, error)
	ExistsForSession(ctx context.Context, sessionID string) (bool, error)
	// SetCompleted overwrites the completion flag (last write wins).
	SetCompleted(ctx context.Context, id string, completed bool) error
}
