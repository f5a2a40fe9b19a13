package service

import (
	"context"

	"github.com/emmavds/softseason/internal/domain"
)

// NextQuestionResult is the outcome of asking for the next question:
// either the questioning phase is done, or there is a question to answer.
type NextQuestionResult struct {
	Done     bool
	Question *domain.Question
}

// Plan is a session's generated plan: the one-sentence summary and the
// 25 daily tasks ordered by day index.
type Plan struct {
	SummarySentence string
	Tasks           []*domain.DailyTask
}

type SessionService interface {
	// Create starts a new session from a wish. The wish must be non-empty
	// after trimming.
	Create(ctx context.Context, wish string) (*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// SaveEmail validates and stores the email on an existing session.
	SaveEmail(ctx context.Context, id, email string) error
}

type QuestionService interface {
	// Next returns the session's pending unanswered question if one
	// exists, generates and persists a new one otherwise, or reports the
	// questioning phase done once five questions are answered.
	Next(ctx context.Context, sessionID string) (*NextQuestionResult, error)

	// SubmitAnswer records an answer and reports whether the questioning
	// phase is complete. When the fifth answer lands, plan generation is
	// attempted best-effort; its failure never fails the submission.
	SubmitAnswer(ctx context.Context, sessionID, questionID string, value domain.AnswerValue) (done bool, err error)
}

type PlanService interface {
	// GetOrCreate returns the session's plan, generating and persisting
	// it on first call. A plan, once persisted, is never regenerated.
	GetOrCreate(ctx context.Context, sessionID string) (*Plan, error)

	// ToggleTask overwrites a task's completion flag.
	ToggleTask(ctx context.Context, taskID string, completed bool) (bool, error)
}
