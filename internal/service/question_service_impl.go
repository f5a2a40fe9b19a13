package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/intelligence"
	"github.com/emmavds/softseason/internal/repository"
)

type questionService struct {
	sessions  repository.SessionRepo
	questions repository.QuestionRepo
	answers   repository.AnswerRepo
	generator intelligence.QuestionGenerator
	plans     PlanService
	locks     *SessionLocks
	observer  UseCaseObserver
}

// NewQuestionService wires the question flow. plans is used to trigger plan
// generation after the final answer; it may share its SessionLocks with this
// service.
func NewQuestionService(
	sessions repository.SessionRepo,
	questions repository.QuestionRepo,
	answers repository.AnswerRepo,
	generator intelligence.QuestionGenerator,
	plans PlanService,
	locks *SessionLocks,
	observers ...UseCaseObserver,
) QuestionService {
	return &questionService{
		sessions:  sessions,
		questions: questions,
		answers:   answers,
		generator: generator,
		plans:     plans,
		locks:     locks,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// ledger walks a session's questions in index order and splits them into
// answered pairs and the first question still waiting for an answer.
func (s *questionService) ledger(ctx context.Context, sessionID string) (answered []intelligence.QA, pending *domain.Question, err error) {
	qs, err := s.questions.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	for _, q := range qs {
		a, err := s.answers.FirstByQuestion(ctx, q.ID)
		if err != nil {
			return nil, nil, err
		}
		if a == nil {
			if pending == nil {
				pending = q
			}
			continue
		}
		answered = append(answered, intelligence.QA{
			Question: q.Text,
			Answer:   a.Value.Transcript(),
		})
	}
	return answered, pending, nil
}

func (s *questionService) Next(ctx context.Context, sessionID string) (*NextQuestionResult, error) {
	release := s.locks.Acquire(sessionID)
	defer release()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	answered, pending, err := s.ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return &NextQuestionResult{Question: pending}, nil
	}
	if len(answered) >= domain.MaxQuestions {
		return &NextQuestionResult{Done: true}, nil
	}

	ordinal := len(answered) + 1
	draft, err := s.generator.NextQuestion(ctx, intelligence.QuestionContext{
		Wish:       session.Wish,
		Ordinal:    ordinal,
		Transcript: answered,
	})
	if err != nil {
		return nil, err
	}

	question := &domain.Question{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Index:     ordinal,
		Text:      draft.Text,
		InputType: draft.InputType,
		Options:   draft.Options,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.questions.Create(ctx, question); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Another writer claimed this slot; serve its question.
			return s.questionAtIndex(ctx, sessionID, ordinal)
		}
		return nil, err
	}
	return &NextQuestionResult{Question: question}, nil
}

func (s *questionService) questionAtIndex(ctx context.Context, sessionID string, idx int) (*NextQuestionResult, error) {
	q, err := s.questions.GetByIndex(ctx, sessionID, idx)
	if err != nil {
		return nil, err
	}
	return &NextQuestionResult{Question: q}, nil
}

func (s *questionService) SubmitAnswer(ctx context.Context, sessionID, questionID string, value domain.AnswerValue) (bool, error) {
	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return false, err
	}
	if question.SessionID != sessionID {
		return false, domain.ErrNotFound
	}
	if err := domain.ValidateAnswer(question, value); err != nil {
		return false, err
	}

	answer := &domain.Answer{
		ID:         uuid.New().String(),
		QuestionID: questionID,
		Value:      value,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.answers.Create(ctx, answer); err != nil {
		return false, err
	}

	answered, _, err := s.ledger(ctx, sessionID)
	if err != nil {
		return false, err
	}
	done := len(answered) >= domain.MaxQuestions
	if done {
		s.triggerPlan(ctx, sessionID)
	}
	return done, nil
}

// triggerPlan kicks off plan generation after the final answer. Failures are
// observed but never surfaced; the plan endpoint regenerates on demand.
func (s *questionService) triggerPlan(ctx context.Context, sessionID string) {
	started := time.Now()
	_, err := s.plans.GetOrCreate(ctx, sessionID)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan_autocreate",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"session_id": sessionID},
		StartedAt: started,
	})
}
