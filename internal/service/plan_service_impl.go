package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/emmavds/softseason/internal/db"
	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/intelligence"
	"github.com/emmavds/softseason/internal/quotes"
	"github.com/emmavds/softseason/internal/repository"
)

type planService struct {
	sessions  repository.SessionRepo
	questions repository.QuestionRepo
	answers   repository.AnswerRepo
	tasks     repository.DailyTaskRepo
	generator intelligence.PlanGenerator
	quotes    quotes.Source
	uow       db.UnitOfWork
	locks     *SessionLocks
	observer  UseCaseObserver
	now       func() time.Time
}

func NewPlanService(
	sessions repository.SessionRepo,
	questions repository.QuestionRepo,
	answers repository.AnswerRepo,
	tasks repository.DailyTaskRepo,
	generator intelligence.PlanGenerator,
	quoteSource quotes.Source,
	uow db.UnitOfWork,
	locks *SessionLocks,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		sessions:  sessions,
		questions: questions,
		answers:   answers,
		tasks:     tasks,
		generator: generator,
		quotes:    quoteSource,
		uow:       uow,
		locks:     locks,
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

func (s *planService) GetOrCreate(ctx context.Context, sessionID string) (*Plan, error) {
	release := s.locks.Acquire(sessionID)
	defer release()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	exists, err := s.tasks.ExistsForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.loadPlan(ctx, session)
	}

	started := time.Now()
	plan, err := s.createPlan(ctx, session)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan_create",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"session_id": sessionID},
		StartedAt: started,
	})
	return plan, err
}

func (s *planService) loadPlan(ctx context.Context, session *domain.Session) (*Plan, error) {
	tasks, err := s.tasks.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	summary := ""
	if session.SummarySentence != nil {
		summary = *session.SummarySentence
	}
	return &Plan{SummarySentence: summary, Tasks: tasks}, nil
}

func (s *planService) createPlan(ctx context.Context, session *domain.Session) (*Plan, error) {
	transcript, err := s.transcript(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	pool := s.quotes.Fetch(ctx, domain.PlanDays)
	draft, err := s.generator.GeneratePlan(ctx, intelligence.PlanContext{
		Wish:       session.Wish,
		Transcript: transcript,
		Quotes:     pool,
	})
	if err != nil {
		return nil, err
	}

	dates := domain.AdventDates(s.now())
	tasks := make([]*domain.DailyTask, 0, len(draft.Days))
	for i, day := range draft.Days {
		quote := pool[i%len(pool)]
		tasks = append(tasks, &domain.DailyTask{
			ID:          uuid.New().String(),
			SessionID:   session.ID,
			DayIndex:    day.DayIndex,
			TargetDate:  dates[day.DayIndex-1],
			Title:       day.Title,
			Description: day.Description,
			Category:    day.Category,
			Tags:        day.Tags,
			QuoteText:   quote.Text,
			QuoteAuthor: quote.Author,
		})
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].DayIndex < tasks[j].DayIndex })

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txTasks := repository.NewSQLiteDailyTaskRepo(tx)
		if err := txSessions.SetSummary(ctx, session.ID, draft.SummarySentence); err != nil {
			return err
		}
		return txTasks.CreateBatch(ctx, tasks)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// A concurrent writer persisted the plan first; serve that one.
			fresh, ferr := s.sessions.GetByID(ctx, session.ID)
			if ferr != nil {
				return nil, ferr
			}
			return s.loadPlan(ctx, fresh)
		}
		return nil, err
	}
	return &Plan{SummarySentence: draft.SummarySentence, Tasks: tasks}, nil
}

// transcript flattens a session's answered questions in index order.
// Questions without an answer yet are skipped.
func (s *planService) transcript(ctx context.Context, sessionID string) ([]intelligence.QA, error) {
	qs, err := s.questions.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]intelligence.QA, 0, len(qs))
	for _, q := range qs {
		a, err := s.answers.FirstByQuestion(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		if a == nil {
			continue
		}
		out = append(out, intelligence.QA{Question: q.Text, Answer: a.Value.Transcript()})
	}
	return out, nil
}

func (s *planService) ToggleTask(ctx context.Context, taskID string, completed bool) (bool, error) {
	if err := s.tasks.SetCompleted(ctx, taskID, completed); err != nil {
		return false, err
	}
	return completed, nil
}
