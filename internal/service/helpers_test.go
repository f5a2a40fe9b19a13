package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/intelligence"
	"github.com/emmavds/softseason/internal/quotes"
	"github.com/emmavds/softseason/internal/repository"
	"github.com/emmavds/softseason/internal/testutil"
)

// stubQuestionGen produces deterministic text questions and counts calls.
type stubQuestionGen struct {
	mu    sync.Mutex
	calls int
	fail  bool
	// draft overrides the produced draft when non-nil.
	draft *intelligence.QuestionDraft
}

func (g *stubQuestionGen) NextQuestion(_ context.Context, qc intelligence.QuestionContext) (*intelligence.QuestionDraft, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.fail {
		return nil, fmt.Errorf("%w: model produced no usable question", domain.ErrGenerationFailed)
	}
	if g.draft != nil {
		copied := *g.draft
		return &copied, nil
	}
	return &intelligence.QuestionDraft{
		Text:      fmt.Sprintf("Follow-up %d about %q", qc.Ordinal, qc.Wish),
		InputType: domain.InputText,
	}, nil
}

// stubPlanGen produces a full valid plan draft and counts calls.
type stubPlanGen struct {
	mu    sync.Mutex
	calls int
	fail  bool
	// lastContext records the most recent generation input.
	lastContext intelligence.PlanContext
}

func (g *stubPlanGen) GeneratePlan(_ context.Context, pc intelligence.PlanContext) (*intelligence.PlanDraft, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.lastContext = pc
	if g.fail {
		return nil, fmt.Errorf("%w: model produced no usable plan", domain.ErrGenerationFailed)
	}

	draft := &intelligence.PlanDraft{
		SummarySentence: "A slow, warm December shaped around your wish.",
		Days:            make([]intelligence.PlanDay, domain.PlanDays),
	}
	for i := range draft.Days {
		draft.Days[i] = intelligence.PlanDay{
			DayIndex:    i + 1,
			Title:       fmt.Sprintf("Gentle step %d", i+1),
			Description: "Take a quiet moment for this today.",
			Category:    domain.CategorySelfCare,
			Tags:        []string{"cozy"},
		}
	}
	return draft, nil
}

func (g *stubPlanGen) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type testEnv struct {
	db        *sql.DB
	sessions  repository.SessionRepo
	questions repository.QuestionRepo
	answers   repository.AnswerRepo
	tasks     repository.DailyTaskRepo

	questionGen *stubQuestionGen
	planGen     *stubPlanGen

	sessionSvc  SessionService
	questionSvc QuestionService
	planSvc     PlanService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	env := &testEnv{
		db:          database,
		sessions:    repository.NewSQLiteSessionRepo(database),
		questions:   repository.NewSQLiteQuestionRepo(database),
		answers:     repository.NewSQLiteAnswerRepo(database),
		tasks:       repository.NewSQLiteDailyTaskRepo(database),
		questionGen: &stubQuestionGen{},
		planGen:     &stubPlanGen{},
	}

	locks := NewSessionLocks()
	env.sessionSvc = NewSessionService(env.sessions)
	env.planSvc = NewPlanService(env.sessions, env.questions, env.answers, env.tasks,
		env.planGen, quotes.FallbackSource{}, testutil.NewTestUoW(database), locks)
	env.questionSvc = NewQuestionService(env.sessions, env.questions, env.answers,
		env.questionGen, env.planSvc, locks)
	return env
}

// answerAll walks the full question loop for a session, answering every
// question with plain text, and returns done from the final submission.
func (env *testEnv) answerAll(t *testing.T, sessionID string) bool {
	t.Helper()
	ctx := context.Background()
	done := false
	for i := 0; i < domain.MaxQuestions; i++ {
		next, err := env.questionSvc.Next(ctx, sessionID)
		if err != nil {
			t.Fatalf("next question %d: %v", i+1, err)
		}
		if next.Done {
			t.Fatalf("unexpected done before %d answers", domain.MaxQuestions)
		}
		done, err = env.questionSvc.SubmitAnswer(ctx, sessionID, next.Question.ID,
			domain.AnswerValue{Text: fmt.Sprintf("answer %d", i+1)})
		if err != nil {
			t.Fatalf("submit answer %d: %v", i+1, err)
		}
	}
	return done
}
