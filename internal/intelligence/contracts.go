package intelligence

import (
	"context"

	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/quotes"
)

// QA is one answered question in a session transcript.
type QA struct {
	Question string
	Answer   string
}

// QuestionContext carries everything the question generator may draw on:
// the original wish, the ordinal of the question being produced, and the
// transcript so far.
type QuestionContext struct {
	Wish       string
	Ordinal    int // "question N of 5"
	Transcript []QA
}

// QuestionDraft is a generated question before the orchestrator assigns
// it an index and persists it. The generator never chooses the index.
type QuestionDraft struct {
	Text      string
	InputType domain.InputType
	Options   []string
}

// PlanContext aggregates a full session for plan generation. Quotes are
// thematic flavor only; the prompt instructs the model not to copy them
// into output.
type PlanContext struct {
	Wish       string
	Transcript []QA
	Quotes     []quotes.Quote
}

// PlanDay is one generated day entry.
type PlanDay struct {
	DayIndex    int
	Title       string
	Description string
	Category    domain.Category
	Tags        []string
}

// PlanDraft is a complete generated plan before persistence.
type PlanDraft struct {
	SummarySentence string
	Days            []PlanDay
}

// QuestionGenerator produces the next follow-up question for a session.
// A schema violation in the model output is a domain.ErrGenerationFailed;
// no retries are performed here.
type QuestionGenerator interface {
	NextQuestion(ctx context.Context, qc QuestionContext) (*QuestionDraft, error)
}

// PlanGenerator produces a full plan: one summary sentence and exactly
// domain.PlanDays day entries.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, pc PlanContext) (*PlanDraft, error)
}
