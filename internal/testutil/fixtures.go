package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emmavds/softseason/internal/domain"
)

// Session options
type SessionOption func(*domain.Session)

func WithSummary(s string) SessionOption {
	return func(sess *domain.Session) {
		sess.SummarySentence = &s
	}
}

func WithEmail(e string) SessionOption {
	return func(sess *domain.Session) {
		sess.Email = &e
	}
}

func NewTestSession(wish string, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:        uuid.New().String(),
		Wish:      wish,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Question options
type QuestionOption func(*domain.Question)

func WithInputType(it domain.InputType) QuestionOption {
	return func(q *domain.Question) {
		q.InputType = it
	}
}

func WithOptions(opts ...string) QuestionOption {
	return func(q *domain.Question) {
		q.Options = opts
	}
}

func WithQuestionText(text string) QuestionOption {
	return func(q *domain.Question) {
		q.Text = text
	}
}

func NewTestQuestion(sessionID string, idx int, opts ...QuestionOption) *domain.Question {
	q := &domain.Question{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Index:     idx,
		Text:      fmt.Sprintf("test question %d", idx),
		InputType: domain.InputText,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func NewTestAnswer(questionID string, value domain.AnswerValue) *domain.Answer {
	return &domain.Answer{
		ID:         uuid.New().String(),
		QuestionID: questionID,
		Value:      value,
		CreatedAt:  time.Now().UTC(),
	}
}

func TextAnswer(text string) domain.AnswerValue {
	return domain.AnswerValue{Text: text}
}

func MultiAnswer(selections ...string) domain.AnswerValue {
	return domain.AnswerValue{Selections: selections}
}

// DailyTask options
type DailyTaskOption func(*domain.DailyTask)

func WithCategory(c domain.Category) DailyTaskOption {
	return func(t *domain.DailyTask) {
		t.Category = c
	}
}

func WithCompleted(done bool) DailyTaskOption {
	return func(t *domain.DailyTask) {
		t.IsCompleted = done
	}
}

func WithQuote(text, author string) DailyTaskOption {
	return func(t *domain.DailyTask) {
		t.QuoteText = text
		t.QuoteAuthor = author
	}
}

func NewTestDailyTask(sessionID string, dayIndex int, opts ...DailyTaskOption) *domain.DailyTask {
	t := &domain.DailyTask{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		DayIndex:    dayIndex,
		TargetDate:  time.Date(time.Now().Year(), time.December, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayIndex-1),
		Title:       fmt.Sprintf("day %d task", dayIndex),
		Description: "a small step",
		Category:    domain.CategorySelfCare,
		QuoteText:   "Do small things with great love.",
		QuoteAuthor: "Mother Teresa",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
