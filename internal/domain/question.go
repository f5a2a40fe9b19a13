package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MaxQuestions is the number of follow-up questions asked per session.
const MaxQuestions = 5

// Question is one generated follow-up question. Questions are immutable
// once created; Index is assigned by the question orchestrator, never by
// the generator.
type Question struct {
	ID        string
	SessionID string
	Index     int // 1..MaxQuestions, unique per session
	Text      string
	InputType InputType
	Options   []string // required iff InputType != text
	CreatedAt time.Time
}

// Answer is one submitted answer. Answers are immutable and append-only;
// a question counts as answered when at least one answer references it,
// and the first answer found is authoritative.
type Answer struct {
	ID         string
	QuestionID string
	Value      AnswerValue
	CreatedAt  time.Time
}

// AnswerValue holds either a single string (text and single-select
// questions) or an ordered list of strings (multi-select questions).
// Its JSON form is a bare string or an array of strings.
type AnswerValue struct {
	Text       string
	Selections []string
}

// IsMulti reports whether the value carries a selection list.
func (v AnswerValue) IsMulti() bool {
	return v.Selections != nil
}

// Transcript renders the value as a single line for prompt building.
// Multi-select values are comma-joined.
func (v AnswerValue) Transcript() string {
	if v.IsMulti() {
		return strings.Join(v.Selections, ", ")
	}
	return v.Text
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.IsMulti() {
		return json.Marshal(v.Selections)
	}
	return json.Marshal(v.Text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Text = s
		v.Selections = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("answer value must be a string or a string array")
	}
	if list == nil {
		list = []string{}
	}
	v.Text = ""
	v.Selections = list
	return nil
}

// ValidateAnswer checks that the value's shape matches the question's
// input type: select types with options take values drawn from a list,
// text and single-select answers are a single non-empty string,
// multi-select answers are a non-empty string list.
func ValidateAnswer(q *Question, v AnswerValue) error {
	switch q.InputType {
	case InputMultiSelect:
		if !v.IsMulti() {
			return fmt.Errorf("%w: question %d is multi-select and takes a list of selections", ErrValidation, q.Index)
		}
		if len(v.Selections) == 0 {
			return fmt.Errorf("%w: select at least one option", ErrValidation)
		}
		for _, sel := range v.Selections {
			if strings.TrimSpace(sel) == "" {
				return fmt.Errorf("%w: empty selection", ErrValidation)
			}
		}
	case InputText, InputSingleSelect:
		if v.IsMulti() {
			return fmt.Errorf("%w: question %d takes a single answer, not a list", ErrValidation, q.Index)
		}
		if strings.TrimSpace(v.Text) == "" {
			return fmt.Errorf("%w: answer must not be empty", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown input type %q", ErrValidation, q.InputType)
	}
	return nil
}
