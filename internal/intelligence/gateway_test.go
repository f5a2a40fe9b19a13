package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/llm"
)

// mockLLMClient returns a canned response or error and records the last
// request for prompt assertions.
type mockLLMClient struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
}

func (m *mockLLMClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "mock"}, nil
}

func (m *mockLLMClient) Available(context.Context) bool { return m.err == nil }

func validPlanJSON(t *testing.T) string {
	t.Helper()
	days := make([]dayResponse, domain.PlanDays)
	categories := []string{"self-care", "connection", "nature", "cooking", "giving"}
	for i := range days {
		days[i] = dayResponse{
			DayIndex:    i + 1,
			Title:       fmt.Sprintf("Small step %d", i+1),
			Description: "Take a quiet moment for this.",
			Category:    categories[i%len(categories)],
			Tags:        []string{"cozy"},
		}
	}
	data, err := json.Marshal(planResponse{
		SummarySentence: "You are longing for a slower, warmer December.",
		Days:            days,
	})
	require.NoError(t, err)
	return string(data)
}

func TestNextQuestion_TextQuestion(t *testing.T) {
	client := &mockLLMClient{response: `{"questionText":"What does a perfect December evening look like?","inputType":"text"}`}
	gen := NewQuestionGenerator(client)

	draft, err := gen.NextQuestion(context.Background(), QuestionContext{
		Wish:    "a calmer season",
		Ordinal: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InputText, draft.InputType)
	assert.Empty(t, draft.Options)
	assert.Contains(t, client.lastReq.UserPrompt, "a calmer season")
	assert.Equal(t, llm.TaskQuestion, client.lastReq.Task)
}

func TestNextQuestion_SelectCarriesOptions(t *testing.T) {
	client := &mockLLMClient{response: `{"questionText":"Which evenings are usually free?","inputType":"multi-select","options":["Mon","Wed","Fri"]}`}
	gen := NewQuestionGenerator(client)

	draft, err := gen.NextQuestion(context.Background(), QuestionContext{Wish: "w", Ordinal: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.InputMultiSelect, draft.InputType)
	assert.Equal(t, []string{"Mon", "Wed", "Fri"}, draft.Options)
}

func TestNextQuestion_TranscriptInPrompt(t *testing.T) {
	client := &mockLLMClient{response: `{"questionText":"And who with?","inputType":"text"}`}
	gen := NewQuestionGenerator(client)

	_, err := gen.NextQuestion(context.Background(), QuestionContext{
		Wish:    "w",
		Ordinal: 3,
		Transcript: []QA{
			{Question: "What matters most?", Answer: "quiet mornings"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, client.lastReq.UserPrompt, "quiet mornings")
}

func TestNextQuestion_SelectWithoutOptionsFails(t *testing.T) {
	client := &mockLLMClient{response: `{"questionText":"Pick one","inputType":"single-select"}`}
	gen := NewQuestionGenerator(client)

	_, err := gen.NextQuestion(context.Background(), QuestionContext{Wish: "w", Ordinal: 1})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestNextQuestion_TextWithOptionsFails(t *testing.T) {
	client := &mockLLMClient{response: `{"questionText":"Describe it","inputType":"text","options":["a","b"]}`}
	gen := NewQuestionGenerator(client)

	_, err := gen.NextQuestion(context.Background(), QuestionContext{Wish: "w", Ordinal: 1})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestNextQuestion_UnknownInputTypeFails(t *testing.T) {
	client := &mockLLMClient{response: `{"questionText":"Rate it","inputType":"slider"}`}
	gen := NewQuestionGenerator(client)

	_, err := gen.NextQuestion(context.Background(), QuestionContext{Wish: "w", Ordinal: 1})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestNextQuestion_ClientErrorWrapped(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrUnavailable}
	gen := NewQuestionGenerator(client)

	_, err := gen.NextQuestion(context.Background(), QuestionContext{Wish: "w", Ordinal: 1})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGeneratePlan_Valid(t *testing.T) {
	client := &mockLLMClient{response: validPlanJSON(t)}
	gen := NewPlanGenerator(client)

	draft, err := gen.GeneratePlan(context.Background(), PlanContext{Wish: "a calmer season"})
	require.NoError(t, err)
	assert.Len(t, draft.Days, domain.PlanDays)
	assert.NotEmpty(t, draft.SummarySentence)
	assert.Equal(t, llm.TaskPlan, client.lastReq.Task)
}

func TestGeneratePlan_WrongDayCountFails(t *testing.T) {
	short := planResponse{SummarySentence: "s", Days: []dayResponse{
		{DayIndex: 1, Title: "t", Description: "d", Category: "nature"},
	}}
	data, err := json.Marshal(short)
	require.NoError(t, err)

	gen := NewPlanGenerator(&mockLLMClient{response: string(data)})
	_, err = gen.GeneratePlan(context.Background(), PlanContext{Wish: "w"})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGeneratePlan_DuplicateDayIndexFails(t *testing.T) {
	raw := validPlanJSON(t)
	var resp planResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	resp.Days[24].DayIndex = 1 // duplicates day 1
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	gen := NewPlanGenerator(&mockLLMClient{response: string(data)})
	_, err = gen.GeneratePlan(context.Background(), PlanContext{Wish: "w"})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGeneratePlan_UnknownCategoryFails(t *testing.T) {
	raw := validPlanJSON(t)
	var resp planResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	resp.Days[3].Category = "shopping"
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	gen := NewPlanGenerator(&mockLLMClient{response: string(data)})
	_, err = gen.GeneratePlan(context.Background(), PlanContext{Wish: "w"})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGeneratePlan_FencedOutputAccepted(t *testing.T) {
	fenced := "```json\n" + validPlanJSON(t) + "\n```"
	gen := NewPlanGenerator(&mockLLMClient{response: fenced})

	draft, err := gen.GeneratePlan(context.Background(), PlanContext{Wish: "w"})
	require.NoError(t, err)
	assert.Len(t, draft.Days, domain.PlanDays)
}
