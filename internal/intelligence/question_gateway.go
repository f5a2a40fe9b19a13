package intelligence

import (
	"context"
	"fmt"

	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/llm"
)

// questionGateway implements QuestionGenerator over an llm.Client.
type questionGateway struct {
	client llm.Client
}

// NewQuestionGenerator creates a QuestionGenerator backed by the given
// model client.
func NewQuestionGenerator(client llm.Client) QuestionGenerator {
	return &questionGateway{client: client}
}

// questionResponse is the JSON structure expected from the model.
type questionResponse struct {
	QuestionText string   `json:"questionText"`
	InputType    string   `json:"inputType"`
	Options      []string `json:"options"`
}

func (g *questionGateway) NextQuestion(ctx context.Context, qc QuestionContext) (*QuestionDraft, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskQuestion,
		SystemPrompt: questionSystemPrompt,
		UserPrompt:   buildQuestionUserPrompt(qc),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: question generation: %v", domain.ErrGenerationFailed, err)
	}

	parsed, err := llm.ExtractJSON[questionResponse](resp.Text, validateQuestionResponse)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	draft := &QuestionDraft{
		Text:      parsed.QuestionText,
		InputType: domain.InputType(parsed.InputType),
	}
	if draft.InputType.WantsOptions() {
		draft.Options = parsed.Options
	}
	return draft, nil
}

// validateQuestionResponse enforces the question output schema: options
// must be present and non-empty iff the input type is a select type.
func validateQuestionResponse(r questionResponse) error {
	if r.QuestionText == "" {
		return fmt.Errorf("questionText is empty")
	}
	if !domain.ValidInputTypes[r.InputType] {
		return fmt.Errorf("unknown inputType %q", r.InputType)
	}
	if domain.InputType(r.InputType).WantsOptions() {
		if len(r.Options) == 0 {
			return fmt.Errorf("inputType %q requires options", r.InputType)
		}
		for i, opt := range r.Options {
			if opt == "" {
				return fmt.Errorf("option %d is empty", i)
			}
		}
	} else if len(r.Options) > 0 {
		return fmt.Errorf("text questions must not carry options")
	}
	return nil
}
