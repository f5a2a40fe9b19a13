package intelligence

import (
	"context"
	"fmt"

	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/llm"
)

// planGateway implements PlanGenerator over an llm.Client.
type planGateway struct {
	client llm.Client
}

// NewPlanGenerator creates a PlanGenerator backed by the given model client.
func NewPlanGenerator(client llm.Client) PlanGenerator {
	return &planGateway{client: client}
}

// planResponse is the JSON structure expected from the model.
type planResponse struct {
	SummarySentence string        `json:"summarySentence"`
	Days            []dayResponse `json:"days"`
}

type dayResponse struct {
	DayIndex    int      `json:"dayIndex"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

func (g *planGateway) GeneratePlan(ctx context.Context, pc PlanContext) (*PlanDraft, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanUserPrompt(pc),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: plan generation: %v", domain.ErrGenerationFailed, err)
	}

	parsed, err := llm.ExtractJSON[planResponse](resp.Text, validatePlanResponse)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	draft := &PlanDraft{
		SummarySentence: parsed.SummarySentence,
		Days:            make([]PlanDay, len(parsed.Days)),
	}
	for i, d := range parsed.Days {
		draft.Days[i] = PlanDay{
			DayIndex:    d.DayIndex,
			Title:       d.Title,
			Description: d.Description,
			Category:    domain.Category(d.Category),
			Tags:        d.Tags,
		}
	}
	return draft, nil
}

// validatePlanResponse enforces the plan output schema: exactly
// domain.PlanDays day entries whose indices form a permutation of
// 1..PlanDays, each with a known category.
func validatePlanResponse(r planResponse) error {
	if r.SummarySentence == "" {
		return fmt.Errorf("summarySentence is empty")
	}
	if len(r.Days) != domain.PlanDays {
		return fmt.Errorf("expected %d days, got %d", domain.PlanDays, len(r.Days))
	}

	seen := make(map[int]bool, domain.PlanDays)
	for i, d := range r.Days {
		if d.DayIndex < 1 || d.DayIndex > domain.PlanDays {
			return fmt.Errorf("day %d: dayIndex %d out of range", i, d.DayIndex)
		}
		if seen[d.DayIndex] {
			return fmt.Errorf("duplicate dayIndex %d", d.DayIndex)
		}
		seen[d.DayIndex] = true
		if d.Title == "" {
			return fmt.Errorf("day %d: title is empty", d.DayIndex)
		}
		if d.Description == "" {
			return fmt.Errorf("day %d: description is empty", d.DayIndex)
		}
		if !domain.ValidCategories[d.Category] {
			return fmt.Errorf("day %d: unknown category %q", d.DayIndex, d.Category)
		}
	}
	return nil
}
