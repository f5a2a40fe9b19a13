package cli

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/emmavds/softseason/internal/domain"
)

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.ErrValidation
	}
	return nil
}

// wishForm collects the opening wish.
func wishForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you wish for this December?").
				Placeholder("a calmer season with more time for the people I love").
				Value(value).
				Validate(validateNonEmpty),
		),
	).WithTheme(softseasonHuhTheme()).WithShowHelp(false)
}

// answerForm builds the input form matching a question's input type and
// writes the collected value into out.
func answerForm(q *domain.Question, out *domain.AnswerValue) *huh.Form {
	var field huh.Field
	switch q.InputType {
	case domain.InputSingleSelect:
		options := make([]huh.Option[string], 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, huh.NewOption(opt, opt))
		}
		field = huh.NewSelect[string]().
			Title(q.Text).
			Options(options...).
			Value(&out.Text)
	case domain.InputMultiSelect:
		options := make([]huh.Option[string], 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, huh.NewOption(opt, opt))
		}
		if out.Selections == nil {
			out.Selections = []string{}
		}
		field = huh.NewMultiSelect[string]().
			Title(q.Text).
			Options(options...).
			Validate(func(sel []string) error {
				if len(sel) == 0 {
					return domain.ErrValidation
				}
				return nil
			}).
			Value(&out.Selections)
	default:
		field = huh.NewInput().
			Title(q.Text).
			Value(&out.Text).
			Validate(validateNonEmpty)
	}

	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(softseasonHuhTheme()).
		WithShowHelp(false)
}

// emailForm collects an optional email address. An empty value means the
// user skipped it.
func emailForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email for your plan (optional, enter to skip)").
				Placeholder("you@example.com").
				Value(value).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return domain.ValidateEmail(strings.TrimSpace(s))
				}),
		),
	).WithTheme(softseasonHuhTheme()).WithShowHelp(false)
}
