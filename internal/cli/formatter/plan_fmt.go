package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/emmavds/softseason/internal/domain"
)

// FormatPlan renders a full 25-day plan: summary sentence, then one line
// per day with date, completion marker, title, and category tag.
func FormatPlan(summary string, tasks []*domain.DailyTask, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Your Soft Season"))
	b.WriteString("\n")
	if summary != "" {
		b.WriteString(StyleItalic.Render(summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, task := range tasks {
		b.WriteString(FormatTaskLine(task, now))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTaskLine renders one plan row: "Dec  3  ● Title [Category]".
// Today's row is highlighted; completed rows get a check mark.
func FormatTaskLine(task *domain.DailyTask, now time.Time) string {
	date := fmt.Sprintf("%-6s", domain.FormatDateShort(task.TargetDate))

	marker := StyleDim.Render("○")
	if task.IsCompleted {
		marker = StyleGreen.Render("✓")
	}

	title := task.Title
	switch {
	case domain.IsToday(task.TargetDate, now):
		date = StyleHeader.Render(date)
		title = StyleBold.Render(title)
	case domain.IsPast(task.TargetDate, now) && !task.IsCompleted:
		title = StyleDim.Render(title)
	default:
		title = StyleFg.Render(title)
	}

	return fmt.Sprintf("  %s %s %s %s", Dim(date), marker, title, CategoryTag(task.Category))
}

// FormatTaskDetail renders one task in full: date, title, description,
// tags, and the day's quote.
func FormatTaskDetail(task *domain.DailyTask) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		StyleHeader.Render(fmt.Sprintf("Day %d", task.DayIndex)),
		Dim(domain.FormatDateLong(task.TargetDate)),
		CategoryTag(task.Category)))
	b.WriteString(Bold(task.Title))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(task.Description))
	b.WriteString("\n")
	if len(task.Tags) > 0 {
		b.WriteString(Dim("tags: " + strings.Join(task.Tags, ", ")))
		b.WriteString("\n")
	}
	if task.QuoteText != "" {
		b.WriteString(StyleItalic.Render(fmt.Sprintf("“%s” — %s", task.QuoteText, task.QuoteAuthor)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatQuestion renders a question header like "Question 2 of 5".
func FormatQuestion(q *domain.Question) string {
	return fmt.Sprintf("%s\n%s",
		Dim(fmt.Sprintf("Question %d of %d", q.Index, domain.MaxQuestions)),
		Bold(q.Text))
}
