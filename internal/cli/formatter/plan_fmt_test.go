package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/testutil"
)

func TestFormatPlan_ListsEveryDay(t *testing.T) {
	sessionID := "s1"
	tasks := make([]*domain.DailyTask, domain.PlanDays)
	for i := range tasks {
		tasks[i] = testutil.NewTestDailyTask(sessionID, i+1)
	}

	now := time.Date(2026, time.December, 3, 10, 0, 0, 0, time.UTC)
	out := FormatPlan("A quiet month ahead.", tasks, now)

	assert.Contains(t, out, "A quiet month ahead.")
	assert.Equal(t, domain.PlanDays, strings.Count(out, "○"), "every day gets its marker")
	assert.Contains(t, out, "Dec 1")
	assert.Contains(t, out, "Dec 25")
}

func TestFormatTaskLine_CompletionMarkers(t *testing.T) {
	now := time.Date(2026, time.December, 10, 0, 0, 0, 0, time.UTC)

	open := testutil.NewTestDailyTask("s", 1)
	assert.Contains(t, FormatTaskLine(open, now), "○")

	done := testutil.NewTestDailyTask("s", 2, testutil.WithCompleted(true))
	assert.Contains(t, FormatTaskLine(done, now), "✓")
}

func TestFormatTaskDetail_IncludesQuote(t *testing.T) {
	task := testutil.NewTestDailyTask("s", 7,
		testutil.WithCategory(domain.CategoryGiving),
		testutil.WithQuote("Give freely.", "Anon"),
	)
	task.Tags = []string{"kindness"}

	out := FormatTaskDetail(task)
	assert.Contains(t, out, "Day 7")
	assert.Contains(t, out, "Give freely.")
	assert.Contains(t, out, "Anon")
	assert.Contains(t, out, "kindness")
	assert.Contains(t, out, domain.CategoryGiving.Label())
}

func TestFormatQuestion(t *testing.T) {
	q := &domain.Question{Index: 2, Text: "What matters most?"}
	out := FormatQuestion(q)
	require.Contains(t, out, "Question 2 of 5")
	assert.Contains(t, out, "What matters most?")
}
