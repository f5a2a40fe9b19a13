package domain

import "time"

// PlanDays is the fixed number of daily tasks in a generated plan.
const PlanDays = 25

// DailyTask is one day of the advent plan. Tasks are created in a single
// batch of exactly PlanDays rows; IsCompleted is the only field mutated
// after creation.
type DailyTask struct {
	ID          string
	SessionID   string
	DayIndex    int // 1..PlanDays, unique per session
	TargetDate  time.Time
	Title       string
	Description string
	Category    Category
	Tags        []string
	QuoteText   string
	QuoteAuthor string
	IsCompleted bool
}
