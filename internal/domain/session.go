package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Session is one user's journey from wish to plan. The wish is immutable
// after creation; the summary sentence is written exactly once when the
// plan is generated.
type Session struct {
	ID              string
	Wish            string
	SummarySentence *string
	Email           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidateWish checks that the wish text is non-empty after trimming.
func ValidateWish(wish string) error {
	if strings.TrimSpace(wish) == "" {
		return fmt.Errorf("%w: wish text must not be empty", ErrValidation)
	}
	return nil
}

// ValidateEmail checks the address against a simple local@domain.tld
// pattern with no embedded whitespace.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email address %q", ErrValidation, email)
	}
	return nil
}
