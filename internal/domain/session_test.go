package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWish(t *testing.T) {
	assert.NoError(t, ValidateWish("a calmer December"))
	assert.ErrorIs(t, ValidateWish(""), ErrValidation)
	assert.ErrorIs(t, ValidateWish("   \t  "), ErrValidation)
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.org", "x@sub.domain.io"}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{"", "not-an-email", "a@b", "a b@c.de", "@example.com", "a@.com "}
	for _, email := range invalid {
		assert.ErrorIs(t, ValidateEmail(email), ErrValidation, email)
	}
}
