package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmavds/softseason/internal/domain"
)

func TestCreateSession_TrimsWish(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	s, err := env.sessionSvc.Create(ctx, "  a calmer season  ")
	require.NoError(t, err)
	assert.Equal(t, "a calmer season", s.Wish)
	assert.NotEmpty(t, s.ID)

	got, err := env.sessionSvc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Wish, got.Wish)
}

func TestCreateSession_EmptyWishRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sessionSvc.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSaveEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	s, err := env.sessionSvc.Create(ctx, "wish")
	require.NoError(t, err)

	require.NoError(t, env.sessionSvc.SaveEmail(ctx, s.ID, " eve@example.com "))
	got, err := env.sessionSvc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Email)
	assert.Equal(t, "eve@example.com", *got.Email)

	// Overwrite is allowed.
	require.NoError(t, env.sessionSvc.SaveEmail(ctx, s.ID, "new@example.com"))
	got, err = env.sessionSvc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", *got.Email)
}

func TestSaveEmail_Invalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	s, err := env.sessionSvc.Create(ctx, "wish")
	require.NoError(t, err)

	assert.ErrorIs(t, env.sessionSvc.SaveEmail(ctx, s.ID, "not-an-email"), domain.ErrValidation)
	assert.ErrorIs(t, env.sessionSvc.SaveEmail(ctx, s.ID, ""), domain.ErrValidation)
	assert.ErrorIs(t, env.sessionSvc.SaveEmail(ctx, "missing", "a@b.co"), domain.ErrNotFound)
}
