package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmavds/softseason/internal/domain"
	"github.com/emmavds/softseason/internal/testutil"
)

func TestQuestionRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	questions := NewSQLiteQuestionRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSession("wish")
	require.NoError(t, sessions.Create(ctx, s))

	q := testutil.NewTestQuestion(s.ID, 1,
		testutil.WithInputType(domain.InputMultiSelect),
		testutil.WithOptions("mornings", "evenings", "weekends"),
	)
	require.NoError(t, questions.Create(ctx, q))

	got, err := questions.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InputMultiSelect, got.InputType)
	assert.Equal(t, []string{"mornings", "evenings", "weekends"}, got.Options)

	_, err = questions.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuestionRepo_ListOrderedByIndex(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	questions := NewSQLiteQuestionRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSession("wish")
	require.NoError(t, sessions.Create(ctx, s))

	// Insert out of order.
	for _, idx := range []int{3, 1, 2} {
		require.NoError(t, questions.Create(ctx, testutil.NewTestQuestion(s.ID, idx)))
	}

	got, err := questions.ListBySession(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, q := range got {
		assert.Equal(t, i+1, q.Index)
	}
}

func TestQuestionRepo_DuplicateIndexConflicts(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	questions := NewSQLiteQuestionRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSession("wish")
	require.NoError(t, sessions.Create(ctx, s))

	require.NoError(t, questions.Create(ctx, testutil.NewTestQuestion(s.ID, 1)))
	err := questions.Create(ctx, testutil.NewTestQuestion(s.ID, 1))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestQuestionRepo_GetByIndex(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	questions := NewSQLiteQuestionRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSession("wish")
	require.NoError(t, sessions.Create(ctx, s))

	q2 := testutil.NewTestQuestion(s.ID, 2)
	require.NoError(t, questions.Create(ctx, testutil.NewTestQuestion(s.ID, 1)))
	require.NoError(t, questions.Create(ctx, q2))

	got, err := questions.GetByIndex(ctx, s.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, q2.ID, got.ID)

	_, err = questions.GetByIndex(ctx, s.ID, 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnswerRepo_FirstByQuestion(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	questions := NewSQLiteQuestionRepo(database)
	answers := NewSQLiteAnswerRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSession("wish")
	require.NoError(t, sessions.Create(ctx, s))
	q := testutil.NewTestQuestion(s.ID, 1)
	require.NoError(t, questions.Create(ctx, q))

	// Unanswered question yields (nil, nil).
	got, err := answers.FirstByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	first := testutil.NewTestAnswer(q.ID, testutil.TextAnswer("first"))
	require.NoError(t, answers.Create(ctx, first))
	require.NoError(t, answers.Create(ctx, testutil.NewTestAnswer(q.ID, testutil.TextAnswer("second"))))

	got, err = answers.FirstByQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Value.Text, "earliest answer is authoritative")
}

func TestAnswerRepo_MultiSelectRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	questions := NewSQLiteQuestionRepo(database)
	answers := NewSQLiteAnswerRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSession("wish")
	require.NoError(t, sessions.Create(ctx, s))
	q := testutil.NewTestQuestion(s.ID, 1, testutil.WithInputType(domain.InputMultiSelect),
		testutil.WithOptions("a", "b", "c"))
	require.NoError(t, questions.Create(ctx, q))

	require.NoError(t, answers.Create(ctx, testutil.NewTestAnswer(q.ID, testutil.MultiAnswer("a", "c"))))

	got, err := answers.FirstByQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Value.IsMulti())
	assert.Equal(t, []string{"a", "c"}, got.Value.Selections)
}
