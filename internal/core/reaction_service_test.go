package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"challenge-backend-go/internal/models"
)

func newReactionFixture() (*fakeReactionRepo, ReactionService) {
	repo := newFakeReactionRepo(newFakeClock())
	return repo, NewReactionService(repo)
}

func TestToggleReaction_Cycle(t *testing.T) {
	repo, service := newReactionFixture()
	ctx := context.Background()

	// First toggle creates a live reaction.
	live, err := service.ToggleReaction(ctx, "reactor", "target", 3, "🔥")
	require.NoError(t, err)
	assert.True(t, live)

	stored, err := repo.Get(ctx, "target_3_reactor")
	require.NoError(t, err)
	assert.Equal(t, "🔥", stored.Emoji)
	assert.False(t, stored.Deleted)

	// Same toggle tombstones it.
	live, err = service.ToggleReaction(ctx, "reactor", "target", 3, "🔥")
	require.NoError(t, err)
	assert.False(t, live)

	stored, err = repo.Get(ctx, "target_3_reactor")
	require.NoError(t, err)
	assert.True(t, stored.Deleted)

	// A third toggle revives it.
	live, err = service.ToggleReaction(ctx, "reactor", "target", 3, "🔥")
	require.NoError(t, err)
	assert.True(t, live)
}

func TestToggleReaction_DifferentEmojiReplaces(t *testing.T) {
	_, service := newReactionFixture()
	ctx := context.Background()

	_, err := service.ToggleReaction(ctx, "reactor", "target", 3, "🔥")
	require.NoError(t, err)

	live, err := service.ToggleReaction(ctx, "reactor", "target", 3, "💪")
	require.NoError(t, err)
	assert.True(t, live)

	reactions, err := service.GetReactions(ctx, "target", 3)
	require.NoError(t, err)
	require.Len(t, reactions, 1)
	assert.Equal(t, "💪", reactions[0].Emoji)
}

func TestToggleReaction_Validation(t *testing.T) {
	_, service := newReactionFixture()
	ctx := context.Background()

	_, err := service.ToggleReaction(ctx, "reactor", "target", 3, "")
	assert.ErrorIs(t, err, ErrEmojiRequired)

	_, err = service.ToggleReaction(ctx, "reactor", "target", 0, "🔥")
	assert.ErrorIs(t, err, ErrDayOutOfRange)

	_, err = service.ToggleReaction(ctx, "reactor", "target", models.ChallengeLength+1, "🔥")
	assert.ErrorIs(t, err, ErrDayOutOfRange)
}

func TestToggleReaction_IndependentPerReactorAndDay(t *testing.T) {
	_, service := newReactionFixture()
	ctx := context.Background()

	_, err := service.ToggleReaction(ctx, "r1", "target", 3, "🔥")
	require.NoError(t, err)
	_, err = service.ToggleReaction(ctx, "r2", "target", 3, "🔥")
	require.NoError(t, err)
	_, err = service.ToggleReaction(ctx, "r1", "target", 4, "🔥")
	require.NoError(t, err)

	reactions, err := service.GetReactions(ctx, "target", 3)
	require.NoError(t, err)
	assert.Len(t, reactions, 2)
}

func TestGetReactions_FiltersTombstones(t *testing.T) {
	_, service := newReactionFixture()
	ctx := context.Background()

	_, err := service.ToggleReaction(ctx, "r1", "target", 3, "🔥")
	require.NoError(t, err)
	_, err = service.ToggleReaction(ctx, "r2", "target", 3, "💪")
	require.NoError(t, err)
	// r2 retracts.
	_, err = service.ToggleReaction(ctx, "r2", "target", 3, "💪")
	require.NoError(t, err)

	reactions, err := service.GetReactions(ctx, "target", 3)
	require.NoError(t, err)
	require.Len(t, reactions, 1)
	assert.Equal(t, "r1", reactions[0].UserID)
}
