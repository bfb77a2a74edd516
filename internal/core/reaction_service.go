package core

import (
	"context"
	"errors"
	"fmt"

	"challenge-backend-go/internal/db"
	"challenge-backend-go/internal/models"
)

// ErrEmojiRequired is returned when a reaction toggle carries no emoji.
var ErrEmojiRequired = errors.New("emoji cannot be empty")

// reactionService implements the ReactionService interface.
type reactionService struct {
	reactionRepo db.ReactionRepository
}

// NewReactionService creates a new ReactionService instance.
func NewReactionService(rr db.ReactionRepository) ReactionService {
	return &reactionService{reactionRepo: rr}
}

// ToggleReaction toggles the reactor's reaction on the target's check-in for
// the given day. A live reaction with the same emoji is tombstoned; anything
// else (no reaction, a tombstone, or a different emoji) results in a live
// reaction with the new emoji. Because the key carries no emoji component,
// at most one live reaction exists per (reactor, target, day) at any time.
// The returned bool reports whether the reaction is live after the toggle.
func (s *reactionService) ToggleReaction(ctx context.Context, reactorID, targetID string, day int, emoji string) (bool, error) {
	if emoji == "" {
		return false, ErrEmojiRequired
	}
	if day < 1 || day > models.ChallengeLength {
		return false, fmt.Errorf("%w: got %d", ErrDayOutOfRange, day)
	}

	key := models.ReactionKey(targetID, day, reactorID)

	existing, err := s.reactionRepo.Get(ctx, key)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return false, fmt.Errorf("failed to read reaction '%s': %w", key, err)
	}

	if existing != nil && !existing.Deleted && existing.Emoji == emoji {
		if err := s.reactionRepo.MarkDeleted(ctx, key); err != nil {
			return false, fmt.Errorf("failed to remove reaction '%s': %w", key, err)
		}
		return false, nil
	}

	reaction := &models.Reaction{
		UserID:       reactorID,
		TargetUserID: targetID,
		Day:          day,
		Emoji:        emoji,
	}
	if err := s.reactionRepo.Put(ctx, reaction); err != nil {
		return false, fmt.Errorf("failed to store reaction '%s': %w", key, err)
	}
	return true, nil
}

// GetReactions returns the live reactions on a target user's check-in for
// the given day, unordered. Tombstoned reactions are filtered out.
func (s *reactionService) GetReactions(ctx context.Context, targetID string, day int) ([]*models.Reaction, error) {
	reactions, err := s.reactionRepo.ListByTarget(ctx, targetID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions for target '%s' day %d: %w", targetID, day, err)
	}

	live := make([]*models.Reaction, 0, len(reactions))
	for _, r := range reactions {
		if !r.Deleted {
			live = append(live, r)
		}
	}
	return live, nil
}
