package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"challenge-backend-go/internal/db"
	"challenge-backend-go/internal/models"
)

// feedService implements the FeedService interface.
type feedService struct {
	feedRepo db.FeedRepository
}

// NewFeedService creates a new FeedService instance.
func NewFeedService(fr db.FeedRepository) FeedService {
	return &feedService{feedRepo: fr}
}

// GetGroupFeed returns the group's activity timeline ordered newest first.
// Entries without a timestamp (a write whose server timestamp has not been
// observed, or legacy data) sort after all timestamped entries instead of
// being coerced to an epoch-zero time; ties keep their fetch order.
// Pagination is left to the caller.
func (s *feedService) GetGroupFeed(ctx context.Context, code string) ([]*models.FeedEntry, error) {
	entries, err := s.feedRepo.ListByGroup(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("failed to list feed for group '%s': %w", code, err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ti, tj := entries[i].Timestamp, entries[j].Timestamp
		switch {
		case ti.IsZero():
			return false
		case tj.IsZero():
			return true
		default:
			return ti.After(tj)
		}
	})

	return entries, nil
}
