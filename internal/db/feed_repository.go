package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"challenge-backend-go/internal/models"
)

const feedSubcollection = "feed"

// firestoreFeedRepository implements the FeedRepository interface using
// Firestore. Entries live under groups/{code}/feed keyed by "{userId}_{day}".
type firestoreFeedRepository struct {
	client *firestore.Client
}

// NewFirestoreFeedRepository creates a new instance of firestoreFeedRepository.
func NewFirestoreFeedRepository(client *firestore.Client) FeedRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for FeedRepository.")
	}
	return &firestoreFeedRepository{client: client}
}

// Upsert writes the feed entry under its key. The key makes the write
// idempotent: re-submitting a day replaces the entry instead of adding one.
func (r *firestoreFeedRepository) Upsert(ctx context.Context, code string, entry *models.FeedEntry) error {
	if code == "" {
		return errors.New("code cannot be empty for Upsert operation")
	}
	key := models.FeedEntryKey(entry.UserID, entry.Day)
	entry.ID = key
	_, err := r.client.Collection(groupsCollection).Doc(code).
		Collection(feedSubcollection).Doc(key).Set(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to upsert feed entry '%s' in group '%s': %w", key, code, err)
	}
	return nil
}

// ListByGroup retrieves every feed entry of a group, unordered; the service
// layer owns the timestamp ordering rule.
func (r *firestoreFeedRepository) ListByGroup(ctx context.Context, code string) ([]*models.FeedEntry, error) {
	if code == "" {
		return nil, errors.New("code cannot be empty for ListByGroup operation")
	}
	iter := r.client.Collection(groupsCollection).Doc(code).Collection(feedSubcollection).Documents(ctx)
	defer iter.Stop()

	var entries []*models.FeedEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate feed entries for group '%s': %w", code, err)
		}

		var entry models.FeedEntry
		if err := doc.DataTo(&entry); err != nil {
			log.Printf("Error decoding feed entry (ID: %s) in group '%s': %v. Skipping.", doc.Ref.ID, code, err)
			continue
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, &entry)
	}

	return entries, nil
}
