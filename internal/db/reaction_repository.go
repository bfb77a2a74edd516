package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"challenge-backend-go/internal/models"
)

const reactionsCollection = "reactions"

// firestoreReactionRepository implements the ReactionRepository interface
// using Firestore. Documents are keyed "{targetUserId}_{day}_{reactorUserId}".
type firestoreReactionRepository struct {
	client *firestore.Client
}

// NewFirestoreReactionRepository creates a new instance of firestoreReactionRepository.
func NewFirestoreReactionRepository(client *firestore.Client) ReactionRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ReactionRepository.")
	}
	return &firestoreReactionRepository{client: client}
}

// Get retrieves a reaction document by its key, tombstoned or not.
func (r *firestoreReactionRepository) Get(ctx context.Context, key string) (*models.Reaction, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty for Get operation")
	}
	docSnap, err := r.client.Collection(reactionsCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("reaction '%s' not found: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get reaction '%s': %w", key, err)
	}

	var reaction models.Reaction
	if err := docSnap.DataTo(&reaction); err != nil {
		return nil, fmt.Errorf("failed to decode reaction '%s': %w", key, err)
	}
	reaction.ID = docSnap.Ref.ID

	return &reaction, nil
}

// Put writes the reaction under its key, replacing any prior document,
// tombstoned or live.
func (r *firestoreReactionRepository) Put(ctx context.Context, reaction *models.Reaction) error {
	key := models.ReactionKey(reaction.TargetUserID, reaction.Day, reaction.UserID)
	reaction.ID = key
	_, err := r.client.Collection(reactionsCollection).Doc(key).Set(ctx, reaction)
	if err != nil {
		return fmt.Errorf("failed to put reaction '%s': %w", key, err)
	}
	return nil
}

// MarkDeleted merges deleted=true into the keyed reaction, keeping the rest
// of the payload intact.
func (r *firestoreReactionRepository) MarkDeleted(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty for MarkDeleted operation")
	}
	_, err := r.client.Collection(reactionsCollection).Doc(key).Update(ctx, []firestore.Update{
		{Path: "deleted", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("reaction '%s' not found: %w", key, ErrNotFound)
		}
		return fmt.Errorf("failed to tombstone reaction '%s': %w", key, err)
	}
	return nil
}

// ListByTarget retrieves all reactions for a target user and day via an
// equality-filtered query. Tombstoned reactions are included; callers filter.
func (r *firestoreReactionRepository) ListByTarget(ctx context.Context, targetUserID string, day int) ([]*models.Reaction, error) {
	if targetUserID == "" {
		return nil, errors.New("targetUserID cannot be empty for ListByTarget operation")
	}
	query := r.client.Collection(reactionsCollection).
		Where("targetUserId", "==", targetUserID).
		Where("day", "==", day)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var reactions []*models.Reaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reactions for target '%s' day %d: %w", targetUserID, day, err)
		}

		var reaction models.Reaction
		if err := doc.DataTo(&reaction); err != nil {
			log.Printf("Error decoding reaction (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		reaction.ID = doc.Ref.ID
		reactions = append(reactions, &reaction)
	}

	return reactions, nil
}
