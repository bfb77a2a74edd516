package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"challenge-backend-go/internal/models"
)

const checkInsSubcollection = "checkIns"

// firestoreCheckInRepository implements the CheckInRepository interface using
// Firestore. Check-ins live in a per-user subcollection keyed by the decimal
// day number, the same layout existing stored data uses.
type firestoreCheckInRepository struct {
	client *firestore.Client
}

// NewFirestoreCheckInRepository creates a new instance of firestoreCheckInRepository.
func NewFirestoreCheckInRepository(client *firestore.Client) CheckInRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CheckInRepository.")
	}
	return &firestoreCheckInRepository{client: client}
}

func (r *firestoreCheckInRepository) dayDoc(userID string, day int) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(userID).
		Collection(checkInsSubcollection).Doc(strconv.Itoa(day))
}

// Upsert writes the check-in document for its day. Re-submitting a day
// overwrites the prior document, which is the accepted idempotent behavior.
func (r *firestoreCheckInRepository) Upsert(ctx context.Context, userID string, checkIn *models.CheckIn) error {
	if userID == "" {
		return errors.New("userID cannot be empty for Upsert operation")
	}
	_, err := r.dayDoc(userID, checkIn.Day).Set(ctx, checkIn)
	if err != nil {
		return fmt.Errorf("failed to upsert check-in day %d for user '%s': %w", checkIn.Day, userID, err)
	}
	return nil
}

// GetByDay retrieves one day's check-in for a user.
func (r *firestoreCheckInRepository) GetByDay(ctx context.Context, userID string, day int) (*models.CheckIn, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByDay operation")
	}
	docSnap, err := r.dayDoc(userID, day).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("check-in day %d for user '%s' not found: %w", day, userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get check-in day %d for user '%s': %w", day, userID, err)
	}

	var checkIn models.CheckIn
	if err := docSnap.DataTo(&checkIn); err != nil {
		return nil, fmt.Errorf("failed to decode check-in day %d for user '%s': %w", day, userID, err)
	}
	if parsedDay, err := strconv.Atoi(docSnap.Ref.ID); err == nil {
		checkIn.Day = parsedDay
	}

	return &checkIn, nil
}

// ListByUser retrieves every check-in of a user, in document-key order.
func (r *firestoreCheckInRepository) ListByUser(ctx context.Context, userID string) ([]*models.CheckIn, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for ListByUser operation")
	}
	iter := r.client.Collection(usersCollection).Doc(userID).Collection(checkInsSubcollection).Documents(ctx)
	defer iter.Stop()

	var checkIns []*models.CheckIn
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate check-ins for user '%s': %w", userID, err)
		}

		var checkIn models.CheckIn
		if err := doc.DataTo(&checkIn); err != nil {
			log.Printf("Error decoding check-in (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		if parsedDay, err := strconv.Atoi(doc.Ref.ID); err == nil {
			checkIn.Day = parsedDay
		}
		checkIns = append(checkIns, &checkIn)
	}

	return checkIns, nil
}

// SetPhotoVisibility merges only the photoIsPublic field into the check-in.
func (r *firestoreCheckInRepository) SetPhotoVisibility(ctx context.Context, userID string, day int, public bool) error {
	if userID == "" {
		return errors.New("userID cannot be empty for SetPhotoVisibility operation")
	}
	_, err := r.dayDoc(userID, day).Update(ctx, []firestore.Update{
		{Path: "photoIsPublic", Value: public},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("check-in day %d for user '%s' not found: %w", day, userID, ErrNotFound)
		}
		return fmt.Errorf("failed to set photo visibility on day %d for user '%s': %w", day, userID, err)
	}
	return nil
}
