package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"challenge-backend-go/internal/models"
)

const usersCollection = "users"

// ErrNotFound is returned when a document does not exist in Firestore.
var ErrNotFound = errors.New("document not found")

// ErrAlreadyExists is returned when a keyed create hits an existing document.
var ErrAlreadyExists = errors.New("document already exists")

// firestoreUserRepository implements the UserRepository interface using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

// Create adds a new user document. The user.ID (Firebase Auth UID) is the
// document ID; CreatedAt is assigned server-side via the serverTimestamp tag.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return errors.New("user ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user with ID '%s': %w", user.ID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user with ID '%s': %w", user.ID, err)
	}
	return nil
}

// GetByID retrieves a user document by its ID (Firebase Auth UID).
func (r *firestoreUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with ID '%s': %w", userID, err)
	}

	var user models.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for ID '%s': %w", userID, err)
	}
	user.ID = docSnap.Ref.ID

	return &user, nil
}

// SetGroupCode merges only the groupCode field into the user document.
func (r *firestoreUserRepository) SetGroupCode(ctx context.Context, userID, code string) error {
	if userID == "" {
		return errors.New("userID cannot be empty for SetGroupCode operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "groupCode", Value: code},
	})
	if err != nil {
		return fmt.Errorf("failed to set group code for user '%s': %w", userID, err)
	}
	return nil
}

// UpdateProgress merges currentDay and streak into the user document without
// touching any other field.
func (r *firestoreUserRepository) UpdateProgress(ctx context.Context, userID string, currentDay, streak int) error {
	if userID == "" {
		return errors.New("userID cannot be empty for UpdateProgress operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "currentDay", Value: currentDay},
		{Path: "streak", Value: streak},
	})
	if err != nil {
		return fmt.Errorf("failed to update progress for user '%s': %w", userID, err)
	}
	return nil
}

// SetBadges replaces the badges field of the user document.
func (r *firestoreUserRepository) SetBadges(ctx context.Context, userID string, badges []models.BadgeID) error {
	if userID == "" {
		return errors.New("userID cannot be empty for SetBadges operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "badges", Value: badges},
	})
	if err != nil {
		return fmt.Errorf("failed to set badges for user '%s': %w", userID, err)
	}
	return nil
}
