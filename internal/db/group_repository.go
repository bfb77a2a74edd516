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

const groupsCollection = "groups"

// firestoreGroupRepository implements the GroupRepository interface using
// Firestore. The invite code is the document ID.
type firestoreGroupRepository struct {
	client *firestore.Client
}

// NewFirestoreGroupRepository creates a new instance of firestoreGroupRepository.
func NewFirestoreGroupRepository(client *firestore.Client) GroupRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for GroupRepository.")
	}
	return &firestoreGroupRepository{client: client}
}

// Create adds a new group document keyed by its code. A taken code surfaces
// as ErrAlreadyExists so the service can redraw.
func (r *firestoreGroupRepository) Create(ctx context.Context, group *models.Group) error {
	if group.Code == "" {
		return errors.New("group code cannot be empty for Create operation")
	}
	_, err := r.client.Collection(groupsCollection).Doc(group.Code).Create(ctx, group)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("group with code '%s': %w", group.Code, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create group with code '%s': %w", group.Code, err)
	}
	return nil
}

// GetByCode retrieves a group document by its invite code.
func (r *firestoreGroupRepository) GetByCode(ctx context.Context, code string) (*models.Group, error) {
	if code == "" {
		return nil, errors.New("code cannot be empty for GetByCode operation")
	}
	docSnap, err := r.client.Collection(groupsCollection).Doc(code).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("group with code '%s' not found: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get group with code '%s': %w", code, err)
	}

	var group models.Group
	if err := docSnap.DataTo(&group); err != nil {
		return nil, fmt.Errorf("failed to decode group data for code '%s': %w", code, err)
	}
	group.Code = docSnap.Ref.ID

	return &group, nil
}

// AddMember appends the user to the member set via an atomic array union;
// no prior read is needed and a duplicate join is a no-op.
func (r *firestoreGroupRepository) AddMember(ctx context.Context, code, userID string) error {
	if code == "" || userID == "" {
		return errors.New("code and userID cannot be empty for AddMember operation")
	}
	_, err := r.client.Collection(groupsCollection).Doc(code).Update(ctx, []firestore.Update{
		{Path: "members", Value: firestore.ArrayUnion(userID)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("group with code '%s' not found: %w", code, ErrNotFound)
		}
		return fmt.Errorf("failed to add member '%s' to group '%s': %w", userID, code, err)
	}
	return nil
}

// RemoveMember removes the user from the member set via an atomic array
// remove, so a concurrent join cannot be lost to a read-modify-write race.
func (r *firestoreGroupRepository) RemoveMember(ctx context.Context, code, userID string) error {
	if code == "" || userID == "" {
		return errors.New("code and userID cannot be empty for RemoveMember operation")
	}
	_, err := r.client.Collection(groupsCollection).Doc(code).Update(ctx, []firestore.Update{
		{Path: "members", Value: firestore.ArrayRemove(userID)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("group with code '%s' not found: %w", code, ErrNotFound)
		}
		return fmt.Errorf("failed to remove member '%s' from group '%s': %w", userID, code, err)
	}
	return nil
}
