package db

import (
	"context"

	"challenge-backend-go/internal/models"
)

// UserRepository defines the interface for user document storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// SetGroupCode sets the user's group reference; an empty code clears it.
	SetGroupCode(ctx context.Context, userID, code string) error
	// UpdateProgress merges currentDay and streak into the user document.
	UpdateProgress(ctx context.Context, userID string, currentDay, streak int) error
	// SetBadges replaces the user's badge list.
	SetBadges(ctx context.Context, userID string, badges []models.BadgeID) error
}

// CheckInRepository defines the interface for per-day check-in documents
// stored under users/{uid}/checkIns.
type CheckInRepository interface {
	// Upsert writes the check-in for its day, overwriting any prior submission.
	Upsert(ctx context.Context, userID string, checkIn *models.CheckIn) error
	GetByDay(ctx context.Context, userID string, day int) (*models.CheckIn, error)
	ListByUser(ctx context.Context, userID string) ([]*models.CheckIn, error)
	SetPhotoVisibility(ctx context.Context, userID string, day int, public bool) error
}

// GroupRepository defines the interface for group document storage operations.
type GroupRepository interface {
	// Create fails with ErrAlreadyExists when the code is taken.
	Create(ctx context.Context, group *models.Group) error
	GetByCode(ctx context.Context, code string) (*models.Group, error)
	// AddMember appends the user to the member set without a prior read.
	AddMember(ctx context.Context, code, userID string) error
	RemoveMember(ctx context.Context, code, userID string) error
}

// FeedRepository defines the interface for group feed entries stored under
// groups/{code}/feed.
type FeedRepository interface {
	Upsert(ctx context.Context, code string, entry *models.FeedEntry) error
	ListByGroup(ctx context.Context, code string) ([]*models.FeedEntry, error)
}

// ReactionRepository defines the interface for reaction documents in the
// top-level reactions collection.
type ReactionRepository interface {
	Get(ctx context.Context, key string) (*models.Reaction, error)
	// Put writes the reaction under its key, replacing any prior document.
	Put(ctx context.Context, reaction *models.Reaction) error
	// MarkDeleted tombstones the keyed reaction; the document is never erased.
	MarkDeleted(ctx context.Context, key string) error
	// ListByTarget returns all reactions for a target user and day,
	// tombstoned ones included.
	ListByTarget(ctx context.Context, targetUserID string, day int) ([]*models.Reaction, error)
}
