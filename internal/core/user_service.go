package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"challenge-backend-go/internal/db"
	"challenge-backend-go/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo    db.UserRepository
	checkInRepo db.CheckInRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(ur db.UserRepository, cr db.CheckInRepository) UserService {
	return &userService{
		userRepo:    ur,
		checkInRepo: cr,
	}
}

// GetOrCreate retrieves a user by ID, creating a fresh day-zero profile when
// none exists. The display name defaults to the local part of the email and
// the timezone to UTC when the client supplies none. Returns the user and
// whether a profile was created.
func (s *userService) GetOrCreate(ctx context.Context, userID, email, displayName, timezone string) (*models.User, bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get user '%s': %w", userID, err)
	}

	name := displayName
	if name == "" {
		name = email
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
	}
	if timezone == "" {
		timezone = "UTC"
	}

	newUser := &models.User{
		ID:         userID,
		Name:       name,
		Email:      email,
		CurrentDay: 0,
		Streak:     0,
		Badges:     []models.BadgeID{},
		Timezone:   timezone,
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent initialize can win the create; fall back to the read.
		if errors.Is(err, db.ErrAlreadyExists) {
			user, getErr := s.userRepo.GetByID(ctx, userID)
			if getErr != nil {
				return nil, false, fmt.Errorf("user '%s' created concurrently but unreadable: %w", userID, getErr)
			}
			return user, false, nil
		}
		return nil, false, fmt.Errorf("failed to create user '%s': %w", userID, err)
	}

	return newUser, true, nil
}

// GetByID retrieves a user by their ID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", userID, err)
	}
	return user, nil
}

// GetUserData returns the user along with every check-in they have recorded.
func (s *userService) GetUserData(ctx context.Context, userID string) (*models.User, []*models.CheckIn, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	checkIns, err := s.checkInRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list check-ins for user '%s': %w", userID, err)
	}

	return user, checkIns, nil
}
