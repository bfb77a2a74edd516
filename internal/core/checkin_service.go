package core

import (
	"context"
	"errors"
	"fmt"

	"challenge-backend-go/internal/db"
	"challenge-backend-go/internal/models"
)

// Custom errors for the CheckInService.
var (
	ErrDayOutOfRange = fmt.Errorf("day must be between 1 and %d", models.ChallengeLength)
	ErrUserNotFound  = errors.New("user not found")
)

// CheckInResult carries the outcome of a recorded check-in: the stored
// check-in, the user's state after the day/streak/badge updates, and any
// badges unlocked by this submission.
type CheckInResult struct {
	CheckIn   *models.CheckIn  `json:"checkIn"`
	User      *models.User     `json:"user"`
	NewBadges []models.BadgeID `json:"newBadges,omitempty"`
}

// checkInService implements the CheckInService interface.
type checkInService struct {
	checkInRepo db.CheckInRepository
	userRepo    db.UserRepository
	feedRepo    db.FeedRepository
}

// NewCheckInService creates a new CheckInService instance.
func NewCheckInService(cr db.CheckInRepository, ur db.UserRepository, fr db.FeedRepository) CheckInService {
	return &checkInService{
		checkInRepo: cr,
		userRepo:    ur,
		feedRepo:    fr,
	}
}

// RecordCheckIn validates and records one day's submission, then advances the
// user's progress: currentDay becomes the submitted day unconditionally, the
// streak grows by one only when all five tasks are done, badge additions are
// persisted, and a feed entry is written when the user belongs to a group.
//
// The submitted day is only range-checked. Monotonicity against the user's
// currentDay is deliberately not enforced, and re-submitting a day overwrites
// the prior check-in and recomputes progress; a repeated submission of a
// fully-complete day therefore grows the streak again. The steps are
// independent writes with no rollback: a failure partway leaves the earlier
// writes in place.
func (s *checkInService) RecordCheckIn(ctx context.Context, userID string, day int, tasks models.TaskFlags, photoRef, videoRef string) (*CheckInResult, error) {
	if day < 1 || day > models.ChallengeLength {
		return nil, fmt.Errorf("%w: got %d", ErrDayOutOfRange, day)
	}

	checkIn := &models.CheckIn{
		Day:           day,
		PhotoURL:      photoRef,
		PhotoIsPublic: false,
		VideoURL:      videoRef,
	}
	checkIn.SetFlags(tasks)

	if err := s.checkInRepo.Upsert(ctx, userID, checkIn); err != nil {
		return nil, fmt.Errorf("failed to store check-in: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user '%s' for progress update: %w", userID, err)
	}

	newStreak := user.Streak
	if tasks.AllComplete() {
		newStreak++
	}

	if err := s.userRepo.UpdateProgress(ctx, userID, day, newStreak); err != nil {
		return nil, fmt.Errorf("failed to update progress for user '%s': %w", userID, err)
	}
	user.CurrentDay = day
	user.Streak = newStreak

	badges := EvaluateBadges(day, newStreak, user.Badges)
	var newBadges []models.BadgeID
	if len(badges) > len(user.Badges) {
		newBadges = badges[len(user.Badges):]
		if err := s.userRepo.SetBadges(ctx, userID, badges); err != nil {
			return nil, fmt.Errorf("failed to persist badges for user '%s': %w", userID, err)
		}
		user.Badges = badges
	}

	if user.GroupCode != "" {
		entry := &models.FeedEntry{
			UserID: userID,
			Day:    day,
			Type:   models.FeedEntryTypeCheckIn,
		}
		if err := s.feedRepo.Upsert(ctx, user.GroupCode, entry); err != nil {
			return nil, fmt.Errorf("failed to write feed entry for user '%s': %w", userID, err)
		}
	}

	return &CheckInResult{CheckIn: checkIn, User: user, NewBadges: newBadges}, nil
}

// TogglePhotoVisibility flips a check-in's photoIsPublic flag. When the
// check-in does not exist the call is a silent no-op.
func (s *checkInService) TogglePhotoVisibility(ctx context.Context, userID string, day int) error {
	checkIn, err := s.checkInRepo.GetByDay(ctx, userID, day)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read check-in day %d for user '%s': %w", day, userID, err)
	}

	if err := s.checkInRepo.SetPhotoVisibility(ctx, userID, day, !checkIn.PhotoIsPublic); err != nil {
		// The check-in can vanish between read and write; still a no-op.
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to toggle photo visibility on day %d for user '%s': %w", day, userID, err)
	}
	return nil
}
