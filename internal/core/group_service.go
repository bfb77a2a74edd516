package core

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"challenge-backend-go/internal/db"
	"challenge-backend-go/internal/models"
)

// Custom errors for the GroupService.
var (
	ErrGroupNameRequired  = errors.New("group name cannot be blank")
	ErrInvalidGroupCode   = errors.New("group code must be 6 uppercase letters or digits")
	ErrGroupCodeExhausted = errors.New("could not find a free group code")
	ErrGroupNotFound      = errors.New("group not found")
)

// codeAlphabet is the base-36 alphabet group codes are drawn from.
const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxCodeAttempts bounds the draw-then-create retry loop. With 36^6 possible
// codes a collision is already rare; five draws make exhaustion practically
// unreachable while keeping the loop terminating.
const maxCodeAttempts = 5

// groupService implements the GroupService interface.
type groupService struct {
	groupRepo db.GroupRepository
	userRepo  db.UserRepository
}

// NewGroupService creates a new GroupService instance.
func NewGroupService(gr db.GroupRepository, ur db.UserRepository) GroupService {
	return &groupService{
		groupRepo: gr,
		userRepo:  ur,
	}
}

// newGroupCode draws a uniform random 6-character uppercase base-36 code.
func newGroupCode() (string, error) {
	var sb strings.Builder
	for i := 0; i < models.GroupCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to draw group code character: %w", err)
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// validCode reports whether code is exactly six characters of the code
// alphabet. Callers are expected to uppercase first.
func validCode(code string) bool {
	if len(code) != models.GroupCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(codeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}

// CreateGroup creates a new group with the caller as its first member and
// returns the invite code. Codes are drawn at random and created with an
// existence check: a collision triggers a redraw, bounded by maxCodeAttempts.
// The group create and the user's groupCode write are independent,
// non-transactional steps.
func (s *groupService) CreateGroup(ctx context.Context, userID, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrGroupNameRequired
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := newGroupCode()
		if err != nil {
			return "", err
		}

		group := &models.Group{
			Code:    code,
			Name:    name,
			Members: []string{userID},
		}
		if err := s.groupRepo.Create(ctx, group); err != nil {
			if errors.Is(err, db.ErrAlreadyExists) {
				continue
			}
			return "", fmt.Errorf("failed to create group: %w", err)
		}

		if err := s.userRepo.SetGroupCode(ctx, userID, code); err != nil {
			// Group exists without the back-reference; the sides agree
			// eventually once the user joins by code. Surface the failure.
			return "", fmt.Errorf("group '%s' created but failed to set user's group code: %w", code, err)
		}
		return code, nil
	}

	return "", ErrGroupCodeExhausted
}

// JoinGroup appends the user to the group's member set and records the code
// on the user. Reports false, mutating nothing, when no group exists for the
// code. Joining a group the user is already in is a no-op. The membership
// append and the user write are independent, non-transactional steps.
func (s *groupService) JoinGroup(ctx context.Context, userID, code string) (bool, error) {
	code = strings.ToUpper(code)
	if !validCode(code) {
		return false, fmt.Errorf("%w: got %q", ErrInvalidGroupCode, code)
	}

	if err := s.groupRepo.AddMember(ctx, code, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to join group '%s': %w", code, err)
	}

	if err := s.userRepo.SetGroupCode(ctx, userID, code); err != nil {
		return false, fmt.Errorf("joined group '%s' but failed to set user's group code: %w", code, err)
	}
	return true, nil
}

// LeaveGroup removes the user from the group's member set and clears the
// user's group reference. A group that no longer exists is skipped silently;
// the user's reference is cleared regardless.
func (s *groupService) LeaveGroup(ctx context.Context, userID, code string) error {
	code = strings.ToUpper(code)

	if err := s.groupRepo.RemoveMember(ctx, code, userID); err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to leave group '%s': %w", code, err)
	}

	if err := s.userRepo.SetGroupCode(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to clear group code for user '%s': %w", userID, err)
	}
	return nil
}

// GetGroup retrieves a group by its invite code.
func (s *groupService) GetGroup(ctx context.Context, code string) (*models.Group, error) {
	group, err := s.groupRepo.GetByCode(ctx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: code '%s'", ErrGroupNotFound, code)
		}
		return nil, fmt.Errorf("failed to get group '%s': %w", code, err)
	}
	return group, nil
}

// GetMembers resolves the member profiles of a group. Members whose user
// document is missing are skipped rather than failing the whole listing.
func (s *groupService) GetMembers(ctx context.Context, code string) ([]*models.User, error) {
	group, err := s.GetGroup(ctx, code)
	if err != nil {
		return nil, err
	}

	members := make([]*models.User, 0, len(group.Members))
	for _, memberID := range group.Members {
		user, err := s.userRepo.GetByID(ctx, memberID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get member '%s' of group '%s': %w", memberID, code, err)
		}
		members = append(members, user)
	}
	return members, nil
}
