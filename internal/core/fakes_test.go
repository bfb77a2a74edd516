package core

import (
	"context"
	"time"

	"challenge-backend-go/internal/db"
	"challenge-backend-go/internal/models"
)

// fakeClock hands out strictly increasing timestamps, standing in for the
// store-assigned server timestamps.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) next() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

// fakeUserRepo is an in-memory db.UserRepository.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *user
	clone.Badges = append([]models.BadgeID(nil), user.Badges...)
	return &clone, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; ok {
		return db.ErrAlreadyExists
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) SetGroupCode(_ context.Context, userID, code string) error {
	user, ok := r.users[userID]
	if !ok {
		return db.ErrNotFound
	}
	user.GroupCode = code
	return nil
}

func (r *fakeUserRepo) UpdateProgress(_ context.Context, userID string, currentDay, streak int) error {
	user, ok := r.users[userID]
	if !ok {
		return db.ErrNotFound
	}
	user.CurrentDay = currentDay
	user.Streak = streak
	return nil
}

func (r *fakeUserRepo) SetBadges(_ context.Context, userID string, badges []models.BadgeID) error {
	user, ok := r.users[userID]
	if !ok {
		return db.ErrNotFound
	}
	user.Badges = append([]models.BadgeID(nil), badges...)
	return nil
}

// fakeCheckInRepo is an in-memory db.CheckInRepository.
type fakeCheckInRepo struct {
	checkIns map[string]map[int]*models.CheckIn
	clock    *fakeClock
}

func newFakeCheckInRepo(clock *fakeClock) *fakeCheckInRepo {
	return &fakeCheckInRepo{checkIns: make(map[string]map[int]*models.CheckIn), clock: clock}
}

func (r *fakeCheckInRepo) Upsert(_ context.Context, userID string, checkIn *models.CheckIn) error {
	if r.checkIns[userID] == nil {
		r.checkIns[userID] = make(map[int]*models.CheckIn)
	}
	clone := *checkIn
	if clone.Timestamp.IsZero() {
		clone.Timestamp = r.clock.next()
	}
	r.checkIns[userID][checkIn.Day] = &clone
	return nil
}

func (r *fakeCheckInRepo) GetByDay(_ context.Context, userID string, day int) (*models.CheckIn, error) {
	checkIn, ok := r.checkIns[userID][day]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *checkIn
	return &clone, nil
}

func (r *fakeCheckInRepo) ListByUser(_ context.Context, userID string) ([]*models.CheckIn, error) {
	var out []*models.CheckIn
	for day := 1; day <= models.ChallengeLength; day++ {
		if checkIn, ok := r.checkIns[userID][day]; ok {
			clone := *checkIn
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCheckInRepo) SetPhotoVisibility(_ context.Context, userID string, day int, public bool) error {
	checkIn, ok := r.checkIns[userID][day]
	if !ok {
		return db.ErrNotFound
	}
	checkIn.PhotoIsPublic = public
	return nil
}

// fakeGroupRepo is an in-memory db.GroupRepository. failCreates forces the
// first N Create calls to report a code collision.
type fakeGroupRepo struct {
	groups      map[string]*models.Group
	failCreates int
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[string]*models.Group)}
}

func (r *fakeGroupRepo) Create(_ context.Context, group *models.Group) error {
	if r.failCreates > 0 {
		r.failCreates--
		return db.ErrAlreadyExists
	}
	if _, ok := r.groups[group.Code]; ok {
		return db.ErrAlreadyExists
	}
	clone := *group
	clone.Members = append([]string(nil), group.Members...)
	r.groups[group.Code] = &clone
	return nil
}

func (r *fakeGroupRepo) GetByCode(_ context.Context, code string) (*models.Group, error) {
	group, ok := r.groups[code]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *group
	clone.Members = append([]string(nil), group.Members...)
	return &clone, nil
}

func (r *fakeGroupRepo) AddMember(_ context.Context, code, userID string) error {
	group, ok := r.groups[code]
	if !ok {
		return db.ErrNotFound
	}
	for _, member := range group.Members {
		if member == userID {
			return nil
		}
	}
	group.Members = append(group.Members, userID)
	return nil
}

func (r *fakeGroupRepo) RemoveMember(_ context.Context, code, userID string) error {
	group, ok := r.groups[code]
	if !ok {
		return db.ErrNotFound
	}
	kept := group.Members[:0]
	for _, member := range group.Members {
		if member != userID {
			kept = append(kept, member)
		}
	}
	group.Members = kept
	return nil
}

// fakeFeedRepo is an in-memory db.FeedRepository preserving insertion order.
type fakeFeedRepo struct {
	entries map[string][]*models.FeedEntry
	clock   *fakeClock
}

func newFakeFeedRepo(clock *fakeClock) *fakeFeedRepo {
	return &fakeFeedRepo{entries: make(map[string][]*models.FeedEntry), clock: clock}
}

func (r *fakeFeedRepo) Upsert(_ context.Context, code string, entry *models.FeedEntry) error {
	key := models.FeedEntryKey(entry.UserID, entry.Day)
	entry.ID = key
	clone := *entry
	if clone.Timestamp.IsZero() {
		clone.Timestamp = r.clock.next()
	}
	for i, existing := range r.entries[code] {
		if existing.ID == key {
			r.entries[code][i] = &clone
			return nil
		}
	}
	r.entries[code] = append(r.entries[code], &clone)
	return nil
}

func (r *fakeFeedRepo) ListByGroup(_ context.Context, code string) ([]*models.FeedEntry, error) {
	out := make([]*models.FeedEntry, 0, len(r.entries[code]))
	for _, entry := range r.entries[code] {
		clone := *entry
		out = append(out, &clone)
	}
	return out, nil
}

// fakeReactionRepo is an in-memory db.ReactionRepository.
type fakeReactionRepo struct {
	reactions map[string]*models.Reaction
	clock     *fakeClock
}

func newFakeReactionRepo(clock *fakeClock) *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[string]*models.Reaction), clock: clock}
}

func (r *fakeReactionRepo) Get(_ context.Context, key string) (*models.Reaction, error) {
	reaction, ok := r.reactions[key]
	if !ok {
		return nil, db.ErrNotFound
	}
	clone := *reaction
	return &clone, nil
}

func (r *fakeReactionRepo) Put(_ context.Context, reaction *models.Reaction) error {
	key := models.ReactionKey(reaction.TargetUserID, reaction.Day, reaction.UserID)
	reaction.ID = key
	clone := *reaction
	if clone.Timestamp.IsZero() {
		clone.Timestamp = r.clock.next()
	}
	r.reactions[key] = &clone
	return nil
}

func (r *fakeReactionRepo) MarkDeleted(_ context.Context, key string) error {
	reaction, ok := r.reactions[key]
	if !ok {
		return db.ErrNotFound
	}
	reaction.Deleted = true
	return nil
}

func (r *fakeReactionRepo) ListByTarget(_ context.Context, targetUserID string, day int) ([]*models.Reaction, error) {
	var out []*models.Reaction
	for _, reaction := range r.reactions {
		if reaction.TargetUserID == targetUserID && reaction.Day == day {
			clone := *reaction
			out = append(out, &clone)
		}
	}
	return out, nil
}
