package core

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"challenge-backend-go/internal/models"
)

type groupFixture struct {
	userRepo  *fakeUserRepo
	groupRepo *fakeGroupRepo
	service   GroupService
}

func newGroupFixture() *groupFixture {
	f := &groupFixture{
		userRepo:  newFakeUserRepo(),
		groupRepo: newFakeGroupRepo(),
	}
	f.service = NewGroupService(f.groupRepo, f.userRepo)
	return f
}

func (f *groupFixture) seedUser(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, f.userRepo.Create(context.Background(), &models.User{ID: userID}))
}

func TestCreateGroup(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")

	code, err := f.service.CreateGroup(context.Background(), "u1", "Morning Crew")
	require.NoError(t, err)

	require.Len(t, code, models.GroupCodeLength)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected character %q in code %q", r, code)
	}

	group, err := f.groupRepo.GetByCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, "Morning Crew", group.Name)
	assert.Equal(t, []string{"u1"}, group.Members)

	user, err := f.userRepo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, code, user.GroupCode)
}

func TestCreateGroup_BlankName(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")

	_, err := f.service.CreateGroup(context.Background(), "u1", "   ")
	assert.ErrorIs(t, err, ErrGroupNameRequired)
}

func TestCreateGroup_RetriesOnCodeCollision(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")
	f.groupRepo.failCreates = maxCodeAttempts - 1

	code, err := f.service.CreateGroup(context.Background(), "u1", "Persistent")
	require.NoError(t, err)
	assert.Len(t, code, models.GroupCodeLength)
}

func TestCreateGroup_CodeExhaustion(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")
	f.groupRepo.failCreates = maxCodeAttempts

	_, err := f.service.CreateGroup(context.Background(), "u1", "Unlucky")
	assert.ErrorIs(t, err, ErrGroupCodeExhausted)
}

func TestJoinGroup(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")
	f.seedUser(t, "u2")

	code, err := f.service.CreateGroup(context.Background(), "u1", "Crew")
	require.NoError(t, err)

	joined, err := f.service.JoinGroup(context.Background(), "u2", code)
	require.NoError(t, err)
	assert.True(t, joined)

	group, err := f.groupRepo.GetByCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, group.Members)

	for _, userID := range []string{"u1", "u2"} {
		user, err := f.userRepo.GetByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, code, user.GroupCode)
	}
}

func TestJoinGroup_CodeIsCaseInsensitive(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")
	f.seedUser(t, "u2")

	code, err := f.service.CreateGroup(context.Background(), "u1", "Crew")
	require.NoError(t, err)

	joined, err := f.service.JoinGroup(context.Background(), "u2", strings.ToLower(code))
	require.NoError(t, err)
	assert.True(t, joined)

	user, err := f.userRepo.GetByID(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, code, user.GroupCode)
}

func TestJoinGroup_UnknownCode(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")

	joined, err := f.service.JoinGroup(context.Background(), "u1", "ZZZZZZ")
	require.NoError(t, err)
	assert.False(t, joined)

	// The miss must not touch the user.
	user, err := f.userRepo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, user.GroupCode)
}

func TestJoinGroup_MalformedCode(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")

	for _, code := range []string{"", "ABC", "ABCDEFG", "ABC-12"} {
		_, err := f.service.JoinGroup(context.Background(), "u1", code)
		assert.ErrorIs(t, err, ErrInvalidGroupCode, "code %q", code)
	}
}

func TestJoinGroup_AlreadyMemberIsNoOp(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")

	code, err := f.service.CreateGroup(context.Background(), "u1", "Crew")
	require.NoError(t, err)

	joined, err := f.service.JoinGroup(context.Background(), "u1", code)
	require.NoError(t, err)
	assert.True(t, joined)

	group, err := f.groupRepo.GetByCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, group.Members)
}

func TestLeaveGroup(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")
	f.seedUser(t, "u2")

	code, err := f.service.CreateGroup(context.Background(), "u1", "Crew")
	require.NoError(t, err)
	_, err = f.service.JoinGroup(context.Background(), "u2", code)
	require.NoError(t, err)

	require.NoError(t, f.service.LeaveGroup(context.Background(), "u2", code))

	group, err := f.groupRepo.GetByCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, group.Members)

	user, err := f.userRepo.GetByID(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, user.GroupCode)
}

func TestLeaveGroup_MissingGroupStillClearsUser(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")
	require.NoError(t, f.userRepo.SetGroupCode(context.Background(), "u1", "GHOST1"))

	require.NoError(t, f.service.LeaveGroup(context.Background(), "u1", "GHOST1"))

	user, err := f.userRepo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, user.GroupCode)
}

func TestGetGroup_NotFound(t *testing.T) {
	f := newGroupFixture()

	_, err := f.service.GetGroup(context.Background(), "AAAAAA")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGetMembers_SkipsMissingProfiles(t *testing.T) {
	f := newGroupFixture()
	f.seedUser(t, "u1")

	code, err := f.service.CreateGroup(context.Background(), "u1", "Crew")
	require.NoError(t, err)
	// Membership of a user whose profile document is gone.
	require.NoError(t, f.groupRepo.AddMember(context.Background(), code, "deleted-user"))

	members, err := f.service.GetMembers(context.Background(), code)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "u1", members[0].ID)
}
