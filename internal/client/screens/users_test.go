package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-PollyMer/blogsite-cli/internal/client/guard"
	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/common"
)

func newUserScreen(t *testing.T, f *fakeAPI, g *guard.Guard, confirm Confirm) *UserScreen {
	t.Helper()
	return NewUserScreen(f, g, confirm, discardLogger())
}

func TestUserScreen_GateFollowsSession(t *testing.T) {
	f, sess, g := testDeps(t, false)
	s := newUserScreen(t, f, g, alwaysConfirm)

	assert.Equal(t, guard.StateRedirecting, s.Gate())

	require.NoError(t, sess.Login(context.Background(), &models.User{ID: 1, Username: "admin", Email: "a@b"}))
	assert.Equal(t, guard.StateAuthorized, s.Gate())
}

func TestUserScreen_Refresh(t *testing.T) {
	f, _, g := testDeps(t, true)
	f.users = []models.User{{ID: 1, Username: "alice", Email: "a@b"}}
	s := newUserScreen(t, f, g, alwaysConfirm)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))
	assert.Len(t, s.Items(), 1)
	assert.False(t, s.Loading())
	assert.Empty(t, s.ErrorMessage())
}

func TestUserScreen_RefreshFailureKeepsStaleItems(t *testing.T) {
	f, _, g := testDeps(t, true)
	f.users = []models.User{{ID: 1, Username: "alice", Email: "a@b"}, {ID: 2, Username: "bob", Email: "b@b"}}
	s := newUserScreen(t, f, g, alwaysConfirm)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))
	require.Len(t, s.Items(), 2)

	f.listUsersErr = errors.New("backend down")
	require.Error(t, s.Refresh(ctx))

	assert.Len(t, s.Items(), 2, "stale-but-available: last good list stays")
	assert.NotEmpty(t, s.ErrorMessage())
	assert.False(t, s.Loading())
}

func TestUserScreen_OpenCreateResetsBuffer(t *testing.T) {
	f, _, g := testDeps(t, true)
	s := newUserScreen(t, f, g, alwaysConfirm)

	s.OpenCreate()

	buf := s.Buffer()
	assert.Zero(t, buf.ID)
	assert.Empty(t, buf.Username)
	assert.Equal(t, models.RoleUser, buf.Role)
	assert.Equal(t, ModeCreate, s.Mode())
	assert.True(t, s.ModalOpen())
	assert.Empty(t, s.ErrorMessage())
}

func TestUserScreen_OpenEditLeavesPasswordBlank(t *testing.T) {
	f, _, g := testDeps(t, true)
	s := newUserScreen(t, f, g, alwaysConfirm)

	s.OpenEdit(models.User{ID: 7, Username: "bob", Email: "b@b", Password: "should-not-echo", Role: models.RoleAdmin})

	buf := s.Buffer()
	assert.Equal(t, int64(7), buf.ID)
	assert.Equal(t, "bob", buf.Username)
	assert.Empty(t, buf.Password, "password is write-only")
	assert.Equal(t, ModeEdit, s.Mode())
}

func TestUserScreen_SaveValidationShortCircuit(t *testing.T) {
	f, _, g := testDeps(t, true)
	s := newUserScreen(t, f, g, alwaysConfirm)
	ctx := context.Background()

	s.OpenCreate()
	s.SetBuffer(models.User{Username: "", Email: "a@b", Password: "pw"})

	err := s.Save(ctx)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.NotEmpty(t, s.ErrorMessage())
	assert.Empty(t, f.calls, "validation failure must not issue a request")

	// Password required only in create mode.
	s.OpenEdit(models.User{ID: 1, Username: "bob", Email: "b@b"})
	s.SetBuffer(models.User{ID: 1, Username: "bob", Email: "b@b"})
	require.NoError(t, s.Save(ctx))
}

func TestUserScreen_SaveCreateThenRefresh(t *testing.T) {
	f, _, g := testDeps(t, true)
	s := newUserScreen(t, f, g, alwaysConfirm)
	ctx := context.Background()

	s.OpenCreate()
	s.SetBuffer(models.User{Username: "carol", Email: "c@b", Password: "pw", Role: models.RoleUser})
	require.NoError(t, s.Save(ctx))

	assert.False(t, s.ModalOpen(), "modal closes on success")
	assert.Equal(t, []string{"CreateUser", "ListUsers"}, f.calls, "mutation is followed by a full re-fetch")

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "carol", items[0].Username)
	assert.NotZero(t, items[0].ID, "id is server-assigned")
}

func TestUserScreen_SaveFailureKeepsModalOpen(t *testing.T) {
	f, _, g := testDeps(t, true)
	f.createUserErr = errors.New("boom")
	s := newUserScreen(t, f, g, alwaysConfirm)

	s.OpenCreate()
	s.SetBuffer(models.User{Username: "carol", Email: "c@b", Password: "pw"})

	require.Error(t, s.Save(context.Background()))
	assert.True(t, s.ModalOpen(), "operator can correct and retry")
	assert.NotEmpty(t, s.ErrorMessage())
}

func TestUserScreen_RemoveNeedsConfirmation(t *testing.T) {
	f, _, g := testDeps(t, true)
	f.users = []models.User{{ID: 1, Username: "alice", Email: "a@b"}}
	s := newUserScreen(t, f, g, neverConfirm)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))
	f.calls = nil

	require.NoError(t, s.Remove(ctx, 1))
	assert.Empty(t, f.calls, "declined confirmation issues no request")
	assert.Len(t, s.Items(), 1)
}

func TestUserScreen_RemoveDeletesAndRefreshes(t *testing.T) {
	f, _, g := testDeps(t, true)
	f.users = []models.User{{ID: 1, Username: "alice", Email: "a@b"}}
	s := newUserScreen(t, f, g, alwaysConfirm)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))
	f.calls = nil

	require.NoError(t, s.Remove(ctx, 1))
	assert.Equal(t, []string{"DeleteUser", "ListUsers"}, f.calls)
	assert.Empty(t, s.Items())
}

func TestUserScreen_RemoveFailureKeepsItems(t *testing.T) {
	f, _, g := testDeps(t, true)
	f.users = []models.User{{ID: 1, Username: "alice", Email: "a@b"}}
	s := newUserScreen(t, f, g, alwaysConfirm)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx))
	f.deleteUserErr = errors.New("boom")

	require.Error(t, s.Remove(ctx, 1))
	assert.Len(t, s.Items(), 1, "no optimistic removal")
	assert.NotEmpty(t, s.ErrorMessage())
}

func TestUserScreen_OvertakenRefreshIsDiscarded(t *testing.T) {
	f, _, g := testDeps(t, true)
	s := newUserScreen(t, f, g, alwaysConfirm)
	ctx := context.Background()

	stale := []models.User{{ID: 99, Username: "stale", Email: "s@b"}}
	fresh := []models.User{{ID: 1, Username: "fresh", Email: "f@b"}}

	// While the outer refresh is in flight, a newer refresh starts and
	// completes. The outer (stale) response must then be discarded.
	nested := false
	f.listUsersHook = func() ([]models.User, error) {
		if nested {
			return fresh, nil
		}
		nested = true
		require.NoError(t, s.Refresh(ctx))
		return stale, nil
	}

	require.NoError(t, s.Refresh(ctx))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].Username, "the overtaken response must not overwrite items")
}
