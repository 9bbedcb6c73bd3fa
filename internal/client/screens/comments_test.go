package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/common"
)

func commentIDs(comments []models.Comment) []int64 {
	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}

func TestCommentThread_LoadReversesToNewestFirst(t *testing.T) {
	f := &fakeAPI{
		comments: []models.Comment{
			{ID: 1, PostID: 10, UserID: 1, Content: "first"},
			{ID: 2, PostID: 10, UserID: 1, Content: "second"},
			{ID: 3, PostID: 10, UserID: 2, Content: "third"},
			{ID: 4, PostID: 99, UserID: 2, Content: "other post"},
		},
		nextID: 4,
	}
	thread := NewCommentThread(f, 10, discardLogger())

	require.NoError(t, thread.Load(context.Background()))
	assert.Equal(t, []int64{3, 2, 1}, commentIDs(thread.Comments()))
}

func TestCommentThread_PostPrependsOptimistically(t *testing.T) {
	f := &fakeAPI{
		comments: []models.Comment{
			{ID: 1, PostID: 10, UserID: 1, Content: "first"},
			{ID: 2, PostID: 10, UserID: 1, Content: "second"},
			{ID: 3, PostID: 10, UserID: 2, Content: "third"},
		},
		nextID: 3,
	}
	thread := NewCommentThread(f, 10, discardLogger())
	ctx := context.Background()

	require.NoError(t, thread.Load(ctx))
	f.calls = nil

	require.NoError(t, thread.Post(ctx, 2, "fourth"))

	assert.Equal(t, []int64{4, 3, 2, 1}, commentIDs(thread.Comments()),
		"new comment appears immediately, without a re-fetch")
	assert.Equal(t, []string{"CreateComment"}, f.calls, "no refetch after posting")

	got := thread.Comments()[0]
	assert.Equal(t, int64(10), got.PostID)
	assert.Equal(t, int64(2), got.UserID)
	assert.Equal(t, "fourth", got.Content)
}

func TestCommentThread_PostEmptyContentShortCircuits(t *testing.T) {
	f := &fakeAPI{}
	thread := NewCommentThread(f, 10, discardLogger())

	err := thread.Post(context.Background(), 1, "   ")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, f.calls)
	assert.NotEmpty(t, thread.ErrorMessage())
}

func TestCommentThread_LoadFailureKeepsStaleComments(t *testing.T) {
	f := &fakeAPI{
		comments: []models.Comment{{ID: 1, PostID: 10, UserID: 1, Content: "first"}},
		nextID:   1,
	}
	thread := NewCommentThread(f, 10, discardLogger())
	ctx := context.Background()

	require.NoError(t, thread.Load(ctx))
	require.Len(t, thread.Comments(), 1)

	f.listCommentsErr = errors.New("backend down")
	require.Error(t, thread.Load(ctx))

	assert.Len(t, thread.Comments(), 1)
	assert.NotEmpty(t, thread.ErrorMessage())
}

func TestCommentThread_PostFailureLeavesThreadUnchanged(t *testing.T) {
	f := &fakeAPI{createCommentErr: errors.New("boom")}
	thread := NewCommentThread(f, 10, discardLogger())

	require.Error(t, thread.Post(context.Background(), 1, "hello"))
	assert.Empty(t, thread.Comments())
	assert.NotEmpty(t, thread.ErrorMessage())
}
