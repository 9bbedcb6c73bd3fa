package screens

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/A-PollyMer/blogsite-cli/internal/client/api"
	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/common"
	"github.com/A-PollyMer/blogsite-cli/internal/logging"
)

// CommentThread is the per-post comment view. Unlike the administrative
// screens it applies one optimistic update: a newly posted comment is
// prepended locally instead of waiting for a re-fetch, and fetched comments
// are reversed so the most recent appears first.
type CommentThread struct {
	api    api.Client
	logger logging.Logger
	postID int64

	mu           sync.Mutex
	comments     []models.Comment
	errorMessage string
}

// NewCommentThread builds the thread for one post.
func NewCommentThread(client api.Client, postID int64, logger logging.Logger) *CommentThread {
	return &CommentThread{
		api:    client,
		postID: postID,
		logger: logger.With("screen", "comments", "post_id", postID),
	}
}

// Load fetches the post's comments and stores them newest-first. On failure
// the previously loaded comments stay.
func (t *CommentThread) Load(ctx context.Context) error {
	comments, err := t.api.ListComments(ctx, t.postID)
	if err != nil {
		t.mu.Lock()
		t.errorMessage = "Failed to load comments"
		t.mu.Unlock()
		t.logger.Error(ctx, "comment load failed", "error", err)
		return err
	}

	// The backend returns creation order; display newest first.
	for i, j := 0, len(comments)-1; i < j; i, j = i+1, j-1 {
		comments[i], comments[j] = comments[j], comments[i]
	}

	t.mu.Lock()
	t.comments = comments
	t.errorMessage = ""
	t.mu.Unlock()
	return nil
}

// Post creates a comment as the given user and prepends the created record
// locally. Empty content is rejected before any request.
func (t *CommentThread) Post(ctx context.Context, userID int64, content string) error {
	if strings.TrimSpace(content) == "" {
		t.mu.Lock()
		t.errorMessage = "Comment cannot be empty"
		t.mu.Unlock()
		return fmt.Errorf("%w: comment cannot be empty", common.ErrValidation)
	}

	created, err := t.api.CreateComment(ctx, models.Comment{
		PostID:  t.postID,
		UserID:  userID,
		Content: content,
	})
	if err != nil {
		t.mu.Lock()
		t.errorMessage = "Failed to post comment"
		t.mu.Unlock()
		t.logger.Error(ctx, "comment create failed", "error", err)
		return err
	}

	t.mu.Lock()
	t.comments = append([]models.Comment{*created}, t.comments...)
	t.errorMessage = ""
	t.mu.Unlock()
	return nil
}

// Comments returns the displayed thread, newest first.
func (t *CommentThread) Comments() []models.Comment {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.Comment, len(t.comments))
	copy(out, t.comments)
	return out
}

func (t *CommentThread) ErrorMessage() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errorMessage
}
