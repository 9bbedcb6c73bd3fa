package screens

import (
	"context"
	"sync"

	"github.com/A-PollyMer/blogsite-cli/internal/client/api"
	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/logging"
)

// Homepage is the public, read-only view of published posts. No
// authorization gate applies.
type Homepage struct {
	api    api.Client
	logger logging.Logger

	mu           sync.Mutex
	posts        []models.Post
	errorMessage string
	loading      bool
}

func NewHomepage(client api.Client, logger logging.Logger) *Homepage {
	return &Homepage{
		api:    client,
		logger: logger.With("screen", "home"),
	}
}

// Refresh fetches the published posts in backend order. Stale-but-available
// on failure.
func (h *Homepage) Refresh(ctx context.Context) error {
	h.mu.Lock()
	h.loading = true
	h.mu.Unlock()

	posts, err := h.api.ListPosts(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.loading = false
	if err != nil {
		h.errorMessage = "Failed to load posts"
		h.logger.Error(ctx, "homepage refresh failed", "error", err)
		return err
	}
	h.posts = posts
	h.errorMessage = ""
	return nil
}

func (h *Homepage) Posts() []models.Post {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.Post, len(h.posts))
	copy(out, h.posts)
	return out
}

func (h *Homepage) ErrorMessage() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errorMessage
}

func (h *Homepage) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}
