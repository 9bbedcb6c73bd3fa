package screens

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/A-PollyMer/blogsite-cli/internal/client/api"
	"github.com/A-PollyMer/blogsite-cli/internal/client/guard"
	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/client/session"
	"github.com/A-PollyMer/blogsite-cli/internal/common"
	"github.com/A-PollyMer/blogsite-cli/internal/logging"
)

// PostScreen manages the administrative list of blog posts.
type PostScreen struct {
	api     api.Client
	session *session.Provider
	guard   *guard.Guard
	logger  logging.Logger
	confirm Confirm

	mu           sync.Mutex
	items        []models.Post
	editBuffer   models.Post
	modalOpen    bool
	mode         Mode
	errorMessage string
	loading      bool
	generation   uint64
}

// NewPostScreen builds the screen. The session provider supplies the author
// name for new posts.
func NewPostScreen(client api.Client, sess *session.Provider, g *guard.Guard, confirm Confirm, logger logging.Logger) *PostScreen {
	return &PostScreen{
		api:     client,
		session: sess,
		guard:   g,
		confirm: confirm,
		logger:  logger.With("screen", "posts"),
	}
}

// Gate reports the route-guard verdict for this screen.
func (s *PostScreen) Gate() guard.State {
	return s.guard.Check()
}

// Refresh replaces the list with the backend's current state; on failure the
// previous items stay (stale-but-available). Overtaken refreshes are
// discarded.
func (s *PostScreen) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.mu.Unlock()

	posts, err := s.api.ListPosts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil
	}
	s.loading = false
	if err != nil {
		s.errorMessage = "Failed to load posts"
		s.logger.Error(ctx, "post list refresh failed", "error", err)
		return err
	}
	s.items = posts
	s.errorMessage = ""
	return nil
}

// OpenCreate resets the buffer for a new post. The author is pre-filled from
// the logged-in identity and is not edited by the operator.
func (s *PostScreen) OpenCreate() {
	author := ""
	if identity := s.session.Current(); identity != nil {
		author = identity.Username
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.editBuffer = models.Post{Author: author}
	s.mode = ModeCreate
	s.errorMessage = ""
	s.modalOpen = true
}

// OpenEdit copies the target post into the editing buffer.
func (s *PostScreen) OpenEdit(p models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editBuffer = models.Post{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author,
	}
	s.mode = ModeEdit
	s.errorMessage = ""
	s.modalOpen = true
}

// SetBuffer replaces the title and content of the editing buffer. The author
// and identity fields are owned by the screen.
func (s *PostScreen) SetBuffer(title, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editBuffer.Title = title
	s.editBuffer.Content = content
}

// Save validates, dispatches create or update, and on success closes the
// modal and re-fetches. Validation failures never reach the network; request
// failures keep the modal open.
func (s *PostScreen) Save(ctx context.Context) error {
	s.mu.Lock()
	buf := s.editBuffer
	mode := s.mode
	if strings.TrimSpace(buf.Title) == "" || strings.TrimSpace(buf.Content) == "" {
		s.errorMessage = "Title and content are required"
		s.mu.Unlock()
		return fmt.Errorf("%w: title and content are required", common.ErrValidation)
	}
	s.mu.Unlock()

	var err error
	if mode == ModeCreate {
		_, err = s.api.CreatePost(ctx, buf)
	} else {
		err = s.api.UpdatePost(ctx, buf.ID, buf)
	}

	if err != nil {
		s.mu.Lock()
		if mode == ModeCreate {
			s.errorMessage = "Failed to create post"
		} else {
			s.errorMessage = "Failed to update post"
		}
		s.mu.Unlock()
		s.logger.Error(ctx, "post save failed", "mode", mode.String(), "error", err)
		return err
	}

	s.mu.Lock()
	s.modalOpen = false
	s.errorMessage = ""
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Remove deletes a post after explicit confirmation, then re-fetches.
func (s *PostScreen) Remove(ctx context.Context, id int64) error {
	title := ""
	s.mu.Lock()
	for _, p := range s.items {
		if p.ID == id {
			title = p.Title
			break
		}
	}
	s.mu.Unlock()

	if !s.confirm(fmt.Sprintf("Are you sure you want to delete %q?", title)) {
		return nil
	}

	if err := s.api.DeletePost(ctx, id); err != nil {
		s.mu.Lock()
		s.errorMessage = "Failed to delete post"
		s.mu.Unlock()
		s.logger.Error(ctx, "post delete failed", "id", id, "error", err)
		return err
	}
	return s.Refresh(ctx)
}

// Items returns the current list snapshot.
func (s *PostScreen) Items() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.items))
	copy(out, s.items)
	return out
}

// Buffer returns the current editing buffer.
func (s *PostScreen) Buffer() models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editBuffer
}

func (s *PostScreen) ModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modalOpen
}

func (s *PostScreen) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *PostScreen) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMessage
}

func (s *PostScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
