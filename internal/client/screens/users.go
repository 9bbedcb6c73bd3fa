package screens

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/A-PollyMer/blogsite-cli/internal/client/api"
	"github.com/A-PollyMer/blogsite-cli/internal/client/guard"
	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/common"
	"github.com/A-PollyMer/blogsite-cli/internal/logging"
)

// UserScreen manages the administrative list of user accounts.
type UserScreen struct {
	api     api.Client
	guard   *guard.Guard
	logger  logging.Logger
	confirm Confirm

	mu           sync.Mutex
	items        []models.User
	editBuffer   models.User
	modalOpen    bool
	mode         Mode
	errorMessage string
	loading      bool
	generation   uint64
}

// NewUserScreen builds the screen. confirm guards deletions.
func NewUserScreen(client api.Client, g *guard.Guard, confirm Confirm, logger logging.Logger) *UserScreen {
	return &UserScreen{
		api:     client,
		guard:   g,
		confirm: confirm,
		logger:  logger.With("screen", "users"),
	}
}

// Gate reports the route-guard verdict for this screen.
func (s *UserScreen) Gate() guard.State {
	return s.guard.Check()
}

// Refresh replaces the list with the backend's current state. On failure the
// previous items remain displayed (stale-but-available) and ErrorMessage is
// set. A refresh that is overtaken by a newer one discards its response.
func (s *UserScreen) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.mu.Unlock()

	users, err := s.api.ListUsers(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer refresh started while this one was in flight.
		return nil
	}
	s.loading = false
	if err != nil {
		s.errorMessage = "Failed to load users"
		s.logger.Error(ctx, "user list refresh failed", "error", err)
		return err
	}
	s.items = users
	s.errorMessage = ""
	return nil
}

// OpenCreate resets the editing buffer to a defaulted account and opens the
// modal in create mode.
func (s *UserScreen) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editBuffer = models.User{Role: models.RoleUser}
	s.mode = ModeCreate
	s.errorMessage = ""
	s.modalOpen = true
}

// OpenEdit copies the target account into the editing buffer. The password
// field stays blank: it is write-only and never echoed back.
func (s *UserScreen) OpenEdit(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editBuffer = models.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: "",
		Role:     u.RoleOrDefault(),
	}
	s.mode = ModeEdit
	s.errorMessage = ""
	s.modalOpen = true
}

// SetBuffer replaces the editing buffer with the operator's input.
func (s *UserScreen) SetBuffer(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editBuffer = u
}

// Save validates the buffer, dispatches create or update, and on success
// closes the modal and re-fetches the list. On request failure the modal
// stays open so the operator can correct and retry. Validation failures
// never reach the network.
func (s *UserScreen) Save(ctx context.Context) error {
	s.mu.Lock()
	buf := s.editBuffer
	mode := s.mode
	if strings.TrimSpace(buf.Username) == "" || strings.TrimSpace(buf.Email) == "" {
		s.errorMessage = "Username and email are required"
		s.mu.Unlock()
		return fmt.Errorf("%w: username and email are required", common.ErrValidation)
	}
	if mode == ModeCreate && buf.Password == "" {
		s.errorMessage = "Password is required for new users"
		s.mu.Unlock()
		return fmt.Errorf("%w: password is required for new users", common.ErrValidation)
	}
	s.mu.Unlock()

	var err error
	if mode == ModeCreate {
		_, err = s.api.CreateUser(ctx, buf)
	} else {
		err = s.api.UpdateUser(ctx, buf.ID, buf)
	}

	if err != nil {
		s.mu.Lock()
		if mode == ModeCreate {
			s.errorMessage = "Failed to create user"
		} else {
			s.errorMessage = "Failed to update user"
		}
		s.mu.Unlock()
		s.logger.Error(ctx, "user save failed", "mode", mode.String(), "error", err)
		return err
	}

	s.mu.Lock()
	s.modalOpen = false
	s.errorMessage = ""
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Remove deletes an account after explicit confirmation, then re-fetches.
// The local list is never patched optimistically.
func (s *UserScreen) Remove(ctx context.Context, id int64) error {
	name := ""
	s.mu.Lock()
	for _, u := range s.items {
		if u.ID == id {
			name = u.Username
			break
		}
	}
	s.mu.Unlock()

	if !s.confirm(fmt.Sprintf("Are you sure you want to delete user %q?", name)) {
		return nil
	}

	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.mu.Lock()
		s.errorMessage = "Failed to delete user"
		s.mu.Unlock()
		s.logger.Error(ctx, "user delete failed", "id", id, "error", err)
		return err
	}
	return s.Refresh(ctx)
}

// Items returns the current list snapshot.
func (s *UserScreen) Items() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.items))
	copy(out, s.items)
	return out
}

// Buffer returns the current editing buffer.
func (s *UserScreen) Buffer() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editBuffer
}

func (s *UserScreen) ModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modalOpen
}

func (s *UserScreen) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *UserScreen) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMessage
}

func (s *UserScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
