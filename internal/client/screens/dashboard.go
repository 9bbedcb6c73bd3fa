package screens

import (
	"context"
	"sync"

	"github.com/A-PollyMer/blogsite-cli/internal/client/api"
	"github.com/A-PollyMer/blogsite-cli/internal/client/guard"
	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/logging"
)

// Dashboard is the protected landing screen: aggregate counts plus the user
// table.
type Dashboard struct {
	api    api.Client
	guard  *guard.Guard
	logger logging.Logger

	mu           sync.Mutex
	stats        models.DashboardStats
	users        []models.User
	errorMessage string
	loading      bool
}

func NewDashboard(client api.Client, g *guard.Guard, logger logging.Logger) *Dashboard {
	return &Dashboard{
		api:    client,
		guard:  g,
		logger: logger.With("screen", "dashboard"),
	}
}

// Gate reports the route-guard verdict for this screen.
func (d *Dashboard) Gate() guard.State {
	return d.guard.Check()
}

// Refresh fetches the aggregate counts and the user list. Either fetch
// failing leaves the last successful values in place.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()

	stats, statsErr := d.api.DashboardStats(ctx)
	users, usersErr := d.api.ListUsers(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false

	if statsErr == nil {
		d.stats = *stats
	}
	if usersErr == nil {
		d.users = users
	}

	if statsErr != nil {
		d.errorMessage = "Failed to load dashboard statistics"
		d.logger.Error(ctx, "stats refresh failed", "error", statsErr)
		return statsErr
	}
	if usersErr != nil {
		d.errorMessage = "Failed to load users"
		d.logger.Error(ctx, "user list refresh failed", "error", usersErr)
		return usersErr
	}
	d.errorMessage = ""
	return nil
}

func (d *Dashboard) Stats() models.DashboardStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *Dashboard) Users() []models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

func (d *Dashboard) ErrorMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errorMessage
}

func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}
