package cli

import (
	"context"
	"fmt"
)

// Dashboard shows the aggregate counts and the user table. Protected.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}

	if err := a.dashboard.Refresh(ctx); err != nil {
		printlnFn(a.dashboard.ErrorMessage())
		return err
	}

	stats := a.dashboard.Stats()
	printlnFn(fmt.Sprintf("Total users: %d", stats.TotalUsers))
	printlnFn(fmt.Sprintf("Total posts: %d", stats.TotalPosts))

	printlnFn("Users:")
	for _, u := range a.dashboard.Users() {
		printlnFn(fmt.Sprintf("  #%d %s <%s> [%s]", u.ID, u.Username, u.Email, u.RoleOrDefault()))
	}
	return nil
}
