// Package api implements the gateway to the BlogSite REST backend. Every
// screen talks to the backend exclusively through the Client interface; the
// concrete implementation is a thin JSON-over-HTTP wrapper with no local
// state beyond the connection pool.
package api

import (
	"context"

	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
)

// Client is the full REST surface consumed by the application.
//
// Contract:
//   - List* return the backend's ordering unchanged.
//   - Create* return the created entity with its server-assigned fields.
//   - Update*/Delete* return no body; success is the absence of an error.
//   - All methods honor context cancellation and map backend failures onto
//     the sentinels in internal/common.
type Client interface {
	// Users and authentication.
	Register(ctx context.Context, user models.User) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, user models.User) error
	DeleteUser(ctx context.Context, id int64) error
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)

	// Posts.
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, post models.Post) error
	DeletePost(ctx context.Context, id int64) error

	// Comments.
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)

	Close() error
}
