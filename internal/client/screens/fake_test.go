package screens

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/A-PollyMer/blogsite-cli/internal/client/api"
	"github.com/A-PollyMer/blogsite-cli/internal/client/guard"
	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/client/session"
	"github.com/A-PollyMer/blogsite-cli/internal/logging"
)

// fakeAPI is an in-memory api.Client that behaves like the backend: it
// assigns IDs, stamps CreatedAt, and serves lists in insertion order.
// Per-method error fields inject failures; hooks override whole calls.
type fakeAPI struct {
	users    []models.User
	posts    []models.Post
	comments []models.Comment
	stats    models.DashboardStats
	nextID   int64

	listUsersErr    error
	createUserErr   error
	updateUserErr   error
	deleteUserErr   error
	listPostsErr    error
	createPostErr   error
	updatePostErr   error
	deletePostErr   error
	listCommentsErr error
	createCommentErr error
	statsErr        error

	listUsersHook func() ([]models.User, error)
	listPostsHook func() ([]models.Post, error)

	calls []string
}

func (f *fakeAPI) allocID() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeAPI) Register(ctx context.Context, u models.User) (*models.User, error) {
	return f.CreateUser(ctx, u)
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*models.User, error) {
	f.calls = append(f.calls, "Login")
	for _, u := range f.users {
		if u.Username == username {
			c := u
			c.Password = ""
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeAPI) ListUsers(context.Context) ([]models.User, error) {
	f.calls = append(f.calls, "ListUsers")
	if f.listUsersHook != nil {
		return f.listUsersHook()
	}
	if f.listUsersErr != nil {
		return nil, f.listUsersErr
	}
	out := make([]models.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeAPI) CreateUser(_ context.Context, u models.User) (*models.User, error) {
	f.calls = append(f.calls, "CreateUser")
	if f.createUserErr != nil {
		return nil, f.createUserErr
	}
	u.ID = f.allocID()
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, id int64, u models.User) error {
	f.calls = append(f.calls, "UpdateUser")
	if f.updateUserErr != nil {
		return f.updateUserErr
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u.ID = id
			f.users[i] = u
		}
	}
	return nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id int64) error {
	f.calls = append(f.calls, "DeleteUser")
	if f.deleteUserErr != nil {
		return f.deleteUserErr
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) DashboardStats(context.Context) (*models.DashboardStats, error) {
	f.calls = append(f.calls, "DashboardStats")
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	s := f.stats
	return &s, nil
}

func (f *fakeAPI) ListPosts(context.Context) ([]models.Post, error) {
	f.calls = append(f.calls, "ListPosts")
	if f.listPostsHook != nil {
		return f.listPostsHook()
	}
	if f.listPostsErr != nil {
		return nil, f.listPostsErr
	}
	out := make([]models.Post, len(f.posts))
	copy(out, f.posts)
	return out, nil
}

func (f *fakeAPI) CreatePost(_ context.Context, p models.Post) (*models.Post, error) {
	f.calls = append(f.calls, "CreatePost")
	if f.createPostErr != nil {
		return nil, f.createPostErr
	}
	p.ID = f.allocID()
	p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	f.posts = append(f.posts, p)
	return &p, nil
}

func (f *fakeAPI) UpdatePost(_ context.Context, id int64, p models.Post) error {
	f.calls = append(f.calls, "UpdatePost")
	if f.updatePostErr != nil {
		return f.updatePostErr
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			p.ID = id
			p.CreatedAt = f.posts[i].CreatedAt
			f.posts[i] = p
		}
	}
	return nil
}

func (f *fakeAPI) DeletePost(_ context.Context, id int64) error {
	f.calls = append(f.calls, "DeletePost")
	if f.deletePostErr != nil {
		return f.deletePostErr
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) ListComments(_ context.Context, postID int64) ([]models.Comment, error) {
	f.calls = append(f.calls, "ListComments")
	if f.listCommentsErr != nil {
		return nil, f.listCommentsErr
	}
	out := make([]models.Comment, 0)
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateComment(_ context.Context, c models.Comment) (*models.Comment, error) {
	f.calls = append(f.calls, "CreateComment")
	if f.createCommentErr != nil {
		return nil, f.createCommentErr
	}
	c.ID = f.allocID()
	f.comments = append(f.comments, c)
	return &c, nil
}

func (f *fakeAPI) Close() error { return nil }

var _ api.Client = (*fakeAPI)(nil)

// testDeps wires a hydrated, logged-in session plus guard around a fakeAPI.
func testDeps(t *testing.T, loggedIn bool) (*fakeAPI, *session.Provider, *guard.Guard) {
	t.Helper()
	f := &fakeAPI{}
	store := session.NewFileStore(filepath.Join(t.TempDir(), "user.json"))
	sess := session.NewProvider(store, logging.NewTextLogger(io.Discard))
	sess.Hydrate(context.Background())
	if loggedIn {
		if err := sess.Login(context.Background(), &models.User{ID: 1, Username: "admin", Email: "admin@blog.org", Role: models.RoleAdmin}); err != nil {
			t.Fatalf("login: %v", err)
		}
	}
	return f, sess, guard.New(sess)
}

func discardLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard)
}

func alwaysConfirm(string) bool { return true }
func neverConfirm(string) bool  { return false }
