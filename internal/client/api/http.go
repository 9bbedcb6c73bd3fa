package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/common"
	"github.com/A-PollyMer/blogsite-cli/internal/logging"
)

// HTTPClient is the production Client implementation speaking JSON over HTTP
// to the fixed backend origin.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient builds a client for the given base URL (scheme://host[:port],
// trailing slash tolerated). The timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("component", "api"),
	}
}

// Close releases idle connections held by the transport.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do performs one round trip: encodes in (if non-nil) as the JSON body,
// issues the request, maps the status code onto sentinel errors, and decodes
// the response into out (if non-nil). Response bodies for out==nil are
// drained so connections can be reused.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s %s", common.ErrUnavailable, method, path)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request finished", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if err := statusToError(resp); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusToError maps non-2xx responses onto sentinel errors. The backend
// reports login failures as 401 with a plain-text body and missing entities
// as 404.
func statusToError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
}

// Register creates an account. The backend responds with the stored user,
// which doubles as the identity for the auto-login that follows registration.
func (c *HTTPClient) Register(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/api/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Login authenticates with username and password and returns the matching
// identity. A credential mismatch surfaces as common.ErrUnauthorized.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	payload := models.User{Username: username, Password: password}
	var identity models.User
	if err := c.do(ctx, http.MethodPost, "/api/users/login", payload, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/api/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, user models.User) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), user, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/users/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	var created models.Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", post, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id int64, post models.Post) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/posts/%d", id), post, nil)
}

func (c *HTTPClient) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/posts/%d", id), nil, nil)
}

func (c *HTTPClient) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/comments/post/%d", postID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	var created models.Comment
	if err := c.do(ctx, http.MethodPost, "/api/comments", comment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

var _ Client = (*HTTPClient)(nil)
