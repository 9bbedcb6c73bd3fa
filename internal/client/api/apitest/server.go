// Package apitest provides an in-memory BlogSite backend for tests. It
// mirrors the observed semantics of the real REST API: sequential int64 IDs,
// plain-text 401 on bad credentials, server-side CreatedAt stamping, and
// keep-current-password-on-empty updates.
package apitest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
)

// Server is an http.Handler implementing the full backend surface over
// in-memory maps. Safe for concurrent use.
type Server struct {
	mu       sync.Mutex
	router   chi.Router
	users    map[int64]models.User
	posts    map[int64]models.Post
	comments map[int64]models.Comment
	nextID   int64
}

// NewServer returns an empty backend.
func NewServer() *Server {
	s := &Server{
		users:    make(map[int64]models.User),
		posts:    make(map[int64]models.Post),
		comments: make(map[int64]models.Comment),
	}

	r := chi.NewRouter()

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/login", s.login)
		r.Get("/dashboard/stats", s.dashboardStats)
		r.Get("/", s.listUsers)
		r.Post("/", s.createUser)
		r.Put("/{id}", s.updateUser)
		r.Delete("/{id}", s.deleteUser)
	})

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", s.listPosts)
		r.Post("/", s.createPost)
		r.Put("/{id}", s.updatePost)
		r.Delete("/{id}", s.deletePost)
	})

	r.Route("/api/comments", func(r chi.Router) {
		r.Get("/post/{postID}", s.listComments)
		r.Post("/", s.createComment)
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) allocID() int64 {
	s.nextID++
	return s.nextID
}

// AddUser seeds an account directly, bypassing HTTP. Returns the stored copy.
func (s *Server) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.allocID()
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	s.users[u.ID] = u
	return u
}

// AddPost seeds a post directly, bypassing HTTP. Returns the stored copy.
func (s *Server) AddPost(p models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.allocID()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}
	s.posts[p.ID] = p
	return p
}

// AddComment seeds a comment directly, bypassing HTTP. Returns the stored copy.
func (s *Server) AddComment(c models.Comment) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.allocID()
	s.comments[c.ID] = c
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

// sanitized strips the write-only password before the record goes on the wire.
func sanitized(u models.User) models.User {
	u.Password = ""
	return u
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds models.User
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == creds.Username && u.Password == creds.Password {
			writeJSON(w, http.StatusOK, sanitized(u))
			return
		}
	}
	http.Error(w, "Invalid username or password", http.StatusUnauthorized)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for id := int64(1); id <= s.nextID; id++ {
		if u, ok := s.users[id]; ok {
			users = append(users, sanitized(u))
		}
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	u.ID = s.allocID()
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	s.users[u.ID] = u
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, sanitized(u))
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	var in models.User
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.users[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	current.Username = in.Username
	current.Email = in.Email
	if in.Password != "" {
		current.Password = in.Password
	}
	if in.Role != "" {
		current.Role = in.Role
	}
	s.users[id] = current
	writeJSON(w, http.StatusOK, sanitized(current))
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[id]; !exists {
		http.NotFound(w, r)
		return
	}
	delete(s.users, id)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("User deleted successfully."))
}

func (s *Server) dashboardStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, models.DashboardStats{
		TotalUsers: int64(len(s.users)),
		TotalPosts: int64(len(s.posts)),
	})
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]models.Post, 0, len(s.posts))
	for id := int64(1); id <= s.nextID; id++ {
		if p, ok := s.posts[id]; ok {
			posts = append(posts, p)
		}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var p models.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	p.ID = s.allocID()
	p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	s.posts[p.ID] = p
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	var in models.Post
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.posts[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	current.Title = in.Title
	current.Content = in.Content
	current.Author = in.Author
	s.posts[id] = current
	writeJSON(w, http.StatusOK, current)
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.posts[id]; !exists {
		http.NotFound(w, r)
		return
	}
	delete(s.posts, id)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Post deleted successfully."))
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postID")
	if !ok {
		http.Error(w, "bad post id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	comments := make([]models.Comment, 0)
	for id := int64(1); id <= s.nextID; id++ {
		if c, ok := s.comments[id]; ok && c.PostID == postID {
			comments = append(comments, c)
		}
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	var c models.Comment
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	c.ID = s.allocID()
	s.comments[c.ID] = c
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, c)
}
