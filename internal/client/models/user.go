// Package models defines the client-side data model for the BlogSite
// backend: users (the authenticated identity and the administrative records),
// posts, comments, and dashboard statistics. The server is authoritative for
// every field; the client never computes derived values.
package models

// Role is the access level assigned to a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is both the authenticated identity stored in the session and the
// administrative record managed on the user screen.
//
// Password is write-only: it is sent in create/update payloads and never
// rendered back. The backend omits it from responses; the client must leave
// it blank when editing an existing record.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// RoleOrDefault returns the account role, falling back to RoleUser when the
// backend left it unset.
func (u *User) RoleOrDefault() Role {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}

// Clone returns a deep copy so shared session state cannot be mutated by
// callers.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
