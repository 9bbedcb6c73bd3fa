package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_RoleOrDefault(t *testing.T) {
	u := &User{Username: "alice"}
	assert.Equal(t, RoleUser, u.RoleOrDefault())

	u.Role = RoleAdmin
	assert.Equal(t, RoleAdmin, u.RoleOrDefault())
}

func TestUser_Clone(t *testing.T) {
	var nilUser *User
	assert.Nil(t, nilUser.Clone())

	u := &User{ID: 7, Username: "bob", Email: "bob@example.org", Role: RoleAdmin}
	c := u.Clone()
	require.NotSame(t, u, c)
	assert.Equal(t, *u, *c)

	c.Username = "mallory"
	assert.Equal(t, "bob", u.Username)
}

func TestUser_PasswordOmittedWhenEmpty(t *testing.T) {
	b, err := json.Marshal(User{ID: 1, Username: "alice", Email: "a@example.org"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
}
