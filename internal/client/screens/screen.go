// Package screens implements the view controllers of the client. The two
// administrative screens (users, posts) follow one protocol: a local list
// snapshot, a modal editing buffer, local validation before any request, and
// a full list re-fetch after every successful mutation. The list is only
// ever trusted after a round trip; there is no optimistic patching except
// the comment thread's prepend.
package screens

// Mode says whether the editing buffer targets a new or an existing entity.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Confirm asks the user to approve a destructive action. Deletions never
// proceed without it.
type Confirm func(prompt string) bool
