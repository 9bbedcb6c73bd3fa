package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/common"
)

// Users lists the user accounts. Protected.
func (a *App) Users(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}

	if err := a.userScreen.Refresh(ctx); err != nil {
		printlnFn(a.userScreen.ErrorMessage())
		return err
	}

	items := a.userScreen.Items()
	printlnFn(fmt.Sprintf("Users (%d):", len(items)))
	for _, u := range items {
		printlnFn(fmt.Sprintf("  #%d %s <%s> [%s]", u.ID, u.Username, u.Email, u.RoleOrDefault()))
	}
	return nil
}

// promptUserBuffer collects the editable account fields into the screen's
// buffer. The password prompt may be skipped on edit: empty keeps the
// current password.
func (a *App) promptUserBuffer(edit bool) error {
	buf := a.userScreen.Buffer()

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	passwordPrompt := "Enter password"
	if edit {
		passwordPrompt = "Enter password (leave empty to keep current)"
	}
	password, err := getSimpleText(a.reader, passwordPrompt, os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (USER/ADMIN)", os.Stdout)
	if err != nil {
		return err
	}

	buf.Username = username
	buf.Email = email
	buf.Password = password
	if role != "" {
		buf.Role = models.Role(role)
	}
	a.userScreen.SetBuffer(buf)
	return nil
}

// UserAdd creates a new account through the modal flow. Protected.
func (a *App) UserAdd(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}

	a.userScreen.OpenCreate()
	if err := a.promptUserBuffer(false); err != nil {
		return err
	}

	if err := a.userScreen.Save(ctx); err != nil {
		printlnFn(a.userScreen.ErrorMessage())
		if errors.Is(err, common.ErrValidation) {
			return nil
		}
		return err
	}
	printlnFn("User created successfully!")
	return nil
}

// UserEdit updates an existing account by id. Protected.
func (a *App) UserEdit(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}

	if err := a.userScreen.Refresh(ctx); err != nil {
		printlnFn(a.userScreen.ErrorMessage())
		return err
	}

	id, err := promptID(a.reader, "Enter user id to edit")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	var target *models.User
	for _, u := range a.userScreen.Items() {
		if u.ID == id {
			target = &u
			break
		}
	}
	if target == nil {
		printlnFn("No user with id", id)
		return nil
	}

	a.userScreen.OpenEdit(*target)
	if err := a.promptUserBuffer(true); err != nil {
		return err
	}

	if err := a.userScreen.Save(ctx); err != nil {
		printlnFn(a.userScreen.ErrorMessage())
		if errors.Is(err, common.ErrValidation) {
			return nil
		}
		return err
	}
	printlnFn("User updated successfully!")
	return nil
}

// UserDel removes an account by id after confirmation. Protected.
func (a *App) UserDel(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}

	if err := a.userScreen.Refresh(ctx); err != nil {
		printlnFn(a.userScreen.ErrorMessage())
		return err
	}

	id, err := promptID(a.reader, "Enter user id to delete")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.userScreen.Remove(ctx, id); err != nil {
		printlnFn(a.userScreen.ErrorMessage())
		return err
	}
	return nil
}
