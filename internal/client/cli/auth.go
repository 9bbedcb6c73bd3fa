package cli

import (
	"context"
	"errors"
	"os"

	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the new account's fields, creates it on the server,
// and logs the created identity straight into the session, matching the
// register-then-redirect flow of the web client.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.Register(ctx, models.User{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	if err := a.session.Login(ctx, created); err != nil {
		a.logger.Warn(ctx, "session persist failed", "error", err)
	}
	printlnFn("User registered successfully, you are now logged in as", created.Username)
	return nil
}

// Login prompts for credentials, authenticates against the backend, and
// persists the returned identity. A credential mismatch is reported without
// touching the current session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	identity, err := a.api.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			printlnFn("Invalid username or password")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	if err := a.session.Login(ctx, identity); err != nil {
		a.logger.Warn(ctx, "session persist failed", "error", err)
	}
	printlnFn("Login successful! Welcome,", identity.Username)
	return nil
}

// Logout clears the session and its durable record, dropping the user back
// to the public surface. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the active identity.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}
	identity := a.session.Current()
	printlnFn("Logged in as", identity.Username, "<"+identity.Email+">", "role:", string(identity.RoleOrDefault()))
	return nil
}
