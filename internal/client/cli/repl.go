package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	// Public surface.
	Home(ctx context.Context) error
	Comments(ctx context.Context) error
	Comment(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error

	// Protected surface.
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Users(ctx context.Context) error
	UserAdd(ctx context.Context) error
	UserEdit(ctx context.Context) error
	UserDel(ctx context.Context) error
	Posts(ctx context.Context) error
	PostAdd(ctx context.Context) error
	PostEdit(ctx context.Context) error
	PostDel(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the BlogSite CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands prompt interactively for whatever they need (post IDs, field
// values), so every handler has the same no-argument shape. Errors returned
// by handlers are ignored here; handlers report their own failures. This
// keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("blog %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, comments, comment, whoami, admin, users, useradd, useredit, userdel, posts, postadd, postedit, postdel, logout, exit")
			} else {
				printlnFn("Available commands: home, comments, register, login, exit")
			}

		case "home":
			_ = a.Home(ctx)

		case "comments":
			_ = a.Comments(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "admin", "dashboard":
			_ = a.Dashboard(ctx)

		case "users":
			_ = a.Users(ctx)

		case "useradd":
			_ = a.UserAdd(ctx)

		case "useredit":
			_ = a.UserEdit(ctx)

		case "userdel":
			_ = a.UserDel(ctx)

		case "posts":
			_ = a.Posts(ctx)

		case "postadd":
			_ = a.PostAdd(ctx)

		case "postedit":
			_ = a.PostEdit(ctx)

		case "postdel":
			_ = a.PostDel(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
