// Package cli is the terminal front end of the BlogSite client: a REPL over
// the public and administrative screens, with session persistence across
// runs and advisory gating of the admin commands.
package cli

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/A-PollyMer/blogsite-cli/internal/client/api"
	"github.com/A-PollyMer/blogsite-cli/internal/client/config"
	"github.com/A-PollyMer/blogsite-cli/internal/client/guard"
	"github.com/A-PollyMer/blogsite-cli/internal/client/screens"
	"github.com/A-PollyMer/blogsite-cli/internal/client/session"
	"github.com/A-PollyMer/blogsite-cli/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	api     api.Client
	session *session.Provider
	guard   *guard.Guard

	userScreen *screens.UserScreen
	postScreen *screens.PostScreen
	dashboard  *screens.Dashboard
	home       *screens.Homepage

	reader *bufio.Reader
}

// NewApp wires the application: API gateway, durable session, guard, and
// screens. The session file location falls back to the platform default.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr)

	sessionFile := c.SessionFile
	if sessionFile == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		sessionFile = path
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, logger)
	sess := session.NewProvider(session.NewFileStore(sessionFile), logger)
	g := guard.New(sess)

	a := &App{
		config:  c,
		logger:  logger,
		api:     apiClient,
		session: sess,
		guard:   g,
		reader:  bufio.NewReader(os.Stdin),
	}

	a.userScreen = screens.NewUserScreen(apiClient, g, a.confirmPrompt, logger)
	a.postScreen = screens.NewPostScreen(apiClient, sess, g, a.confirmPrompt, logger)
	a.dashboard = screens.NewDashboard(apiClient, g, logger)
	a.home = screens.NewHomepage(apiClient, logger)

	return a, nil
}

// Run hydrates the session once, then drives the REPL until EOF or exit.
// Dependent commands never observe an unhydrated session.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.api.Close() }()

	a.session.Hydrate(ctx)
	if identity := a.session.Current(); identity != nil {
		printlnFn("Welcome back,", identity.Username)
	}

	printlnFn("BlogSite CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

// getStatus renders the prompt decoration: the logged-in username, if any.
func (a *App) getStatus() string {
	identity := a.session.Current()
	if identity == nil {
		return ""
	}
	return "(" + identity.Username + ")"
}

// ensureAuthorized applies the route guard for a protected command. When the
// verdict is redirecting, the user is sent back to the public surface with a
// hint, and the command body never runs.
func (a *App) ensureAuthorized(ctx context.Context) bool {
	if !a.session.Hydrated() {
		a.session.Hydrate(ctx)
	}
	switch a.guard.Check() {
	case guard.StateAuthorized:
		return true
	default:
		printlnFn("Please login first!")
		return false
	}
}

// confirmPrompt asks a yes/no question; only an explicit yes proceeds.
func (a *App) confirmPrompt(prompt string) bool {
	answer, err := getSimpleText(a.reader, prompt+" (y/N)", os.Stdout)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
