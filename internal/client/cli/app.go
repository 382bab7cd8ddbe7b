package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/artfolio/artfolio-cli/internal/client/api"
	"github.com/artfolio/artfolio-cli/internal/client/config"
	"github.com/artfolio/artfolio-cli/internal/client/services"
	"github.com/artfolio/artfolio-cli/internal/client/sessionstore"
	"github.com/artfolio/artfolio-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the configuration, the persistent session store, the API client
// and the session into the interactive CLI.
type App struct {
	config  *config.Config
	session sessionIface
	api     *api.Client
	store   *sessionstore.SQLiteStore
	reader  *bufio.Reader

	// pending holds the face step of a started two-step login until it
	// either completes or is abandoned by a fresh login attempt.
	pending *services.PendingFaceLogin
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.Default())

	store, err := sessionstore.Open(ctx, c.ProfileDir)
	if err != nil {
		logger.Error(ctx, "error opening session store", "error", err)
		return nil, err
	}

	apiClient := api.New(api.Options{
		BaseURL:            c.BaseURL,
		RequestTimeout:     c.RequestTimeout,
		ReportPollInterval: c.ReportPollInterval,
		ReportPollTimeout:  c.ReportPollTimeout,
	}, store, logger)

	auth := services.NewAuthService(apiClient, store)
	session := services.NewSession(apiClient, store, auth, logger)

	return &App{
		config:  c,
		session: session,
		api:     apiClient,
		store:   store,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session and hands control to the REPL. It
// blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	a.session.Init(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}

func (a *App) getStatus() string {
	u := a.session.CurrentUser()
	if u == nil {
		return ""
	}
	return "(" + u.Username + ")"
}
