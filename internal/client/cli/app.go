package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/accountdesk/internal/api"
	"github.com/dmitrijs2005/accountdesk/internal/client/client"
	"github.com/dmitrijs2005/accountdesk/internal/client/config"
	"github.com/dmitrijs2005/accountdesk/internal/client/session"
	"github.com/dmitrijs2005/accountdesk/internal/common"
	"github.com/dmitrijs2005/accountdesk/internal/filex"
)

// sessionStore is the part of session.Store the App needs.
type sessionStore interface {
	Save(ctx context.Context, s session.Session) error
	Load(ctx context.Context) (*session.Session, error)
	Clear(ctx context.Context) error
	Close() error
}

// Mode tells whether the server answered the last ping.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config   *config.Config
	api      client.Client
	sessions sessionStore
	reader   *bufio.Reader
	out      io.Writer

	user *api.User

	modeMu sync.RWMutex
	mode   Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	dbPath, err := filex.EnsureParentDir(c.SessionDBPath)
	if err != nil {
		return nil, err
	}

	store, err := session.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening session database: %w", err)
	}

	apiClient, err := client.NewAccountClient(c.ServerEndpointAddr)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config:   c,
		api:      apiClient,
		sessions: store,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		mode:     ModeOnline,
	}, nil
}

// Run restores a saved session, then serves commands until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.restoreSession(ctx)

	if a.config != nil && a.config.OnlineCheckInterval > 0 {
		watchCtx, stop := context.WithCancel(ctx)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)
		}()
		defer wg.Wait()
		defer stop()
	}

	fmt.Fprintln(a.out, "Welcome to accountdesk (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	_ = a.api.Close()
	_ = a.sessions.Close()
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getMode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	a.mode = mode
}

// getStatus is the navbar: the signed-in username, if any, followed by an
// [offline] marker while the server does not answer pings.
func (a *App) getStatus() string {
	var parts []string
	if a.user != nil {
		parts = append(parts, fmt.Sprintf("(%s)", a.user.Username))
	}
	if a.getMode() == ModeOffline {
		parts = append(parts, "[offline]")
	}
	return strings.Join(parts, " ")
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// navbar between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := a.withTimeout(ctx)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// withTimeout bounds a single server call.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// restoreSession picks up a session saved by an earlier run. The server
// confirms the token first; a rejected token is forgotten, an unreachable
// server leaves it in place for the next start.
func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.sessions.Load(ctx)
	if err != nil {
		dangerAlert(a.out, "Could not read saved session: "+err.Error())
		return
	}
	if sess == nil {
		return
	}

	a.api.SetToken(sess.Token)

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.api.Profile(callCtx)
	switch {
	case err == nil:
		a.user = user
	case errors.Is(err, common.ErrInvalidToken):
		a.api.SetToken("")
		_ = a.sessions.Clear(ctx)
		hint(a.out, "Saved session has expired, please log in again")
	default:
		a.api.SetToken("")
		hint(a.out, "Server unavailable, saved session not restored")
	}
}
