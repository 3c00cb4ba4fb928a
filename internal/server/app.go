// Package server wires the account directory, token issuer and gRPC
// endpoint together and runs them until the process is signalled.
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/accountdesk/internal/logging"
	"github.com/dmitrijs2005/accountdesk/internal/server/accounts"
	"github.com/dmitrijs2005/accountdesk/internal/server/auth"
	"github.com/dmitrijs2005/accountdesk/internal/server/config"

	gs "github.com/dmitrijs2005/accountdesk/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	accounts *accounts.Service
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout)
}

func newApp(c *config.Config, out io.Writer) (*App, error) {

	logger := logging.NewJSONLogger(out, slog.LevelDebug)

	issuer, err := auth.NewIssuer(c.TokenMode, c.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("token issuer init error: %w", err)
	}

	as := accounts.NewService(accounts.NewDirectory(), issuer, c)

	return &App{config: c, logger: logger, accounts: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accounts)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or the
// gRPC endpoint fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"token_mode", app.config.TokenMode,
		"response_delay", app.config.ResponseDelay.String(),
	)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
