// Package server initializes and runs the GophAuth server: it opens and
// migrates the credential store, wires the user service into the HTTP API and
// runs the HTTP and gRPC health servers until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/api"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
	health  *gs.HealthServer
}

// NewApp validates c, connects to the configured store, applies migrations
// and builds the servers. Logs go to stdout as JSON.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout)
}

func newApp(c *config.Config, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.NewJSONLogger(logOut, c.LogLevel)
	api.ConfigureGin()

	rm, err := repomanager.ForDriver(c.StorageDriver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(c.StorageDriver, c.DSN())
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	logger.Info(ctx, "Storage ready", "driver", c.StorageDriver)

	us := services.NewUserService(db, rm, c)

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		handler: api.NewRouter(us, logger),
		health:  gs.NewHealthServer(c.EndpointAddrGRPC, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) func() {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		if _, ok := <-sigs; ok {
			cancelFunc()
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(sigs)
	}
}

func (app *App) startHTTPServer(ctx context.Context) error {
	listen, err := net.Listen("tcp", app.config.EndpointAddrHTTP)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           app.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
	app.health.SetServing(true)

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves until ctx is cancelled, a shutdown signal arrives or one of the
// servers fails. The store is closed on return.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	stopSignals := app.initSignalHandler(cancelFunc)
	defer stopSignals()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.startHTTPServer(gctx) })
	g.Go(func() error { return app.health.Run(gctx) })

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "closing db", "error", cerr)
	}
	if err != nil {
		app.logger.Error(ctx, "server error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
