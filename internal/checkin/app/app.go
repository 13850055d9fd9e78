package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/illiaantonenko/attendance/internal/checkin/http"
	"github.com/illiaantonenko/attendance/internal/checkin/nonce"
	"github.com/illiaantonenko/attendance/internal/checkin/notify"
	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/internal/checkin/store"
	"github.com/illiaantonenko/attendance/internal/checkin/store/drivers/sqlite"
	"github.com/illiaantonenko/attendance/pkg/cryptox"
	"github.com/illiaantonenko/attendance/pkg/jwtx"
	"github.com/illiaantonenko/attendance/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the check-in service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	nonces   nonce.Store
	keychain *jwtx.Keychain
	signer   jwtx.Signer
	verifier jwtx.Verifier

	// Services
	qrService      *service.QrService
	checkInService *service.CheckInService
	eventService   *service.EventService
	sweeperService *service.SweeperService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "checkin-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.nonces = nonce.NewMemoryStore()

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start the expired-nonce sweeper
	app.sweeperService.Start()

	app.logger.Info("checkin service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down checkin service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the nonce sweeper
	app.sweeperService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("checkin service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initKeys derives the HMAC keychain from the master secret and builds the
// signer and verifier. The service never stores raw signing keys.
func (app *Application) initKeys() error {
	keys, err := cryptox.DeriveKeychain([]byte(app.cfg.MasterSecret), app.cfg.KeyVersions)
	if err != nil {
		return fmt.Errorf("failed to derive signing keys: %w", err)
	}

	chain, err := jwtx.NewKeychain(app.cfg.ActiveKeyVersion, keys)
	if err != nil {
		return fmt.Errorf("failed to build keychain: %w", err)
	}
	app.keychain = chain

	signer, err := jwtx.NewSignerHS256(chain)
	if err != nil {
		return fmt.Errorf("failed to build signer: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifierHS256(chain)

	app.logger.Info("signing keychain ready",
		"versions", app.cfg.KeyVersions,
		"active", app.cfg.ActiveKeyVersion,
	)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.qrService = &service.QrService{
		Store:       app.db,
		Nonces:      app.nonces,
		Signer:      app.signer,
		Verifier:    app.verifier,
		TokenTTL:    app.cfg.TokenTTL,
		DisplayLead: app.cfg.DisplayLead,
		BaseURL:     app.cfg.BaseURL,
	}

	app.checkInService = &service.CheckInService{
		Store:    app.db,
		Nonces:   app.nonces,
		Verifier: app.verifier,
		Notifier: &notify.LogNotifier{},
	}

	app.eventService = &service.EventService{Store: app.db}

	app.sweeperService = service.NewSweeperService(
		app.nonces,
		app.logger,
		app.cfg.SweepInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keychain,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.QrService = app.qrService
	router.CheckInService = app.checkInService
	router.EventService = app.eventService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
