package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/istvanv2/giwedding/internal/captcha"
	"github.com/istvanv2/giwedding/internal/config"
	"github.com/istvanv2/giwedding/internal/handler"
	"github.com/istvanv2/giwedding/internal/middleware"
	"github.com/istvanv2/giwedding/internal/notification"
	"github.com/istvanv2/giwedding/internal/repository"
	"github.com/istvanv2/giwedding/internal/router"
	"github.com/istvanv2/giwedding/internal/service"
	"github.com/istvanv2/giwedding/internal/service/ports"
	"github.com/istvanv2/giwedding/internal/sheets"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"giwedding",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	// The service stays up without Postgres and falls back to the sheet
	// destination, so a missing URL skips the whole database path.
	if cfg.Postgres.Configured() {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	} else {
		log.Warn("DATABASE_URL not set, running without the primary store")
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.URL,
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.Info("database connected")

	return nil
}

func (a *App) initServices() error {
	var store ports.RecordStore
	if a.db != nil {
		store = repository.NewRSVPRepo(a.db)
	}

	sheet := sheets.NewClient(
		a.cfg.Sheets.ServiceAccountEmail,
		a.cfg.Sheets.PrivateKey,
		a.cfg.Sheets.SheetID,
	)
	if !sheet.Configured() {
		a.log.Warn("google sheets credentials not set, sheet destination disabled")
	}

	var verifier ports.CaptchaVerifier
	if a.cfg.Recaptcha.SecretKey != "" {
		verifier = captcha.NewVerifier(a.cfg.Recaptcha.SecretKey)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	submissionService := service.NewSubmissionService(store, sheet, verifier, n, a.log)
	adminService := service.NewAdminService(store, a.cfg.Admin.Password, a.log)

	h := handler.NewHandler(submissionService, adminService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.URL)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
