package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/clock"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/config"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/handler"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/ledger"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/middleware"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/notification"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/repository"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/router"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/scheduler"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	ledger     *ledger.Ledger
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"AttendanceLedger",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.Ledger.Storage == config.StoragePostgres {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initLedger(sink ledger.Sink) error {
	admin := domain.Account(a.cfg.Ledger.Admin)
	opts := []ledger.Option{
		ledger.WithSink(sink),
		ledger.WithGeneralMinters(a.cfg.Ledger.AllowGeneralMinters),
	}

	if a.db == nil {
		a.ledger = ledger.New(admin, opts...)
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "ledger running in memory, state is lost on restart",
			logger.String("admin", string(admin)),
		)
		return nil
	}

	opts = append(opts, ledger.WithIDLimit(repository.MaxID))
	l, err := service.OpenLedger(context.Background(), repository.NewLedgerRepo(a.db), admin, a.log, opts...)
	if err != nil {
		return err
	}
	a.ledger = l
	return nil
}

func (a *App) initServices() error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	if err = a.initLedger(service.NewNotificationSink(n, a.log)); err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}

	var svcOpts []service.Option
	if a.cfg.Ledger.SS58Accounts {
		svcOpts = append(svcOpts, service.WithSS58Accounts())
	}
	ledgerService := service.NewLedgerService(a.ledger, a.log, svcOpts...)

	a.scheduler = scheduler.New(
		ledgerService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	authService := service.NewAuthService(
		[]byte(a.cfg.Auth.JWTSecret),
		a.cfg.Auth.TokenTTL,
		clock.NewSystem(),
		a.log,
	)

	guards := router.Guards{Auth: middleware.Auth([]byte(a.cfg.Auth.JWTSecret))}
	if key := a.cfg.Webhook.CheckInKey; key != "" {
		guards.Webhook = middleware.WebhookSignature([]byte(key))
	} else {
		a.log.Warn("webhook key is empty, check-in webhook disabled")
	}

	h := handler.NewHandler(ledgerService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		handler.NewAuthHandler(authService),
		guards,
		middleware.RequestID(),
		middleware.CORS(a.cfg.Server.CORSOrigins),
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

// Router exposes the HTTP handler for in-process use.
func (a *App) Router() http.Handler {
	return a.httpServer.Handler
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

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

	if err := a.ledger.Verify(); err != nil {
		a.log.Error("ledger inconsistent at shutdown", logger.String("error", err.Error()))
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped",
		logger.Int64("events", int64(a.ledger.EventCount())),
		logger.Int64("tokens", int64(a.ledger.TokenCount())),
	)

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
