package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/SafeMeet/internal/artifact"
	"github.com/stpnv0/SafeMeet/internal/challenge"
	"github.com/stpnv0/SafeMeet/internal/config"
	"github.com/stpnv0/SafeMeet/internal/confirmation"
	"github.com/stpnv0/SafeMeet/internal/events"
	"github.com/stpnv0/SafeMeet/internal/handler"
	"github.com/stpnv0/SafeMeet/internal/lock"
	"github.com/stpnv0/SafeMeet/internal/middleware"
	"github.com/stpnv0/SafeMeet/internal/notification"
	"github.com/stpnv0/SafeMeet/internal/repository"
	"github.com/stpnv0/SafeMeet/internal/repository/memory"
	"github.com/stpnv0/SafeMeet/internal/router"
	"github.com/stpnv0/SafeMeet/internal/scheduler"
	"github.com/stpnv0/SafeMeet/internal/service"
	"github.com/stpnv0/SafeMeet/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type publisher interface {
	ports.EventPublisher
	Close() error
}

type repos struct {
	sessions  ports.SessionRepo
	locations ports.LocationRepo
	slots     ports.SlotRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"SafeMeet",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	r, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(r); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (repos, error) {
	if a.cfg.Storage.Driver == "memory" {
		a.log.Warn("using in-memory storage, data is lost on restart")
		store := memory.New()
		return repos{
			sessions:  store.Sessions(),
			locations: store.Locations(),
			slots:     store.Slots(),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return repos{}, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return repos{}, fmt.Errorf("init db: %w", err)
	}

	return repos{
		sessions:  repository.NewSessionRepo(a.db),
		locations: repository.NewLocationRepo(a.db),
		slots:     repository.NewSlotRepo(a.db),
	}, nil
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initLocker() (ports.Locker, error) {
	if a.cfg.Redis.Addr == "" {
		return lock.NewLocalLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	a.redis = client
	a.log.Info("redis session lock enabled", logger.String("addr", a.cfg.Redis.Addr))

	return lock.NewRedisLocker(client, a.cfg.Redis.KeyPrefix, a.cfg.Redis.LockTTL, a.cfg.Redis.LockWait, a.log), nil
}

func (a *App) initPublisher() (publisher, error) {
	ec := a.cfg.Events
	switch ec.Driver {
	case "nats":
		return events.NewNATSPublisher(ec.URL, ec.Prefix, a.log)
	case "rabbitmq":
		return events.NewRabbitPublisher(ec.URL, ec.Exchange, ec.Prefix, a.log)
	default:
		return events.Noop{}, nil
	}
}

func (a *App) initArtifacts() (ports.ArtifactStore, error) {
	cc := a.cfg.Cloudinary
	if cc.CloudName == "" {
		a.log.Warn("cloudinary is not configured, photo uploads disabled")
		return nil, nil
	}

	store, err := artifact.NewCloudinaryStore(cc.CloudName, cc.APIKey, cc.APISecret, cc.Folder, a.log)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (a *App) initServices(r repos) error {
	locker, err := a.initLocker()
	if err != nil {
		return fmt.Errorf("init locker: %w", err)
	}

	pub, err := a.initPublisher()
	if err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}
	a.publisher = pub

	artifacts, err := a.initArtifacts()
	if err != nil {
		return fmt.Errorf("init artifact store: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	rules := service.Rules{
		SessionTTL:   a.cfg.Booking.SessionTTL,
		MinLeadTime:  a.cfg.Booking.MinLeadTime,
		SlotStep:     a.cfg.Booking.SlotStep,
		CodeAttempts: a.cfg.Booking.CodeAttempts,
	}

	sessionService := service.NewSessionService(
		r.sessions, r.locations, r.slots,
		locker, pub, n,
		challenge.NewGenerator(),
		confirmation.NewGenerator(),
		artifacts,
		rules,
		a.log,
	)
	locationService := service.NewLocationService(r.locations, a.log)
	availabilityService := service.NewAvailabilityService(r.locations, r.slots, rules)
	reviewService := service.NewReviewService(r.sessions, sessionService, artifacts, a.log)
	directoryService := service.NewDirectoryService(r.sessions, r.locations, r.slots, rules)

	seeds, err := a.cfg.Seeds()
	if err != nil {
		return fmt.Errorf("location seeds: %w", err)
	}
	if err = locationService.Seed(context.Background(), seeds); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	a.scheduler = scheduler.New(
		sessionService,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.BatchSize,
		a.log,
	)

	h := handler.NewHandler(
		sessionService,
		locationService,
		availabilityService,
		reviewService,
		directoryService,
		a.log,
	)
	limiter := middleware.NewIPRateLimiter(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst)
	engine := router.InitRouter(a.cfg.Gin.Mode, h, router.Middlewares{
		Global: []ginext.HandlerFunc{
			middleware.RequestID(),
			middleware.RequestLogger(a.log),
			middleware.Recovery(a.log),
		},
		Buyer: []ginext.HandlerFunc{middleware.RateLimit(limiter, a.log)},
		Admin: []ginext.HandlerFunc{middleware.RequireOperator(a.cfg.Auth.JWTSecret)},
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
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
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeResources()
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

	a.closeResources()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeResources() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Error("close event publisher", logger.String("error", err.Error()))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.Error("close db", logger.String("error", err.Error()))
			return
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}
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
	if err := goose.Up(db, a.cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
