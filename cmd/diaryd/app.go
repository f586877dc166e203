package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/99minutos/diary/internal/api"
	"github.com/99minutos/diary/internal/core/ports"
	"github.com/99minutos/diary/internal/core/service"
	"github.com/99minutos/diary/internal/infrastructure/db/mongo"
	"github.com/99minutos/diary/internal/infrastructure/db/postgres"
	"github.com/99minutos/diary/internal/infrastructure/db/redis"
	infrahttp "github.com/99minutos/diary/internal/infrastructure/http"
	"github.com/99minutos/diary/internal/infrastructure/http/handlers"
	"github.com/99minutos/diary/internal/infrastructure/queue"
	"github.com/99minutos/diary/internal/pkg/config"
	"github.com/99minutos/diary/pkg/logger"
)

// stores groups the repositories of one storage backend.
type stores struct {
	entries  ports.EntryRepository
	users    ports.AuthRepository
	activity ports.ActivityRepository
	ping     handlers.Pinger
	close    func(ctx context.Context) error
}

func initLogger(level string, development bool) zerolog.Logger {
	return logger.Init(logger.Options{
		Level:   level,
		Pretty:  development,
		Service: "diary",
	})
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := initLogger(cfg.LogLevel, cfg.IsDevelopment())

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() { _ = rdb.Close() }()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("closing entry store")
		}
	}()

	authService := service.NewAuthService(
		st.users,
		redis.NewSessionStore(rdb),
		cfg.Session.JWTSecret,
		cfg.Session.TTL,
		cfg.Session.AuthCodeTTL,
		log,
	)

	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, st.activity, log)

	entryService := service.NewEntryService(st.entries, authService, log,
		service.WithActivityRecorder(dispatcher),
	)
	themeService := service.NewThemeService(redis.NewThemeStore(rdb), log)

	router := api.NewRouter(api.Dependencies{
		Log:      log,
		Entries:  entryService,
		Auth:     authService,
		Sessions: authService,
		Themes:   themeService,
		Health: map[string]handlers.Pinger{
			"redis":          handlers.RedisPinger(rdb),
			cfg.Store.Driver: st.ping,
		},
		CookieSecure: cfg.Session.CookieSecure,
	})

	log.Info().
		Str("store", cfg.Store.Driver).
		Int("activity_workers", cfg.ActivityWorkers).
		Msg("starting diary service")

	server := infrahttp.NewServer(":"+cfg.Port, router, log)
	runErr := runWithWorkers(ctx, dispatcher, server.Run)
	log.Info().Msg("diary service stopped")
	return runErr
}

// runWithWorkers serves until ctx is done and serve has returned, then
// stops and drains the activity workers. Requests finishing during the
// server's grace period still reach a running worker.
func runWithWorkers(ctx context.Context, d *queue.Dispatcher, serve func(context.Context) error) error {
	workerCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	d.Start(workerCtx)

	err := serve(ctx)

	stopWorkers()
	d.Wait()
	return err
}

func runMigrate(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := config.LoadMigrate(parent)
	if err != nil {
		return err
	}
	log := initLogger(cfg.LogLevel, cfg.IsDevelopment())

	db, err := postgres.Open(parent, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := postgres.Migrate(parent, db); err != nil {
		return err
	}
	log.Info().Msg("migrations applied")
	return nil
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := postgres.Open(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Msg("postgres ready")
		return &stores{
			entries:  postgres.NewEntryRepository(db),
			users:    postgres.NewAuthRepository(db),
			activity: postgres.NewActivityRepository(db),
			ping:     handlers.SQLPinger(db),
			close:    func(context.Context) error { return db.Close() },
		}, nil

	case config.StoreMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  cfg.Mongo.AppName,
			Timeout:  cfg.Mongo.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		entries := mongo.NewEntryRepository(db)
		users := mongo.NewAuthRepository(db)
		if err := errors.Join(entries.EnsureIndexes(ctx), users.EnsureIndexes(ctx)); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo ready")
		return &stores{
			entries:  entries,
			users:    users,
			activity: mongo.NewActivityRepository(db),
			ping:     handlers.MongoPinger(db),
			close:    client.Disconnect,
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
