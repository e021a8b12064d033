package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"sharenote/internal/adapters/events"
	httpServer "sharenote/internal/adapters/http"
	pg "sharenote/internal/adapters/postgres"
	adapterServices "sharenote/internal/adapters/services"
	"sharenote/internal/app"
	"sharenote/internal/config"
	"sharenote/pkg/db/postgres"
	"sharenote/pkg/db/redis"
	"sharenote/pkg/logger"
	"sharenote/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "SHARENOTE_LOGGER_MODE"
	EnvLoggerLevel = "SHARENOTE_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrApplyMigrations      = "failed to apply database migrations"
	ErrConnectDatabase      = "failed to connect to database"
	ErrConnectRedis         = "failed to connect to Redis"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "sharenote service started"
	LogServiceShutdownDone = "sharenote service shutdown complete"
	LogApplyingMigrations  = "applying database migrations"
	LogInitDatabase        = "initializing database connection"
	LogInitRedis           = "initializing Redis client"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingPublisher    = "closing event publisher"
	LogClosingDatabase     = "closing database connection"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogApplyingMigrations)
		if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), "file://"+cfg.Postgres.MigrationsDir); err != nil {
			log.Error(ctx, ErrApplyMigrations, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitDatabase)
		db, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrConnectDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitRedis)
		redisClient, err := redis.NewClient(cfg.Redis.ToClientConfig())
		if err != nil {
			log.Error(ctx, ErrConnectRedis, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		userRepo := pg.NewUserRepository(db.Pool())
		noteRepo := pg.NewNoteRepository(db.Pool())
		activityRepo := pg.NewActivityRepository(db.Pool())

		passwordSvc := adapterServices.NewBcrypt(cfg.JWT.BCryptCost)
		tokenSvc := adapterServices.NewJWT(cfg.JWT.SecretKey, cfg.JWT.GetTokenTTL())
		shareTokenGen := adapterServices.NewShareTokenGenerator()
		publisher := events.NewRedisPublisher(redisClient, cfg.Redis.EventsChannel)

		authUseCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)
		notesUseCase := app.NewNoteUseCase(noteRepo, activityRepo, publisher)
		sharingUseCase := app.NewSharingUseCase(noteRepo, shareTokenGen, cfg.HTTP.BaseURL)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(fiberApp, authUseCase, notesUseCase, sharingUseCase, tokenSvc)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			// Закрытие издателя событий.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingPublisher)
				return publisher.Close()
			},
			// Закрытие соединения с базой данных.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDatabase)
				db.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
