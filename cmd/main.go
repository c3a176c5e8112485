package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/config"
	"github.com/oksasatya/digitalhub/internal/application"
	"github.com/oksasatya/digitalhub/internal/container"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
	"github.com/oksasatya/digitalhub/internal/infrastructure/identity"
	"github.com/oksasatya/digitalhub/internal/infrastructure/notify"
	pginfra "github.com/oksasatya/digitalhub/internal/infrastructure/postgres"
	redisinfra "github.com/oksasatya/digitalhub/internal/infrastructure/redis"
	"github.com/oksasatya/digitalhub/internal/infrastructure/rest"
	"github.com/oksasatya/digitalhub/internal/interface/middleware"
	"github.com/oksasatya/digitalhub/internal/router"
	"github.com/oksasatya/digitalhub/pkg/helpers"
	"github.com/oksasatya/digitalhub/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// REST collaborator
	client, err := rest.New(cfg.BackendURL, rest.WithTimeout(cfg.BackendTimeout), rest.WithLogger(logger))
	if err != nil {
		log.Fatalf("invalid backend url: %v", err)
	}
	gw := rest.NewGateway(client)

	// Redis backs rate limiting and, by default, the session slot
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.WithError(err).Warn("redis unreachable; rate limiting fails open")
	}
	cancel()

	var slot repository.SessionSlot
	switch cfg.SessionStore {
	case config.SessionStorePostgres:
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxConnLife: cfg.DBMaxConnLife,
		})
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		slot = pginfra.NewSessionSlot(pool, cfg.SessionKey)
	case config.SessionStoreRedis:
		slot = redisinfra.NewSessionSlot(rdb, cfg.SessionKey, cfg.SessionTTL)
	default:
		log.Fatalf("unknown SESSION_STORE %q", cfg.SessionStore)
	}
	codec := identity.NewTokenCodec(helpers.NewJWTManager(cfg.SessionSecret, cfg.AppName, cfg.SessionTTL))

	// Image store; uploads answer 503 without a bucket
	var uploader application.ObjectUploader
	if cfg.GCSBucket != "" {
		gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcsClient.Close() }()
		uploader = &helpers.GCSUploader{Client: gcsClient, Bucket: cfg.GCSBucket}
	}

	notifiers := application.MultiNotifier{notify.NewLogNotifier(logger)}
	if cfg.NotifyEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQNotifyQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; notifications are only logged")
		} else {
			defer pub.Close()
			notifiers = append(notifiers, notify.NewQueueNotifier(pub, logger))
		}
	}

	store := application.NewStore(application.Deps{
		Startups:     gw.Startups,
		Events:       gw.Events,
		Discussions:  gw.Discussions,
		Accounts:     gw.Accounts,
		SessionSlot:  slot,
		SessionCodec: codec,
		Images:       uploader,
		ImagePrefix:  cfg.GCSImagePrefix,
		Notifier:     notifiers,
		Logger:       logger,
	})
	if err := store.Start(ctx); err != nil {
		logger.WithError(err).Warn("could not restore session")
	}
	refreshCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := store.Refresh(refreshCtx); err != nil {
		logger.WithError(err).Warn("initial refresh incomplete")
	}
	cancel()

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)
	container.SetStore(store)

	r := newEngine(cfg, logger)
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

func newEngine(cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.HTTPLogEnabled {
		r.Use(gin.LoggerWithWriter(logger.Writer()))
	}
	return r
}
