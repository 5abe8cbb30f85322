package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-club/config"
	"fitness-club/internal/database"
	"fitness-club/internal/handler"
	"fitness-club/internal/middleware"
	"fitness-club/internal/monitoring"
	"fitness-club/internal/queue"
	"fitness-club/internal/repository"
	"fitness-club/internal/service"
	"fitness-club/internal/web"
	"fitness-club/internal/worker"
	"fitness-club/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	if !cfg.Server.IsProduction() {
		logger.SetDevelopment()
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	defer logger.Sync()
	log := logger.WithComponent("main")

	if err := run(cfg); err != nil {
		log.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sentryEnabled, err := monitoring.InitSentry(cfg.Sentry, cfg.Server.Env)
	if err != nil {
		return err
	}
	if sentryEnabled {
		defer monitoring.FlushSentry()
	}
	monitoring.Init()

	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Server.Timezone, err)
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	changes, closeQueue, err := newChangeQueue(cfg)
	if err != nil {
		return err
	}
	defer closeQueue()

	// Repositories
	specializationRepo := repository.NewSpecializationRepository(pool)
	coachRepo := repository.NewCoachRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	seasonTicketRepo := repository.NewSeasonTicketRepository(pool)
	purchaseRepo := repository.NewTicketPurchaseRepository(pool)
	visitRepo := repository.NewVisitRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	// Services
	clock := service.NewClock(loc)
	publisher := service.NewChangePublisher(changes)
	specializationService := service.NewSpecializationService(specializationRepo, publisher)
	coachService := service.NewCoachService(coachRepo, publisher)
	clientService := service.NewClientService(clientRepo, publisher)
	seasonTicketService := service.NewSeasonTicketService(seasonTicketRepo, publisher)
	purchaseService := service.NewTicketPurchaseService(purchaseRepo, publisher, clock)
	visitService := service.NewVisitService(visitRepo, publisher, clock)
	activityService := service.NewActivityService(activityRepo)

	activityWorker := worker.NewActivityWorker(activityRepo, changes)
	if err := activityWorker.Start(ctx); err != nil {
		return fmt.Errorf("failed to start activity worker: %w", err)
	}

	router := gin.New()
	router.ContextWithFallback = true
	router.SetHTMLTemplate(web.MustTemplates())
	router.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.PrometheusMetrics(),
		middleware.SentryMiddleware(),
	)
	router.GET("/metrics", gin.WrapH(monitoring.Handler()))

	handler.NewIndexHandler(activityService, pool).RegisterRoutes(router)
	handler.NewSpecializationHandler(specializationService).RegisterRoutes(router)
	handler.NewCoachHandler(coachService, specializationService).RegisterRoutes(router)
	handler.NewClientHandler(clientService).RegisterRoutes(router)
	handler.NewSeasonTicketHandler(seasonTicketService, specializationService).RegisterRoutes(router)
	handler.NewTicketPurchaseHandler(purchaseService, clientService, seasonTicketService).RegisterRoutes(router)
	handler.NewVisitHandler(visitService, clientService, purchaseService, coachService).RegisterRoutes(router)

	csrfKey, err := middleware.LoadCSRFKey(cfg.Server.CSRFKey, cfg.Server.IsProduction())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           middleware.CSRF(csrfKey, cfg.Server.IsProduction())(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("events", string(cfg.Events.Backend)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	stop()
	activityWorker.Wait()
	return nil
}

// newChangeQueue builds the configured change-event transport and returns its cleanup.
func newChangeQueue(cfg *config.Config) (queue.ChangeQueue, func(), error) {
	log := logger.WithComponent("main")
	switch cfg.Events.Backend {
	case config.EventsBackendMemory, "":
		q := queue.NewChangeQueue(cfg.Events.BufferSize)
		return q, func() { _ = q.Close() }, nil
	case config.EventsBackendRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		q, err := queue.NewRedisStreamChangeQueue(rdb, "", nil)
		if err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("failed to create redis change queue: %w", err)
		}
		return q, closeAll(log, q, rdb), nil
	case config.EventsBackendKafka:
		q, err := queue.NewKafkaChangeQueue(queue.KafkaChangeQueueConfig{
			Brokers: cfg.Events.KafkaBrokers,
			Topic:   cfg.Events.KafkaTopic,
			GroupID: cfg.Events.KafkaGroup,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create kafka change queue: %w", err)
		}
		return q, func() {
			if err := q.Close(); err != nil {
				log.Warn("close change queue", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown EVENTS_BACKEND %q", cfg.Events.Backend)
	}
}

func closeAll(log *zap.Logger, q queue.ChangeQueue, rdb *redis.Client) func() {
	return func() {
		if err := q.Close(); err != nil {
			log.Warn("close change queue", zap.Error(err))
		}
		if err := rdb.Close(); err != nil {
			log.Warn("close redis", zap.Error(err))
		}
	}
}
