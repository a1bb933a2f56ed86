package main

// @title Cleaning Marketplace API
// @version 1.0.0
// @description Бэкенд маркетплейса клининговых услуг: геопоиск исполнителей по geohash-индексу, анкеты и рабочие зоны, заявки с жизненным циклом статусов, симуляция оплаты и push-уведомления.
// @description
// @description Основные возможности:
// @description - Поиск активных исполнителей вокруг точки с точным фильтром по радиусу зоны
// @description - Профили пользователей и анкеты исполнителей
// @description - Заявки на уборку со статусами pending/accepted/declined/completed/cancelled
// @description - Симуляция оплаты банковской картой

// @contact.name API Support
// @contact.email support@cleaning-marketplace.com

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/cleaning-marketplace/docs/swagger"
	"github.com/cleaning-marketplace/internal/config"
	httpDelivery "github.com/cleaning-marketplace/internal/delivery/http"
	"github.com/cleaning-marketplace/internal/delivery/http/handler"
	"github.com/cleaning-marketplace/internal/pkg/logger"
	"github.com/cleaning-marketplace/internal/repository/cache"
	"github.com/cleaning-marketplace/internal/repository/firestore"
	redisrepo "github.com/cleaning-marketplace/internal/repository/redis"
	"github.com/cleaning-marketplace/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Cleaning Marketplace API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 3. Connect to Firestore
	store, err := firestore.New(ctx, &cfg.Firestore, log)
	if err != nil {
		log.Fatal("Failed to connect to Firestore", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close Firestore connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	if err := store.Health(ctx); err != nil {
		log.Fatal("Firestore health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories
	providerRepo := firestore.NewProviderRepository(store)
	userRepo := firestore.NewUserRepository(store)
	appointmentRepo := firestore.NewAppointmentRepository(store)
	paymentRepo := firestore.NewPaymentRepository(store)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisrepo.NewStreamRepository(redisClient.Client(), log)

	// 7. Initialize use cases
	searchUC := usecase.NewSearchUseCase(
		providerRepo,
		userRepo,
		cacheRepo,
		log,
		cfg.Cache.SearchCacheTTL,
		cfg.Search.ScanRadiusM,
		cfg.Search.GeohashPrecision,
	)
	providerUC := usecase.NewProviderUseCase(providerRepo, userRepo, log, cfg.Search.GeohashPrecision)
	userUC := usecase.NewUserUseCase(userRepo, providerUC, log)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, providerRepo, streamRepo, log)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, appointmentRepo, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		store,
		handler.NewSearchHandler(searchUC, log),
		handler.NewProviderHandler(providerUC, log),
		handler.NewUserHandler(userUC, log),
		handler.NewAppointmentHandler(appointmentUC, log),
		handler.NewPaymentHandler(paymentUC, log),
	)

	// 9. Start server and wait for shutdown signal
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal("Server failed", zap.Error(err))
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
