package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/config"
	"github.com/cleaning-marketplace/internal/pkg/logger"
	"github.com/cleaning-marketplace/internal/repository/cache"
	"github.com/cleaning-marketplace/internal/repository/fcm"
	"github.com/cleaning-marketplace/internal/repository/firestore"
	redisrepo "github.com/cleaning-marketplace/internal/repository/redis"
	"github.com/cleaning-marketplace/internal/worker"
	"github.com/cleaning-marketplace/internal/worker/notification"
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

	log.Info("Starting notification worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 3. Connect to Firestore and FCM
	store, err := firestore.New(ctx, &cfg.Firestore, log)
	if err != nil {
		log.Fatal("Failed to connect to Firestore", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close Firestore connection", zap.Error(err))
		}
	}()

	messagingClient, err := store.Messaging(ctx)
	if err != nil {
		log.Fatal("Failed to create FCM client", zap.Error(err))
	}

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

	// 5. Repositories
	userRepo := firestore.NewUserRepository(store)
	streamRepo := redisrepo.NewStreamRepository(redisClient.Client(), log)
	notifier := fcm.NewNotifier(messagingClient, log)

	// 6. Workers
	manager := worker.NewManager(log)
	manager.Register(notification.NewWorker(
		streamRepo,
		userRepo,
		notifier,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	))

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	if err := manager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutdown signal received", zap.String("signal", sig.String()))

	workerCancel()
	if err := manager.Stop(); err != nil {
		log.Error("Workers shutdown failed", zap.Error(err))
	}

	log.Info("Worker stopped")
}
