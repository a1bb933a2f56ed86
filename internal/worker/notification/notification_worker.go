// Package notification - воркер push-уведомлений о событиях заявок
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/worker"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
	retryBackoff    = 200 * time.Millisecond
)

// Worker читает события заявок из Redis Stream и рассылает push через FCM.
// О новой заявке уведомляется исполнитель, об изменении статуса - клиент.
type Worker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	userRepo     repository.UserRepository
	notifier     repository.NotificationRepository
	consumerName string
	maxRetries   int
}

func NewWorker(
	streamRepo repository.StreamRepository,
	userRepo repository.UserRepository,
	notifier repository.NotificationRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *Worker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &Worker{
		BaseWorker:   worker.NewBaseWorker("appointment-notifications", consumerGroup, logger),
		streamRepo:   streamRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает цикл обработки
func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting notification worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAppointmentEvents, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает пачку сообщений.
// Каждое сообщение подтверждается независимо от исхода доставки:
// битые и недоставляемые события не должны застревать в группе.
func (w *Worker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamAppointmentEvents,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	for _, msg := range messages {
		var event domain.AppointmentEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Dropping malformed event",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			w.ack(ctx, msg.ID)
			continue
		}

		if err := w.deliver(ctx, &event); err != nil {
			logger.Error("Push delivery failed",
				zap.String("message_id", msg.ID),
				zap.String("appointment_id", event.AppointmentID),
				zap.Error(err))
		}
		w.ack(ctx, msg.ID)
	}

	return len(messages), nil
}

// deliver находит получателя и отправляет push с повторами
func (w *Worker) deliver(ctx context.Context, event *domain.AppointmentEvent) error {
	user, err := w.userRepo.GetByID(ctx, event.RecipientID())
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			w.Logger().Debug("Notification recipient does not exist",
				zap.String("recipient_id", event.RecipientID()))
			return nil
		}
		return err
	}

	if user.DeviceToken == "" {
		return nil
	}

	title, body := notificationText(event)
	data := map[string]string{
		"appointment_id": event.AppointmentID,
		"type":           event.Type,
		"status":         event.Status,
	}

	var lastErr error
	for attempt := 0; attempt < w.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryBackoff)
		}
		if lastErr = w.notifier.SendPush(ctx, user.DeviceToken, title, body, data); lastErr == nil {
			return nil
		}
	}
	return lastErr
}

func notificationText(event *domain.AppointmentEvent) (title, body string) {
	switch event.Type {
	case domain.AppointmentEventCreated:
		return "New booking request", fmt.Sprintf("You have a new %s request", event.Service)
	default:
		return "Booking update", fmt.Sprintf("Your %s booking is now %s", event.Service, event.Status)
	}
}

func (w *Worker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamAppointmentEvents, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Warn("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
