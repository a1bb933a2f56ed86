package fcm

import (
	"context"
	"fmt"

	"firebase.google.com/go/messaging"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain/repository"
)

type notifier struct {
	client *messaging.Client
	logger *zap.Logger
}

// NewNotifier создает FCM-реализацию NotificationRepository
func NewNotifier(client *messaging.Client, logger *zap.Logger) repository.NotificationRepository {
	return &notifier{
		client: client,
		logger: logger,
	}
}

// SendPush отправляет push-уведомление на устройство
func (n *notifier) SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
		},
	}

	id, err := n.client.Send(ctx, message)
	if err != nil {
		n.logger.Error("Failed to send push notification", zap.Error(err))
		return fmt.Errorf("send push: %w", err)
	}

	n.logger.Debug("Push notification sent", zap.String("message_id", id))
	return nil
}
