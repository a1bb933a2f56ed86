package repository

import "context"

// NotificationRepository определяет отправку push-уведомлений.
// Содержимое уведомлений минимально: тело формирует потребитель.
type NotificationRepository interface {
	// SendPush отправляет push на устройство по токену
	SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}
