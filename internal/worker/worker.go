// Package worker - каркас фоновых обработчиков: общий жизненный цикл
// и менеджер с graceful shutdown
package worker

import (
	"context"
)

// Worker - фоновый обработчик с управляемым жизненным циклом
type Worker interface {
	// Start запускает цикл обработки, блокирует до остановки
	Start(ctx context.Context) error

	// Stop сигнализирует о завершении
	Stop() error

	// Name возвращает имя воркера для логов
	Name() string
}
