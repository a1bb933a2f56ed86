package repository

import (
	"context"

	"github.com/cleaning-marketplace/internal/domain"
)

// PaymentRepository определяет методы для записи симулированных платежей
type PaymentRepository interface {
	// Create создаёт документ платежа
	Create(ctx context.Context, payment *domain.Payment) error
}
