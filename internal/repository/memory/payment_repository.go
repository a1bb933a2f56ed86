package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
)

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *payment
	clone.CreatedAt = time.Now()
	r.payments[payment.ID] = &clone
	return nil
}

// GetByID нужен тестам для проверки сохранённых платежей
func (r *PaymentRepository) GetByID(id string) (*domain.Payment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, exists := r.payments[id]
	if !exists {
		return nil, false
	}
	clone := *payment
	return &clone, true
}
