package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
)

type paymentRepository struct {
	store  *firestore.Client
	logger *zap.Logger
}

// NewPaymentRepository создает firestore-реализацию PaymentRepository
func NewPaymentRepository(client *Client) repository.PaymentRepository {
	return &paymentRepository{
		store:  client.store,
		logger: client.logger,
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	_, err := r.store.Collection(paymentsCollection).Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		r.logger.Error("Failed to create payment",
			zap.String("id", payment.ID),
			zap.Error(err))
		return storeErr("create payment "+payment.ID, err)
	}

	r.logger.Debug("Payment recorded",
		zap.String("id", payment.ID),
		zap.String("status", payment.Status))
	return nil
}
