package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
)

type appointmentRepository struct {
	store  *firestore.Client
	logger *zap.Logger
}

// NewAppointmentRepository создает firestore-реализацию AppointmentRepository
func NewAppointmentRepository(client *Client) repository.AppointmentRepository {
	return &appointmentRepository{
		store:  client.store,
		logger: client.logger,
	}
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	snap, err := r.store.Collection(appointmentsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, apperrors.ErrAppointmentNotFound
		}
		r.logger.Error("Failed to get appointment", zap.String("id", id), zap.Error(err))
		return nil, storeErr("get appointment "+id, err)
	}

	var appointment domain.Appointment
	if err := snap.DataTo(&appointment); err != nil {
		return nil, storeErr("decode appointment "+id, err)
	}
	appointment.ID = snap.Ref.ID

	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	_, err := r.store.Collection(appointmentsCollection).Doc(appointment.ID).Set(ctx, appointment)
	if err != nil {
		r.logger.Error("Failed to create appointment",
			zap.String("id", appointment.ID),
			zap.Error(err))
		return storeErr("create appointment "+appointment.ID, err)
	}

	r.logger.Debug("Appointment created",
		zap.String("id", appointment.ID),
		zap.String("provider_id", appointment.ProviderID))
	return nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id, newStatus string) error {
	_, err := r.store.Collection(appointmentsCollection).Doc(id).Set(ctx, map[string]interface{}{
		"status": newStatus,
	}, firestore.MergeAll)
	if err != nil {
		r.logger.Error("Failed to update appointment status",
			zap.String("id", id),
			zap.Error(err))
		return storeErr("update appointment status "+id, err)
	}

	r.logger.Debug("Appointment status updated",
		zap.String("id", id),
		zap.String("status", newStatus))
	return nil
}
