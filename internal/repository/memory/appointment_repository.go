package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
)

type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[string]*domain.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		appointments: make(map[string]*domain.Appointment),
	}
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, exists := r.appointments[id]
	if !exists {
		return nil, apperrors.ErrAppointmentNotFound
	}
	clone := *appointment
	return &clone, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *appointment
	clone.CreatedAt = time.Now()
	r.appointments[appointment.ID] = &clone
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id, newStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment, exists := r.appointments[id]
	if !exists {
		return apperrors.ErrAppointmentNotFound
	}
	appointment.Status = newStatus
	return nil
}
