package repository

import (
	"context"

	"github.com/cleaning-marketplace/internal/domain"
)

// AppointmentRepository определяет методы для работы с заявками
type AppointmentRepository interface {
	// GetByID возвращает заявку по ID
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)

	// Create создаёт документ заявки
	Create(ctx context.Context, appointment *domain.Appointment) error

	// UpdateStatus выполняет merge-обновление статуса заявки
	UpdateStatus(ctx context.Context, id, status string) error
}
