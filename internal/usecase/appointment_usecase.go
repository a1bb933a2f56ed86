package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/utils"
	"github.com/cleaning-marketplace/internal/pkg/validator"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// AppointmentUseCase - жизненный цикл заявок на уборку.
// Каждое изменение публикуется событием в Redis Stream, уведомления
// рассылает отдельный воркер.
type AppointmentUseCase struct {
	appointmentRepo repository.AppointmentRepository
	providerRepo    repository.ProviderRepository
	streamRepo      repository.StreamRepository
	logger          *zap.Logger
}

func NewAppointmentUseCase(
	appointmentRepo repository.AppointmentRepository,
	providerRepo repository.ProviderRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *AppointmentUseCase {
	return &AppointmentUseCase{
		appointmentRepo: appointmentRepo,
		providerRepo:    providerRepo,
		streamRepo:      streamRepo,
		logger:          logger,
	}
}

// Create создаёт заявку со статусом pending от имени вызывающего.
// Исполнитель должен существовать, быть активным и предлагать услугу.
func (uc *AppointmentUseCase) Create(ctx context.Context, callerID string, req dto.CreateAppointmentRequest) (*domain.Appointment, error) {
	if err := validator.Validate(req); err != nil {
		return nil, apperrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if callerID == req.ProviderID {
		return nil, apperrors.ErrInvalidRequest.WithDetails("cannot book yourself")
	}
	if !req.ScheduledAt.After(time.Now()) {
		return nil, apperrors.ErrInvalidRequest.WithDetails("scheduled_at must be in the future")
	}

	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if !provider.Active || !provider.OffersService(req.Service) {
		return nil, apperrors.ErrInvalidRequest.WithDetails("provider does not offer this service")
	}

	var location *domain.Point
	if req.Location != nil {
		if !utils.ValidateCoordinates(req.Location.Lat, req.Location.Lon) {
			return nil, apperrors.ErrInvalidCoordinates
		}
		location = &domain.Point{Lat: req.Location.Lat, Lon: req.Location.Lon}
	}

	appointment := &domain.Appointment{
		ID:          uuid.NewString(),
		ClientID:    callerID,
		ProviderID:  req.ProviderID,
		Service:     req.Service,
		Description: req.Description,
		Address:     req.Address,
		Location:    location,
		ScheduledAt: req.ScheduledAt,
		OfferAmount: req.OfferAmount,
		Status:      domain.AppointmentPending,
	}

	if err := uc.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, domain.AppointmentEventCreated, appointment)

	uc.logger.Info("Appointment created",
		zap.String("appointment_id", appointment.ID),
		zap.String("client_id", callerID),
		zap.String("provider_id", req.ProviderID))
	return appointment, nil
}

// GetByID возвращает заявку только её участникам
func (uc *AppointmentUseCase) GetByID(ctx context.Context, callerID, appointmentID string) (*domain.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !appointment.IsParticipant(callerID) {
		return nil, apperrors.ErrForbidden
	}
	return appointment, nil
}

// UpdateStatus переводит заявку в новый статус. Допустимые переходы:
// pending -> accepted|declined, accepted -> completed|cancelled.
// Принимает и отклоняет исполнитель, завершает исполнитель,
// отменяет клиент.
func (uc *AppointmentUseCase) UpdateStatus(ctx context.Context, callerID, appointmentID, newStatus string) (*domain.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !appointment.IsParticipant(callerID) {
		return nil, apperrors.ErrForbidden
	}

	if !allowedActor(appointment, callerID, newStatus) {
		return nil, apperrors.ErrForbidden.WithDetails("status change is not allowed for this role")
	}

	if !domain.CanTransition(appointment.Status, newStatus) {
		return nil, apperrors.ErrInvalidTransition.WithDetails(
			appointment.Status + " -> " + newStatus)
	}

	if err := uc.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		return nil, err
	}
	appointment.Status = newStatus

	uc.publishEvent(ctx, domain.AppointmentEventStatusChanged, appointment)

	uc.logger.Info("Appointment status changed",
		zap.String("appointment_id", appointmentID),
		zap.String("status", newStatus))
	return appointment, nil
}

// allowedActor проверяет, вправе ли вызывающий инициировать переход
func allowedActor(a *domain.Appointment, callerID, newStatus string) bool {
	switch newStatus {
	case domain.AppointmentAccepted, domain.AppointmentDeclined, domain.AppointmentCompleted:
		return callerID == a.ProviderID
	case domain.AppointmentCancelled:
		return callerID == a.ClientID
	default:
		return false
	}
}

// publishEvent отправляет событие в стрим. Потеря уведомления не должна
// ломать основную операцию, поэтому ошибка только логируется.
func (uc *AppointmentUseCase) publishEvent(ctx context.Context, eventType string, a *domain.Appointment) {
	event := domain.AppointmentEvent{
		Type:          eventType,
		AppointmentID: a.ID,
		ClientID:      a.ClientID,
		ProviderID:    a.ProviderID,
		Service:       a.Service,
		Status:        a.Status,
		OccurredAt:    time.Now(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamAppointmentEvents, event); err != nil {
		uc.logger.Error("Failed to publish appointment event",
			zap.String("appointment_id", a.ID),
			zap.String("type", eventType),
			zap.Error(err))
	}
}
