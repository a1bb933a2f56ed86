package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/repository/memory"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

func newAppointmentFixture(t *testing.T) (*AppointmentUseCase, *memory.AppointmentRepository, *memory.StreamRepository) {
	t.Helper()

	appointments := memory.NewAppointmentRepository()
	providers := memory.NewProviderRepository()
	streams := memory.NewStreamRepository()
	uc := NewAppointmentUseCase(appointments, providers, streams, zap.NewNop())

	// активный исполнитель с включённой категорией standard
	lat, lon := 6.5244, 3.3792
	require.NoError(t, providers.Create(context.Background(), "provider-1", &domain.ServiceProvider{
		ID:       "provider-1",
		Services: map[string]bool{"standard": true},
		Active:   true,
		ServiceArea: &domain.ServiceArea{
			Latitude:  &lat,
			Longitude: &lon,
			RadiusM:   10000,
			Geohash:   "s14tbpg",
		},
	}))

	return uc, appointments, streams
}

func validAppointmentRequest() dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		ProviderID:  "provider-1",
		Service:     "standard",
		Description: "two bedroom flat",
		Address:     "12 Marina Road",
		ScheduledAt: time.Now().Add(48 * time.Hour),
		OfferAmount: 15000,
	}
}

func lastEvent(t *testing.T, streams *memory.StreamRepository) domain.AppointmentEvent {
	t.Helper()

	messages, err := streams.ConsumeBatch(context.Background(), domain.StreamAppointmentEvents, "test-group", "test-consumer", 100)
	require.NoError(t, err)
	require.NotEmpty(t, messages)

	var event domain.AppointmentEvent
	require.NoError(t, json.Unmarshal([]byte(messages[len(messages)-1].Data), &event))
	return event
}

func TestAppointmentCreate_PendingAndPublishesEvent(t *testing.T) {
	uc, appointments, streams := newAppointmentFixture(t)
	ctx := context.Background()

	appointment, err := uc.Create(ctx, "client-1", validAppointmentRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, domain.AppointmentPending, appointment.Status)
	assert.Equal(t, "client-1", appointment.ClientID)

	stored, err := appointments.GetByID(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentPending, stored.Status)

	event := lastEvent(t, streams)
	assert.Equal(t, domain.AppointmentEventCreated, event.Type)
	assert.Equal(t, appointment.ID, event.AppointmentID)
	// о новой заявке уведомляется исполнитель
	assert.Equal(t, "provider-1", event.RecipientID())
}

func TestAppointmentCreate_Rejections(t *testing.T) {
	uc, _, _ := newAppointmentFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  string
		mutate  func(*dto.CreateAppointmentRequest)
		wantErr *apperrors.AppError
	}{
		{
			name:    "zero offer",
			caller:  "client-1",
			mutate:  func(r *dto.CreateAppointmentRequest) { r.OfferAmount = 0 },
			wantErr: apperrors.ErrInvalidRequest,
		},
		{
			name:    "missing service",
			caller:  "client-1",
			mutate:  func(r *dto.CreateAppointmentRequest) { r.Service = "" },
			wantErr: apperrors.ErrInvalidRequest,
		},
		{
			name:    "schedule in the past",
			caller:  "client-1",
			mutate:  func(r *dto.CreateAppointmentRequest) { r.ScheduledAt = time.Now().Add(-time.Hour) },
			wantErr: apperrors.ErrInvalidRequest,
		},
		{
			name:    "unknown provider",
			caller:  "client-1",
			mutate:  func(r *dto.CreateAppointmentRequest) { r.ProviderID = "ghost" },
			wantErr: apperrors.ErrProviderNotFound,
		},
		{
			name:    "service not offered",
			caller:  "client-1",
			mutate:  func(r *dto.CreateAppointmentRequest) { r.Service = "deep" },
			wantErr: apperrors.ErrInvalidRequest,
		},
		{
			name:    "booking yourself",
			caller:  "provider-1",
			mutate:  func(r *dto.CreateAppointmentRequest) {},
			wantErr: apperrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAppointmentRequest()
			tt.mutate(&req)
			_, err := uc.Create(ctx, tt.caller, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAppointmentStatus_FullLifecycle(t *testing.T) {
	uc, _, streams := newAppointmentFixture(t)
	ctx := context.Background()

	appointment, err := uc.Create(ctx, "client-1", validAppointmentRequest())
	require.NoError(t, err)

	accepted, err := uc.UpdateStatus(ctx, "provider-1", appointment.ID, domain.AppointmentAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentAccepted, accepted.Status)

	event := lastEvent(t, streams)
	assert.Equal(t, domain.AppointmentEventStatusChanged, event.Type)
	// об изменении статуса уведомляется клиент
	assert.Equal(t, "client-1", event.RecipientID())

	completed, err := uc.UpdateStatus(ctx, "provider-1", appointment.ID, domain.AppointmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentCompleted, completed.Status)
}

func TestAppointmentStatus_InvalidTransitions(t *testing.T) {
	uc, _, _ := newAppointmentFixture(t)
	ctx := context.Background()

	appointment, err := uc.Create(ctx, "client-1", validAppointmentRequest())
	require.NoError(t, err)

	// pending нельзя завершить, минуя accepted
	_, err = uc.UpdateStatus(ctx, "provider-1", appointment.ID, domain.AppointmentCompleted)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = uc.UpdateStatus(ctx, "provider-1", appointment.ID, domain.AppointmentDeclined)
	require.NoError(t, err)

	// declined - терминальный статус
	_, err = uc.UpdateStatus(ctx, "provider-1", appointment.ID, domain.AppointmentAccepted)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestAppointmentStatus_RoleChecks(t *testing.T) {
	uc, _, _ := newAppointmentFixture(t)
	ctx := context.Background()

	appointment, err := uc.Create(ctx, "client-1", validAppointmentRequest())
	require.NoError(t, err)

	// клиент не может принять собственную заявку
	_, err = uc.UpdateStatus(ctx, "client-1", appointment.ID, domain.AppointmentAccepted)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = uc.UpdateStatus(ctx, "provider-1", appointment.ID, domain.AppointmentAccepted)
	require.NoError(t, err)

	// исполнитель не может отменить, отмена - право клиента
	_, err = uc.UpdateStatus(ctx, "provider-1", appointment.ID, domain.AppointmentCancelled)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = uc.UpdateStatus(ctx, "client-1", appointment.ID, domain.AppointmentCancelled)
	require.NoError(t, err)
}

func TestAppointmentGetByID_ParticipantsOnly(t *testing.T) {
	uc, _, _ := newAppointmentFixture(t)
	ctx := context.Background()

	appointment, err := uc.Create(ctx, "client-1", validAppointmentRequest())
	require.NoError(t, err)

	_, err = uc.GetByID(ctx, "client-1", appointment.ID)
	assert.NoError(t, err)

	_, err = uc.GetByID(ctx, "provider-1", appointment.ID)
	assert.NoError(t, err)

	_, err = uc.GetByID(ctx, "stranger", appointment.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
