package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/repository/memory"
)

const testGroup = "test-group"

type sentPush struct {
	token string
	title string
	body  string
	data  map[string]string
}

// notifierFake записывает отправленные push и может имитировать сбои
type notifierFake struct {
	mu       sync.Mutex
	sent     []sentPush
	failures int
}

func (f *notifierFake) SendPush(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failures > 0 {
		f.failures--
		return errors.New("fcm unavailable")
	}
	f.sent = append(f.sent, sentPush{token: deviceToken, title: title, body: body, data: data})
	return nil
}

func (f *notifierFake) pushes() []sentPush {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]sentPush, len(f.sent))
	copy(out, f.sent)
	return out
}

func newWorkerFixture(t *testing.T) (*Worker, *memory.StreamRepository, *memory.UserRepository, *notifierFake) {
	t.Helper()

	streams := memory.NewStreamRepository()
	users := memory.NewUserRepository()
	notifier := &notifierFake{}

	w := NewWorker(streams, users, notifier, testGroup, 3, zap.NewNop())
	require.NoError(t, streams.CreateConsumerGroup(context.Background(), domain.StreamAppointmentEvents, testGroup))
	return w, streams, users, notifier
}

func publishEvent(t *testing.T, streams *memory.StreamRepository, event domain.AppointmentEvent) {
	t.Helper()
	require.NoError(t, streams.PublishToStream(context.Background(), domain.StreamAppointmentEvents, event))
}

func TestProcessBatch_NotifiesProviderOnCreated(t *testing.T) {
	w, streams, users, notifier := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, "provider-1", &domain.User{
		Name:        "Chidi",
		DeviceToken: "token-provider",
	}))

	publishEvent(t, streams, domain.AppointmentEvent{
		Type:          domain.AppointmentEventCreated,
		AppointmentID: "a1",
		ClientID:      "client-1",
		ProviderID:    "provider-1",
		Service:       "standard",
		Status:        domain.AppointmentPending,
		OccurredAt:    time.Now(),
	})

	processed, err := w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	pushes := notifier.pushes()
	require.Len(t, pushes, 1)
	assert.Equal(t, "token-provider", pushes[0].token)
	assert.Equal(t, "New booking request", pushes[0].title)
	assert.Equal(t, "a1", pushes[0].data["appointment_id"])
	assert.True(t, streams.IsAcked(domain.StreamAppointmentEvents, testGroup, "1-0"))
}

func TestProcessBatch_NotifiesClientOnStatusChange(t *testing.T) {
	w, streams, users, notifier := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, "client-1", &domain.User{
		DeviceToken: "token-client",
	}))

	publishEvent(t, streams, domain.AppointmentEvent{
		Type:          domain.AppointmentEventStatusChanged,
		AppointmentID: "a1",
		ClientID:      "client-1",
		ProviderID:    "provider-1",
		Service:       "standard",
		Status:        domain.AppointmentAccepted,
	})

	_, err := w.processBatch(ctx)
	require.NoError(t, err)

	pushes := notifier.pushes()
	require.Len(t, pushes, 1)
	assert.Equal(t, "token-client", pushes[0].token)
	assert.Equal(t, "Booking update", pushes[0].title)
	assert.Contains(t, pushes[0].body, domain.AppointmentAccepted)
}

func TestProcessBatch_AcksUndeliverable(t *testing.T) {
	w, streams, users, notifier := newWorkerFixture(t)
	ctx := context.Background()

	// получатель без токена
	require.NoError(t, users.Create(ctx, "provider-1", &domain.User{Name: "No Token"}))

	publishEvent(t, streams, domain.AppointmentEvent{
		Type:       domain.AppointmentEventCreated,
		ClientID:   "client-1",
		ProviderID: "provider-1",
	})
	// получатель вовсе не существует
	publishEvent(t, streams, domain.AppointmentEvent{
		Type:       domain.AppointmentEventCreated,
		ClientID:   "client-2",
		ProviderID: "ghost",
	})

	processed, err := w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	assert.Empty(t, notifier.pushes())
	assert.True(t, streams.IsAcked(domain.StreamAppointmentEvents, testGroup, "1-0"))
	assert.True(t, streams.IsAcked(domain.StreamAppointmentEvents, testGroup, "2-0"))
}

func TestProcessBatch_AcksPoisonMessage(t *testing.T) {
	w, streams, _, notifier := newWorkerFixture(t)
	ctx := context.Background()

	// сообщение, которое не парсится в событие
	require.NoError(t, streams.PublishToStream(ctx, domain.StreamAppointmentEvents, "not-an-event"))

	processed, err := w.processBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	assert.Empty(t, notifier.pushes())
	assert.True(t, streams.IsAcked(domain.StreamAppointmentEvents, testGroup, "1-0"))
}

func TestProcessBatch_RetriesTransientFailures(t *testing.T) {
	w, streams, users, notifier := newWorkerFixture(t)
	ctx := context.Background()

	notifier.failures = 2 // первые две попытки падают, третья проходит

	require.NoError(t, users.Create(ctx, "provider-1", &domain.User{DeviceToken: "token"}))
	publishEvent(t, streams, domain.AppointmentEvent{
		Type:       domain.AppointmentEventCreated,
		ClientID:   "client-1",
		ProviderID: "provider-1",
		Service:    "standard",
	})

	_, err := w.processBatch(ctx)
	require.NoError(t, err)

	require.Len(t, notifier.pushes(), 1)
	assert.True(t, streams.IsAcked(domain.StreamAppointmentEvents, testGroup, "1-0"))
}

func TestProcessBatch_EmptyQueue(t *testing.T) {
	w, _, _, _ := newWorkerFixture(t)

	processed, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
}
