package domain

import "time"

// Имена стримов (должны совпадать с потребителями в cmd/worker)
const (
	StreamAppointmentEvents = "stream:appointments:events"
)

// Типы событий заявок
const (
	AppointmentEventCreated       = "created"
	AppointmentEventStatusChanged = "status_changed"
)

// AppointmentEvent - событие жизненного цикла заявки, публикуется в Redis
// Stream при записи документа и потребляется воркером уведомлений
type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	ClientID      string    `json:"client_id"`
	ProviderID    string    `json:"provider_id"`
	Service       string    `json:"service"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// RecipientID возвращает идентификатор получателя уведомления:
// о новой заявке уведомляется исполнитель, об изменении статуса - клиент
func (e *AppointmentEvent) RecipientID() string {
	if e.Type == AppointmentEventCreated {
		return e.ProviderID
	}
	return e.ClientID
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
