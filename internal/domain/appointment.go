package domain

import "time"

// Статусы заявки. Переходы: pending -> accepted|declined,
// accepted -> completed|cancelled. Остальные переходы запрещены.
const (
	AppointmentPending   = "pending"
	AppointmentAccepted  = "accepted"
	AppointmentDeclined  = "declined"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment - заявка клиента исполнителю на уборку
type Appointment struct {
	ID          string    `json:"id" firestore:"-"`
	ClientID    string    `json:"client_id" firestore:"client_id"`
	ProviderID  string    `json:"provider_id" firestore:"provider_id"`
	Service     string    `json:"service" firestore:"service"`
	Description string    `json:"description" firestore:"description"`
	Address     string    `json:"address" firestore:"address"`
	Location    *Point    `json:"location,omitempty" firestore:"location"`
	ScheduledAt time.Time `json:"scheduled_at" firestore:"scheduled_at"`
	OfferAmount float64   `json:"offer_amount" firestore:"offer_amount"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at,serverTimestamp"`
}

// CanTransition проверяет допустимость перехода статуса
func CanTransition(from, to string) bool {
	switch from {
	case AppointmentPending:
		return to == AppointmentAccepted || to == AppointmentDeclined
	case AppointmentAccepted:
		return to == AppointmentCompleted || to == AppointmentCancelled
	default:
		return false
	}
}

// IsParticipant проверяет, что пользователь является стороной заявки
func (a *Appointment) IsParticipant(userID string) bool {
	return a.ClientID == userID || a.ProviderID == userID
}
