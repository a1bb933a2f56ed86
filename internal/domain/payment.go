package domain

import "time"

// Статусы платежа (симуляция, без реального шлюза)
const (
	PaymentSucceeded = "succeeded"
	PaymentDeclined  = "declined"
)

// Payment - запись о симулированном платеже по заявке
type Payment struct {
	ID            string    `json:"id" firestore:"-"`
	AppointmentID string    `json:"appointment_id" firestore:"appointment_id"`
	PayerID       string    `json:"payer_id" firestore:"payer_id"`
	Amount        float64   `json:"amount" firestore:"amount"`
	Status        string    `json:"status" firestore:"status"`
	Reference     string    `json:"reference" firestore:"reference"`
	CardLast4     string    `json:"card_last4" firestore:"card_last4"`
	CreatedAt     time.Time `json:"created_at" firestore:"created_at,serverTimestamp"`
}
