package dto

import "github.com/cleaning-marketplace/internal/domain"

// ProviderSearchResult - публичная проекция исполнителя с вычисленным
// расстоянием от точки запроса (метры, округление до целого)
type ProviderSearchResult struct {
	ProviderID     string               `json:"provider_id"`
	Profile        domain.PublicProfile `json:"profile"`
	Services       map[string]bool      `json:"services"`
	ExtraOptions   map[string]bool      `json:"extra_options"`
	ServiceArea    *domain.ServiceArea  `json:"service_area"`
	Rating         float64              `json:"rating"`
	TotalJobs      int                  `json:"total_jobs"`
	DistanceMeters int                  `json:"distance_meters"`
}

// ProviderSearchResponse - ответ геопоиска, отсортирован по расстоянию
type ProviderSearchResponse struct {
	Results []ProviderSearchResult `json:"results"`
	Total   int                    `json:"total"`
}

// ProviderResponse - профиль исполнителя с публичными полями владельца
type ProviderResponse struct {
	Provider *domain.ServiceProvider `json:"provider"`
	Profile  domain.PublicProfile    `json:"profile"`
}

// AppointmentResponse - заявка
type AppointmentResponse struct {
	Appointment *domain.Appointment `json:"appointment"`
}

// PaymentResponse - результат симуляции платежа
type PaymentResponse struct {
	Payment *domain.Payment `json:"payment"`
}

// AckResponse - подтверждение операции без тела
type AckResponse struct {
	Status string `json:"status"`
}
