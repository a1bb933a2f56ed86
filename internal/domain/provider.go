package domain

import "time"

// ServiceArea - рабочая зона исполнителя: центр, радиус в метрах и
// предвычисленный geohash центра (precision 7). Geohash пересчитывается
// при каждом изменении зоны через настройки профиля.
type ServiceArea struct {
	Latitude  *float64 `json:"latitude" firestore:"latitude"`
	Longitude *float64 `json:"longitude" firestore:"longitude"`
	RadiusM   float64  `json:"radius" firestore:"radius"`
	Geohash   string   `json:"geohash" firestore:"geohash"`
}

// IsValid проверяет, что зона пригодна для геопоиска.
// Записи с неполной зоной молча пропускаются при поиске, это не ошибка.
func (a *ServiceArea) IsValid() bool {
	if a == nil || a.Latitude == nil || a.Longitude == nil {
		return false
	}
	if !ValidLatLon(*a.Latitude, *a.Longitude) {
		return false
	}
	return a.RadiusM > 0
}

// ServiceProvider - профиль исполнителя. Создаётся автоматически вместе с
// пользователем (неактивный, с нулевыми значениями) и редактируется только
// самим владельцем.
type ServiceProvider struct {
	ID           string          `json:"id" firestore:"-"`
	Services     map[string]bool `json:"services" firestore:"services"`
	ExtraOptions map[string]bool `json:"extra_options" firestore:"extra_options"`
	Active       bool            `json:"active" firestore:"active"`
	ServiceArea  *ServiceArea    `json:"service_area" firestore:"service_area"`
	Rating       float64         `json:"rating" firestore:"rating"`
	TotalJobs    int             `json:"total_jobs" firestore:"total_jobs"`
	UpdatedAt    time.Time       `json:"updated_at" firestore:"updated_at,serverTimestamp"`
}

// NewDefaultProvider возвращает профиль по умолчанию для нового пользователя
func NewDefaultProvider(userID string) *ServiceProvider {
	return &ServiceProvider{
		ID:           userID,
		Services:     map[string]bool{},
		ExtraOptions: map[string]bool{},
		Active:       false,
		Rating:       0,
		TotalJobs:    0,
	}
}

// OffersService проверяет, что исполнитель предлагает категорию услуг
func (p *ServiceProvider) OffersService(category string) bool {
	return p.Services[category]
}

// ProviderSettings - изменяемая владельцем часть профиля.
// Active выводится из Services и не принимается от клиента напрямую.
type ProviderSettings struct {
	Services     map[string]bool
	ExtraOptions map[string]bool
	Active       bool
	ServiceArea  *ServiceArea
}

// DeriveActive вычисляет флаг активности: true, если включена хотя бы одна категория
func DeriveActive(services map[string]bool) bool {
	for _, enabled := range services {
		if enabled {
			return true
		}
	}
	return false
}
