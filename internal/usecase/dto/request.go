package dto

import "time"

// ProviderSearchRequest - запрос геопоиска исполнителей.
// Координаты - указатели, чтобы отличать отсутствующее значение от нуля.
type ProviderSearchRequest struct {
	Service string   `json:"service" validate:"required"`
	Lat     *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon     *float64 `json:"lon" validate:"required,min=-180,max=180"`
}

// ServiceAreaInput - рабочая зона в запросе настроек
type ServiceAreaInput struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusM   float64 `json:"radius" validate:"required,gt=0"`
}

// UpdateProviderSettingsRequest - запрос обновления настроек исполнителя.
// Флаг активности не принимается: он выводится из карты услуг.
type UpdateProviderSettingsRequest struct {
	Services     map[string]bool   `json:"services" validate:"required"`
	ExtraOptions map[string]bool   `json:"extra_options"`
	ServiceArea  *ServiceAreaInput `json:"service_area,omitempty"`
}

// CreateUserRequest - запрос создания пользователя. Идентификатором
// становится identity вызывающего из заголовка авторизации.
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Phone       string `json:"phone" validate:"omitempty,max=32"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	DeviceToken string `json:"device_token" validate:"omitempty,max=512"`
}

// UpdateUserProfileRequest - частичное обновление профиля
type UpdateUserProfileRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	DeviceToken *string `json:"device_token,omitempty" validate:"omitempty,max=512"`
}

// LocationInput - координаты в теле запроса
type LocationInput struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// CreateAppointmentRequest - заявка на уборку с предложением цены
type CreateAppointmentRequest struct {
	ProviderID  string         `json:"provider_id" validate:"required"`
	Service     string         `json:"service" validate:"required"`
	Description string         `json:"description" validate:"omitempty,max=2000"`
	Address     string         `json:"address" validate:"omitempty,max=500"`
	Location    *LocationInput `json:"location,omitempty"`
	ScheduledAt time.Time      `json:"scheduled_at" validate:"required"`
	OfferAmount float64        `json:"offer_amount" validate:"required,gt=0"`
}

// UpdateAppointmentStatusRequest - смена статуса заявки
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined completed cancelled"`
}

// CardInput - платёжная карта (симуляция, данные не сохраняются)
type CardInput struct {
	Number   string `json:"number" validate:"required,min=12,max=19"`
	ExpMonth int    `json:"exp_month" validate:"required,min=1,max=12"`
	ExpYear  int    `json:"exp_year" validate:"required,min=2000,max=2100"`
	CVC      string `json:"cvc" validate:"required,len=3|len=4"`
}

// SimulatePaymentRequest - запрос симуляции оплаты заявки
type SimulatePaymentRequest struct {
	AppointmentID string    `json:"appointment_id" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	Card          CardInput `json:"card" validate:"required"`
}
