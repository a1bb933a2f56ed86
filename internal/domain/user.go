package domain

import "time"

// User - запись пользователя. Идентификатор совпадает с идентификатором
// провайдера: один пользователь владеет ровно одним профилем исполнителя.
type User struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Phone       string    `json:"phone" firestore:"phone"`
	ImageURL    string    `json:"image_url" firestore:"image_url"`
	DeviceToken string    `json:"-" firestore:"device_token"`
	CreatedAt   time.Time `json:"created_at" firestore:"created_at,serverTimestamp"`
}

// PublicProfile - публичная проекция пользователя, присоединяемая к
// результатам поиска
type PublicProfile struct {
	Name     string `json:"name" firestore:"name"`
	Phone    string `json:"phone" firestore:"phone"`
	ImageURL string `json:"image_url" firestore:"image_url"`
}

// Public возвращает публичные поля пользователя
func (u *User) Public() PublicProfile {
	return PublicProfile{
		Name:     u.Name,
		Phone:    u.Phone,
		ImageURL: u.ImageURL,
	}
}
