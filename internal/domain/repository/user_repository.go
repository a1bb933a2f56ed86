package repository

import (
	"context"

	"github.com/cleaning-marketplace/internal/domain"
)

// UserRepository определяет методы для работы с записями пользователей
type UserRepository interface {
	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// Create создаёт запись пользователя
	Create(ctx context.Context, id string, user *domain.User) error

	// UpdateProfile выполняет merge-обновление публичных полей профиля
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error
}
