package repository

import (
	"context"

	"github.com/cleaning-marketplace/internal/domain"
)

// ProviderRepository определяет контракт документного хранилища для
// профилей исполнителей
type ProviderRepository interface {
	// GetByID возвращает профиль исполнителя по ID
	GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error)

	// Create создаёт документ профиля (полная запись)
	Create(ctx context.Context, id string, provider *domain.ServiceProvider) error

	// UpdateSettings выполняет merge-обновление настроек профиля
	UpdateSettings(ctx context.Context, id string, settings domain.ProviderSettings) error

	// SearchByGeohashRange возвращает активных исполнителей категории,
	// geohash рабочей зоны которых попадает в лексикографический
	// диапазон [start, end). Результат упорядочен по geohash.
	SearchByGeohashRange(ctx context.Context, category, start, end string) ([]*domain.ServiceProvider, error)
}
