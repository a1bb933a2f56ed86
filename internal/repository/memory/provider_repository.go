// Package memory - потокобезопасное in-memory хранилище, подменяющее
// документную базу в тестах и локальной разработке.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
)

type ProviderRepository struct {
	mu        sync.RWMutex
	providers map[string]*domain.ServiceProvider
}

func NewProviderRepository() *ProviderRepository {
	return &ProviderRepository{
		providers: make(map[string]*domain.ServiceProvider),
	}
}

var _ repository.ProviderRepository = (*ProviderRepository)(nil)

func (r *ProviderRepository) GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[id]
	if !exists {
		return nil, apperrors.ErrProviderNotFound
	}
	clone := *provider
	return &clone, nil
}

func (r *ProviderRepository) Create(ctx context.Context, id string, provider *domain.ServiceProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *provider
	clone.ID = id
	clone.UpdatedAt = time.Now()
	r.providers[id] = &clone
	return nil
}

func (r *ProviderRepository) UpdateSettings(ctx context.Context, id string, settings domain.ProviderSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	provider, exists := r.providers[id]
	if !exists {
		return apperrors.ErrProviderNotFound
	}

	provider.Services = settings.Services
	provider.ExtraOptions = settings.ExtraOptions
	provider.Active = settings.Active
	if settings.ServiceArea != nil {
		provider.ServiceArea = settings.ServiceArea
	}
	provider.UpdatedAt = time.Now()
	return nil
}

func (r *ProviderRepository) SearchByGeohashRange(ctx context.Context, category, start, end string) ([]*domain.ServiceProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.ServiceProvider
	for _, provider := range r.providers {
		if !provider.Active || !provider.OffersService(category) {
			continue
		}
		if provider.ServiceArea == nil {
			continue
		}
		hash := provider.ServiceArea.Geohash
		if hash >= start && hash < end {
			clone := *provider
			matched = append(matched, &clone)
		}
	}

	// Хранилище возвращает range-скан упорядоченным по ключу
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ServiceArea.Geohash < matched[j].ServiceArea.Geohash
	})

	return matched, nil
}
