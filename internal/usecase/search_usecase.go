// Package usecase - бизнес-логика маркетплейса клининговых услуг
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/geohash"
	"github.com/cleaning-marketplace/internal/pkg/utils"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// SearchUseCase - геопоиск активных исполнителей по категории услуги.
// Кандидаты собираются range-сканами по geohash-префиксам, затем
// уточняются точным расстоянием Хаверсина против радиуса рабочей зоны.
type SearchUseCase struct {
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
	scanRadiusM  float64
	precision    int
}

func NewSearchUseCase(
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	scanRadiusM float64,
	precision int,
) *SearchUseCase {
	return &SearchUseCase{
		providerRepo: providerRepo,
		userRepo:     userRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
		scanRadiusM:  scanRadiusM,
		precision:    precision,
	}
}

// Search выполняет поиск исполнителей вокруг точки запроса.
// По ключу search:<категория>:<geohash7> кешируется набор кандидатов
// ячейки, а не готовый ответ: уточнение расстоянием и сортировка всегда
// считаются от фактической точки запроса, иначе попадание в кеш отдавало
// бы соседней точке той же ячейки чужие расстояния и чужой состав выдачи.
func (uc *SearchUseCase) Search(ctx context.Context, req dto.ProviderSearchRequest) (*dto.ProviderSearchResponse, error) {
	if req.Service == "" || req.Lat == nil || req.Lon == nil {
		return nil, apperrors.ErrInvalidRequest.WithDetails("service, lat and lon are required")
	}

	lat, lon := *req.Lat, *req.Lon
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	cellHash, err := geohash.Encode(lat, lon, uc.precision)
	if err != nil {
		return nil, err
	}
	cacheKey := fmt.Sprintf("search:%s:%s", req.Service, cellHash)

	candidates, hit := uc.candidatesFromCache(ctx, cacheKey)
	if !hit {
		prefixes, err := geohash.PrefixesForSearch(lat, lon, uc.scanRadiusM)
		if err != nil {
			return nil, err
		}

		candidates, err = uc.scanPrefixes(ctx, req.Service, prefixes)
		if err != nil {
			uc.logger.Error("Geohash range scan failed",
				zap.String("service", req.Service),
				zap.Error(err))
			return nil, apperrors.ErrSearchFailed.Wrap(err)
		}
		if candidates == nil {
			candidates = []*domain.ServiceProvider{}
		}

		uc.cacheCandidates(ctx, cacheKey, candidates)
	}

	results := make([]dto.ProviderSearchResult, 0, len(candidates))
	for _, provider := range candidates {
		area := provider.ServiceArea
		if !area.IsValid() {
			uc.logger.Debug("Skipping provider with malformed service area",
				zap.String("provider_id", provider.ID))
			continue
		}

		distanceKm := utils.HaversineDistance(lat, lon, *area.Latitude, *area.Longitude)
		if distanceKm > area.RadiusM/1000 {
			continue
		}

		profile, err := uc.ownerProfile(ctx, provider.ID)
		if err != nil {
			return nil, apperrors.ErrSearchFailed.Wrap(err)
		}

		results = append(results, dto.ProviderSearchResult{
			ProviderID:     provider.ID,
			Profile:        profile,
			Services:       provider.Services,
			ExtraOptions:   provider.ExtraOptions,
			ServiceArea:    area,
			Rating:         provider.Rating,
			TotalJobs:      provider.TotalJobs,
			DistanceMeters: int(math.Round(distanceKm * 1000)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	return &dto.ProviderSearchResponse{
		Results: results,
		Total:   len(results),
	}, nil
}

// scanPrefixes запускает по одному range-скану на префикс и сливает
// результаты с дедупликацией по ID исполнителя
func (uc *SearchUseCase) scanPrefixes(ctx context.Context, category string, prefixes []string) ([]*domain.ServiceProvider, error) {
	pages := make([][]*domain.ServiceProvider, len(prefixes))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var scanErr error

	for i, prefix := range prefixes {
		wg.Add(1)
		go func(i int, prefix string) {
			defer wg.Done()

			providers, err := uc.providerRepo.SearchByGeohashRange(ctx, category, prefix, prefix+geohash.MaxRangeChar)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if scanErr == nil {
					scanErr = err
				}
				return
			}
			pages[i] = providers
		}(i, prefix)
	}
	wg.Wait()

	if scanErr != nil {
		return nil, scanErr
	}

	seen := make(map[string]bool)
	var merged []*domain.ServiceProvider
	for _, page := range pages {
		for _, provider := range page {
			if seen[provider.ID] {
				continue
			}
			seen[provider.ID] = true
			merged = append(merged, provider)
		}
	}
	return merged, nil
}

// ownerProfile подтягивает публичный профиль владельца анкеты.
// Отсутствующий пользователь не ломает выдачу: возвращается пустой профиль.
func (uc *SearchUseCase) ownerProfile(ctx context.Context, providerID string) (domain.PublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return domain.PublicProfile{}, nil
		}
		return domain.PublicProfile{}, err
	}
	return user.Public(), nil
}

// candidatesFromCache возвращает кешированный набор кандидатов ячейки.
// Второе значение false - промах либо испорченная запись.
func (uc *SearchUseCase) candidatesFromCache(ctx context.Context, key string) ([]*domain.ServiceProvider, bool) {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Cache lookup failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var candidates []*domain.ServiceProvider
	if err := json.Unmarshal(data, &candidates); err != nil {
		uc.logger.Warn("Corrupted cache entry dropped", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return candidates, true
}

func (uc *SearchUseCase) cacheCandidates(ctx context.Context, key string, candidates []*domain.ServiceProvider) {
	data, err := json.Marshal(candidates)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Cache store failed", zap.String("key", key), zap.Error(err))
	}
}
