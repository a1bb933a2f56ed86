package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
)

type providerRepository struct {
	store  *firestore.Client
	logger *zap.Logger
}

// NewProviderRepository создает firestore-реализацию ProviderRepository
func NewProviderRepository(client *Client) repository.ProviderRepository {
	return &providerRepository{
		store:  client.store,
		logger: client.logger,
	}
}

func (r *providerRepository) GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error) {
	snap, err := r.store.Collection(providersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, apperrors.ErrProviderNotFound
		}
		r.logger.Error("Failed to get provider", zap.String("id", id), zap.Error(err))
		return nil, storeErr("get provider "+id, err)
	}

	var provider domain.ServiceProvider
	if err := snap.DataTo(&provider); err != nil {
		return nil, storeErr("decode provider "+id, err)
	}
	provider.ID = snap.Ref.ID

	return &provider, nil
}

func (r *providerRepository) Create(ctx context.Context, id string, provider *domain.ServiceProvider) error {
	_, err := r.store.Collection(providersCollection).Doc(id).Set(ctx, provider)
	if err != nil {
		r.logger.Error("Failed to create provider", zap.String("id", id), zap.Error(err))
		return storeErr("create provider "+id, err)
	}

	r.logger.Debug("Provider created", zap.String("id", id))
	return nil
}

func (r *providerRepository) UpdateSettings(ctx context.Context, id string, settings domain.ProviderSettings) error {
	// Merge-обновление: нетронутые поля документа (рейтинг, счётчик работ)
	// сохраняются, отметку времени записи проставляет хранилище
	fields := map[string]interface{}{
		"services":      settings.Services,
		"extra_options": settings.ExtraOptions,
		"active":        settings.Active,
		"updated_at":    firestore.ServerTimestamp,
	}
	if settings.ServiceArea != nil {
		fields["service_area"] = settings.ServiceArea
	}

	_, err := r.store.Collection(providersCollection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		r.logger.Error("Failed to update provider settings", zap.String("id", id), zap.Error(err))
		return storeErr("update provider settings "+id, err)
	}

	r.logger.Debug("Provider settings updated",
		zap.String("id", id),
		zap.Bool("active", settings.Active))
	return nil
}

func (r *providerRepository) SearchByGeohashRange(ctx context.Context, category, start, end string) ([]*domain.ServiceProvider, error) {
	// Полуоткрытый лексикографический диапазон [start, end) по geohash
	// рабочей зоны: end = prefix+"~" эквивалентен "начинается с prefix"
	query := r.store.Collection(providersCollection).
		Where("active", "==", true).
		Where("services."+category, "==", true).
		Where("service_area.geohash", ">=", start).
		Where("service_area.geohash", "<", end).
		OrderBy("service_area.geohash", firestore.Asc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var providers []*domain.ServiceProvider
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			r.logger.Error("Provider range query failed",
				zap.String("category", category),
				zap.String("start", start),
				zap.Error(err))
			return nil, storeErr("query providers ["+start+", "+end+")", err)
		}

		var provider domain.ServiceProvider
		if err := snap.DataTo(&provider); err != nil {
			// Повреждённый документ не валит весь скан
			r.logger.Warn("Skipping undecodable provider document",
				zap.String("id", snap.Ref.ID),
				zap.Error(err))
			continue
		}
		provider.ID = snap.Ref.ID
		providers = append(providers, &provider)
	}

	return providers, nil
}
