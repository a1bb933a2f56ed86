package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/geohash"
	"github.com/cleaning-marketplace/internal/pkg/utils"
	"github.com/cleaning-marketplace/internal/pkg/validator"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// ProviderUseCase - анкеты исполнителей и их рабочие зоны
type ProviderUseCase struct {
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
	logger       *zap.Logger
	precision    int
}

func NewProviderUseCase(
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
	precision int,
) *ProviderUseCase {
	return &ProviderUseCase{
		providerRepo: providerRepo,
		userRepo:     userRepo,
		logger:       logger,
		precision:    precision,
	}
}

// GetByID возвращает анкету исполнителя вместе с публичным профилем
// владельца. Отсутствующий профиль не считается ошибкой.
func (uc *ProviderUseCase) GetByID(ctx context.Context, providerID string) (*dto.ProviderResponse, error) {
	provider, err := uc.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	profile := domain.PublicProfile{}
	user, err := uc.userRepo.GetByID(ctx, providerID)
	if err == nil {
		profile = user.Public()
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	return &dto.ProviderResponse{
		Provider: provider,
		Profile:  profile,
	}, nil
}

// UpdateSettings применяет настройки анкеты. Менять анкету может только
// её владелец. Флаг активности выводится из карты услуг, geohash рабочей
// зоны пересчитывается на каждом обновлении координат.
func (uc *ProviderUseCase) UpdateSettings(ctx context.Context, callerID, providerID string, req dto.UpdateProviderSettingsRequest) error {
	if callerID != providerID {
		return apperrors.ErrForbidden.WithDetails("only the profile owner can change settings")
	}

	if err := validator.Validate(req); err != nil {
		return apperrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	extraOptions := req.ExtraOptions
	if extraOptions == nil {
		extraOptions = make(map[string]bool)
	}

	settings := domain.ProviderSettings{
		Services:     req.Services,
		ExtraOptions: extraOptions,
		Active:       domain.DeriveActive(req.Services),
	}

	if req.ServiceArea != nil {
		area, err := uc.buildServiceArea(req.ServiceArea)
		if err != nil {
			return err
		}
		settings.ServiceArea = area
	}

	if err := uc.providerRepo.UpdateSettings(ctx, providerID, settings); err != nil {
		return err
	}

	uc.logger.Info("Provider settings updated",
		zap.String("provider_id", providerID),
		zap.Bool("active", settings.Active))
	return nil
}

// CreateDefaultProfile заводит пустую неактивную анкету исполнителя.
// Вызывается при регистрации пользователя: каждый пользователь может
// стать исполнителем, включив услуги в настройках.
func (uc *ProviderUseCase) CreateDefaultProfile(ctx context.Context, userID string) error {
	return uc.providerRepo.Create(ctx, userID, domain.NewDefaultProvider(userID))
}

func (uc *ProviderUseCase) buildServiceArea(input *dto.ServiceAreaInput) (*domain.ServiceArea, error) {
	if !utils.ValidateCoordinates(input.Latitude, input.Longitude) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	hash, err := geohash.Encode(input.Latitude, input.Longitude, uc.precision)
	if err != nil {
		return nil, err
	}

	lat, lon := input.Latitude, input.Longitude
	return &domain.ServiceArea{
		Latitude:  &lat,
		Longitude: &lon,
		RadiusM:   input.RadiusM,
		Geohash:   hash,
	}, nil
}
