package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/validator"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// UserUseCase - профили пользователей маркетплейса
type UserUseCase struct {
	userRepo   repository.UserRepository
	providerUC *ProviderUseCase
	logger     *zap.Logger
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	providerUC *ProviderUseCase,
	logger *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		providerUC: providerUC,
		logger:     logger,
	}
}

// Create регистрирует пользователя под identity вызывающего и сразу
// заводит ему пустую анкету исполнителя
func (uc *UserUseCase) Create(ctx context.Context, callerID string, req dto.CreateUserRequest) (*domain.User, error) {
	if err := validator.Validate(req); err != nil {
		return nil, apperrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	user := &domain.User{
		ID:          callerID,
		Name:        req.Name,
		Phone:       req.Phone,
		ImageURL:    req.ImageURL,
		DeviceToken: req.DeviceToken,
	}

	if err := uc.userRepo.Create(ctx, callerID, user); err != nil {
		return nil, err
	}

	if err := uc.providerUC.CreateDefaultProfile(ctx, callerID); err != nil {
		return nil, err
	}

	uc.logger.Info("User registered", zap.String("user_id", callerID))
	return user, nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile частично обновляет профиль. Передаются только заданные
// поля, остальные не трогаются. Менять профиль может только его владелец.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, callerID, userID string, req dto.UpdateUserProfileRequest) error {
	if callerID != userID {
		return apperrors.ErrForbidden.WithDetails("only the profile owner can change it")
	}

	if err := validator.Validate(req); err != nil {
		return apperrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.DeviceToken != nil {
		fields["device_token"] = *req.DeviceToken
	}

	if len(fields) == 0 {
		return apperrors.ErrInvalidRequest.WithDetails("no fields to update")
	}

	return uc.userRepo.UpdateProfile(ctx, userID, fields)
}
