package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/geohash"
	"github.com/cleaning-marketplace/internal/repository/memory"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

func newUserFixture() (*UserUseCase, *memory.UserRepository, *memory.ProviderRepository) {
	users := memory.NewUserRepository()
	providers := memory.NewProviderRepository()
	providerUC := NewProviderUseCase(providers, users, zap.NewNop(), geohash.DefaultPrecision)
	uc := NewUserUseCase(users, providerUC, zap.NewNop())
	return uc, users, providers
}

func strPtr(s string) *string {
	return &s
}

func TestUserCreate_AlsoCreatesProviderProfile(t *testing.T) {
	uc, users, providers := newUserFixture()
	ctx := context.Background()

	user, err := uc.Create(ctx, "u1", dto.CreateUserRequest{
		Name:  "Amina",
		Phone: "+2348012345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	stored, err := users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Amina", stored.Name)

	// анкета исполнителя заводится сразу, неактивной
	profile, err := providers.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, profile.Active)
	assert.Empty(t, profile.Services)
}

func TestUserCreate_Invalid(t *testing.T) {
	uc, _, _ := newUserFixture()

	_, err := uc.Create(context.Background(), "u1", dto.CreateUserRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestUserUpdateProfile_Partial(t *testing.T) {
	uc, users, _ := newUserFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, "u1", dto.CreateUserRequest{Name: "Amina", Phone: "+234800000"})
	require.NoError(t, err)

	err = uc.UpdateProfile(ctx, "u1", "u1", dto.UpdateUserProfileRequest{
		Name: strPtr("Amina O."),
	})
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Amina O.", stored.Name)
	// незаданные поля не трогаются
	assert.Equal(t, "+234800000", stored.Phone)
}

func TestUserUpdateProfile_Forbidden(t *testing.T) {
	uc, _, _ := newUserFixture()

	err := uc.UpdateProfile(context.Background(), "intruder", "u1", dto.UpdateUserProfileRequest{
		Name: strPtr("Hacked"),
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUserUpdateProfile_NoFields(t *testing.T) {
	uc, _, _ := newUserFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, "u1", dto.CreateUserRequest{Name: "Amina"})
	require.NoError(t, err)

	err = uc.UpdateProfile(ctx, "u1", "u1", dto.UpdateUserProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestUserGetByID_NotFound(t *testing.T) {
	uc, _, _ := newUserFixture()

	_, err := uc.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
