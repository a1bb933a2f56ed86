package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/geohash"
	"github.com/cleaning-marketplace/internal/repository/memory"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

func newProviderFixture() (*ProviderUseCase, *memory.ProviderRepository, *memory.UserRepository) {
	providers := memory.NewProviderRepository()
	users := memory.NewUserRepository()
	uc := NewProviderUseCase(providers, users, zap.NewNop(), geohash.DefaultPrecision)
	return uc, providers, users
}

func TestProviderUpdateSettings_RecomputesGeohash(t *testing.T) {
	uc, providers, _ := newProviderFixture()
	ctx := context.Background()

	require.NoError(t, uc.CreateDefaultProfile(ctx, "u1"))

	err := uc.UpdateSettings(ctx, "u1", "u1", dto.UpdateProviderSettingsRequest{
		Services: map[string]bool{"standard": true, "deep": false},
		ServiceArea: &dto.ServiceAreaInput{
			Latitude:  6.5244,
			Longitude: 3.3792,
			RadiusM:   10000,
		},
	})
	require.NoError(t, err)

	provider, err := providers.GetByID(ctx, "u1")
	require.NoError(t, err)

	assert.True(t, provider.Active)
	require.NotNil(t, provider.ServiceArea)

	wantHash, err := geohash.Encode(6.5244, 3.3792, geohash.DefaultPrecision)
	require.NoError(t, err)
	assert.Equal(t, wantHash, provider.ServiceArea.Geohash)
	assert.Equal(t, float64(10000), provider.ServiceArea.RadiusM)
}

func TestProviderUpdateSettings_ActiveDerivedFromServices(t *testing.T) {
	uc, providers, _ := newProviderFixture()
	ctx := context.Background()

	require.NoError(t, uc.CreateDefaultProfile(ctx, "u1"))

	// все услуги выключены - анкета деактивируется
	err := uc.UpdateSettings(ctx, "u1", "u1", dto.UpdateProviderSettingsRequest{
		Services: map[string]bool{"standard": false},
	})
	require.NoError(t, err)

	provider, err := providers.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, provider.Active)
}

func TestProviderUpdateSettings_KeepsAreaWhenOmitted(t *testing.T) {
	uc, providers, _ := newProviderFixture()
	ctx := context.Background()

	require.NoError(t, uc.CreateDefaultProfile(ctx, "u1"))
	require.NoError(t, uc.UpdateSettings(ctx, "u1", "u1", dto.UpdateProviderSettingsRequest{
		Services: map[string]bool{"standard": true},
		ServiceArea: &dto.ServiceAreaInput{
			Latitude:  6.5244,
			Longitude: 3.3792,
			RadiusM:   10000,
		},
	}))

	// обновление без зоны не должно её стирать
	require.NoError(t, uc.UpdateSettings(ctx, "u1", "u1", dto.UpdateProviderSettingsRequest{
		Services: map[string]bool{"standard": true, "deep": true},
	}))

	provider, err := providers.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, provider.ServiceArea)
	assert.Equal(t, float64(10000), provider.ServiceArea.RadiusM)
}

func TestProviderUpdateSettings_Forbidden(t *testing.T) {
	uc, _, _ := newProviderFixture()

	err := uc.UpdateSettings(context.Background(), "intruder", "u1", dto.UpdateProviderSettingsRequest{
		Services: map[string]bool{"standard": true},
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestProviderUpdateSettings_InvalidArea(t *testing.T) {
	uc, _, _ := newProviderFixture()
	ctx := context.Background()

	require.NoError(t, uc.CreateDefaultProfile(ctx, "u1"))

	tests := []struct {
		name string
		area dto.ServiceAreaInput
	}{
		{"latitude out of range", dto.ServiceAreaInput{Latitude: 95, Longitude: 3.3, RadiusM: 1000}},
		{"longitude out of range", dto.ServiceAreaInput{Latitude: 6.5, Longitude: 181, RadiusM: 1000}},
		{"zero radius", dto.ServiceAreaInput{Latitude: 6.5, Longitude: 3.3, RadiusM: 0}},
		{"negative radius", dto.ServiceAreaInput{Latitude: 6.5, Longitude: 3.3, RadiusM: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := tt.area
			err := uc.UpdateSettings(ctx, "u1", "u1", dto.UpdateProviderSettingsRequest{
				Services:    map[string]bool{"standard": true},
				ServiceArea: &area,
			})
			assert.Error(t, err)
		})
	}
}

func TestProviderGetByID_WithProfile(t *testing.T) {
	uc, _, users := newProviderFixture()
	ctx := context.Background()

	require.NoError(t, uc.CreateDefaultProfile(ctx, "u1"))
	require.NoError(t, users.Create(ctx, "u1", &domain.User{Name: "Chidi"}))

	response, err := uc.GetByID(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", response.Provider.ID)
	assert.False(t, response.Provider.Active)
	assert.Equal(t, "Chidi", response.Profile.Name)
}

func TestProviderGetByID_NotFound(t *testing.T) {
	uc, _, _ := newProviderFixture()

	_, err := uc.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrProviderNotFound)
}
