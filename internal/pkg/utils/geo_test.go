package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleaning-marketplace/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for same point", func(t *testing.T) {
		d := utils.HaversineDistance(6.5244, 3.3792, 6.5244, 3.3792)
		assert.Equal(t, 0.0, d)
	})

	t.Run("known distance Barcelona-Paris", func(t *testing.T) {
		d := utils.HaversineDistance(41.3851, 2.1734, 48.8566, 2.3522)
		assert.InDelta(t, 831, d, 5) // ~831 km
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := utils.HaversineDistance(6.0, 3.3792, 7.0, 3.3792)
		assert.InDelta(t, 111.2, d, 0.5)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := utils.HaversineDistance(6.5244, 3.3792, 41.3851, 2.1734)
		b := utils.HaversineDistance(41.3851, 2.1734, 6.5244, 3.3792)
		assert.InDelta(t, a, b, 1e-9)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(6.5244, 3.3792))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(90.1, 0))
	assert.False(t, utils.ValidateCoordinates(0, -180.5))
}
