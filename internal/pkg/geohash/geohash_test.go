package geohash_test

import (
	"testing"

	mgeohash "github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"

	"github.com/cleaning-marketplace/internal/pkg/geohash"
)

func TestEncode(t *testing.T) {
	t.Run("length matches precision", func(t *testing.T) {
		for precision := 1; precision <= 9; precision++ {
			hash, err := geohash.Encode(6.5244, 3.3792, precision)
			assert.NoError(t, err)
			assert.Len(t, hash, precision)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := geohash.Encode(41.3851, 2.1734, 7)
		assert.NoError(t, err)
		b, err := geohash.Encode(41.3851, 2.1734, 7)
		assert.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("out of range coordinates rejected", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude too high", 91, 0},
			{"latitude too low", -90.5, 0},
			{"longitude too high", 0, 181},
			{"longitude too low", 0, -180.1},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := geohash.Encode(tc.lat, tc.lon, 7)
				assert.Error(t, err)
			})
		}
	})
}

func TestRoundTrip(t *testing.T) {
	// Декодированный центр должен оставаться внутри ячейки исходной точки
	points := []struct {
		lat, lon float64
	}{
		{6.5244, 3.3792},    // Lagos
		{41.3851, 2.1734},   // Barcelona
		{-33.8688, 151.2093}, // Sydney
		{64.1466, -21.9426}, // Reykjavik
		{0, 0},
		{-89.9, -179.9},
	}

	for _, p := range points {
		for precision := 4; precision <= 8; precision++ {
			hash, err := geohash.Encode(p.lat, p.lon, precision)
			assert.NoError(t, err)

			box := mgeohash.BoundingBox(hash)
			assert.True(t, box.Contains(p.lat, p.lon),
				"cell %s must contain the original point", hash)

			lat, lon := geohash.Decode(hash)
			assert.True(t, box.Contains(lat, lon),
				"decoded center of %s must stay inside its cell", hash)
		}
	}
}

func TestPrecisionForRadius(t *testing.T) {
	t.Run("threshold table", func(t *testing.T) {
		cases := []struct {
			radiusM  float64
			expected int
		}{
			{6000000, 1},
			{5000000, 1},
			{1250000, 2},
			{156000, 3},
			{50000, 4},
			{39000, 4},
			{4900, 5},
			{1200, 6},
			{153, 7},
			{38, 8},
			{37, 9},
			{0, 9},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.expected, geohash.PrecisionForRadius(tc.radiusM),
				"radius %.0f", tc.radiusM)
		}
	})

	t.Run("non-increasing in radius", func(t *testing.T) {
		prev := geohash.PrecisionForRadius(0)
		for radius := float64(1); radius <= 6000000; radius *= 1.5 {
			p := geohash.PrecisionForRadius(radius)
			assert.LessOrEqual(t, p, prev,
				"precision must not grow with radius (radius=%.0f)", radius)
			prev = p
		}
	})
}

func TestNeighbors(t *testing.T) {
	hash, err := geohash.Encode(6.5244, 3.3792, 7)
	assert.NoError(t, err)

	neighbors := geohash.Neighbors(hash)
	assert.Len(t, neighbors, 8)

	seen := map[string]bool{hash: true}
	for _, n := range neighbors {
		assert.Len(t, n, len(hash))
		assert.False(t, seen[n], "neighbors must be distinct from base and each other")
		seen[n] = true
	}
}

func TestPrefixesForSearch(t *testing.T) {
	t.Run("small radius includes base cell and neighbors", func(t *testing.T) {
		lat, lon := 6.5244, 3.3792
		radius := 500.0

		prefixes, err := geohash.PrefixesForSearch(lat, lon, radius)
		assert.NoError(t, err)
		assert.Len(t, prefixes, 9)

		base, err := geohash.Encode(lat, lon, geohash.PrecisionForRadius(radius))
		assert.NoError(t, err)
		assert.Contains(t, prefixes, base)
	})

	t.Run("large radius returns single coarser prefix", func(t *testing.T) {
		lat, lon := 6.5244, 3.3792
		radius := 50000.0 // precision 4 -> prefix precision 2

		prefixes, err := geohash.PrefixesForSearch(lat, lon, radius)
		assert.NoError(t, err)
		assert.Len(t, prefixes, 1)
		assert.Len(t, prefixes[0], 2)

		// Префикс должен покрывать ячейку полной точности той же точки
		full, err := geohash.Encode(lat, lon, geohash.DefaultPrecision)
		assert.NoError(t, err)
		assert.Equal(t, prefixes[0], full[:2])
	})

	t.Run("coarse precision never drops below one", func(t *testing.T) {
		prefixes, err := geohash.PrefixesForSearch(6.5244, 3.3792, 6000000)
		assert.NoError(t, err)
		assert.Len(t, prefixes, 1)
		assert.Len(t, prefixes[0], 1)
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		_, err := geohash.PrefixesForSearch(95, 3.3792, 500)
		assert.Error(t, err)
	})
}
