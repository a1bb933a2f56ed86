// Package geohash - кодек координат в geohash-строки и подбор префиксов
// под радиус поиска. Обёртка над github.com/mmcloughlin/geohash с
// валидацией входа и фиксированной таблицей радиус -> precision.
package geohash

import (
	mgeohash "github.com/mmcloughlin/geohash"

	"github.com/cleaning-marketplace/internal/pkg/errors"
)

const (
	// DefaultPrecision - точность geohash рабочих зон (ячейка ~153 м)
	DefaultPrecision = 7

	// MaxRangeChar сортируется после любого символа geohash-алфавита,
	// поэтому [prefix, prefix+MaxRangeChar) эквивалентно "начинается с prefix"
	MaxRangeChar = "~"

	// NeighborRadiusM - до этого радиуса ячейка дополняется 8 соседями,
	// чтобы закрыть разрывы на границах ячеек
	NeighborRadiusM = 1000
)

// Encode кодирует координаты в geohash заданной точности (число символов)
func Encode(lat, lon float64, precision int) (string, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lat": lat,
			"lon": lon,
		})
	}
	if precision < 1 {
		precision = DefaultPrecision
	}
	return mgeohash.EncodeWithPrecision(lat, lon, uint(precision)), nil
}

// Decode возвращает центр ячейки geohash
func Decode(hash string) (lat, lon float64) {
	return mgeohash.Decode(hash)
}

// Neighbors возвращает 8 соседних ячеек той же точности
func Neighbors(hash string) []string {
	return mgeohash.Neighbors(hash)
}

// PrecisionForRadius возвращает самую грубую точность, ячейка которой
// покрывает запрошенный радиус. Пороговая таблица воспроизводится дословно
// ради совместимости с накопленными данными, включая смешанные единицы
// измерения - не "исправлять" без сверки с реальными запросами.
func PrecisionForRadius(radiusM float64) int {
	switch {
	case radiusM >= 5000000:
		return 1
	case radiusM >= 1250000:
		return 2
	case radiusM >= 156000:
		return 3
	case radiusM >= 39000:
		return 4
	case radiusM >= 4900:
		return 5
	case radiusM >= 1200:
		return 6
	case radiusM >= 153:
		return 7
	case radiusM >= 38:
		return 8
	default:
		return 9
	}
}

// PrefixesForSearch возвращает набор geohash-префиксов, покрывающих радиус
// поиска вокруг точки. Для малых радиусов - базовая ячейка плюс 8 соседей,
// для больших - один более грубый префикс (один range-скан). Покрытие
// приближённое: точность даёт фильтр по точному расстоянию поверх выборки.
func PrefixesForSearch(lat, lon, radiusM float64) ([]string, error) {
	precision := PrecisionForRadius(radiusM)

	if radiusM <= NeighborRadiusM {
		base, err := Encode(lat, lon, precision)
		if err != nil {
			return nil, err
		}
		return append([]string{base}, Neighbors(base)...), nil
	}

	coarse := precision - 2
	if coarse < 1 {
		coarse = 1
	}
	prefix, err := Encode(lat, lon, coarse)
	if err != nil {
		return nil, err
	}
	return []string{prefix}, nil
}
