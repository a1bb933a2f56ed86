package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/utils"
	"github.com/cleaning-marketplace/internal/usecase"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// SearchHandler - обработчик геопоиска исполнителей
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Поиск исполнителей рядом с точкой
// @Description Возвращает активных исполнителей выбранной категории, рабочая зона которых покрывает точку запроса. Результаты отсортированы по расстоянию.
// @Tags Search
// @Accept json
// @Produce json
// @Param service query string true "Категория услуги"
// @Param lat query number true "Широта точки запроса"
// @Param lon query number true "Долгота точки запроса"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProviderSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/providers/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	started := time.Now()

	req := dto.ProviderSearchRequest{
		Service: c.Query("service"),
	}

	lat, err := queryFloat(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}
	lon, err := queryFloat(c, "lon")
	if err != nil {
		return utils.SendError(c, err)
	}
	req.Lat = lat
	req.Lon = lon

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000,
	})
}

// queryFloat парсит числовой query-параметр, отличая отсутствие от нуля
func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.ErrInvalidRequest.WithDetails(name + " must be a number")
	}
	return &value, nil
}
