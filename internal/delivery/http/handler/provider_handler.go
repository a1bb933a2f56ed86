package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/delivery/http/middleware"
	"github.com/cleaning-marketplace/internal/pkg/utils"
	"github.com/cleaning-marketplace/internal/usecase"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// ProviderHandler - обработчик анкет исполнителей
type ProviderHandler struct {
	providerUC *usecase.ProviderUseCase
	logger     *zap.Logger
}

func NewProviderHandler(providerUC *usecase.ProviderUseCase, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{
		providerUC: providerUC,
		logger:     logger,
	}
}

// GetByID godoc
// @Summary Анкета исполнителя
// @Description Возвращает анкету исполнителя и публичный профиль владельца
// @Tags Providers
// @Produce json
// @Param id path string true "ID исполнителя"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProviderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/providers/{id} [get]
func (h *ProviderHandler) GetByID(c *fiber.Ctx) error {
	result, err := h.providerUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// UpdateSettings godoc
// @Summary Обновление настроек исполнителя
// @Description Полностью заменяет услуги и опции анкеты. Активность выводится из карты услуг, geohash рабочей зоны пересчитывается. Доступно только владельцу.
// @Tags Providers
// @Accept json
// @Produce json
// @Param id path string true "ID исполнителя"
// @Param request body dto.UpdateProviderSettingsRequest true "Настройки анкеты"
// @Success 200 {object} utils.SuccessResponse{data=dto.AckResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/providers/{id}/settings [put]
func (h *ProviderHandler) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateProviderSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := h.providerUC.UpdateSettings(c.Context(), middleware.CallerID(c), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.AckResponse{Status: "updated"}, nil)
}
