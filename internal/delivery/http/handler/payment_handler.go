package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/delivery/http/middleware"
	"github.com/cleaning-marketplace/internal/domain"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/utils"
	"github.com/cleaning-marketplace/internal/usecase"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// PaymentHandler - обработчик симуляции платежей
type PaymentHandler struct {
	paymentUC *usecase.PaymentUseCase
	logger    *zap.Logger
}

func NewPaymentHandler(paymentUC *usecase.PaymentUseCase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		logger:    logger,
	}
}

// Simulate godoc
// @Summary Симуляция оплаты заявки
// @Description Проверяет карту алгоритмом Луна и сроком действия, фиксирует результат. Платить может только клиент заявки. Данные карты не сохраняются.
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body dto.SimulatePaymentRequest true "Параметры платежа"
// @Success 200 {object} utils.SuccessResponse{data=dto.PaymentResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 402 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/payments/simulate [post]
func (h *PaymentHandler) Simulate(c *fiber.Ctx) error {
	var req dto.SimulatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	payment, err := h.paymentUC.Simulate(c.Context(), middleware.CallerID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	if payment.Status == domain.PaymentDeclined {
		return utils.SendError(c, apperrors.ErrPaymentDeclined.WithDetails(map[string]interface{}{
			"payment_id": payment.ID,
			"reference":  payment.Reference,
		}))
	}

	return utils.SendSuccess(c, dto.PaymentResponse{Payment: payment}, nil)
}
