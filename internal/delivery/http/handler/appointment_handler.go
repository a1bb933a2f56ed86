package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/delivery/http/middleware"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/utils"
	"github.com/cleaning-marketplace/internal/pkg/validator"
	"github.com/cleaning-marketplace/internal/usecase"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// AppointmentHandler - обработчик заявок на уборку
type AppointmentHandler struct {
	appointmentUC *usecase.AppointmentUseCase
	logger        *zap.Logger
}

func NewAppointmentHandler(appointmentUC *usecase.AppointmentUseCase, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUC: appointmentUC,
		logger:        logger,
	}
}

// Create godoc
// @Summary Создание заявки
// @Description Создаёт заявку со статусом pending и предложением цены. Исполнитель получает push-уведомление.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Параметры заявки"
// @Success 201 {object} utils.SuccessResponse{data=domain.Appointment}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	appointment, err := h.appointmentUC.Create(c.Context(), middleware.CallerID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, appointment, nil)
}

// GetByID godoc
// @Summary Просмотр заявки
// @Description Возвращает заявку. Доступно только её участникам.
// @Tags Appointments
// @Produce json
// @Param id path string true "ID заявки"
// @Success 200 {object} utils.SuccessResponse{data=domain.Appointment}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	appointment, err := h.appointmentUC.GetByID(c.Context(), middleware.CallerID(c), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, appointment, nil)
}

// UpdateStatus godoc
// @Summary Смена статуса заявки
// @Description Переводит заявку по допустимой ветке: pending - accepted|declined, accepted - completed|cancelled. Принимает и завершает исполнитель, отменяет клиент.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "ID заявки"
// @Param request body dto.UpdateAppointmentStatusRequest true "Новый статус"
// @Success 200 {object} utils.SuccessResponse{data=domain.Appointment}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateAppointmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(err.Error()))
	}

	appointment, err := h.appointmentUC.UpdateStatus(c.Context(), middleware.CallerID(c), c.Params("id"), req.Status)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, appointment, nil)
}
