package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/delivery/http/middleware"
	"github.com/cleaning-marketplace/internal/pkg/utils"
	"github.com/cleaning-marketplace/internal/usecase"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// UserHandler - обработчик профилей пользователей
type UserHandler struct {
	userUC *usecase.UserUseCase
	logger *zap.Logger
}

func NewUserHandler(userUC *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Регистрация пользователя
// @Description Создаёт профиль пользователя под identity вызывающего и заводит пустую анкету исполнителя
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Данные профиля"
// @Success 201 {object} utils.SuccessResponse{data=domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.userUC.Create(c.Context(), middleware.CallerID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, user, nil)
}

// GetByID godoc
// @Summary Профиль пользователя
// @Tags Users
// @Produce json
// @Param id path string true "ID пользователя"
// @Success 200 {object} utils.SuccessResponse{data=domain.User}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.userUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, user, nil)
}

// UpdateProfile godoc
// @Summary Частичное обновление профиля
// @Description Обновляет только переданные поля. Доступно только владельцу профиля.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body dto.UpdateUserProfileRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.AckResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/users/{id} [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateUserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := h.userUC.UpdateProfile(c.Context(), middleware.CallerID(c), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.AckResponse{Status: "updated"}, nil)
}
