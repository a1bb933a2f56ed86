package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
	"github.com/cleaning-marketplace/internal/pkg/validator"
	"github.com/cleaning-marketplace/internal/usecase/dto"
)

// PaymentUseCase - симуляция оплаты заявки. Реальный платёжный шлюз не
// подключён: карта проверяется алгоритмом Луна и сроком действия,
// результат фиксируется в хранилище. Данные карты не сохраняются.
type PaymentUseCase struct {
	paymentRepo     repository.PaymentRepository
	appointmentRepo repository.AppointmentRepository
	logger          *zap.Logger
	now             func() time.Time
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	appointmentRepo repository.AppointmentRepository,
	logger *zap.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// Simulate проводит симулированный платёж от имени вызывающего.
// Платить может только клиент заявки. Отклонённый платёж тоже
// сохраняется, решение возвращается в статусе.
func (uc *PaymentUseCase) Simulate(ctx context.Context, callerID string, req dto.SimulatePaymentRequest) (*domain.Payment, error) {
	if err := validator.Validate(req); err != nil {
		return nil, apperrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.ClientID != callerID {
		return nil, apperrors.ErrForbidden.WithDetails("only the client can pay for the appointment")
	}

	number := strings.ReplaceAll(req.Card.Number, " ", "")

	status := domain.PaymentSucceeded
	if !luhnValid(number) || cardExpired(req.Card.ExpMonth, req.Card.ExpYear, uc.now()) {
		status = domain.PaymentDeclined
	}

	payment := &domain.Payment{
		ID:            uuid.NewString(),
		AppointmentID: req.AppointmentID,
		PayerID:       callerID,
		Amount:        req.Amount,
		Status:        status,
		Reference:     "sim_" + uuid.NewString(),
		CardLast4:     lastFour(number),
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	uc.logger.Info("Payment simulated",
		zap.String("payment_id", payment.ID),
		zap.String("appointment_id", req.AppointmentID),
		zap.String("status", status))
	return payment, nil
}

// luhnValid проверяет номер карты контрольной суммой Луна
func luhnValid(number string) bool {
	if len(number) < 12 {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// cardExpired считает карту действительной до конца месяца истечения
func cardExpired(month, year int, now time.Time) bool {
	if year < now.Year() {
		return true
	}
	if year == now.Year() && time.Month(month) < now.Month() {
		return true
	}
	return false
}

func lastFour(number string) string {
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}
