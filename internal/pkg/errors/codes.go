package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Caller identity is missing",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Caller is not allowed to modify this resource",
		http.StatusForbidden,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrProviderNotFound = New(
		"PROVIDER_NOT_FOUND",
		"Service provider not found",
		http.StatusNotFound,
	)

	ErrAppointmentNotFound = New(
		"APPOINTMENT_NOT_FOUND",
		"Appointment not found",
		http.StatusNotFound,
	)

	ErrInvalidTransition = New(
		"INVALID_STATUS_TRANSITION",
		"Appointment status transition is not allowed",
		http.StatusConflict,
	)

	ErrPaymentDeclined = New(
		"PAYMENT_DECLINED",
		"Payment was declined",
		http.StatusPaymentRequired,
	)

	ErrSearchFailed = New(
		"SEARCH_FAILED",
		"Provider search failed",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
