package handler

import (
	"log/slog"
	"net/http"

	"fixtrack/internal/delivery/http/response"
	"fixtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler exposes the read-only payment view.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPaymentAggregate sums a device's payments per settlement state.
func (h *PaymentHandler) GetPaymentAggregate(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	aggregate, err := h.uc.GetPaymentAggregate(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, aggregate, "Payment summary retrieved successfully")
}

// ListPayments returns a device's payment records, newest first.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	payments, err := h.uc.ListPayments(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}
