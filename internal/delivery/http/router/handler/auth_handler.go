package handler

import (
	"log/slog"
	"net/http"

	"fixtrack/internal/delivery/http/middleware"
	"fixtrack/internal/delivery/http/response"
	"fixtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for staff identity handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterStaff handles the staff registration request.
func (h *AuthHandler) RegisterStaff(c echo.Context) error {
	var input *usecase.RegisterStaffInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	staff, err := h.uc.RegisterStaff(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, staff, "Staff account created successfully")
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles the staff login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *loginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	tokens, err := h.uc.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokens, "Login successful")
}

// Me returns the authenticated staff member's own account.
func (h *AuthHandler) Me(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	staff, err := h.uc.GetStaff(c.Request().Context(), actor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, staff, "Profile retrieved successfully")
}
