// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"credence/internal/delivery/http/response"
	"credence/internal/delivery/http/validator"
	"credence/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	msgRegisterFields = "Name, email and password required"
	msgLoginFields    = "Email and password required"
)

// registerRequest is the wire shape of POST /api/auth/register.
type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginRequest is the wire shape of POST /api/auth/login. The email is only
// checked for presence here: a malformed address must fall through to the
// same 401 as an unknown one.
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for authentication handlers.
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

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, msgRegisterFields)
	}
	if err := c.Validate(&req); err != nil {
		return validationResponse(c, err, msgRegisterFields)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, http.StatusCreated, output)
}

// Login handles the credential verification request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, msgLoginFields)
	}
	if err := c.Validate(&req); err != nil {
		return validationResponse(c, err, msgLoginFields)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, http.StatusOK, output)
}

// validationResponse renders a 400 with the field-error map when the
// failure came from declared rules, and defers everything else to the
// error middleware.
func validationResponse(c echo.Context, err error, message string) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return response.ErrorWithDetails(c, http.StatusBadRequest, message, verr.Fields)
	}

	return errors.WithStack(err)
}
