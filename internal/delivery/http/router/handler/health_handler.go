package handler

import (
	"net/http"

	"credence/config"
	"credence/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness, tagged with the environment name.
type HealthHandler struct {
	env string
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{env: cfg.Env.Env}
}

// Check is a simple handler to check if the service is up.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.OK(c, http.StatusOK, h.env)
}
