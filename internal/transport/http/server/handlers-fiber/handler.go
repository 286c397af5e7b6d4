// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ANURA4G/event-ticketing-app/internal/api"
	"github.com/ANURA4G/event-ticketing-app/internal/usecase"
)

// Handler serves the HTTP API on top of the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// GetHealthz reports liveness.
func (h *Handler) GetHealthz(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.Health{Status: "ok"})
}
