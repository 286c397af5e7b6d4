package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ANURA4G/event-ticketing-app/internal/api"
	"github.com/ANURA4G/event-ticketing-app/internal/mapper"
)

// PostAuthLogin authenticates any account and returns a session token.
func (h *Handler) PostAuthLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid body"))
	}

	session, err := h.uc.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISession(*session))
}

// PostAdminScanners provisions a gate-crew account.
func (h *Handler) PostAdminScanners(c *fiber.Ctx) error {
	var body api.CreateScannerRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid body"))
	}

	usr, err := h.uc.CreateScanner(c.Context(), body.Username, body.Password, callerUsername(c))
	if err != nil {
		h.log.Errorw("failed to create scanner", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*usr)})
}
