package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ANURA4G/event-ticketing-app/internal/mapper"
)

// GetUserTickets returns the calling member's tickets.
func (h *Handler) GetUserTickets(c *fiber.Ctx) error {
	list, err := h.uc.MyTickets(c.Context(), callerTeamCode(c))
	if err != nil {
		h.log.Errorw("failed to list member tickets", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIMemberTickets(list))
}

// GetUserTicketQR streams the member's own QR code. Tickets of other teams
// read as not found.
func (h *Handler) GetUserTicketQR(c *fiber.Ctx) error {
	id := c.Params("ticket_id")
	png, err := h.uc.MyTicketQR(c.Context(), callerTeamCode(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPNG(c, png, id)
}

// GetUserTicketPDF streams the member's own entry pass.
func (h *Handler) GetUserTicketPDF(c *fiber.Ctx) error {
	id := c.Params("ticket_id")
	doc, err := h.uc.MyTicketPDF(c.Context(), callerTeamCode(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, doc, id)
}
