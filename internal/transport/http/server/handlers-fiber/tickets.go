package handlers_fiber

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ANURA4G/event-ticketing-app/internal/api"
	"github.com/ANURA4G/event-ticketing-app/internal/mapper"
)

// GetAdminTickets lists every ticket with its attendance status.
func (h *Handler) GetAdminTickets(c *fiber.Ctx) error {
	list, err := h.uc.TicketsOverview(c.Context())
	if err != nil {
		h.log.Errorw("failed to list tickets", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITicketList(list))
}

// PostAdminTickets issues a ticket together with its member account. The
// response carries the member's temporary password exactly once.
func (h *Handler) PostAdminTickets(c *fiber.Ctx) error {
	var body api.IssueTicketRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid body"))
	}

	issued, err := h.uc.IssueTicket(c.Context(), mapper.FromAPIIssueRequest(body, callerUsername(c)))
	if err != nil {
		h.log.Errorw("failed to issue ticket", "error", err.Error())
		return writeError(c, err)
	}
	resp := mapper.ToAPIIssuedTicket(*issued, adminQRURL(issued.TicketID), adminPDFURL(issued.TicketID))
	return c.Status(http.StatusCreated).JSON(resp)
}

// GetAdminTicket returns one ticket with its artifact links.
func (h *Handler) GetAdminTicket(c *fiber.Ctx) error {
	id := c.Params("ticket_id")
	ticket, err := h.uc.Ticket(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITicketDetail(*ticket, adminQRURL(id), adminPDFURL(id)))
}

// DeleteAdminTicket removes a ticket, its member account and attendance.
func (h *Handler) DeleteAdminTicket(c *fiber.Ctx) error {
	if err := h.uc.RemoveTicket(c.Context(), c.Params("ticket_id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostAdminTicketsClear wipes all tickets and attendance records.
func (h *Handler) PostAdminTicketsClear(c *fiber.Ctx) error {
	if err := h.uc.ClearAllTeams(c.Context()); err != nil {
		h.log.Errorw("failed to clear teams", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetAdminTicketQR streams the ticket QR code as a PNG download.
func (h *Handler) GetAdminTicketQR(c *fiber.Ctx) error {
	id := c.Params("ticket_id")
	png, err := h.uc.TicketQR(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPNG(c, png, id)
}

// GetAdminTicketPDF streams the printable entry pass as a PDF download.
func (h *Handler) GetAdminTicketPDF(c *fiber.Ctx) error {
	id := c.Params("ticket_id")
	doc, err := h.uc.TicketPDF(c.Context(), id)
	if err != nil {
		h.log.Errorw("failed to render entry pass", "ticket_id", id, "error", err.Error())
		return writeError(c, err)
	}
	return sendPDF(c, doc, id)
}

func sendPNG(c *fiber.Ctx, png []byte, ticketID string) error {
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_qr.png"`, ticketID))
	return c.Status(http.StatusOK).Send(png)
}

func sendPDF(c *fiber.Ctx, doc []byte, ticketID string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_pass.pdf"`, ticketID))
	return c.Status(http.StatusOK).Send(doc)
}
