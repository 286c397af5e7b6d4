package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ANURA4G/event-ticketing-app/internal/api"
	"github.com/ANURA4G/event-ticketing-app/internal/mapper"
)

// PostScanVerify runs the QR verification state machine. Every displayable
// verdict is HTTP 200; success and status in the body carry the outcome.
func (h *Handler) PostScanVerify(c *fiber.Ctx) error {
	var body api.VerifyScanRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid body"))
	}

	res, err := h.uc.VerifyScan(c.Context(), body.QRData, callerUsername(c))
	if err != nil {
		h.log.Errorw("scan verify failed", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIScanResult(res))
}

// PostScanManual checks a team in by ticket ID or team code.
func (h *Handler) PostScanManual(c *fiber.Ctx) error {
	var body api.ManualCheckInRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid body"))
	}

	res, err := h.uc.ManualCheckIn(c.Context(), body.Code, callerUsername(c))
	if err != nil {
		h.log.Errorw("manual check-in failed", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIScanResult(res))
}

// GetScanStatus reports a ticket's state without recording attendance.
func (h *Handler) GetScanStatus(c *fiber.Ctx) error {
	res, err := h.uc.TicketStatus(c.Context(), c.Params("ticket_id"))
	if err != nil {
		h.log.Errorw("ticket status failed", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIScanResult(res))
}
