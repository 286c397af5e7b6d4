package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ANURA4G/event-ticketing-app/internal/api"
	"github.com/ANURA4G/event-ticketing-app/internal/entities"
	"github.com/ANURA4G/event-ticketing-app/internal/transport/http/middleware"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.BADREQUEST
		msg = err.Error()
	case errors.Is(err, entities.ErrBadCredentials):
		status = http.StatusUnauthorized
		code = api.BADCREDENTIALS
		msg = "invalid username or password"
	case errors.Is(err, entities.ErrTicketNotFound), errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		code = api.USEREXISTS
		msg = "username already exists"
	case errors.Is(err, entities.ErrTicketUsed):
		status = http.StatusConflict
		code = api.TICKETUSED
		msg = "ticket already used for entry"
	case errors.Is(err, entities.ErrBadPayload):
		status = http.StatusBadRequest
		code = api.BADPAYLOAD
		msg = "payload could not be verified"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorDetail{Code: code, Message: msg}}
}

// callerUsername is the authenticated username, or "" on unguarded routes.
func callerUsername(c *fiber.Ctx) string {
	if claims := middleware.Claims(c); claims != nil {
		return claims.Username
	}
	return ""
}

// callerTeamCode is the member's team code; member tokens carry it as the
// user id.
func callerTeamCode(c *fiber.Ctx) string {
	if claims := middleware.Claims(c); claims != nil {
		return claims.UserID
	}
	return ""
}

func adminQRURL(ticketID string) string {
	return "/admin/tickets/" + ticketID + "/qr"
}

func adminPDFURL(ticketID string) string {
	return "/admin/tickets/" + ticketID + "/pdf"
}
