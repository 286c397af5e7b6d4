package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
	"github.com/ANURA4G/event-ticketing-app/internal/transport/http/middleware"
)

// Register mounts every route on the app. The admin group is restricted to
// the admin role, scan endpoints admit admins and scanners, and the user
// group is for member accounts.
func Register(app *fiber.App, h *Handler, auth *middleware.Auth) {
	app.Get("/healthz", h.GetHealthz)
	app.Post("/auth/login", h.PostAuthLogin)

	admin := app.Group("/admin", auth.RequireRole(entities.RoleAdmin))
	admin.Get("/stats", h.GetAdminStats)
	admin.Get("/tickets", h.GetAdminTickets)
	admin.Post("/tickets", h.PostAdminTickets)
	admin.Post("/tickets/clear", h.PostAdminTicketsClear)
	admin.Get("/tickets/:ticket_id", h.GetAdminTicket)
	admin.Delete("/tickets/:ticket_id", h.DeleteAdminTicket)
	admin.Get("/tickets/:ticket_id/qr", h.GetAdminTicketQR)
	admin.Get("/tickets/:ticket_id/pdf", h.GetAdminTicketPDF)
	admin.Get("/attendance", h.GetAdminAttendance)
	admin.Get("/users", h.GetAdminUsers)
	admin.Post("/scanners", h.PostAdminScanners)

	scan := app.Group("/scan", auth.RequireRole(entities.RoleAdmin, entities.RoleScanner))
	scan.Post("/verify", h.PostScanVerify)
	scan.Post("/manual", h.PostScanManual)
	scan.Get("/status/:ticket_id", h.GetScanStatus)

	user := app.Group("/user", auth.RequireRole(entities.RoleMember))
	user.Get("/tickets", h.GetUserTickets)
	user.Get("/tickets/:ticket_id/qr", h.GetUserTicketQR)
	user.Get("/tickets/:ticket_id/pdf", h.GetUserTicketPDF)
}
