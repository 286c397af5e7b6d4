package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ANURA4G/event-ticketing-app/internal/api"
	"github.com/ANURA4G/event-ticketing-app/internal/mapper"
)

// GetAdminStats returns the dashboard counters.
func (h *Handler) GetAdminStats(c *fiber.Ctx) error {
	statsRes, err := h.uc.Overview(c.Context())
	if err != nil {
		h.log.Errorw("failed to get stats", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIStats(statsRes))
}

// GetAdminAttendance returns the check-in log with counters.
func (h *Handler) GetAdminAttendance(c *fiber.Ctx) error {
	records, stats, err := h.uc.AttendanceLog(c.Context())
	if err != nil {
		h.log.Errorw("failed to get attendance log", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIAttendanceLog(records, stats))
}

// GetAdminUsers lists the member accounts created by ticket issuance.
func (h *Handler) GetAdminUsers(c *fiber.Ctx) error {
	users, err := h.uc.Members(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	resp := struct {
		Users []api.User `json:"users"`
		Count int        `json:"count"`
	}{Users: mapper.ToAPIUserList(users), Count: len(users)}
	return c.Status(http.StatusOK).JSON(resp)
}
