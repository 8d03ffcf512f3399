package handler

import (
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"

	"github.com/gofiber/fiber/v2"
)

type dayOffResponse struct {
	ID             uint   `json:"id"`
	CollaboratorID uint   `json:"colaboradorId"`
	Date           string `json:"date"`
}

type createDayOffInput struct {
	CollaboratorID uint   `json:"colaboradorId"`
	Date           string `json:"date"`
}

func toDayOffResponse(d *models.DayOff) dayOffResponse {
	return dayOffResponse{
		ID:             d.ID,
		CollaboratorID: d.CollaboratorID,
		Date:           schedule.FormatISO(d.Date),
	}
}

// ListDayOffs - GET /api/folgas?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) ListDayOffs(c *fiber.Ctx) error {
	var start, end time.Time
	if raw := c.Query("start"); raw != "" {
		parsed, err := schedule.ParseISO(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "start inválido")
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := schedule.ParseISO(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "end inválido")
		}
		end = parsed
	}

	dayOffs, err := h.dayOffService.ListRange(start, end)
	if err != nil {
		return domainError(c, err)
	}

	response := make([]dayOffResponse, 0, len(dayOffs))
	for i := range dayOffs {
		response = append(response, toDayOffResponse(&dayOffs[i]))
	}
	return c.JSON(response)
}

// CreateDayOff - POST /api/folgas
func (h *Handler) CreateDayOff(c *fiber.Ctx) error {
	var input createDayOffInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos para folga")
	}

	date, err := schedule.ParseISO(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos para folga")
	}

	dayOff, err := h.dayOffService.Create(input.CollaboratorID, date)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "data": toDayOffResponse(dayOff)})
}

// DeleteDayOff - DELETE /api/folgas?id=N
func (h *Handler) DeleteDayOff(c *fiber.Ctx) error {
	id, ok := requiredID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "id obrigatório")
	}

	if err := h.dayOffService.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
