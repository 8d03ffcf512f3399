package handler

import (
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"

	"github.com/gofiber/fiber/v2"
)

// As datas trafegam como YYYY-MM-DD, igual ao front original.
type vacationResponse struct {
	ID             uint   `json:"id"`
	CollaboratorID uint   `json:"colaboradorId"`
	Start          string `json:"start"`
	End            string `json:"end"`
}

type createVacationInput struct {
	CollaboratorID uint   `json:"colaboradorId"`
	Start          string `json:"start"`
	End            string `json:"end"`
	Days           int    `json:"dias"`
}

func toVacationResponse(v *models.Vacation) vacationResponse {
	return vacationResponse{
		ID:             v.ID,
		CollaboratorID: v.CollaboratorID,
		Start:          schedule.FormatISO(v.StartDate),
		End:            schedule.FormatISO(v.EndDate),
	}
}

// ListVacations - GET /api/ferias?year=YYYY
func (h *Handler) ListVacations(c *fiber.Ctx) error {
	year := c.QueryInt("year")

	vacations, err := h.vacationService.ListByYear(year)
	if err != nil {
		return domainError(c, err)
	}

	response := make([]vacationResponse, 0, len(vacations))
	for i := range vacations {
		response = append(response, toVacationResponse(&vacations[i]))
	}
	return c.JSON(response)
}

// CreateVacation - POST /api/ferias
// Aceita start/end explícitos ou start+dias (atalho "+20/+30 dias").
func (h *Handler) CreateVacation(c *fiber.Ctx) error {
	var input createVacationInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos para férias")
	}

	start, err := schedule.ParseISO(input.Start)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos para férias")
	}

	var end time.Time
	if input.End != "" {
		end, err = schedule.ParseISO(input.End)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "Dados inválidos para férias")
		}
	}

	vacation, err := h.vacationService.Create(input.CollaboratorID, start, end, input.Days)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "data": toVacationResponse(vacation)})
}

// DeleteVacation - DELETE /api/ferias?id=N
func (h *Handler) DeleteVacation(c *fiber.Ctx) error {
	id, ok := requiredID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "id obrigatório")
	}

	if err := h.vacationService.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// RemoveVacationCovering - DELETE /api/ferias/cobrindo?colaboradorId=N&date=YYYY-MM-DD
// Remove o período inteiro que cobre o dia; não existe remoção parcial.
func (h *Handler) RemoveVacationCovering(c *fiber.Ctx) error {
	collaboratorID := c.QueryInt("colaboradorId")
	if collaboratorID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "colaboradorId obrigatório")
	}

	day, err := schedule.ParseISO(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date obrigatório")
	}

	removed, err := h.vacationService.RemoveCovering(uint(collaboratorID), day)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "data": toVacationResponse(removed)})
}
