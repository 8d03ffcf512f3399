package handler

import (
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/service"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"

	"github.com/gofiber/fiber/v2"
)

// ListWeeks - GET /api/semanas?year=YYYY
// Semanas do ano alinhadas à segunda-feira, sem buracos.
func (h *Handler) ListWeeks(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	if year == 0 {
		year = time.Now().Year()
	}

	weeks := schedule.WeeksOfYear(year)
	response := make([]service.WeekSpan, 0, len(weeks))
	for _, w := range weeks {
		response = append(response, service.WeekSpan{Start: w.StartISO(), End: w.EndISO()})
	}
	return c.JSON(response)
}

// WeekSummary - GET /api/escala/semana?start=YYYY-MM-DD
// Os sete dias da semana resolvidos com métricas e lista de escalados.
func (h *Handler) WeekSummary(c *fiber.Ctx) error {
	start, err := schedule.ParseISO(c.Query("start"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "start obrigatório")
	}

	summary, err := h.plannerService.WeekSummary(start)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(summary)
}

// YearOverview - GET /api/escala/ano?year=YYYY
// Grade anual: férias por colaborador por semana.
func (h *Handler) YearOverview(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	if year == 0 {
		year = time.Now().Year()
	}

	overview, err := h.plannerService.YearOverview(year)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(overview)
}
