package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mantém a superfície da API original (ids por query
// string inclusive) para o front existente continuar funcionando, e
// acrescenta as rotas de agregação que antes eram recalculadas em cada
// tela.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/healthz", h.Health)

	api := app.Group("/api")

	api.Get("/colaboradores", h.ListCollaborators)
	api.Post("/colaboradores", h.CreateCollaborator)
	api.Patch("/colaboradores", h.UpdateCollaborator)
	api.Delete("/colaboradores", h.DeleteCollaborator)

	api.Get("/ferias", h.ListVacations)
	api.Post("/ferias", h.CreateVacation)
	api.Delete("/ferias/cobrindo", h.RemoveVacationCovering)
	api.Delete("/ferias", h.DeleteVacation)

	api.Get("/folgas", h.ListDayOffs)
	api.Post("/folgas", h.CreateDayOff)
	api.Delete("/folgas", h.DeleteDayOff)

	api.Get("/semanas", h.ListWeeks)
	api.Get("/escala/semana", h.WeekSummary)
	api.Get("/escala/ano", h.YearOverview)
}

// Health responde o probe de liveness.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
