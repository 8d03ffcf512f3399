package handler

import (
	"errors"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// domainError traduz os tipos de erro do repositório para o status
// HTTP correspondente: 400 entrada inválida, 404 não encontrado,
// 409 conflito (sobreposição de férias ou folga duplicada) e 500 para
// o resto. Os dois conflitos nunca viram falha genérica.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidInput):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrVacationOverlap):
		return apiError(c, fiber.StatusConflict, "Período de férias sobreposto")
	case errors.Is(err, repository.ErrDayOffDuplicate):
		return apiError(c, fiber.StatusConflict, "Já existe folga nesta data")
	default:
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// requiredID lê o id obrigatório da query string, como as rotas
// DELETE/PATCH originais (?id=N).
func requiredID(c *fiber.Ctx) (uint, bool) {
	id := c.QueryInt("id")
	if id <= 0 {
		return 0, false
	}
	return uint(id), true
}
