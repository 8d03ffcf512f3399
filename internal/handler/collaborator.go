package handler

import (
	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListCollaborators - GET /api/colaboradores
func (h *Handler) ListCollaborators(c *fiber.Ctx) error {
	collaborators, err := h.collaboratorService.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(collaborators)
}

// CreateCollaborator - POST /api/colaboradores
func (h *Handler) CreateCollaborator(c *fiber.Ctx) error {
	var collaborator models.Collaborator
	if err := c.BodyParser(&collaborator); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos para colaborador")
	}

	created, err := h.collaboratorService.Create(&collaborator)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "data": created})
}

// UpdateCollaborator - PATCH /api/colaboradores?id=N (merge parcial)
func (h *Handler) UpdateCollaborator(c *fiber.Ctx) error {
	id, ok := requiredID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "id obrigatório")
	}

	var input service.UpdateCollaboratorInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Dados inválidos para colaborador")
	}

	updated, err := h.collaboratorService.Update(id, input)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "data": updated})
}

// DeleteCollaborator - DELETE /api/colaboradores?id=N
// Remove também as férias e folgas do colaborador.
func (h *Handler) DeleteCollaborator(c *fiber.Ctx) error {
	id, ok := requiredID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "id obrigatório")
	}

	if err := h.collaboratorService.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
