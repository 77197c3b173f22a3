package handlers_fiber

import (
	"net/http"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListTechniques returns the active catalog, optionally filtered by categoria.
func (h *Handler) ListTechniques(c *fiber.Ctx) error {
	var category *string
	if raw := c.Query("categoria"); raw != "" {
		category = &raw
	}

	techniques, err := h.uc.Techniques(c.Context(), category, false)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITecnicaList(techniques))
}

// ListAllTechniques returns the full catalog including deactivated entries.
func (h *Handler) ListAllTechniques(c *fiber.Ctx) error {
	techniques, err := h.uc.Techniques(c.Context(), nil, true)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITecnicaList(techniques))
}

// GetTechnique returns one technique by id.
func (h *Handler) GetTechnique(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	technique, err := h.uc.Technique(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITecnica(*technique))
}

// CreateTechnique registers a technique in the catalog.
func (h *Handler) CreateTechnique(c *fiber.Ctx) error {
	var body api.CrearTecnicaRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	created, err := h.uc.CreateTechnique(c.Context(), entities.Technique{
		Name:        body.Nombre,
		Description: body.Descripcion,
		Category:    body.Categoria,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Message string      `json:"message"`
		Tecnica api.Tecnica `json:"tecnica"`
	}{Message: "Tecnica creada", Tecnica: mapper.ToAPITecnica(*created)})
}

// UpdateTechnique applies a partial technique update.
func (h *Handler) UpdateTechnique(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	var body api.ActualizarTecnicaRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	updated, err := h.uc.UpdateTechnique(c.Context(), id, entities.TechniqueUpdate{
		Name:        body.Nombre,
		Description: body.Descripcion,
		Category:    body.Categoria,
		Active:      body.Activo,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Message string      `json:"message"`
		Tecnica api.Tecnica `json:"tecnica"`
	}{Message: "Tecnica actualizada", Tecnica: mapper.ToAPITecnica(*updated)})
}

// DeactivateTechnique soft-deletes a technique without breaking history.
func (h *Handler) DeactivateTechnique(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	if err := h.uc.DeactivateTechnique(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Tecnica desactivada"})
}
