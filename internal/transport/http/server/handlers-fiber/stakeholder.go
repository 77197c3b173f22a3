package handlers_fiber

import (
	"net/http"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListStakeholders returns a project's stakeholders.
func (h *Handler) ListStakeholders(c *fiber.Ctx) error {
	projectID, err := paramID(c, "proyecto_id")
	if err != nil {
		return notFound(c, err.Error())
	}

	stakeholders, err := h.uc.Stakeholders(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIStakeholderList(stakeholders))
}

// GetStakeholder returns one stakeholder by id.
func (h *Handler) GetStakeholder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	stakeholder, err := h.uc.Stakeholder(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIStakeholder(*stakeholder))
}

// CreateStakeholder registers a stakeholder on a project.
func (h *Handler) CreateStakeholder(c *fiber.Ctx) error {
	var body api.CrearStakeholderRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	created, err := h.uc.CreateStakeholder(c.Context(), entities.Stakeholder{
		ProjectID:         body.ProyectoID,
		FullName:          body.NombreCompleto,
		Email:             body.Correo,
		Phone:             body.Telefono,
		Organization:      body.Organizacion,
		Position:          body.Cargo,
		Type:              body.Tipo,
		InfluenceInterest: body.NivelInfluenciaInteres,
		Notes:             body.Notas,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Message     string          `json:"message"`
		Stakeholder api.Stakeholder `json:"stakeholder"`
	}{Message: "Stakeholder creado", Stakeholder: mapper.ToAPIStakeholder(*created)})
}

// UpdateStakeholder applies a partial stakeholder update.
func (h *Handler) UpdateStakeholder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	var body api.ActualizarStakeholderRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	updated, err := h.uc.UpdateStakeholder(c.Context(), id, entities.StakeholderUpdate{
		FullName:          body.NombreCompleto,
		Email:             body.Correo,
		Phone:             body.Telefono,
		Organization:      body.Organizacion,
		Position:          body.Cargo,
		Type:              body.Tipo,
		InfluenceInterest: body.NivelInfluenciaInteres,
		Notes:             body.Notas,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Message     string          `json:"message"`
		Stakeholder api.Stakeholder `json:"stakeholder"`
	}{Message: "Stakeholder actualizado", Stakeholder: mapper.ToAPIStakeholder(*updated)})
}

// DeleteStakeholder removes a stakeholder.
func (h *Handler) DeleteStakeholder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	if err := h.uc.DeleteStakeholder(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Stakeholder eliminado"})
}
