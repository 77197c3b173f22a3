package handlers_fiber

import (
	"net/http"

	"gestproy/internal/api"
	"gestproy/internal/mapper"
	"gestproy/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListMembers returns a project's memberships with joined user and role data.
func (h *Handler) ListMembers(c *fiber.Ctx) error {
	projectID, err := paramID(c, "proyecto_id")
	if err != nil {
		return notFound(c, err.Error())
	}

	members, err := h.uc.Members(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIMiembroList(members))
}

// AssignMember adds a user to a project under a role.
func (h *Handler) AssignMember(c *fiber.Ctx) error {
	var body api.AsignarMiembroRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	member, err := h.uc.AssignMember(c.Context(), middleware.CallerID(c), body.ProyectoID, body.UsuarioID, body.RolID)
	if err != nil {
		h.log.Infow("assign member rejected", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Message string      `json:"message"`
		Miembro api.Miembro `json:"miembro"`
	}{Message: "Miembro asignado", Miembro: mapper.ToAPIMiembro(*member)})
}

// UpdateMember changes the member's role.
func (h *Handler) UpdateMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	var body api.ActualizarMiembroRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	member, err := h.uc.UpdateMember(c.Context(), id, body.RolID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Message string      `json:"message"`
		Miembro api.Miembro `json:"miembro"`
	}{Message: "Miembro actualizado", Miembro: mapper.ToAPIMiembro(*member)})
}

// RemoveMember deletes a membership.
func (h *Handler) RemoveMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	if err := h.uc.RemoveMember(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Miembro eliminado del proyecto"})
}
