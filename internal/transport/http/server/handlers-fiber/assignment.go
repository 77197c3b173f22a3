package handlers_fiber

import (
	"net/http"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListAssignments returns a subprocess's technique links.
func (h *Handler) ListAssignments(c *fiber.Ctx) error {
	subprocessID, err := paramID(c, "subproceso_id")
	if err != nil {
		return notFound(c, err.Error())
	}

	assignments, err := h.uc.Assignments(c.Context(), subprocessID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIAsignacionList(assignments))
}

// CreateAssignment links a technique to a subprocess.
func (h *Handler) CreateAssignment(c *fiber.Ctx) error {
	var body api.CrearAsignacionRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	created, err := h.uc.AssignTechnique(c.Context(), entities.TechniqueAssignment{
		SubprocessID: body.SubprocesoID,
		TechniqueID:  body.TecnicaID,
		Notes:        body.Notas,
	})
	if err != nil {
		h.log.Infow("assign technique rejected", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Message    string         `json:"message"`
		Asignacion api.Asignacion `json:"asignacion"`
	}{Message: "Tecnica asignada", Asignacion: mapper.ToAPIAsignacion(*created)})
}

// UpdateAssignment replaces the notes on a link.
func (h *Handler) UpdateAssignment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	var body api.ActualizarAsignacionRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	updated, err := h.uc.UpdateAssignment(c.Context(), id, body.Notas)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Message    string         `json:"message"`
		Asignacion api.Asignacion `json:"asignacion"`
	}{Message: "Asignacion actualizada", Asignacion: mapper.ToAPIAsignacion(*updated)})
}

// DeleteAssignment removes a link.
func (h *Handler) DeleteAssignment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	if err := h.uc.RemoveAssignment(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Asignacion eliminada"})
}
