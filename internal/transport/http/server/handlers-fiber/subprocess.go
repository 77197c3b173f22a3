package handlers_fiber

import (
	"net/http"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListSubprocesses returns a process's subprocesses.
func (h *Handler) ListSubprocesses(c *fiber.Ctx) error {
	processID, err := paramID(c, "proceso_id")
	if err != nil {
		return notFound(c, err.Error())
	}

	subprocesses, err := h.uc.Subprocesses(c.Context(), processID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISubprocesoList(subprocesses))
}

// GetSubprocess returns one subprocess by id.
func (h *Handler) GetSubprocess(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	subprocess, err := h.uc.Subprocess(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISubproceso(*subprocess))
}

// CreateSubprocess opens a subprocess under a process.
func (h *Handler) CreateSubprocess(c *fiber.Ctx) error {
	var body api.CrearSubprocesoRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	subprocess := entities.Subprocess{
		ProcessID:      body.ProcesoID,
		Name:           body.Nombre,
		Description:    body.Descripcion,
		ResponsibleID:  body.ResponsableID,
		EstimatedHours: body.HorasEstimadas,
	}
	if body.Estado != nil {
		subprocess.Status = *body.Estado
	}

	created, err := h.uc.CreateSubprocess(c.Context(), subprocess)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Message    string         `json:"message"`
		Subproceso api.Subproceso `json:"subproceso"`
	}{Message: "Subproceso creado", Subproceso: mapper.ToAPISubproceso(*created)})
}

// UpdateSubprocess applies a partial subprocess update.
func (h *Handler) UpdateSubprocess(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	var body api.ActualizarSubprocesoRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	updated, err := h.uc.UpdateSubprocess(c.Context(), id, entities.SubprocessUpdate{
		Name:           body.Nombre,
		Description:    body.Descripcion,
		ResponsibleID:  body.ResponsableID,
		Status:         body.Estado,
		EstimatedHours: body.HorasEstimadas,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Message    string         `json:"message"`
		Subproceso api.Subproceso `json:"subproceso"`
	}{Message: "Subproceso actualizado", Subproceso: mapper.ToAPISubproceso(*updated)})
}

// DeleteSubprocess removes a subprocess.
func (h *Handler) DeleteSubprocess(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	if err := h.uc.DeleteSubprocess(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Subproceso eliminado"})
}
