package handlers_fiber

import (
	"net/http"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListProcesses returns a project's processes.
func (h *Handler) ListProcesses(c *fiber.Ctx) error {
	projectID, err := paramID(c, "proyecto_id")
	if err != nil {
		return notFound(c, err.Error())
	}

	processes, err := h.uc.Processes(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProcesoList(processes))
}

// GetProcess returns one process by id.
func (h *Handler) GetProcess(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	process, err := h.uc.Process(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProceso(*process))
}

// CreateProcess opens a process under a project.
func (h *Handler) CreateProcess(c *fiber.Ctx) error {
	var body api.CrearProcesoRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	process := entities.Process{
		ProjectID:     body.ProyectoID,
		Name:          body.Nombre,
		Description:   body.Descripcion,
		Objective:     body.Objetivo,
		ResponsibleID: body.ResponsableID,
	}
	if body.Estado != nil {
		process.Status = *body.Estado
	}

	created, err := h.uc.CreateProcess(c.Context(), process)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Message string      `json:"message"`
		Proceso api.Proceso `json:"proceso"`
	}{Message: "Proceso creado", Proceso: mapper.ToAPIProceso(*created)})
}

// UpdateProcess applies a partial process update.
func (h *Handler) UpdateProcess(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	var body api.ActualizarProcesoRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	updated, err := h.uc.UpdateProcess(c.Context(), id, entities.ProcessUpdate{
		Name:          body.Nombre,
		Description:   body.Descripcion,
		Objective:     body.Objetivo,
		ResponsibleID: body.ResponsableID,
		Status:        body.Estado,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Message string      `json:"message"`
		Proceso api.Proceso `json:"proceso"`
	}{Message: "Proceso actualizado", Proceso: mapper.ToAPIProceso(*updated)})
}

// DeleteProcess removes a process and its subprocesses.
func (h *Handler) DeleteProcess(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	if err := h.uc.DeleteProcess(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Proceso eliminado"})
}
