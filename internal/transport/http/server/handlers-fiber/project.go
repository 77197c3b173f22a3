package handlers_fiber

import (
	"net/http"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"
	"gestproy/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListProjects returns the projects the caller created or belongs to.
func (h *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.uc.Projects(c.Context(), middleware.CallerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProyectoList(projects))
}

// GetProject returns one project by id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	project, err := h.uc.Project(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProyecto(*project))
}

// CreateProject opens a project; the caller becomes its Product Owner.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var body api.CrearProyectoRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	startDate, err := parseDatePtr(body.FechaInicio)
	if err != nil {
		return badRequest(c, err.Error())
	}
	endDate, err := parseDatePtr(body.FechaFin)
	if err != nil {
		return badRequest(c, err.Error())
	}

	project := entities.Project{
		Name:        body.Nombre,
		Description: body.Descripcion,
		Priority:    body.Prioridad,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if body.Estado != nil {
		project.Status = *body.Estado
	}

	created, err := h.uc.CreateProject(c.Context(), middleware.CallerID(c), project)
	if err != nil {
		h.log.Infow("create project rejected", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Message  string       `json:"message"`
		Proyecto api.Proyecto `json:"proyecto"`
	}{Message: "Proyecto creado", Proyecto: mapper.ToAPIProyecto(*created)})
}

// UpdateProject applies a partial project update.
func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	var body api.ActualizarProyectoRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	startDate, clearStart, err := parseDatePatch(body.FechaInicio)
	if err != nil {
		return badRequest(c, err.Error())
	}
	endDate, clearEnd, err := parseDatePatch(body.FechaFin)
	if err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.uc.UpdateProject(c.Context(), id, entities.ProjectUpdate{
		Name:           body.Nombre,
		Description:    body.Descripcion,
		Status:         body.Estado,
		Priority:       body.Prioridad,
		StartDate:      startDate,
		EndDate:        endDate,
		ClearStartDate: clearStart,
		ClearEndDate:   clearEnd,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Message  string       `json:"message"`
		Proyecto api.Proyecto `json:"proyecto"`
	}{Message: "Proyecto actualizado", Proyecto: mapper.ToAPIProyecto(*updated)})
}

// DeleteProject removes a project; only its creator may call it.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	if err := h.uc.DeleteProject(c.Context(), middleware.CallerID(c), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Proyecto eliminado"})
}
