package handlers_fiber

import (
	"net/http"
	"strconv"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListRoles returns the fixed roles, plus a project's custom roles when
// proyecto_id is supplied.
func (h *Handler) ListRoles(c *fiber.Ctx) error {
	var projectID *int64
	if raw := c.Query("proyecto_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return badRequest(c, "proyecto_id invalido")
		}
		projectID = &id
	}

	roles, err := h.uc.Roles(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIRolList(roles))
}

// GetRole returns one role by id.
func (h *Handler) GetRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	role, err := h.uc.Role(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIRol(*role))
}

// CreateRole defines a custom role scoped to a project.
func (h *Handler) CreateRole(c *fiber.Ctx) error {
	var body api.CrearRolRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	role := entities.Role{
		Name:        body.Nombre,
		Description: body.Descripcion,
	}
	if body.ProyectoID != 0 {
		role.ProjectID = &body.ProyectoID
	}

	created, err := h.uc.CreateRole(c.Context(), role)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Message string  `json:"message"`
		Rol     api.Rol `json:"rol"`
	}{Message: "Rol creado", Rol: mapper.ToAPIRol(*created)})
}

// UpdateRole applies a partial update to a custom role.
func (h *Handler) UpdateRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	var body api.ActualizarRolRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	updated, err := h.uc.UpdateRole(c.Context(), id, entities.RoleUpdate{
		Name:        body.Nombre,
		Description: body.Descripcion,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Message string  `json:"message"`
		Rol     api.Rol `json:"rol"`
	}{Message: "Rol actualizado", Rol: mapper.ToAPIRol(*updated)})
}

// DeleteRole removes a custom role.
func (h *Handler) DeleteRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	if err := h.uc.DeleteRole(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Rol eliminado"})
}
