package handlers_fiber

import (
	"net/http"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"
	"gestproy/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns all active accounts.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUsuarioList(users))
}

// GetUser returns one account by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	user, err := h.uc.User(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUsuario(*user))
}

// UpdateUser applies a partial profile update; only the owner may call it.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	var body api.ActualizarUsuarioRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	user, err := h.uc.UpdateUser(c.Context(), middleware.CallerID(c), id, entities.UserProfileUpdate{
		FirstName: body.Nombre,
		LastName:  body.Apellido,
		Email:     body.Correo,
		Password:  body.Contrasena,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Message string      `json:"message"`
		Usuario api.Usuario `json:"usuario"`
	}{Message: "Usuario actualizado", Usuario: mapper.ToAPIUsuario(*user)})
}

// DeactivateUser soft-deletes the account; only the owner may call it.
func (h *Handler) DeactivateUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return notFound(c, err.Error())
	}

	if err := h.uc.DeactivateUser(c.Context(), middleware.CallerID(c), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Usuario desactivado"})
}
