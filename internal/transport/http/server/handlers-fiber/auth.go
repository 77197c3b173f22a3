package handlers_fiber

import (
	"net/http"
	"strings"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"
	"gestproy/internal/token"
	"gestproy/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterUser creates an account and issues the token pair.
func (h *Handler) RegisterUser(c *fiber.Ctx) error {
	var body api.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}

	user, err := h.uc.Register(c.Context(), entities.RegisterInput{
		FirstName: body.Nombre,
		LastName:  body.Apellido,
		Email:     body.Correo,
		Password:  body.Contrasena,
	})
	if err != nil {
		h.log.Infow("register rejected", "error", err)
		return writeError(c, err)
	}

	return h.authResponse(c, http.StatusCreated, "Usuario registrado exitosamente", *user)
}

// Login checks credentials and issues the token pair.
func (h *Handler) Login(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "cuerpo de la peticion invalido")
	}
	if body.Correo == "" || body.Contrasena == "" {
		return badRequest(c, "correo y contrasena son requeridos")
	}

	user, err := h.uc.Login(c.Context(), body.Correo, body.Contrasena)
	if err != nil {
		return writeError(c, err)
	}

	return h.authResponse(c, http.StatusOK, "Login exitoso", *user)
}

// Refresh exchanges a valid refresh token for a new access token.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return writeError(c, entities.ErrUnauthorized)
	}

	userID, tokenType, err := h.tokens.Parse(raw)
	if err != nil || tokenType != token.TypeRefresh {
		return writeError(c, entities.ErrUnauthorized)
	}

	access, err := h.tokens.NewAccessToken(userID)
	if err != nil {
		h.log.Errorw("issue access token", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.RefreshResponse{AccessToken: access})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *fiber.Ctx) error {
	user, err := h.uc.CurrentUser(c.Context(), middleware.CallerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUsuario(*user))
}

func (h *Handler) authResponse(c *fiber.Ctx, status int, msg string, user entities.User) error {
	access, err := h.tokens.NewAccessToken(user.ID)
	if err != nil {
		h.log.Errorw("issue access token", "error", err)
		return writeError(c, err)
	}
	refresh, err := h.tokens.NewRefreshToken(user.ID)
	if err != nil {
		h.log.Errorw("issue refresh token", "error", err)
		return writeError(c, err)
	}

	return c.Status(status).JSON(api.AuthResponse{
		Message:      msg,
		Usuario:      mapper.ToAPIUsuario(user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}
