// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"gestproy/internal/token"
	"gestproy/internal/transport/http/middleware"
	"gestproy/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the REST surface over the service layer interfaces.
type Handler struct {
	log    *zap.SugaredLogger
	uc     usecase.InterfaceUsecase
	tokens *token.Manager
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, tokens *token.Manager) *Handler {
	return &Handler{
		log:    log,
		uc:     usecase,
		tokens: tokens,
	}
}

// Register mounts all routes under /api. Auth endpoints are public; the rest
// require a Bearer access token.
func (h *Handler) Register(app *fiber.App) {
	root := app.Group("/api")

	auth := root.Group("/auth")
	auth.Post("/register", h.RegisterUser)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)

	protected := root.Group("", middleware.Auth(h.tokens))
	protected.Get("/auth/me", h.Me)

	protected.Get("/usuarios", h.ListUsers)
	protected.Get("/usuarios/:id", h.GetUser)
	protected.Put("/usuarios/:id", h.UpdateUser)
	protected.Delete("/usuarios/:id", h.DeactivateUser)

	protected.Get("/proyectos", h.ListProjects)
	protected.Get("/proyectos/:id", h.GetProject)
	protected.Post("/proyectos", h.CreateProject)
	protected.Put("/proyectos/:id", h.UpdateProject)
	protected.Delete("/proyectos/:id", h.DeleteProject)

	protected.Get("/roles", h.ListRoles)
	protected.Get("/roles/:id", h.GetRole)
	protected.Post("/roles", h.CreateRole)
	protected.Put("/roles/:id", h.UpdateRole)
	protected.Delete("/roles/:id", h.DeleteRole)

	protected.Get("/miembros/proyecto/:proyecto_id", h.ListMembers)
	protected.Post("/miembros", h.AssignMember)
	protected.Put("/miembros/:id", h.UpdateMember)
	protected.Delete("/miembros/:id", h.RemoveMember)

	protected.Get("/procesos/proyecto/:proyecto_id", h.ListProcesses)
	protected.Get("/procesos/:id", h.GetProcess)
	protected.Post("/procesos", h.CreateProcess)
	protected.Put("/procesos/:id", h.UpdateProcess)
	protected.Delete("/procesos/:id", h.DeleteProcess)

	protected.Get("/subprocesos/proceso/:proceso_id", h.ListSubprocesses)
	protected.Get("/subprocesos/:id", h.GetSubprocess)
	protected.Post("/subprocesos", h.CreateSubprocess)
	protected.Put("/subprocesos/:id", h.UpdateSubprocess)
	protected.Delete("/subprocesos/:id", h.DeleteSubprocess)

	protected.Get("/tecnicas/todas", h.ListAllTechniques)
	protected.Get("/tecnicas", h.ListTechniques)
	protected.Get("/tecnicas/:id", h.GetTechnique)
	protected.Post("/tecnicas", h.CreateTechnique)
	protected.Put("/tecnicas/:id", h.UpdateTechnique)
	protected.Delete("/tecnicas/:id", h.DeactivateTechnique)

	protected.Get("/stakeholders/proyecto/:proyecto_id", h.ListStakeholders)
	protected.Get("/stakeholders/:id", h.GetStakeholder)
	protected.Post("/stakeholders", h.CreateStakeholder)
	protected.Put("/stakeholders/:id", h.UpdateStakeholder)
	protected.Delete("/stakeholders/:id", h.DeleteStakeholder)

	protected.Get("/subproceso-tecnicas/subproceso/:subproceso_id", h.ListAssignments)
	protected.Post("/subproceso-tecnicas", h.CreateAssignment)
	protected.Put("/subproceso-tecnicas/:id", h.UpdateAssignment)
	protected.Delete("/subproceso-tecnicas/:id", h.DeleteAssignment)
}
