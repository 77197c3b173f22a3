package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gestproy/internal/api"
	"gestproy/internal/entities"
	"gestproy/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "error interno"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument),
		errors.Is(err, entities.ErrEmailTaken),
		errors.Is(err, entities.ErrMemberExists),
		errors.Is(err, entities.ErrSingletonRoleTaken),
		errors.Is(err, entities.ErrTechniqueAssigned):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidCredentials),
		errors.Is(err, entities.ErrUserDisabled),
		errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		msg = err.Error()
	case errors.Is(err, entities.ErrForbidden),
		errors.Is(err, entities.ErrFixedRole):
		status = http.StatusForbidden
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrRoleNotFound),
		errors.Is(err, entities.ErrMemberNotFound),
		errors.Is(err, entities.ErrProcessNotFound),
		errors.Is(err, entities.ErrSubprocessNotFound),
		errors.Is(err, entities.ErrTechniqueNotFound),
		errors.Is(err, entities.ErrStakeholderNotFound),
		errors.Is(err, entities.ErrAssignmentNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	}

	return c.Status(status).JSON(api.ErrorResponse{Error: msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusNotFound).JSON(api.ErrorResponse{Error: msg})
}

// paramID parses a numeric path parameter. A non-numeric value means the
// path names no resource, so callers answer it with notFound.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("recurso no encontrado")
	}
	return id, nil
}

// parseDatePtr converts an optional YYYY-MM-DD string into a time pointer.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(mapper.DateLayout, *s)
	if err != nil {
		return nil, errors.New("la fecha debe tener formato YYYY-MM-DD")
	}
	return &t, nil
}

// parseDatePatch interprets a date field of a partial update: an absent
// field changes nothing, an empty string clears the stored value, anything
// else must be a YYYY-MM-DD date.
func parseDatePatch(s *string) (*time.Time, bool, error) {
	if s == nil {
		return nil, false, nil
	}
	if *s == "" {
		return nil, true, nil
	}
	t, err := parseDatePtr(s)
	return t, false, err
}
