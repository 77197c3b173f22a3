package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestproy/internal/api"
	"gestproy/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorConflicts(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{
			name:   "duplicate_member",
			err:    entities.ErrMemberExists,
			status: http.StatusBadRequest,
			msg:    "el usuario ya es miembro de este proyecto",
		},
		{
			name:   "singleton_role_taken",
			err:    entities.ErrSingletonRoleTaken,
			status: http.StatusBadRequest,
			msg:    "ya existe un miembro con ese rol en este proyecto",
		},
		{
			name:   "singleton_role_taken_named",
			err:    fmt.Errorf("%w: %s", entities.ErrSingletonRoleTaken, entities.RoleProductOwner),
			status: http.StatusBadRequest,
			msg:    "ya existe un miembro con ese rol en este proyecto: Product Owner",
		},
		{
			name:   "technique_assigned",
			err:    entities.ErrTechniqueAssigned,
			status: http.StatusBadRequest,
			msg:    "la tecnica ya esta asignada a este subproceso",
		},
		{
			name:   "email_taken",
			err:    entities.ErrEmailTaken,
			status: http.StatusBadRequest,
			msg:    "el correo ya esta registrado",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.msg, body.Error)
		})
	}
}

func TestWriteErrorValidationKeepsDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("%w: el nombre es requerido", entities.ErrInvalidArgument))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "argumento invalido: el nombre es requerido", body.Error)
}

func TestWriteErrorForbidden(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrFixedRole)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "no se pueden modificar roles fijos", body.Error)
}

func TestWriteErrorNotFound(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrProjectNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "proyecto no encontrado", body.Error)
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("select project: connection refused"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "error interno", body.Error)
}

func TestParseDatePtr(t *testing.T) {
	valid := "2026-03-15"
	got, err := parseDatePtr(&valid)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 2026, got.Year())

	empty := ""
	got, err = parseDatePtr(&empty)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = parseDatePtr(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	bad := "15/03/2026"
	_, err = parseDatePtr(&bad)
	require.Error(t, err)
}

func TestParseDatePatch(t *testing.T) {
	got, clear, err := parseDatePatch(nil)
	require.NoError(t, err)
	require.Nil(t, got)
	require.False(t, clear)

	empty := ""
	got, clear, err = parseDatePatch(&empty)
	require.NoError(t, err)
	require.Nil(t, got)
	require.True(t, clear)

	valid := "2026-03-15"
	got, clear, err = parseDatePatch(&valid)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, clear)
	require.Equal(t, 2026, got.Year())

	bad := "ayer"
	_, _, err = parseDatePatch(&bad)
	require.Error(t, err)
}

func TestParamIDNonNumericIsNotFound(t *testing.T) {
	app := fiber.New()
	app.Get("/proyectos/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return notFound(c, err.Error())
		}
		return c.JSON(fiber.Map{"id": id})
	})

	for _, raw := range []string{"abc", "-1", "0", "1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/proyectos/"+raw, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "recurso no encontrado", body.Error)
	}
}
