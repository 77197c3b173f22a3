// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"gestproy/internal/api"
	"gestproy/internal/entities"
)

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ToAPIUsuario maps entities.User to its transport model.
func ToAPIUsuario(u entities.User) api.Usuario {
	return api.Usuario{
		ID:                 u.ID,
		Nombre:             u.FirstName,
		Apellido:           u.LastName,
		Correo:             u.Email,
		Activo:             u.Active,
		FechaCreacion:      formatTime(u.CreatedAt),
		FechaActualizacion: formatTimePtr(u.UpdatedAt),
	}
}

// ToAPIUsuarioList maps a slice of users to transport models.
func ToAPIUsuarioList(list []entities.User) []api.Usuario {
	res := make([]api.Usuario, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUsuario(u))
	}
	return res
}

// ToAPIProyecto maps entities.Project to its transport model.
func ToAPIProyecto(p entities.Project) api.Proyecto {
	return api.Proyecto{
		ID:                 p.ID,
		Nombre:             p.Name,
		Descripcion:        p.Description,
		Estado:             p.Status,
		Prioridad:          p.Priority,
		FechaInicio:        formatDatePtr(p.StartDate),
		FechaFin:           formatDatePtr(p.EndDate),
		CreadoPor:          p.CreatedBy,
		FechaCreacion:      formatTime(p.CreatedAt),
		FechaActualizacion: formatTimePtr(p.UpdatedAt),
	}
}

// ToAPIProyectoList maps a slice of projects to transport models.
func ToAPIProyectoList(list []entities.Project) []api.Proyecto {
	res := make([]api.Proyecto, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIProyecto(p))
	}
	return res
}

// ToAPIRol maps entities.Role to its transport model.
func ToAPIRol(r entities.Role) api.Rol {
	return api.Rol{
		ID:            r.ID,
		ProyectoID:    r.ProjectID,
		Nombre:        r.Name,
		Descripcion:   r.Description,
		EsFijo:        r.Fixed,
		FechaCreacion: formatTime(r.CreatedAt),
	}
}

// ToAPIRolList maps a slice of roles to transport models.
func ToAPIRolList(list []entities.Role) []api.Rol {
	res := make([]api.Rol, 0, len(list))
	for _, r := range list {
		res = append(res, ToAPIRol(r))
	}
	return res
}

// ToAPIMiembro maps entities.Member to its transport model.
func ToAPIMiembro(m entities.Member) api.Miembro {
	return api.Miembro{
		ID:              m.ID,
		ProyectoID:      m.ProjectID,
		UsuarioID:       m.UserID,
		RolID:           m.RoleID,
		AsignadoPor:     m.AssignedBy,
		FechaAsignacion: formatTime(m.AssignedAt),
		Usuario: api.MiembroUsuario{
			ID:       m.User.ID,
			Nombre:   m.User.FirstName,
			Apellido: m.User.LastName,
			Correo:   m.User.Email,
		},
		Rol: api.MiembroRol{
			ID:     m.Role.ID,
			Nombre: m.Role.Name,
		},
	}
}

// ToAPIMiembroList maps a slice of memberships to transport models.
func ToAPIMiembroList(list []entities.Member) []api.Miembro {
	res := make([]api.Miembro, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPIMiembro(m))
	}
	return res
}

func toAPIResponsable(r *entities.Responsible) *api.Responsable {
	if r == nil {
		return nil
	}
	return &api.Responsable{
		ID:       r.ID,
		Nombre:   r.FirstName,
		Apellido: r.LastName,
	}
}

// ToAPIProceso maps entities.Process to its transport model.
func ToAPIProceso(p entities.Process) api.Proceso {
	return api.Proceso{
		ID:                 p.ID,
		ProyectoID:         p.ProjectID,
		Nombre:             p.Name,
		Descripcion:        p.Description,
		Objetivo:           p.Objective,
		ResponsableID:      p.ResponsibleID,
		Estado:             p.Status,
		FechaCreacion:      formatTime(p.CreatedAt),
		FechaActualizacion: formatTimePtr(p.UpdatedAt),
		Responsable:        toAPIResponsable(p.Responsible),
	}
}

// ToAPIProcesoList maps a slice of processes to transport models.
func ToAPIProcesoList(list []entities.Process) []api.Proceso {
	res := make([]api.Proceso, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIProceso(p))
	}
	return res
}

// ToAPISubproceso maps entities.Subprocess to its transport model.
func ToAPISubproceso(s entities.Subprocess) api.Subproceso {
	return api.Subproceso{
		ID:                 s.ID,
		ProcesoID:          s.ProcessID,
		Nombre:             s.Name,
		Descripcion:        s.Description,
		ResponsableID:      s.ResponsibleID,
		Estado:             s.Status,
		HorasEstimadas:     s.EstimatedHours,
		FechaCreacion:      formatTime(s.CreatedAt),
		FechaActualizacion: formatTimePtr(s.UpdatedAt),
		Responsable:        toAPIResponsable(s.Responsible),
	}
}

// ToAPISubprocesoList maps a slice of subprocesses to transport models.
func ToAPISubprocesoList(list []entities.Subprocess) []api.Subproceso {
	res := make([]api.Subproceso, 0, len(list))
	for _, s := range list {
		res = append(res, ToAPISubproceso(s))
	}
	return res
}

// ToAPITecnica maps entities.Technique to its transport model.
func ToAPITecnica(t entities.Technique) api.Tecnica {
	return api.Tecnica{
		ID:            t.ID,
		Nombre:        t.Name,
		Descripcion:   t.Description,
		Categoria:     t.Category,
		Activo:        t.Active,
		FechaCreacion: formatTime(t.CreatedAt),
	}
}

// ToAPITecnicaList maps a slice of techniques to transport models.
func ToAPITecnicaList(list []entities.Technique) []api.Tecnica {
	res := make([]api.Tecnica, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITecnica(t))
	}
	return res
}

// ToAPIAsignacion maps entities.TechniqueAssignment to its transport model.
func ToAPIAsignacion(a entities.TechniqueAssignment) api.Asignacion {
	return api.Asignacion{
		ID:              a.ID,
		SubprocesoID:    a.SubprocessID,
		TecnicaID:       a.TechniqueID,
		Notas:           a.Notes,
		FechaAsignacion: formatTime(a.AssignedAt),
		Tecnica: api.TecnicaAsignada{
			ID:        a.Technique.ID,
			Nombre:    a.Technique.Name,
			Categoria: a.Technique.Category,
		},
	}
}

// ToAPIAsignacionList maps a slice of assignments to transport models.
func ToAPIAsignacionList(list []entities.TechniqueAssignment) []api.Asignacion {
	res := make([]api.Asignacion, 0, len(list))
	for _, a := range list {
		res = append(res, ToAPIAsignacion(a))
	}
	return res
}

// ToAPIStakeholder maps entities.Stakeholder to its transport model.
func ToAPIStakeholder(s entities.Stakeholder) api.Stakeholder {
	return api.Stakeholder{
		ID:                     s.ID,
		ProyectoID:             s.ProjectID,
		NombreCompleto:         s.FullName,
		Correo:                 s.Email,
		Telefono:               s.Phone,
		Organizacion:           s.Organization,
		Cargo:                  s.Position,
		Tipo:                   s.Type,
		NivelInfluenciaInteres: s.InfluenceInterest,
		Notas:                  s.Notes,
		FechaCreacion:          formatTime(s.CreatedAt),
	}
}

// ToAPIStakeholderList maps a slice of stakeholders to transport models.
func ToAPIStakeholderList(list []entities.Stakeholder) []api.Stakeholder {
	res := make([]api.Stakeholder, 0, len(list))
	for _, s := range list {
		res = append(res, ToAPIStakeholder(s))
	}
	return res
}
