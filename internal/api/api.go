// Package api defines the JSON models of the HTTP surface.
package api

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of operations that return no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// Usuario is the transport model of an account. Timestamps are RFC 3339.
type Usuario struct {
	ID                 int64   `json:"id"`
	Nombre             string  `json:"nombre"`
	Apellido           string  `json:"apellido"`
	Correo             string  `json:"correo"`
	Activo             bool    `json:"activo"`
	FechaCreacion      string  `json:"fecha_creacion"`
	FechaActualizacion *string `json:"fecha_actualizacion,omitempty"`
}

// RegisterRequest carries the signup fields.
type RegisterRequest struct {
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// LoginRequest carries the credential pair.
type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// AuthResponse is issued on register and login.
type AuthResponse struct {
	Message      string  `json:"message"`
	Usuario      Usuario `json:"usuario"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
}

// RefreshResponse carries the re-issued access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// ActualizarUsuarioRequest is a partial profile update; absent fields stay untouched.
type ActualizarUsuarioRequest struct {
	Nombre     *string `json:"nombre"`
	Apellido   *string `json:"apellido"`
	Correo     *string `json:"correo"`
	Contrasena *string `json:"contrasena"`
}

// Proyecto is the transport model of a project. Dates are YYYY-MM-DD.
type Proyecto struct {
	ID                 int64   `json:"id"`
	Nombre             string  `json:"nombre"`
	Descripcion        *string `json:"descripcion,omitempty"`
	Estado             string  `json:"estado"`
	Prioridad          string  `json:"prioridad"`
	FechaInicio        *string `json:"fecha_inicio,omitempty"`
	FechaFin           *string `json:"fecha_fin,omitempty"`
	CreadoPor          int64   `json:"creado_por"`
	FechaCreacion      string  `json:"fecha_creacion"`
	FechaActualizacion *string `json:"fecha_actualizacion,omitempty"`
}

// CrearProyectoRequest carries the fields to open a project.
type CrearProyectoRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Estado      *string `json:"estado"`
	Prioridad   string  `json:"prioridad"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
}

// ActualizarProyectoRequest is a partial project update.
type ActualizarProyectoRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Estado      *string `json:"estado"`
	Prioridad   *string `json:"prioridad"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
}

// Rol is the transport model of a role.
type Rol struct {
	ID            int64   `json:"id"`
	ProyectoID    *int64  `json:"proyecto_id,omitempty"`
	Nombre        string  `json:"nombre"`
	Descripcion   *string `json:"descripcion,omitempty"`
	EsFijo        bool    `json:"es_fijo"`
	FechaCreacion string  `json:"fecha_creacion"`
}

// CrearRolRequest carries the fields to define a custom project role.
type CrearRolRequest struct {
	ProyectoID  int64   `json:"proyecto_id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// ActualizarRolRequest is a partial role update.
type ActualizarRolRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// MiembroUsuario is the joined user block on a membership.
type MiembroUsuario struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
}

// MiembroRol is the joined role block on a membership.
type MiembroRol struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// Miembro is the transport model of a project membership.
type Miembro struct {
	ID              int64          `json:"id"`
	ProyectoID      int64          `json:"proyecto_id"`
	UsuarioID       int64          `json:"usuario_id"`
	RolID           int64          `json:"rol_id"`
	AsignadoPor     int64          `json:"asignado_por"`
	FechaAsignacion string         `json:"fecha_asignacion"`
	Usuario         MiembroUsuario `json:"usuario"`
	Rol             MiembroRol     `json:"rol"`
}

// AsignarMiembroRequest carries the fields to add a member to a project.
type AsignarMiembroRequest struct {
	ProyectoID int64 `json:"proyecto_id"`
	UsuarioID  int64 `json:"usuario_id"`
	RolID      int64 `json:"rol_id"`
}

// ActualizarMiembroRequest changes the member's role.
type ActualizarMiembroRequest struct {
	RolID *int64 `json:"rol_id"`
}

// Responsable is the joined user block on a work item.
type Responsable struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// Proceso is the transport model of a process.
type Proceso struct {
	ID                 int64        `json:"id"`
	ProyectoID         int64        `json:"proyecto_id"`
	Nombre             string       `json:"nombre"`
	Descripcion        *string      `json:"descripcion,omitempty"`
	Objetivo           *string      `json:"objetivo,omitempty"`
	ResponsableID      *int64       `json:"responsable_id,omitempty"`
	Estado             string       `json:"estado"`
	FechaCreacion      string       `json:"fecha_creacion"`
	FechaActualizacion *string      `json:"fecha_actualizacion,omitempty"`
	Responsable        *Responsable `json:"responsable,omitempty"`
}

// CrearProcesoRequest carries the fields to open a process.
type CrearProcesoRequest struct {
	ProyectoID    int64   `json:"proyecto_id"`
	Nombre        string  `json:"nombre"`
	Descripcion   *string `json:"descripcion"`
	Objetivo      *string `json:"objetivo"`
	ResponsableID *int64  `json:"responsable_id"`
	Estado        *string `json:"estado"`
}

// ActualizarProcesoRequest is a partial process update.
type ActualizarProcesoRequest struct {
	Nombre        *string `json:"nombre"`
	Descripcion   *string `json:"descripcion"`
	Objetivo      *string `json:"objetivo"`
	ResponsableID *int64  `json:"responsable_id"`
	Estado        *string `json:"estado"`
}

// Subproceso is the transport model of a subprocess.
type Subproceso struct {
	ID                 int64        `json:"id"`
	ProcesoID          int64        `json:"proceso_id"`
	Nombre             string       `json:"nombre"`
	Descripcion        *string      `json:"descripcion,omitempty"`
	ResponsableID      *int64       `json:"responsable_id,omitempty"`
	Estado             string       `json:"estado"`
	HorasEstimadas     *float64     `json:"horas_estimadas,omitempty"`
	FechaCreacion      string       `json:"fecha_creacion"`
	FechaActualizacion *string      `json:"fecha_actualizacion,omitempty"`
	Responsable        *Responsable `json:"responsable,omitempty"`
}

// CrearSubprocesoRequest carries the fields to open a subprocess.
type CrearSubprocesoRequest struct {
	ProcesoID      int64    `json:"proceso_id"`
	Nombre         string   `json:"nombre"`
	Descripcion    *string  `json:"descripcion"`
	ResponsableID  *int64   `json:"responsable_id"`
	Estado         *string  `json:"estado"`
	HorasEstimadas *float64 `json:"horas_estimadas"`
}

// ActualizarSubprocesoRequest is a partial subprocess update.
type ActualizarSubprocesoRequest struct {
	Nombre         *string  `json:"nombre"`
	Descripcion    *string  `json:"descripcion"`
	ResponsableID  *int64   `json:"responsable_id"`
	Estado         *string  `json:"estado"`
	HorasEstimadas *float64 `json:"horas_estimadas"`
}

// Tecnica is the transport model of a catalog technique.
type Tecnica struct {
	ID            int64   `json:"id"`
	Nombre        string  `json:"nombre"`
	Descripcion   *string `json:"descripcion,omitempty"`
	Categoria     string  `json:"categoria"`
	Activo        bool    `json:"activo"`
	FechaCreacion string  `json:"fecha_creacion"`
}

// CrearTecnicaRequest carries the fields to register a technique.
type CrearTecnicaRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Categoria   string  `json:"categoria"`
}

// ActualizarTecnicaRequest is a partial technique update.
type ActualizarTecnicaRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Categoria   *string `json:"categoria"`
	Activo      *bool   `json:"activo"`
}

// TecnicaAsignada is the joined technique block on an assignment.
type TecnicaAsignada struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
}

// Asignacion is the transport model of a subprocess-technique link.
type Asignacion struct {
	ID              int64           `json:"id"`
	SubprocesoID    int64           `json:"subproceso_id"`
	TecnicaID       int64           `json:"tecnica_id"`
	Notas           *string         `json:"notas,omitempty"`
	FechaAsignacion string          `json:"fecha_asignacion"`
	Tecnica         TecnicaAsignada `json:"tecnica"`
}

// CrearAsignacionRequest links a technique to a subprocess.
type CrearAsignacionRequest struct {
	SubprocesoID int64   `json:"subproceso_id"`
	TecnicaID    int64   `json:"tecnica_id"`
	Notas        *string `json:"notas"`
}

// ActualizarAsignacionRequest replaces the notes on a link.
type ActualizarAsignacionRequest struct {
	Notas *string `json:"notas"`
}

// Stakeholder is the transport model of a project stakeholder.
type Stakeholder struct {
	ID                     int64   `json:"id"`
	ProyectoID             int64   `json:"proyecto_id"`
	NombreCompleto         string  `json:"nombre_completo"`
	Correo                 *string `json:"correo,omitempty"`
	Telefono               *string `json:"telefono,omitempty"`
	Organizacion           *string `json:"organizacion,omitempty"`
	Cargo                  *string `json:"cargo,omitempty"`
	Tipo                   string  `json:"tipo"`
	NivelInfluenciaInteres string  `json:"nivel_influencia_interes"`
	Notas                  *string `json:"notas,omitempty"`
	FechaCreacion          string  `json:"fecha_creacion"`
}

// CrearStakeholderRequest carries the fields to register a stakeholder.
type CrearStakeholderRequest struct {
	ProyectoID             int64   `json:"proyecto_id"`
	NombreCompleto         string  `json:"nombre_completo"`
	Correo                 *string `json:"correo"`
	Telefono               *string `json:"telefono"`
	Organizacion           *string `json:"organizacion"`
	Cargo                  *string `json:"cargo"`
	Tipo                   string  `json:"tipo"`
	NivelInfluenciaInteres string  `json:"nivel_influencia_interes"`
	Notas                  *string `json:"notas"`
}

// ActualizarStakeholderRequest is a partial stakeholder update.
type ActualizarStakeholderRequest struct {
	NombreCompleto         *string `json:"nombre_completo"`
	Correo                 *string `json:"correo"`
	Telefono               *string `json:"telefono"`
	Organizacion           *string `json:"organizacion"`
	Cargo                  *string `json:"cargo"`
	Tipo                   *string `json:"tipo"`
	NivelInfluenciaInteres *string `json:"nivel_influencia_interes"`
	Notas                  *string `json:"notas"`
}
