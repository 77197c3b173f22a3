// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("argumento invalido")
	// ErrInvalidCredentials signals a failed credential check.
	ErrInvalidCredentials = errors.New("credenciales invalidas")
	// ErrUserDisabled signals a login attempt against a deactivated account.
	ErrUserDisabled = errors.New("usuario desactivado")
	// ErrUnauthorized signals a missing, invalid or expired token.
	ErrUnauthorized = errors.New("token invalido o ausente")
	// ErrForbidden signals the caller lacks rights on the target resource.
	ErrForbidden = errors.New("no tienes permiso para realizar esta accion")

	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("usuario no encontrado")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("proyecto no encontrado")
	// ErrRoleNotFound signals missing role.
	ErrRoleNotFound = errors.New("rol no encontrado")
	// ErrMemberNotFound signals missing project membership.
	ErrMemberNotFound = errors.New("miembro no encontrado")
	// ErrProcessNotFound signals missing process.
	ErrProcessNotFound = errors.New("proceso no encontrado")
	// ErrSubprocessNotFound signals missing subprocess.
	ErrSubprocessNotFound = errors.New("subproceso no encontrado")
	// ErrTechniqueNotFound signals missing technique.
	ErrTechniqueNotFound = errors.New("tecnica no encontrada")
	// ErrStakeholderNotFound signals missing stakeholder.
	ErrStakeholderNotFound = errors.New("stakeholder no encontrado")
	// ErrAssignmentNotFound signals missing subprocess-technique assignment.
	ErrAssignmentNotFound = errors.New("asignacion no encontrada")

	// ErrEmailTaken signals email uniqueness conflict.
	ErrEmailTaken = errors.New("el correo ya esta registrado")
	// ErrMemberExists signals the user already belongs to the project.
	ErrMemberExists = errors.New("el usuario ya es miembro de este proyecto")
	// ErrSingletonRoleTaken signals the project already has a holder of a singleton fixed role.
	ErrSingletonRoleTaken = errors.New("ya existe un miembro con ese rol en este proyecto")
	// ErrFixedRole signals a mutation attempt on a fixed role.
	ErrFixedRole = errors.New("no se pueden modificar roles fijos")
	// ErrTechniqueAssigned signals the technique is already linked to the subprocess.
	ErrTechniqueAssigned = errors.New("la tecnica ya esta asignada a este subproceso")
)
