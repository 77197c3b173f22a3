// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"gestproy/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes account operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	ListActiveUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserUpdate) (*entities.User, error)
	DeactivateUser(ctx context.Context, id int64) error
}

// ProjectInterface exposes project lifecycle operations.
type ProjectInterface interface {
	// CreateProject inserts the project and, when the fixed Product Owner
	// role exists, the creator membership within one transaction.
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	ListProjects(ctx context.Context, userID int64) ([]entities.Project, error)
	GetProject(ctx context.Context, id int64) (*entities.Project, error)
	UpdateProject(ctx context.Context, id int64, patch entities.ProjectUpdate) (*entities.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// RoleInterface exposes role catalog operations.
type RoleInterface interface {
	ListRoles(ctx context.Context, projectID *int64) ([]entities.Role, error)
	GetRole(ctx context.Context, id int64) (*entities.Role, error)
	CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error)
	UpdateRole(ctx context.Context, id int64, patch entities.RoleUpdate) (*entities.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

// MemberInterface exposes project membership operations.
type MemberInterface interface {
	ListMembers(ctx context.Context, projectID int64) ([]entities.Member, error)
	GetMember(ctx context.Context, id int64) (*entities.Member, error)
	// AssignMember runs the duplicate-member and singleton-role checks and
	// the insert inside one transaction.
	AssignMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	// UpdateMemberRole re-runs the singleton-role check excluding the
	// membership itself before applying the role change.
	UpdateMemberRole(ctx context.Context, id, roleID int64) (*entities.Member, error)
	RemoveMember(ctx context.Context, id int64) error
}

// ProcessInterface exposes process CRUD.
type ProcessInterface interface {
	ListProcesses(ctx context.Context, projectID int64) ([]entities.Process, error)
	GetProcess(ctx context.Context, id int64) (*entities.Process, error)
	CreateProcess(ctx context.Context, process entities.Process) (*entities.Process, error)
	UpdateProcess(ctx context.Context, id int64, patch entities.ProcessUpdate) (*entities.Process, error)
	DeleteProcess(ctx context.Context, id int64) error
}

// SubprocessInterface exposes subprocess CRUD.
type SubprocessInterface interface {
	ListSubprocesses(ctx context.Context, processID int64) ([]entities.Subprocess, error)
	GetSubprocess(ctx context.Context, id int64) (*entities.Subprocess, error)
	CreateSubprocess(ctx context.Context, subprocess entities.Subprocess) (*entities.Subprocess, error)
	UpdateSubprocess(ctx context.Context, id int64, patch entities.SubprocessUpdate) (*entities.Subprocess, error)
	DeleteSubprocess(ctx context.Context, id int64) error
}

// TechniqueInterface exposes technique catalog operations.
type TechniqueInterface interface {
	ListTechniques(ctx context.Context, category *string, includeInactive bool) ([]entities.Technique, error)
	GetTechnique(ctx context.Context, id int64) (*entities.Technique, error)
	CreateTechnique(ctx context.Context, technique entities.Technique) (*entities.Technique, error)
	UpdateTechnique(ctx context.Context, id int64, patch entities.TechniqueUpdate) (*entities.Technique, error)
	DeactivateTechnique(ctx context.Context, id int64) error
}

// AssignmentInterface exposes subprocess-technique link operations.
type AssignmentInterface interface {
	ListAssignments(ctx context.Context, subprocessID int64) ([]entities.TechniqueAssignment, error)
	CreateAssignment(ctx context.Context, assignment entities.TechniqueAssignment) (*entities.TechniqueAssignment, error)
	UpdateAssignmentNotes(ctx context.Context, id int64, notes *string) (*entities.TechniqueAssignment, error)
	DeleteAssignment(ctx context.Context, id int64) error
}

// StakeholderInterface exposes stakeholder CRUD.
type StakeholderInterface interface {
	ListStakeholders(ctx context.Context, projectID int64) ([]entities.Stakeholder, error)
	GetStakeholder(ctx context.Context, id int64) (*entities.Stakeholder, error)
	CreateStakeholder(ctx context.Context, stakeholder entities.Stakeholder) (*entities.Stakeholder, error)
	UpdateStakeholder(ctx context.Context, id int64, patch entities.StakeholderUpdate) (*entities.Stakeholder, error)
	DeleteStakeholder(ctx context.Context, id int64) error
}
