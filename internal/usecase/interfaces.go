package usecase

import (
	"context"

	"gestproy/internal/entities"
)

// AuthUsecaseInterface abstracts account registration and credential checks.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, input entities.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, email, password string) (*entities.User, error)
	CurrentUser(ctx context.Context, userID int64) (*entities.User, error)
}

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	Users(ctx context.Context) ([]entities.User, error)
	User(ctx context.Context, id int64) (*entities.User, error)
	UpdateUser(ctx context.Context, callerID, id int64, patch entities.UserProfileUpdate) (*entities.User, error)
	DeactivateUser(ctx context.Context, callerID, id int64) error
}

// ProjectUsecaseInterface abstracts project lifecycle operations.
type ProjectUsecaseInterface interface {
	Projects(ctx context.Context, userID int64) ([]entities.Project, error)
	Project(ctx context.Context, id int64) (*entities.Project, error)
	CreateProject(ctx context.Context, callerID int64, project entities.Project) (*entities.Project, error)
	UpdateProject(ctx context.Context, id int64, patch entities.ProjectUpdate) (*entities.Project, error)
	DeleteProject(ctx context.Context, callerID, id int64) error
}

// RoleUsecaseInterface abstracts role registry operations.
type RoleUsecaseInterface interface {
	Roles(ctx context.Context, projectID *int64) ([]entities.Role, error)
	Role(ctx context.Context, id int64) (*entities.Role, error)
	CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error)
	UpdateRole(ctx context.Context, id int64, patch entities.RoleUpdate) (*entities.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

// MemberUsecaseInterface abstracts project membership operations.
type MemberUsecaseInterface interface {
	Members(ctx context.Context, projectID int64) ([]entities.Member, error)
	Member(ctx context.Context, id int64) (*entities.Member, error)
	AssignMember(ctx context.Context, callerID, projectID, userID, roleID int64) (*entities.Member, error)
	UpdateMember(ctx context.Context, id int64, roleID *int64) (*entities.Member, error)
	RemoveMember(ctx context.Context, id int64) error
}

// ProcessUsecaseInterface abstracts process operations.
type ProcessUsecaseInterface interface {
	Processes(ctx context.Context, projectID int64) ([]entities.Process, error)
	Process(ctx context.Context, id int64) (*entities.Process, error)
	CreateProcess(ctx context.Context, process entities.Process) (*entities.Process, error)
	UpdateProcess(ctx context.Context, id int64, patch entities.ProcessUpdate) (*entities.Process, error)
	DeleteProcess(ctx context.Context, id int64) error
}

// SubprocessUsecaseInterface abstracts subprocess operations.
type SubprocessUsecaseInterface interface {
	Subprocesses(ctx context.Context, processID int64) ([]entities.Subprocess, error)
	Subprocess(ctx context.Context, id int64) (*entities.Subprocess, error)
	CreateSubprocess(ctx context.Context, subprocess entities.Subprocess) (*entities.Subprocess, error)
	UpdateSubprocess(ctx context.Context, id int64, patch entities.SubprocessUpdate) (*entities.Subprocess, error)
	DeleteSubprocess(ctx context.Context, id int64) error
}

// TechniqueUsecaseInterface abstracts the technique catalog.
type TechniqueUsecaseInterface interface {
	Techniques(ctx context.Context, category *string, includeInactive bool) ([]entities.Technique, error)
	Technique(ctx context.Context, id int64) (*entities.Technique, error)
	CreateTechnique(ctx context.Context, technique entities.Technique) (*entities.Technique, error)
	UpdateTechnique(ctx context.Context, id int64, patch entities.TechniqueUpdate) (*entities.Technique, error)
	DeactivateTechnique(ctx context.Context, id int64) error
}

// AssignmentUsecaseInterface abstracts subprocess-technique links.
type AssignmentUsecaseInterface interface {
	Assignments(ctx context.Context, subprocessID int64) ([]entities.TechniqueAssignment, error)
	AssignTechnique(ctx context.Context, assignment entities.TechniqueAssignment) (*entities.TechniqueAssignment, error)
	UpdateAssignment(ctx context.Context, id int64, notes *string) (*entities.TechniqueAssignment, error)
	RemoveAssignment(ctx context.Context, id int64) error
}

// StakeholderUsecaseInterface abstracts stakeholder registry operations.
type StakeholderUsecaseInterface interface {
	Stakeholders(ctx context.Context, projectID int64) ([]entities.Stakeholder, error)
	Stakeholder(ctx context.Context, id int64) (*entities.Stakeholder, error)
	CreateStakeholder(ctx context.Context, stakeholder entities.Stakeholder) (*entities.Stakeholder, error)
	UpdateStakeholder(ctx context.Context, id int64, patch entities.StakeholderUpdate) (*entities.Stakeholder, error)
	DeleteStakeholder(ctx context.Context, id int64) error
}
