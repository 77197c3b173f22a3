package domain

import (
	"context"
	"testing"
	"time"

	"gestproy/internal/entities"
	"gestproy/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) ListActiveUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) UpdateUser(ctx context.Context, id int64, patch entities.UserUpdate) (*entities.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) DeactivateUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) ListProjects(ctx context.Context, userID int64) ([]entities.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) UpdateProject(ctx context.Context, id int64, patch entities.ProjectUpdate) (*entities.Project, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) DeleteProject(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListRoles(ctx context.Context, projectID *int64) ([]entities.Role, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Role), args.Error(1)
}

func (m *repoMock) GetRole(ctx context.Context, id int64) (*entities.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *repoMock) CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *repoMock) UpdateRole(ctx context.Context, id int64, patch entities.RoleUpdate) (*entities.Role, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *repoMock) DeleteRole(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListMembers(ctx context.Context, projectID int64) ([]entities.Member, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Member), args.Error(1)
}

func (m *repoMock) GetMember(ctx context.Context, id int64) (*entities.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *repoMock) AssignMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *repoMock) UpdateMemberRole(ctx context.Context, id, roleID int64) (*entities.Member, error) {
	args := m.Called(ctx, id, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *repoMock) RemoveMember(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListProcesses(ctx context.Context, projectID int64) ([]entities.Process, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Process), args.Error(1)
}

func (m *repoMock) GetProcess(ctx context.Context, id int64) (*entities.Process, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Process), args.Error(1)
}

func (m *repoMock) CreateProcess(ctx context.Context, process entities.Process) (*entities.Process, error) {
	args := m.Called(ctx, process)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Process), args.Error(1)
}

func (m *repoMock) UpdateProcess(ctx context.Context, id int64, patch entities.ProcessUpdate) (*entities.Process, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Process), args.Error(1)
}

func (m *repoMock) DeleteProcess(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListSubprocesses(ctx context.Context, processID int64) ([]entities.Subprocess, error) {
	args := m.Called(ctx, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Subprocess), args.Error(1)
}

func (m *repoMock) GetSubprocess(ctx context.Context, id int64) (*entities.Subprocess, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Subprocess), args.Error(1)
}

func (m *repoMock) CreateSubprocess(ctx context.Context, subprocess entities.Subprocess) (*entities.Subprocess, error) {
	args := m.Called(ctx, subprocess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Subprocess), args.Error(1)
}

func (m *repoMock) UpdateSubprocess(ctx context.Context, id int64, patch entities.SubprocessUpdate) (*entities.Subprocess, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Subprocess), args.Error(1)
}

func (m *repoMock) DeleteSubprocess(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListTechniques(ctx context.Context, category *string, includeInactive bool) ([]entities.Technique, error) {
	args := m.Called(ctx, category, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Technique), args.Error(1)
}

func (m *repoMock) GetTechnique(ctx context.Context, id int64) (*entities.Technique, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Technique), args.Error(1)
}

func (m *repoMock) CreateTechnique(ctx context.Context, technique entities.Technique) (*entities.Technique, error) {
	args := m.Called(ctx, technique)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Technique), args.Error(1)
}

func (m *repoMock) UpdateTechnique(ctx context.Context, id int64, patch entities.TechniqueUpdate) (*entities.Technique, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Technique), args.Error(1)
}

func (m *repoMock) DeactivateTechnique(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListAssignments(ctx context.Context, subprocessID int64) ([]entities.TechniqueAssignment, error) {
	args := m.Called(ctx, subprocessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TechniqueAssignment), args.Error(1)
}

func (m *repoMock) CreateAssignment(ctx context.Context, assignment entities.TechniqueAssignment) (*entities.TechniqueAssignment, error) {
	args := m.Called(ctx, assignment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TechniqueAssignment), args.Error(1)
}

func (m *repoMock) UpdateAssignmentNotes(ctx context.Context, id int64, notes *string) (*entities.TechniqueAssignment, error) {
	args := m.Called(ctx, id, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TechniqueAssignment), args.Error(1)
}

func (m *repoMock) DeleteAssignment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ListStakeholders(ctx context.Context, projectID int64) ([]entities.Stakeholder, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Stakeholder), args.Error(1)
}

func (m *repoMock) GetStakeholder(ctx context.Context, id int64) (*entities.Stakeholder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Stakeholder), args.Error(1)
}

func (m *repoMock) CreateStakeholder(ctx context.Context, stakeholder entities.Stakeholder) (*entities.Stakeholder, error) {
	args := m.Called(ctx, stakeholder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Stakeholder), args.Error(1)
}

func (m *repoMock) UpdateStakeholder(ctx context.Context, id int64, patch entities.StakeholderUpdate) (*entities.Stakeholder, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Stakeholder), args.Error(1)
}

func (m *repoMock) DeleteStakeholder(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newTestUsecase(repo repository.Repository) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)
}

func TestUsecase_RegisterValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.Register(context.Background(), entities.RegisterInput{LastName: "Paz", Email: "a@b.c", Password: "x"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_RegisterHashesPassword(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	expected := &entities.User{ID: 1, FirstName: "Ana", LastName: "Paz", Email: "ana@test.dev", Active: true}
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Email == "ana@test.dev" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreta")) == nil
	})).Return(expected, nil)

	user, err := uc.Register(context.Background(), entities.RegisterInput{
		FirstName: "Ana", LastName: "Paz", Email: "ana@test.dev", Password: "secreta",
	})
	require.NoError(t, err)
	require.Equal(t, expected, user)
	repo.AssertExpectations(t)
}

func TestUsecase_LoginUnknownEmail(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("GetUserByEmail", mock.Anything, "nadie@test.dev").Return(nil, entities.ErrUserNotFound)

	_, err := uc.Login(context.Background(), "nadie@test.dev", "x")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestUsecase_LoginWrongPassword(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("correcta"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetUserByEmail", mock.Anything, "ana@test.dev").Return(&entities.User{
		ID: 1, Email: "ana@test.dev", PasswordHash: string(hash), Active: true,
	}, nil)

	_, err = uc.Login(context.Background(), "ana@test.dev", "incorrecta")
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestUsecase_LoginDisabledAccount(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreta"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetUserByEmail", mock.Anything, "ana@test.dev").Return(&entities.User{
		ID: 1, Email: "ana@test.dev", PasswordHash: string(hash), Active: false,
	}, nil)

	_, err = uc.Login(context.Background(), "ana@test.dev", "secreta")
	require.ErrorIs(t, err, entities.ErrUserDisabled)
}

func TestUsecase_UpdateUserForbidden(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	name := "Otro"
	_, err := uc.UpdateUser(context.Background(), 1, 2, entities.UserProfileUpdate{FirstName: &name})
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_DeactivateUserForbidden(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	err := uc.DeactivateUser(context.Background(), 1, 2)
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "DeactivateUser", mock.Anything, mock.Anything)
}

func TestUsecase_CreateProjectValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateProject(context.Background(), 1, entities.Project{Priority: "alta"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateProject(context.Background(), 1, entities.Project{Name: "Portal"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}

func TestUsecase_CreateProjectDefaults(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	expected := &entities.Project{ID: 3, Name: "Portal", Priority: "alta", Status: entities.DefaultProjectStatus, CreatedBy: 7}
	repo.On("CreateProject", mock.Anything, mock.MatchedBy(func(p entities.Project) bool {
		return p.CreatedBy == 7 && p.Status == entities.DefaultProjectStatus
	})).Return(expected, nil)

	project, err := uc.CreateProject(context.Background(), 7, entities.Project{Name: "Portal", Priority: "alta"})
	require.NoError(t, err)
	require.Equal(t, expected, project)
	repo.AssertExpectations(t)
}

func TestUsecase_DeleteProjectForbidden(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("GetProject", mock.Anything, int64(3)).Return(&entities.Project{ID: 3, CreatedBy: 1}, nil)

	err := uc.DeleteProject(context.Background(), 2, 3)
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "DeleteProject", mock.Anything, mock.Anything)
}

func TestUsecase_DeleteProjectByCreator(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("GetProject", mock.Anything, int64(3)).Return(&entities.Project{ID: 3, CreatedBy: 2}, nil)
	repo.On("DeleteProject", mock.Anything, int64(3)).Return(nil)

	require.NoError(t, uc.DeleteProject(context.Background(), 2, 3))
	repo.AssertExpectations(t)
}

func TestUsecase_CreateRoleValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateRole(context.Background(), entities.Role{Name: "QA"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateRole", mock.Anything, mock.Anything)
}

func TestUsecase_CreateRoleNeverFixed(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	projectID := int64(4)
	expected := &entities.Role{ID: 9, ProjectID: &projectID, Name: "QA"}
	repo.On("CreateRole", mock.Anything, mock.MatchedBy(func(r entities.Role) bool {
		return !r.Fixed
	})).Return(expected, nil)

	role, err := uc.CreateRole(context.Background(), entities.Role{Name: "QA", ProjectID: &projectID, Fixed: true})
	require.NoError(t, err)
	require.Equal(t, expected, role)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateFixedRoleRejected(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("GetRole", mock.Anything, int64(1)).Return(&entities.Role{ID: 1, Name: entities.RoleProductOwner, Fixed: true}, nil)

	name := "Jefe"
	_, err := uc.UpdateRole(context.Background(), 1, entities.RoleUpdate{Name: &name})
	require.ErrorIs(t, err, entities.ErrFixedRole)
	repo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_DeleteFixedRoleRejected(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("GetRole", mock.Anything, int64(2)).Return(&entities.Role{ID: 2, Name: entities.RoleTechnicalLeader, Fixed: true}, nil)

	err := uc.DeleteRole(context.Background(), 2)
	require.ErrorIs(t, err, entities.ErrFixedRole)
	repo.AssertNotCalled(t, "DeleteRole", mock.Anything, mock.Anything)
}

func TestUsecase_AssignMemberValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.AssignMember(context.Background(), 1, 0, 2, 3)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.AssignMember(context.Background(), 1, 5, 2, 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "AssignMember", mock.Anything, mock.Anything)
}

func TestUsecase_AssignMemberRecordsCaller(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	expected := &entities.Member{ID: 8, ProjectID: 5, UserID: 2, RoleID: 3, AssignedBy: 1}
	repo.On("AssignMember", mock.Anything, mock.MatchedBy(func(m entities.Member) bool {
		return m.ProjectID == 5 && m.UserID == 2 && m.RoleID == 3 && m.AssignedBy == 1
	})).Return(expected, nil)

	member, err := uc.AssignMember(context.Background(), 1, 5, 2, 3)
	require.NoError(t, err)
	require.Equal(t, expected, member)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateMemberWithoutRoleReadsBack(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	expected := &entities.Member{ID: 8, ProjectID: 5, UserID: 2, RoleID: 3}
	repo.On("GetMember", mock.Anything, int64(8)).Return(expected, nil)

	member, err := uc.UpdateMember(context.Background(), 8, nil)
	require.NoError(t, err)
	require.Equal(t, expected, member)
	repo.AssertNotCalled(t, "UpdateMemberRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_CreateProcessDefaultsStatus(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	expected := &entities.Process{ID: 1, ProjectID: 5, Name: "Analisis", Status: entities.DefaultWorkStatus}
	repo.On("CreateProcess", mock.Anything, mock.MatchedBy(func(p entities.Process) bool {
		return p.Status == entities.DefaultWorkStatus
	})).Return(expected, nil)

	process, err := uc.CreateProcess(context.Background(), entities.Process{ProjectID: 5, Name: "Analisis"})
	require.NoError(t, err)
	require.Equal(t, expected, process)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateSubprocessValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateSubprocess(context.Background(), entities.Subprocess{Name: "Entrevistas"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateSubprocess", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTechniqueValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateTechnique(context.Background(), entities.Technique{Name: "Brainstorming"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTechnique", mock.Anything, mock.Anything)
}

func TestUsecase_AssignTechniqueValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.AssignTechnique(context.Background(), entities.TechniqueAssignment{SubprocessID: 4})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything)
}

func TestUsecase_CreateStakeholderValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateStakeholder(context.Background(), entities.Stakeholder{
		ProjectID: 5, FullName: "Luis Mora", Type: "interno",
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateStakeholder", mock.Anything, mock.Anything)
}
