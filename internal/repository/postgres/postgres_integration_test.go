package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"gestproy/config"
	"gestproy/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMembershipIntegrityIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	owner := createUser(t, ctx, repo, "ana@test.dev")
	second := createUser(t, ctx, repo, "luis@test.dev")
	third := createUser(t, ctx, repo, "eva@test.dev")

	project, err := repo.CreateProject(ctx, entities.Project{
		Name: "Portal", Priority: "alta", Status: "iniciado", CreatedBy: owner.ID,
	})
	require.NoError(t, err)

	// Creating a project provisions the creator as Product Owner.
	members, err := repo.ListMembers(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, owner.ID, members[0].UserID)
	require.Equal(t, entities.RoleProductOwner, members[0].Role.Name)

	roles, err := repo.ListRoles(ctx, nil)
	require.NoError(t, err)
	var poID, tlID int64
	for _, r := range roles {
		switch r.Name {
		case entities.RoleProductOwner:
			poID = r.ID
		case entities.RoleTechnicalLeader:
			tlID = r.ID
		}
	}
	require.NotZero(t, poID)
	require.NotZero(t, tlID)

	// A second Product Owner is rejected, naming the contested role.
	_, err = repo.AssignMember(ctx, entities.Member{
		ProjectID: project.ID, UserID: second.ID, RoleID: poID, AssignedBy: owner.ID,
	})
	require.ErrorIs(t, err, entities.ErrSingletonRoleTaken)
	require.ErrorContains(t, err, entities.RoleProductOwner)

	// The same user cannot join twice.
	_, err = repo.AssignMember(ctx, entities.Member{
		ProjectID: project.ID, UserID: owner.ID, RoleID: tlID, AssignedBy: owner.ID,
	})
	require.ErrorIs(t, err, entities.ErrMemberExists)

	// One Technical Leader is fine; a second one is not.
	leader, err := repo.AssignMember(ctx, entities.Member{
		ProjectID: project.ID, UserID: second.ID, RoleID: tlID, AssignedBy: owner.ID,
	})
	require.NoError(t, err)
	require.Equal(t, entities.RoleTechnicalLeader, leader.Role.Name)
	require.Equal(t, second.Email, leader.User.Email)

	third2, err := repo.AssignMember(ctx, entities.Member{
		ProjectID: project.ID, UserID: third.ID, RoleID: poID, AssignedBy: owner.ID,
	})
	require.Nil(t, third2)
	require.ErrorIs(t, err, entities.ErrSingletonRoleTaken)

	// Custom roles have no holder cap.
	custom, err := repo.CreateRole(ctx, entities.Role{
		ProjectID: &project.ID, Name: "QA",
	})
	require.NoError(t, err)

	qa, err := repo.AssignMember(ctx, entities.Member{
		ProjectID: project.ID, UserID: third.ID, RoleID: custom.ID, AssignedBy: owner.ID,
	})
	require.NoError(t, err)

	// Role change re-runs the singleton check against other members.
	_, err = repo.UpdateMemberRole(ctx, qa.ID, tlID)
	require.ErrorIs(t, err, entities.ErrSingletonRoleTaken)

	// Moving the current leader to the custom role frees the slot.
	moved, err := repo.UpdateMemberRole(ctx, leader.ID, custom.ID)
	require.NoError(t, err)
	require.Equal(t, custom.ID, moved.RoleID)

	promoted, err := repo.UpdateMemberRole(ctx, qa.ID, tlID)
	require.NoError(t, err)
	require.Equal(t, tlID, promoted.RoleID)

	require.NoError(t, repo.RemoveMember(ctx, promoted.ID))
	require.ErrorIs(t, repo.RemoveMember(ctx, promoted.ID), entities.ErrMemberNotFound)
}

func TestProjectVisibilityIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	creator := createUser(t, ctx, repo, "ana@test.dev")
	member := createUser(t, ctx, repo, "luis@test.dev")
	outsider := createUser(t, ctx, repo, "eva@test.dev")

	p1, err := repo.CreateProject(ctx, entities.Project{Name: "Portal", Priority: "alta", Status: "iniciado", CreatedBy: creator.ID})
	require.NoError(t, err)
	p2, err := repo.CreateProject(ctx, entities.Project{Name: "Intranet", Priority: "media", Status: "iniciado", CreatedBy: member.ID})
	require.NoError(t, err)

	roles, err := repo.ListRoles(ctx, nil)
	require.NoError(t, err)
	var tlID int64
	for _, r := range roles {
		if r.Name == entities.RoleTechnicalLeader {
			tlID = r.ID
		}
	}

	_, err = repo.AssignMember(ctx, entities.Member{ProjectID: p1.ID, UserID: member.ID, RoleID: tlID, AssignedBy: creator.ID})
	require.NoError(t, err)

	// Member sees both the project they created and the one they joined.
	visible, err := repo.ListProjects(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, visible, 2)

	creatorVisible, err := repo.ListProjects(ctx, creator.ID)
	require.NoError(t, err)
	require.Len(t, creatorVisible, 1)
	require.Equal(t, p1.ID, creatorVisible[0].ID)

	outsiderVisible, err := repo.ListProjects(ctx, outsider.ID)
	require.NoError(t, err)
	require.Empty(t, outsiderVisible)

	// A supplied date replaces the stored value; a clear flag blanks it.
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dated, err := repo.UpdateProject(ctx, p2.ID, entities.ProjectUpdate{StartDate: &start})
	require.NoError(t, err)
	require.NotNil(t, dated.StartDate)

	blanked, err := repo.UpdateProject(ctx, p2.ID, entities.ProjectUpdate{ClearStartDate: true})
	require.NoError(t, err)
	require.Nil(t, blanked.StartDate)

	// Deleting a project cascades its memberships.
	require.NoError(t, repo.DeleteProject(ctx, p1.ID))
	_, err = repo.GetProject(ctx, p1.ID)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	remaining, err := repo.ListProjects(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, p2.ID, remaining[0].ID)
}

func TestWorkBreakdownIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	owner := createUser(t, ctx, repo, "ana@test.dev")
	project, err := repo.CreateProject(ctx, entities.Project{Name: "Portal", Priority: "alta", Status: "iniciado", CreatedBy: owner.ID})
	require.NoError(t, err)

	process, err := repo.CreateProcess(ctx, entities.Process{
		ProjectID: project.ID, Name: "Analisis", Status: "definido", ResponsibleID: &owner.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, process.Responsible)
	require.Equal(t, owner.ID, process.Responsible.ID)

	hours := 12.5
	subprocess, err := repo.CreateSubprocess(ctx, entities.Subprocess{
		ProcessID: process.ID, Name: "Entrevistas", Status: "definido", EstimatedHours: &hours,
	})
	require.NoError(t, err)
	require.NotNil(t, subprocess.EstimatedHours)

	technique, err := repo.CreateTechnique(ctx, entities.Technique{Name: "Brainstorming", Category: "elicitacion", Active: true})
	require.NoError(t, err)
	require.True(t, technique.Active)

	assignment, err := repo.CreateAssignment(ctx, entities.TechniqueAssignment{
		SubprocessID: subprocess.ID, TechniqueID: technique.ID,
	})
	require.NoError(t, err)
	require.Equal(t, technique.Name, assignment.Technique.Name)

	// The subprocess-technique pair is unique.
	_, err = repo.CreateAssignment(ctx, entities.TechniqueAssignment{
		SubprocessID: subprocess.ID, TechniqueID: technique.ID,
	})
	require.ErrorIs(t, err, entities.ErrTechniqueAssigned)

	// Deactivated techniques drop out of the active listing but stay in /todas.
	require.NoError(t, repo.DeactivateTechnique(ctx, technique.ID))

	active, err := repo.ListTechniques(ctx, nil, false)
	require.NoError(t, err)
	require.Empty(t, active)

	all, err := repo.ListTechniques(ctx, nil, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.False(t, all[0].Active)

	// History survives the soft delete.
	links, err := repo.ListAssignments(ctx, subprocess.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)

	// Partial update touches only the supplied columns.
	status := "en_progreso"
	updated, err := repo.UpdateProcess(ctx, process.ID, entities.ProcessUpdate{Status: &status})
	require.NoError(t, err)
	require.Equal(t, "en_progreso", updated.Status)
	require.Equal(t, process.Name, updated.Name)
}

func TestUserUniquenessIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	first := createUser(t, ctx, repo, "ana@test.dev")
	require.True(t, first.Active)

	_, err := repo.CreateUser(ctx, entities.User{
		FirstName: "Ana", LastName: "Clon", Email: "ana@test.dev", PasswordHash: "x",
	})
	require.ErrorIs(t, err, entities.ErrEmailTaken)

	require.NoError(t, repo.DeactivateUser(ctx, first.ID))

	listed, err := repo.ListActiveUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, listed)

	stored, err := repo.GetUser(ctx, first.ID)
	require.NoError(t, err)
	require.False(t, stored.Active)
}

func TestSingletonRoleRaceIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	owner := createUser(t, ctx, repo, "ana@test.dev")
	first := createUser(t, ctx, repo, "luis@test.dev")
	second := createUser(t, ctx, repo, "eva@test.dev")

	project, err := repo.CreateProject(ctx, entities.Project{
		Name: "Portal", Priority: "alta", Status: "iniciado", CreatedBy: owner.ID,
	})
	require.NoError(t, err)

	roles, err := repo.ListRoles(ctx, nil)
	require.NoError(t, err)
	var tlID int64
	for _, r := range roles {
		if r.Name == entities.RoleTechnicalLeader {
			tlID = r.ID
		}
	}
	require.NotZero(t, tlID)

	// Two users grab the same singleton role at once. The role row lock
	// serializes the transactions, so the second one sees the first one's
	// membership and loses.
	errs := make(chan error, 2)
	for _, userID := range []int64{first.ID, second.ID} {
		userID := userID
		go func() {
			_, err := repo.AssignMember(ctx, entities.Member{
				ProjectID: project.ID, UserID: userID, RoleID: tlID, AssignedBy: owner.ID,
			})
			errs <- err
		}()
	}

	rejected := 0
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			require.ErrorIs(t, err, entities.ErrSingletonRoleTaken)
			rejected++
		}
	}
	require.Equal(t, 1, rejected)

	members, err := repo.ListMembers(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, members, 2) // the owner plus exactly one leader
}

func TestProjectWithoutFixedRoleIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	owner := createUser(t, ctx, repo, "ana@test.dev")

	roles, err := repo.ListRoles(ctx, nil)
	require.NoError(t, err)
	var poID int64
	for _, r := range roles {
		if r.Name == entities.RoleProductOwner {
			poID = r.ID
		}
	}
	require.NotZero(t, poID)
	require.NoError(t, repo.DeleteRole(ctx, poID))

	// With the Product Owner role gone from the catalog the project is
	// still created, just without the creator's membership.
	project, err := repo.CreateProject(ctx, entities.Project{
		Name: "Portal", Priority: "alta", Status: "iniciado", CreatedBy: owner.ID,
	})
	require.NoError(t, err)

	members, err := repo.ListMembers(ctx, project.ID)
	require.NoError(t, err)
	require.Empty(t, members)
}

func createUser(t *testing.T, ctx context.Context, repo *Postgres, email string) *entities.User {
	t.Helper()

	user, err := repo.CreateUser(ctx, entities.User{
		FirstName: "Test", LastName: "User", Email: email, PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=gestproy_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "gestproy_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=gestproy_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
