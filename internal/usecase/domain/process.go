package domain

import (
	"context"
	"fmt"

	"gestproy/internal/entities"
)

// Processes returns a project's processes.
func (u *Usecase) Processes(ctx context.Context, projectID int64) ([]entities.Process, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListProcesses(ctx, projectID)
}

// Process returns a process by id.
func (u *Usecase) Process(ctx context.Context, id int64) (*entities.Process, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetProcess(ctx, id)
}

// CreateProcess inserts a process under a project.
func (u *Usecase) CreateProcess(ctx context.Context, process entities.Process) (*entities.Process, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if process.ProjectID == 0 {
		return nil, fmt.Errorf("%w: el proyecto_id es requerido", entities.ErrInvalidArgument)
	}
	if process.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", entities.ErrInvalidArgument)
	}
	if process.Status == "" {
		process.Status = entities.DefaultWorkStatus
	}

	return u.repo.CreateProcess(ctx, process)
}

// UpdateProcess patches the supplied fields.
func (u *Usecase) UpdateProcess(ctx context.Context, id int64, patch entities.ProcessUpdate) (*entities.Process, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.UpdateProcess(ctx, id, patch)
}

// DeleteProcess removes a process.
func (u *Usecase) DeleteProcess(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteProcess(ctx, id)
}
