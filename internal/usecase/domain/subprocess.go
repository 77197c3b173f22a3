package domain

import (
	"context"
	"fmt"

	"gestproy/internal/entities"
)

// Subprocesses returns a process's subprocesses.
func (u *Usecase) Subprocesses(ctx context.Context, processID int64) ([]entities.Subprocess, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListSubprocesses(ctx, processID)
}

// Subprocess returns a subprocess by id.
func (u *Usecase) Subprocess(ctx context.Context, id int64) (*entities.Subprocess, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetSubprocess(ctx, id)
}

// CreateSubprocess inserts a subprocess under a process.
func (u *Usecase) CreateSubprocess(ctx context.Context, subprocess entities.Subprocess) (*entities.Subprocess, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if subprocess.ProcessID == 0 {
		return nil, fmt.Errorf("%w: el proceso_id es requerido", entities.ErrInvalidArgument)
	}
	if subprocess.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", entities.ErrInvalidArgument)
	}
	if subprocess.Status == "" {
		subprocess.Status = entities.DefaultWorkStatus
	}

	return u.repo.CreateSubprocess(ctx, subprocess)
}

// UpdateSubprocess patches the supplied fields.
func (u *Usecase) UpdateSubprocess(ctx context.Context, id int64, patch entities.SubprocessUpdate) (*entities.Subprocess, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.UpdateSubprocess(ctx, id, patch)
}

// DeleteSubprocess removes a subprocess.
func (u *Usecase) DeleteSubprocess(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteSubprocess(ctx, id)
}
