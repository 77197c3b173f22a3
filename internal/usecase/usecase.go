package usecase

import (
	"context"
	"time"

	"gestproy/internal/repository"
	"gestproy/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	UserUsecaseInterface
	ProjectUsecaseInterface
	RoleUsecaseInterface
	MemberUsecaseInterface
	ProcessUsecaseInterface
	SubprocessUsecaseInterface
	TechniqueUsecaseInterface
	AssignmentUsecaseInterface
	StakeholderUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
