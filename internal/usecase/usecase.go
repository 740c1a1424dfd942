// Package usecase exposes application services to the delivery layer.
package usecase

import (
	"context"
	"time"

	"resource-manager/internal/repository"
	"resource-manager/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	EngineerUsecaseInterface
	ProjectUsecaseInterface
	AssignmentUsecaseInterface
	AnalyticsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
