package services

import (
	"context"

	"github.com/sjperalta/fintera-amortization/internal/jobs"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/repository"
	"github.com/sjperalta/fintera-amortization/pkg/logger"
)

type AuditService struct {
	repo     repository.OperationLogRepository
	worker   *jobs.Worker
	settings Settings
}

func NewAuditService(repo repository.OperationLogRepository, worker *jobs.Worker, settings Settings) *AuditService {
	return &AuditService{repo: repo, worker: worker, settings: settings}
}

// Record appends an operation log entry. Writes go through the worker when
// one is configured so the request path never waits on the audit table.
func (s *AuditService) Record(ctx context.Context, entry models.OperationLog) {
	entry.RequestID = logger.RequestID(ctx)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.settings.now()
	}

	write := func(ctx context.Context) error {
		return s.repo.Create(ctx, &entry)
	}

	if s.worker == nil {
		if err := write(ctx); err != nil {
			logger.FromContext(ctx).Error("failed to write operation log", "action", entry.Action, "error", err)
		}
		return
	}
	s.worker.EnqueueAsync(write)
}

// ListByContract retrieves the audit trail of a contract, newest first
func (s *AuditService) ListByContract(ctx context.Context, contractID uint) ([]models.OperationLog, error) {
	return s.repo.FindByContract(ctx, contractID)
}
