package repository

import (
	"context"

	"github.com/sjperalta/fintera-amortization/internal/models"
	"gorm.io/gorm"
)

// OperationLogRepository defines the interface for audit trail data access
type OperationLogRepository interface {
	Create(ctx context.Context, log *models.OperationLog) error
	FindByContract(ctx context.Context, contractID uint) ([]models.OperationLog, error)
}

type operationLogRepository struct {
	db *gorm.DB
}

func NewOperationLogRepository(db *gorm.DB) OperationLogRepository {
	return &operationLogRepository{db: db}
}

func (r *operationLogRepository) Create(ctx context.Context, log *models.OperationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *operationLogRepository) FindByContract(ctx context.Context, contractID uint) ([]models.OperationLog, error) {
	var logs []models.OperationLog
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
