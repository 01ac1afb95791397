package services

import (
	"context"
	"testing"

	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_Record(t *testing.T) {
	store := newMemStore()
	now := date("2024-03-15")
	svc := NewAuditService(&memLogRepo{s: store}, nil, testSettings(now))

	contractID := uint(7)
	ctx := logger.WithRequestID(context.Background(), "req-123")
	svc.Record(ctx, models.OperationLog{ContractID: &contractID, Action: models.ActionContractCreated, Operator: "tester"})
	svc.Record(ctx, models.OperationLog{ContractID: &contractID, Action: models.ActionContractUpdated, Operator: "tester"})

	logs, err := svc.ListByContract(context.Background(), contractID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.ActionContractUpdated, logs[0].Action)
	assert.Equal(t, "req-123", logs[0].RequestID)
	assert.True(t, logs[1].CreatedAt.Equal(now))
}
