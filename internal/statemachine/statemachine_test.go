package statemachine

import (
	"context"
	"testing"

	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentFSM(t *testing.T) {
	ctx := context.Background()

	t.Run("draft confirm then cancel", func(t *testing.T) {
		p := &models.Payment{Status: models.PaymentStatusDraft}
		m := NewPaymentFSM(p)

		require.NoError(t, m.Confirm(ctx))
		assert.Equal(t, models.PaymentStatusConfirmed, p.Status)

		require.NoError(t, m.Cancel(ctx))
		assert.Equal(t, models.PaymentStatusCancelled, p.Status)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		p := &models.Payment{Status: models.PaymentStatusCancelled}
		m := NewPaymentFSM(p)

		assert.ErrorIs(t, m.Cancel(ctx), ErrInvalidTransition)
		assert.ErrorIs(t, m.Confirm(ctx), ErrInvalidTransition)
		assert.Equal(t, models.PaymentStatusCancelled, p.Status)
	})

	t.Run("confirmed cannot be confirmed again", func(t *testing.T) {
		p := &models.Payment{Status: models.PaymentStatusConfirmed}
		m := NewPaymentFSM(p)

		assert.ErrorIs(t, m.Confirm(ctx), ErrInvalidTransition)
		assert.True(t, m.Can("cancel"))
	})
}

func TestAmortizationFSM(t *testing.T) {
	ctx := context.Background()
	e := &models.AmortizationEntry{AmortizationPeriod: "2024-01", PaymentStatus: models.AmortizationStatusPending}
	m := NewAmortizationFSM(e)

	require.NoError(t, m.Settle(ctx))
	assert.Equal(t, models.AmortizationStatusCompleted, e.PaymentStatus)
	assert.ErrorIs(t, m.Settle(ctx), ErrInvalidTransition)
}
