package services

import (
	"context"
	"testing"

	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizationService_Calculate(t *testing.T) {
	svcs, _ := newTestServices(date("2024-03-15"))

	schedule, err := svcs.Amortization.Calculate(CalculateInput{
		TotalAmount: dec("100"),
		StartDate:   "2024-01",
		EndDate:     "2024-03",
	})
	require.NoError(t, err)
	assert.Equal(t, accounting.ScenarioInProgress, schedule.Scenario)
	assert.Equal(t, "HNL", schedule.Currency)
	require.Len(t, schedule.Entries, 3)
	assert.Equal(t, "33.34", schedule.Entries[2].Amount.StringFixed(2))
	for _, e := range schedule.Entries {
		assert.Nil(t, e.ID)
	}

	asOf := date("2023-06-01")
	schedule, err = svcs.Amortization.Calculate(CalculateInput{
		TotalAmount: dec("100"),
		Currency:    "USD",
		StartDate:   "2024-01",
		EndDate:     "2024-03",
		AsOf:        &asOf,
	})
	require.NoError(t, err)
	assert.Equal(t, accounting.ScenarioNotStarted, schedule.Scenario)
	assert.Equal(t, "USD", schedule.Currency)

	_, err = svcs.Amortization.Calculate(CalculateInput{TotalAmount: dec("100"), StartDate: "2024-04", EndDate: "2024-03"})
	assert.ErrorIs(t, err, accounting.ErrInvalidRange)
}

func TestAmortizationService_CalculateByContract(t *testing.T) {
	svcs, store := newTestServices(date("2024-03-15"))
	ctx := context.Background()
	contract := seedContract(t, svcs)

	_, err := svcs.Payment.Execute(ctx, contract.ID, ExecuteInput{
		PaymentAmount:   dec("200"),
		SelectedPeriods: []string{"2024-01"},
	}, "tester")
	require.NoError(t, err)

	schedule, err := svcs.Amortization.CalculateByContract(ctx, contract.ID, nil)
	require.NoError(t, err)
	require.Len(t, schedule.Entries, 6)
	assert.True(t, schedule.Sum().Equal(contract.TotalAmount))

	stored := entriesByPeriod(t, store, contract.ID)
	first := schedule.Entries[0]
	require.NotNil(t, first.ID)
	assert.Equal(t, stored["2024-01"].ID, *first.ID)
	require.NotNil(t, first.Status)
	assert.Equal(t, string(models.AmortizationStatusCompleted), *first.Status)
	require.NotNil(t, first.PaidAmount)
	assert.Equal(t, "200.00", first.PaidAmount.StringFixed(2))

	_, err = svcs.Amortization.CalculateByContract(ctx, 404, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
