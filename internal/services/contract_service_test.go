package services

import (
	"context"
	"testing"

	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractService_Create(t *testing.T) {
	svcs, store := newTestServices(date("2024-03-15"))
	desc := "Póliza <b>anual</b>"

	contract, err := svcs.Contract.Create(context.Background(), ContractInput{
		TotalAmount: dec("1000.004"),
		StartDate:   "2024-01",
		EndDate:     "2024-03",
		VendorName:  "  <script>x</script>Claro Honduras ",
		Description: &desc,
	}, "tester")
	require.NoError(t, err)

	assert.Equal(t, "1000.00", contract.TotalAmount.StringFixed(2))
	assert.Equal(t, "HNL", contract.Currency)
	assert.Equal(t, "Claro Honduras", contract.VendorName)
	require.NotNil(t, contract.Description)
	assert.Equal(t, "Póliza anual", *contract.Description)
	assert.Equal(t, "2024-01-01", models.FormatDate(contract.StartDate))
	assert.Equal(t, "2024-03-31", models.FormatDate(contract.EndDate))
	assert.Equal(t, "tester", contract.CreatedBy)

	entries := entriesByPeriod(t, store, contract.ID)
	require.Len(t, entries, 3)
	assert.Equal(t, "333.33", entries["2024-01"].Amount.StringFixed(2))
	assert.Equal(t, "333.33", entries["2024-02"].Amount.StringFixed(2))
	assert.Equal(t, "333.34", entries["2024-03"].Amount.StringFixed(2))
	for _, e := range entries {
		assert.Equal(t, "2024-03", e.AccountingPeriod)
		assert.Equal(t, models.AmortizationStatusPending, e.PaymentStatus)
	}

	require.Len(t, store.logs, 1)
	assert.Equal(t, models.ActionContractCreated, store.logs[0].Action)
	assert.Equal(t, "tester", store.logs[0].Operator)
}

func TestContractService_CreateValidation(t *testing.T) {
	svcs, store := newTestServices(date("2024-03-15"))
	ctx := context.Background()

	tests := []struct {
		name    string
		in      ContractInput
		wantErr error
	}{
		{
			name:    "amount below one cent",
			in:      ContractInput{TotalAmount: dec("0.004"), StartDate: "2024-01", EndDate: "2024-02", VendorName: "A"},
			wantErr: ErrValidation,
		},
		{
			name:    "end before start",
			in:      ContractInput{TotalAmount: dec("10"), StartDate: "2024-05", EndDate: "2024-02", VendorName: "A"},
			wantErr: models.ErrContractDates,
		},
		{
			name:    "missing vendor",
			in:      ContractInput{TotalAmount: dec("10"), StartDate: "2024-01", EndDate: "2024-02", VendorName: "<i></i>"},
			wantErr: models.ErrContractVendor,
		},
		{
			name:    "bad date",
			in:      ContractInput{TotalAmount: dec("10"), StartDate: "01-2024", EndDate: "2024-02", VendorName: "A"},
			wantErr: accounting.ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svcs.Contract.Create(ctx, tt.in, "tester")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, store.contracts)
	assert.Empty(t, store.entries)
}

func TestContractService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("descriptive fields keep the schedule", func(t *testing.T) {
		svcs, store := newTestServices(date("2024-03-15"))
		contract := seedContract(t, svcs)
		before := entriesByPeriod(t, store, contract.ID)

		vendor := "Seguros del País"
		updated, err := svcs.Contract.Update(ctx, contract.ID, ContractUpdate{VendorName: &vendor}, "editor")
		require.NoError(t, err)
		assert.Equal(t, vendor, updated.VendorName)
		assert.Equal(t, "editor", updated.UpdatedBy)
		assert.Len(t, updated.AmortizationEntries, 6)
		assert.Equal(t, before["2024-01"].ID, entriesByPeriod(t, store, contract.ID)["2024-01"].ID)
	})

	t.Run("new terms rebuild the schedule", func(t *testing.T) {
		svcs, store := newTestServices(date("2024-03-15"))
		contract := seedContract(t, svcs)

		amount := dec("900")
		end := "2024-03"
		updated, err := svcs.Contract.Update(ctx, contract.ID, ContractUpdate{TotalAmount: &amount, EndDate: &end}, "editor")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-31", models.FormatDate(updated.EndDate))

		entries := entriesByPeriod(t, store, contract.ID)
		require.Len(t, entries, 3)
		assert.Equal(t, "300.00", entries["2024-02"].Amount.StringFixed(2))
	})

	t.Run("terms are locked after a payment", func(t *testing.T) {
		svcs, _ := newTestServices(date("2024-03-15"))
		contract := seedContract(t, svcs)
		_, err := svcs.Payment.Execute(ctx, contract.ID, ExecuteInput{
			PaymentAmount:   dec("200"),
			SelectedPeriods: []string{"2024-01"},
		}, "tester")
		require.NoError(t, err)

		amount := dec("900")
		_, err = svcs.Contract.Update(ctx, contract.ID, ContractUpdate{TotalAmount: &amount}, "editor")
		assert.ErrorIs(t, err, ErrScheduleLocked)
	})

	t.Run("terms are locked after accruals", func(t *testing.T) {
		svcs, _ := newTestServices(date("2024-03-15"))
		contract := seedContract(t, svcs)
		_, err := svcs.Journal.GenerateAmortization(ctx, contract.ID, "tester")
		require.NoError(t, err)

		start := "2024-02"
		_, err = svcs.Contract.Update(ctx, contract.ID, ContractUpdate{StartDate: &start}, "editor")
		assert.ErrorIs(t, err, ErrScheduleLocked)
	})

	t.Run("unknown contract", func(t *testing.T) {
		svcs, _ := newTestServices(date("2024-03-15"))
		vendor := "x"
		_, err := svcs.Contract.Update(ctx, 42, ContractUpdate{VendorName: &vendor}, "editor")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestContractService_List(t *testing.T) {
	svcs, _ := newTestServices(date("2024-03-15"))
	ctx := context.Background()
	seedContract(t, svcs)
	_, err := svcs.Contract.Create(ctx, ContractInput{
		TotalAmount: dec("50"), StartDate: "2024-01", EndDate: "2024-01", VendorName: "Tigo",
	}, "tester")
	require.NoError(t, err)

	all, err := svcs.Contract.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svcs.Contract.List(ctx, "tigo")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Tigo", filtered[0].VendorName)
}
