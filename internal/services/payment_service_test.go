package services

import (
	"context"
	"testing"

	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedContract creates a 1200.00 contract from 2024-01 to 2024-06
func seedContract(t *testing.T, svcs *Services) *models.Contract {
	t.Helper()
	contract, err := svcs.Contract.Create(context.Background(), ContractInput{
		TotalAmount: dec("1200"),
		StartDate:   "2024-01",
		EndDate:     "2024-06",
		VendorName:  "Seguros Atlántida",
	}, "tester")
	require.NoError(t, err)
	return contract
}

func entriesByPeriod(t *testing.T, store *memStore, contractID uint) map[string]models.AmortizationEntry {
	t.Helper()
	entries, err := store.repositories().Amortization.FindByContract(context.Background(), contractID)
	require.NoError(t, err)
	out := make(map[string]models.AmortizationEntry, len(entries))
	for _, e := range entries {
		out[e.AmortizationPeriod] = e
	}
	return out
}

func TestPaymentService_Execute(t *testing.T) {
	now := date("2024-03-15")
	booking := date("2024-03-20")

	tests := []struct {
		name         string
		amount       string
		periods      []string
		wantResidual accounting.ResidualKind
		wantDelta    string
		wantLines    int
		wantPaid     map[string]string
	}{
		{
			name:         "exact payment",
			amount:       "400",
			periods:      []string{"2024-01", "2024-02"},
			wantResidual: accounting.ResidualNone,
			wantDelta:    "0.00",
			wantLines:    3,
			wantPaid:     map[string]string{"2024-01": "200.00", "2024-02": "200.00"},
		},
		{
			name:         "small shortfall goes to expense",
			amount:       "350",
			periods:      []string{"2024-02", "2024-01"},
			wantResidual: accounting.ResidualExpense,
			wantDelta:    "-50.00",
			wantLines:    4,
			wantPaid:     map[string]string{"2024-01": "200.00", "2024-02": "150.00"},
		},
		{
			name:         "large overpayment goes to prepaid",
			amount:       "700",
			periods:      []string{"2024-01", "2024-02"},
			wantResidual: accounting.ResidualPrepaid,
			wantDelta:    "300.00",
			wantLines:    4,
			wantPaid:     map[string]string{"2024-01": "200.00", "2024-02": "200.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs, store := newTestServices(now)
			contract := seedContract(t, svcs)

			result, err := svcs.Payment.Execute(context.Background(), contract.ID, ExecuteInput{
				PaymentAmount:   dec(tt.amount),
				BookingDate:     &booking,
				SelectedPeriods: tt.periods,
			}, "tester")
			require.NoError(t, err)

			assert.Equal(t, models.PaymentStatusConfirmed, result.Payment.Status)
			assert.Equal(t, string(tt.wantResidual), result.Payment.ResidualKind)
			assert.Equal(t, tt.wantDelta, result.Payment.ResidualAmount.StringFixed(2))
			assert.Equal(t, []string{"2024-01", "2024-02"}, result.Payment.Periods())
			require.NotNil(t, result.Payment.JournalBatchID)

			require.Len(t, result.Journal, tt.wantLines)
			lines := make([]accounting.JournalLine, len(result.Journal))
			for i := range result.Journal {
				lines[i] = result.Journal[i].Line()
				assert.Equal(t, *result.Payment.JournalBatchID, result.Journal[i].BatchID)
				assert.Equal(t, models.EntryTypePayment, result.Journal[i].EntryType)
			}
			assert.True(t, accounting.CheckBalance(lines).Balanced)
			assert.Equal(t, accounting.CodePayable, lines[0].AccountCode)
			assert.Equal(t, accounting.CodeCash, lines[len(lines)-1].AccountCode)

			stored := entriesByPeriod(t, store, contract.ID)
			for period, paid := range tt.wantPaid {
				e := stored[period]
				assert.Equal(t, paid, e.PaidAmount.StringFixed(2), period)
				assert.Equal(t, models.AmortizationStatusCompleted, e.PaymentStatus, period)
				require.NotNil(t, e.PaymentDate, period)
				assert.True(t, e.PaymentDate.Equal(booking), period)
			}
			assert.Equal(t, models.AmortizationStatusPending, stored["2024-03"].PaymentStatus)

			require.NotEmpty(t, store.logs)
			assert.Equal(t, models.ActionPaymentExecuted, store.logs[len(store.logs)-1].Action)
		})
	}
}

func TestPaymentService_ExecuteAllowOverpay(t *testing.T) {
	settings := testSettings(date("2024-03-15"))
	settings.AllowOverpay = true
	store := newMemStore()
	svcs := NewServices(store.repositories(), nil, settings)
	contract := seedContract(t, svcs)

	_, err := svcs.Payment.Execute(context.Background(), contract.ID, ExecuteInput{
		PaymentAmount:   dec("700"),
		SelectedPeriods: []string{"2024-01", "2024-02"},
	}, "tester")
	require.NoError(t, err)

	stored := entriesByPeriod(t, store, contract.ID)
	assert.Equal(t, "200.00", stored["2024-01"].PaidAmount.StringFixed(2))
	assert.Equal(t, "500.00", stored["2024-02"].PaidAmount.StringFixed(2))
}

func TestPaymentService_ExecuteErrors(t *testing.T) {
	svcs, _ := newTestServices(date("2024-03-15"))
	contract := seedContract(t, svcs)
	ctx := context.Background()

	_, err := svcs.Payment.Execute(ctx, 999, ExecuteInput{PaymentAmount: dec("10")}, "tester")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svcs.Payment.Execute(ctx, contract.ID, ExecuteInput{
		PaymentAmount:   dec("200"),
		SelectedPeriods: []string{"2024/01"},
	}, "tester")
	assert.ErrorIs(t, err, accounting.ErrInvalidDateFormat)

	_, err = svcs.Payment.Execute(ctx, contract.ID, ExecuteInput{
		PaymentAmount:   dec("200"),
		SelectedPeriods: []string{"2024-01"},
	}, "tester")
	require.NoError(t, err)

	_, err = svcs.Payment.Execute(ctx, contract.ID, ExecuteInput{
		PaymentAmount:   dec("200"),
		SelectedPeriods: []string{"2024-01"},
	}, "tester")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestPaymentService_Cancel(t *testing.T) {
	svcs, store := newTestServices(date("2024-03-15"))
	contract := seedContract(t, svcs)
	ctx := context.Background()

	result, err := svcs.Payment.Execute(ctx, contract.ID, ExecuteInput{
		PaymentAmount:   dec("350"),
		SelectedPeriods: []string{"2024-01", "2024-02"},
	}, "tester")
	require.NoError(t, err)

	cancelled, err := svcs.Payment.Cancel(ctx, result.Payment.ID, "auditor")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, "auditor", cancelled.UpdatedBy)

	posted, err := store.repositories().Journal.FindByPayment(ctx, result.Payment.ID)
	require.NoError(t, err)
	require.Len(t, posted, 2*len(result.Journal))

	original, reversal := posted[:len(result.Journal)], posted[len(result.Journal):]
	for i := range original {
		assert.True(t, original[i].DebitAmount.Equal(reversal[i].CreditAmount))
		assert.True(t, original[i].CreditAmount.Equal(reversal[i].DebitAmount))
		assert.Equal(t, reversalMemoPrefix+original[i].Memo, reversal[i].Memo)
		assert.NotEqual(t, original[i].BatchID, reversal[i].BatchID)
	}

	stored := entriesByPeriod(t, store, contract.ID)
	assert.Equal(t, models.AmortizationStatusCompleted, stored["2024-01"].PaymentStatus)

	_, err = svcs.Payment.Cancel(ctx, result.Payment.ID, "auditor")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svcs.Payment.Cancel(ctx, 999, "auditor")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentService_Preview(t *testing.T) {
	svcs, _ := newTestServices(date("2024-03-15"))

	_, err := svcs.Payment.Preview(PreviewInput{PaymentAmount: dec("10")})
	assert.ErrorIs(t, err, accounting.ErrPreconditionViolation)

	schedule, err := svcs.Amortization.Calculate(CalculateInput{
		TotalAmount: dec("1200"),
		StartDate:   "2024-01",
		EndDate:     "2024-06",
	})
	require.NoError(t, err)

	preview, err := svcs.Payment.Preview(PreviewInput{
		Schedule:        schedule,
		PaymentAmount:   dec("1150"),
		BookingDate:     date("2024-03-27"),
		SelectedPeriods: []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"},
	})
	require.NoError(t, err)
	assert.Equal(t, accounting.ResidualExpense, preview.Allocation.Residual)
	assert.True(t, preview.Balance.Balanced)
	assert.Equal(t, "1200.00", preview.Balance.TotalDebit.StringFixed(2))
	assert.Len(t, preview.Lines, 8)
}
