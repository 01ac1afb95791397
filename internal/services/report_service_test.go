package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Dashboard(t *testing.T) {
	svcs, _ := newTestServices(date("2024-03-15"))
	ctx := context.Background()
	contract := seedContract(t, svcs)

	_, err := svcs.Payment.Execute(ctx, contract.ID, ExecuteInput{
		PaymentAmount:   dec("200"),
		SelectedPeriods: []string{"2024-01"},
	}, "tester")
	require.NoError(t, err)

	summary, err := svcs.Report.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.ActiveContracts)
	assert.Equal(t, "2024-03", summary.CurrentPeriod)
	// January to March are caught up into March
	assert.Equal(t, "600.00", summary.CurrentMonthAmortization)
	assert.Equal(t, "1000.00", summary.RemainingPayable)
	assert.Equal(t, "HNL", summary.CurrencySymbol)

	require.Len(t, summary.Trend, 12)
	assert.Equal(t, "2023-10", summary.Trend[0].Period)
	assert.Equal(t, "2024-09", summary.Trend[11].Period)
	assert.Equal(t, "0.00", summary.Trend[0].Scheduled)
	assert.Equal(t, "600.00", summary.Trend[5].Scheduled)
	assert.Equal(t, "200.00", summary.Trend[5].Paid)
}

func TestReportService_DashboardIsCached(t *testing.T) {
	svcs, _ := newTestServices(date("2024-03-15"))
	ctx := context.Background()

	first, err := svcs.Report.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.ActiveContracts)

	seedContract(t, svcs)

	cached, err := svcs.Report.Dashboard(ctx)
	require.NoError(t, err)
	assert.Same(t, first, cached)

	require.NoError(t, svcs.Report.RefreshCache(ctx))
	fresh, err := svcs.Report.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.ActiveContracts)
}

func TestReportService_VendorDistribution(t *testing.T) {
	svcs, _ := newTestServices(date("2024-03-15"))
	ctx := context.Background()

	for _, in := range []ContractInput{
		{TotalAmount: dec("300"), StartDate: "2024-01", EndDate: "2024-03", VendorName: "Tigo"},
		{TotalAmount: dec("100"), StartDate: "2024-01", EndDate: "2024-01", VendorName: "Tigo"},
		{TotalAmount: dec("200"), StartDate: "2024-02", EndDate: "2024-03", VendorName: "Claro"},
	} {
		_, err := svcs.Contract.Create(ctx, in, "tester")
		require.NoError(t, err)
	}

	shares, err := svcs.Report.VendorDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, "Tigo", shares[0].VendorName)
	assert.Equal(t, int64(2), shares[0].ContractCount)
	assert.Equal(t, "400.00", shares[0].TotalAmount)
	assert.Equal(t, "66.67", shares[0].Percentage)
	assert.Equal(t, "33.33", shares[1].Percentage)
}
