package models

import "time"

// DashboardSummary is the headline figures of the reports dashboard
type DashboardSummary struct {
	ActiveContracts          int64              `json:"active_contracts"`
	CurrentPeriod            string             `json:"current_period"`
	CurrentMonthAmortization string             `json:"current_month_amortization"`
	RemainingPayable         string             `json:"remaining_payable"`
	CurrencySymbol           string             `json:"currency_symbol"`
	Trend                    []PeriodTrendPoint `json:"trend"`
	GeneratedAt              time.Time          `json:"generated_at"`
}

// PeriodTrendPoint is the scheduled vs paid amount of one accounting period
type PeriodTrendPoint struct {
	Period    string `json:"period"`
	Scheduled string `json:"scheduled"`
	Paid      string `json:"paid"`
}

// VendorShare is one slice of the vendor distribution chart
type VendorShare struct {
	VendorName    string `json:"vendor_name"`
	ContractCount int64  `json:"contract_count"`
	TotalAmount   string `json:"total_amount"`
	Percentage    string `json:"percentage"`
}
