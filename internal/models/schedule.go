package models

import (
	"time"

	"github.com/sjperalta/fintera-amortization/internal/accounting"
)

// ScheduleResponse is the JSON response format for a computed schedule
type ScheduleResponse struct {
	TotalAmount string                  `json:"total_amount"`
	Currency    string                  `json:"currency"`
	StartDate   string                  `json:"start_date"`
	EndDate     string                  `json:"end_date"`
	Scenario    accounting.Scenario     `json:"scenario"`
	GeneratedAt time.Time               `json:"generated_at"`
	Entries     []ScheduleEntryResponse `json:"entries"`
}

// ScheduleEntryResponse is one period of a ScheduleResponse. ID, Status and
// PaidAmount are null for preview-only schedules.
type ScheduleEntryResponse struct {
	ID                 *uint   `json:"id"`
	AmortizationPeriod string  `json:"amortization_period"`
	AccountingPeriod   string  `json:"accounting_period"`
	Amount             string  `json:"amount"`
	Status             *string `json:"status"`
	PaidAmount         *string `json:"paid_amount"`
}

func NewScheduleResponse(s *accounting.Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		TotalAmount: Money(s.TotalAmount),
		Currency:    s.Currency,
		StartDate:   FormatDate(s.Start.FirstDay()),
		EndDate:     FormatDate(s.End.LastDay()),
		Scenario:    s.Scenario,
		GeneratedAt: s.GeneratedAt,
		Entries:     make([]ScheduleEntryResponse, len(s.Entries)),
	}
	for i, e := range s.Entries {
		entry := ScheduleEntryResponse{
			ID:                 e.ID,
			AmortizationPeriod: e.AmortizationPeriod.String(),
			AccountingPeriod:   e.AccountingPeriod.String(),
			Amount:             Money(e.Amount),
			Status:             e.Status,
		}
		if e.PaidAmount != nil {
			paid := Money(*e.PaidAmount)
			entry.PaidAmount = &paid
		}
		resp.Entries[i] = entry
	}
	return resp
}

// JournalLineResponse is an unposted journal line
type JournalLineResponse struct {
	Order       int    `json:"order"`
	BookingDate string `json:"booking_date"`
	AccountCode string `json:"account_code"`
	AccountName string `json:"account_name"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Memo        string `json:"memo"`
}

func NewJournalLineResponses(lines []accounting.JournalLine) []JournalLineResponse {
	out := make([]JournalLineResponse, len(lines))
	for i, l := range lines {
		out[i] = JournalLineResponse{
			Order:       l.Order,
			BookingDate: FormatDate(l.BookingDate),
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Debit:       Money(l.Debit),
			Credit:      Money(l.Credit),
			Memo:        l.Memo,
		}
	}
	return out
}

// PaymentPreviewResponse is the JSON response format for a payment preview
type PaymentPreviewResponse struct {
	PaymentAmount   string                  `json:"payment_amount"`
	SelectedTotal   string                  `json:"selected_total"`
	Delta           string                  `json:"delta"`
	Residual        accounting.ResidualKind `json:"residual"`
	BookingDate     string                  `json:"booking_date"`
	SelectedPeriods []string                `json:"selected_periods"`
	TotalDebit      string                  `json:"total_debit"`
	TotalCredit     string                  `json:"total_credit"`
	Balanced        bool                    `json:"balanced"`
	Entries         []JournalLineResponse   `json:"entries"`
}

func NewPaymentPreviewResponse(alloc *accounting.Allocation, lines []accounting.JournalLine) PaymentPreviewResponse {
	check := accounting.CheckBalance(lines)
	return PaymentPreviewResponse{
		PaymentAmount:   Money(alloc.PaymentAmount),
		SelectedTotal:   Money(alloc.SelectedTotal),
		Delta:           Money(alloc.Delta),
		Residual:        alloc.Residual,
		BookingDate:     FormatDate(alloc.BookingDate),
		SelectedPeriods: alloc.SelectedPeriods(),
		TotalDebit:      Money(check.TotalDebit),
		TotalCredit:     Money(check.TotalCredit),
		Balanced:        check.Balanced,
		Entries:         NewJournalLineResponses(lines),
	}
}
