package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sjperalta/fintera-amortization/internal/accounting"
)

// AmortizationEntry is one persisted month of a contract schedule
type AmortizationEntry struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	ContractID         uint               `gorm:"not null;uniqueIndex:idx_amortization_contract_period" json:"contract_id"`
	AmortizationPeriod string             `gorm:"size:7;not null;uniqueIndex:idx_amortization_contract_period" json:"amortization_period"`
	AccountingPeriod   string             `gorm:"size:7;not null;index" json:"accounting_period"`
	Amount             decimal.Decimal    `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaidAmount         decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0" json:"paid_amount"`
	PaymentStatus      AmortizationStatus `gorm:"size:20;not null;default:PENDING;index" json:"payment_status"`
	PaymentDate        *time.Time         `gorm:"type:date" json:"payment_date"`
	PeriodDate         time.Time          `gorm:"type:date;not null" json:"period_date"`
	Audit              `gorm:"embedded"`
}

// TableName specifies the table name for AmortizationEntry
func (AmortizationEntry) TableName() string {
	return "amortization_entries"
}

// NewAmortizationEntry builds a PENDING row from a schedule entry.
func NewAmortizationEntry(contractID uint, e accounting.ScheduleEntry) AmortizationEntry {
	return AmortizationEntry{
		ContractID:         contractID,
		AmortizationPeriod: e.AmortizationPeriod.String(),
		AccountingPeriod:   e.AccountingPeriod.String(),
		Amount:             e.Amount,
		PaidAmount:         decimal.Zero,
		PaymentStatus:      AmortizationStatusPending,
		PeriodDate:         e.AmortizationPeriod.FirstDay(),
	}
}

// Period parses AmortizationPeriod.
func (e *AmortizationEntry) Period() (accounting.YearMonth, error) {
	return accounting.ParseYearMonth(e.AmortizationPeriod)
}

// RemainingAmount is what is still owed on the period, never negative.
func (e *AmortizationEntry) RemainingAmount() decimal.Decimal {
	rem := e.Amount.Sub(e.PaidAmount)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// IsSettled returns true once the period is COMPLETED
func (e *AmortizationEntry) IsSettled() bool {
	return e.PaymentStatus == AmortizationStatusCompleted
}

// ApplyPayment adds up to amount to PaidAmount and returns what was consumed.
// Without allowOverpay the paid amount is capped at Amount. PaymentDate is
// only set on the first payment.
func (e *AmortizationEntry) ApplyPayment(amount decimal.Decimal, date time.Time, allowOverpay bool) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	applied := amount
	if !allowOverpay {
		applied = decimal.Min(amount, e.RemainingAmount())
	}
	e.PaidAmount = e.PaidAmount.Add(applied)
	if e.PaymentDate == nil && applied.IsPositive() {
		d := date
		e.PaymentDate = &d
	}
	return applied
}

// AmortizationEntryResponse is the JSON response format for amortization entries
type AmortizationEntryResponse struct {
	ID                 uint               `json:"id"`
	ContractID         uint               `json:"contract_id"`
	AmortizationPeriod string             `json:"amortization_period"`
	AccountingPeriod   string             `json:"accounting_period"`
	Amount             string             `json:"amount"`
	PaidAmount         string             `json:"paid_amount"`
	RemainingAmount    string             `json:"remaining_amount"`
	PaymentStatus      AmortizationStatus `json:"payment_status"`
	PaymentDate        *string            `json:"payment_date"`
}

// ToResponse converts AmortizationEntry to AmortizationEntryResponse
func (e *AmortizationEntry) ToResponse() AmortizationEntryResponse {
	resp := AmortizationEntryResponse{
		ID:                 e.ID,
		ContractID:         e.ContractID,
		AmortizationPeriod: e.AmortizationPeriod,
		AccountingPeriod:   e.AccountingPeriod,
		Amount:             Money(e.Amount),
		PaidAmount:         Money(e.PaidAmount),
		RemainingAmount:    Money(e.RemainingAmount()),
		PaymentStatus:      e.PaymentStatus,
	}
	if e.PaymentDate != nil {
		d := FormatDate(*e.PaymentDate)
		resp.PaymentDate = &d
	}
	return resp
}
