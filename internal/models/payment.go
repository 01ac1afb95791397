package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is a vendor payment allocated to one or more scheduled periods
type Payment struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ContractID      uint            `gorm:"not null;index" json:"contract_id"`
	PaymentAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"payment_amount"`
	Currency        string          `gorm:"size:3;default:HNL;not null" json:"currency"`
	BookingDate     time.Time       `gorm:"type:date;not null;index" json:"booking_date"`
	SelectedPeriods string          `gorm:"type:text;not null;default:''" json:"selected_periods"` // comma separated yyyy-MM
	Status          PaymentStatus   `gorm:"size:20;not null;default:DRAFT;index" json:"status"`
	ResidualKind    string          `gorm:"size:10;not null;default:NONE" json:"residual_kind"`
	ResidualAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"residual_amount"`
	JournalBatchID  *uuid.UUID      `gorm:"type:uuid" json:"journal_batch_id"`
	CancelledAt     *time.Time      `json:"cancelled_at"`
	Audit           `gorm:"embedded"`

	// Associations
	Contract Contract `gorm:"foreignKey:ContractID" json:"-"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// Periods splits SelectedPeriods.
func (p *Payment) Periods() []string {
	if strings.TrimSpace(p.SelectedPeriods) == "" {
		return nil
	}
	parts := strings.Split(p.SelectedPeriods, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SetPeriods joins periods into SelectedPeriods.
func (p *Payment) SetPeriods(periods []string) {
	p.SelectedPeriods = strings.Join(periods, ",")
}

// MayConfirm returns true if payment can be confirmed
func (p *Payment) MayConfirm() bool {
	return p.Status == PaymentStatusDraft
}

// MayCancel returns true if payment can be cancelled
func (p *Payment) MayCancel() bool {
	return p.Status == PaymentStatusDraft || p.Status == PaymentStatusConfirmed
}

// PaymentResponse is the JSON response format for payments
type PaymentResponse struct {
	ID              uint          `json:"id"`
	ContractID      uint          `json:"contract_id"`
	PaymentAmount   string        `json:"payment_amount"`
	Currency        string        `json:"currency"`
	BookingDate     string        `json:"booking_date"`
	SelectedPeriods []string      `json:"selected_periods"`
	Status          PaymentStatus `json:"status"`
	ResidualKind    string        `json:"residual_kind"`
	ResidualAmount  string        `json:"residual_amount"`
	JournalBatchID  *uuid.UUID    `json:"journal_batch_id"`
	CancelledAt     *time.Time    `json:"cancelled_at"`
	CreatedAt       time.Time     `json:"created_at"`
	CreatedBy       string        `json:"created_by"`
	UpdatedBy       string        `json:"updated_by"`
}

// ToResponse converts Payment to PaymentResponse
func (p *Payment) ToResponse() PaymentResponse {
	periods := p.Periods()
	if periods == nil {
		periods = []string{}
	}
	return PaymentResponse{
		ID:              p.ID,
		ContractID:      p.ContractID,
		PaymentAmount:   Money(p.PaymentAmount),
		Currency:        p.Currency,
		BookingDate:     FormatDate(p.BookingDate),
		SelectedPeriods: periods,
		Status:          p.Status,
		ResidualKind:    p.ResidualKind,
		ResidualAmount:  Money(p.ResidualAmount),
		JournalBatchID:  p.JournalBatchID,
		CancelledAt:     p.CancelledAt,
		CreatedAt:       p.CreatedAt,
		CreatedBy:       p.CreatedBy,
		UpdatedBy:       p.UpdatedBy,
	}
}
