package models

import (
	"time"
)

// Audit holds creation/update metadata shared by every persisted entity.
// Services stamp it explicitly.
type Audit struct {
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	CreatedBy string    `gorm:"size:100;not null" json:"created_by"`
	UpdatedBy string    `gorm:"size:100;not null" json:"updated_by"`
}

// StampCreate sets both creation and update fields.
func (a *Audit) StampCreate(actor string, now time.Time) {
	a.CreatedAt = now
	a.CreatedBy = actor
	a.UpdatedAt = now
	a.UpdatedBy = actor
}

// StampUpdate sets the update fields only.
func (a *Audit) StampUpdate(actor string, now time.Time) {
	a.UpdatedAt = now
	a.UpdatedBy = actor
}

// OperationLog is an append-only audit trail entry
type OperationLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ContractID  *uint     `gorm:"index" json:"contract_id"`
	PaymentID   *uint     `gorm:"index" json:"payment_id,omitempty"`
	Action      string    `gorm:"size:50;not null;index" json:"action"`
	Description string    `gorm:"type:text" json:"description"`
	Operator    string    `gorm:"size:100;not null" json:"operator"`
	RequestID   string    `gorm:"size:36" json:"request_id,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for OperationLog
func (OperationLog) TableName() string {
	return "operation_logs"
}

// Operation log actions
const (
	ActionContractCreated    = "CONTRACT_CREATED"
	ActionContractUpdated    = "CONTRACT_UPDATED"
	ActionPaymentExecuted    = "PAYMENT_EXECUTED"
	ActionPaymentCancelled   = "PAYMENT_CANCELLED"
	ActionAmortizationPosted = "AMORTIZATION_POSTED"
)
