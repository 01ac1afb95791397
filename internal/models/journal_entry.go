package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sjperalta/fintera-amortization/internal/accounting"
)

// JournalEntry is one posted line of a balanced journal batch
type JournalEntry struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	ContractID   uint            `gorm:"not null;index" json:"contract_id"`
	PaymentID    *uint           `gorm:"index" json:"payment_id,omitempty"`
	BatchID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"batch_id"`
	BookingDate  time.Time       `gorm:"type:date;not null;index" json:"booking_date"`
	AccountCode  string          `gorm:"size:10;not null;index" json:"account_code"`
	AccountName  string          `gorm:"size:100;not null" json:"account_name"`
	DebitAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"debit_amount"`
	CreditAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"credit_amount"`
	Memo         string          `gorm:"size:255" json:"memo"`
	EntryOrder   int             `gorm:"not null" json:"entry_order"`
	EntryType    EntryType       `gorm:"size:20;not null;index" json:"entry_type"`
	Audit        `gorm:"embedded"`
}

// TableName specifies the table name for GORM
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// NewJournalEntries converts a built batch into rows sharing one batch id.
func NewJournalEntries(contractID uint, paymentID *uint, batchID uuid.UUID, lines []accounting.JournalLine) []JournalEntry {
	out := make([]JournalEntry, len(lines))
	for i, l := range lines {
		entryType := EntryTypePayment
		if l.Kind == accounting.KindAmortization {
			entryType = EntryTypeAmortization
		}
		out[i] = JournalEntry{
			ContractID:   contractID,
			PaymentID:    paymentID,
			BatchID:      batchID,
			BookingDate:  l.BookingDate,
			AccountCode:  l.AccountCode,
			AccountName:  l.AccountName,
			DebitAmount:  l.Debit,
			CreditAmount: l.Credit,
			Memo:         l.Memo,
			EntryOrder:   l.Order,
			EntryType:    entryType,
		}
	}
	return out
}

// Line converts the row back into a journal line.
func (e *JournalEntry) Line() accounting.JournalLine {
	kind := accounting.KindPayment
	if e.EntryType == EntryTypeAmortization {
		kind = accounting.KindAmortization
	}
	return accounting.JournalLine{
		Order:       e.EntryOrder,
		BookingDate: e.BookingDate,
		AccountCode: e.AccountCode,
		AccountName: e.AccountName,
		Debit:       e.DebitAmount,
		Credit:      e.CreditAmount,
		Memo:        e.Memo,
		Kind:        kind,
	}
}

// JournalEntryResponse is the JSON response format for journal entries
type JournalEntryResponse struct {
	ID           uint      `json:"id"`
	ContractID   uint      `json:"contract_id"`
	PaymentID    *uint     `json:"payment_id,omitempty"`
	BatchID      uuid.UUID `json:"batch_id"`
	BookingDate  string    `json:"booking_date"`
	AccountCode  string    `json:"account_code"`
	AccountName  string    `json:"account_name"`
	DebitAmount  string    `json:"debit_amount"`
	CreditAmount string    `json:"credit_amount"`
	Memo         string    `json:"memo"`
	EntryOrder   int       `json:"entry_order"`
	EntryType    EntryType `json:"entry_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToResponse converts JournalEntry to JournalEntryResponse
func (e *JournalEntry) ToResponse() JournalEntryResponse {
	return JournalEntryResponse{
		ID:           e.ID,
		ContractID:   e.ContractID,
		PaymentID:    e.PaymentID,
		BatchID:      e.BatchID,
		BookingDate:  FormatDate(e.BookingDate),
		AccountCode:  e.AccountCode,
		AccountName:  e.AccountName,
		DebitAmount:  Money(e.DebitAmount),
		CreditAmount: Money(e.CreditAmount),
		Memo:         e.Memo,
		EntryOrder:   e.EntryOrder,
		EntryType:    e.EntryType,
		CreatedAt:    e.CreatedAt,
	}
}
