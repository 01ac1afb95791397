package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sjperalta/fintera-amortization/internal/accounting"
)

// Contract is a prepaid service contract amortized monthly over its validity
type Contract struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_amount"`
	Currency    string          `gorm:"size:3;default:HNL;not null" json:"currency"`
	StartDate   time.Time       `gorm:"type:date;not null;index" json:"start_date"`
	EndDate     time.Time       `gorm:"type:date;not null;index" json:"end_date"`
	VendorName  string          `gorm:"size:255;not null;index" json:"vendor_name"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(5,4);not null;default:0" json:"tax_rate"`
	Description *string         `gorm:"type:text" json:"description"`
	Audit       `gorm:"embedded"`

	// Associations
	AmortizationEntries []AmortizationEntry `gorm:"foreignKey:ContractID" json:"amortization_entries,omitempty"`
}

// TableName specifies the table name for Contract
func (Contract) TableName() string {
	return "contracts"
}

var (
	ErrContractAmount = errors.New("el monto del contrato debe ser al menos 0.01")
	ErrContractDates  = errors.New("la fecha de fin es anterior a la fecha de inicio")
	ErrContractVendor = errors.New("el proveedor es obligatorio")
)

// Validate checks the invariants of a contract before it is persisted.
func (c *Contract) Validate() error {
	if c.TotalAmount.LessThan(decimal.New(1, -2)) {
		return ErrContractAmount
	}
	if c.EndDate.Before(c.StartDate) {
		return ErrContractDates
	}
	if c.VendorName == "" {
		return ErrContractVendor
	}
	return nil
}

func (c *Contract) StartPeriod() accounting.YearMonth {
	return accounting.YearMonthOf(c.StartDate)
}

func (c *Contract) EndPeriod() accounting.YearMonth {
	return accounting.YearMonthOf(c.EndDate)
}

// IsActive reports whether asOf falls inside the contract window.
func (c *Contract) IsActive(asOf time.Time) bool {
	ym := accounting.YearMonthOf(asOf)
	return !ym.Before(c.StartPeriod()) && !ym.After(c.EndPeriod())
}

// ContractResponse is the JSON response format for contracts
type ContractResponse struct {
	ID          uint                        `json:"id"`
	TotalAmount string                      `json:"total_amount"`
	Currency    string                      `json:"currency"`
	StartDate   string                      `json:"start_date"`
	EndDate     string                      `json:"end_date"`
	VendorName  string                      `json:"vendor_name"`
	TaxRate     string                      `json:"tax_rate"`
	Description *string                     `json:"description"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	CreatedBy   string                      `json:"created_by"`
	UpdatedBy   string                      `json:"updated_by"`
	Entries     []AmortizationEntryResponse `json:"amortization_entries,omitempty"`
}

// ToResponse converts Contract to ContractResponse
func (c *Contract) ToResponse() ContractResponse {
	resp := ContractResponse{
		ID:          c.ID,
		TotalAmount: Money(c.TotalAmount),
		Currency:    c.Currency,
		StartDate:   FormatDate(c.StartDate),
		EndDate:     FormatDate(c.EndDate),
		VendorName:  c.VendorName,
		TaxRate:     c.TaxRate.StringFixed(4),
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		CreatedBy:   c.CreatedBy,
		UpdatedBy:   c.UpdatedBy,
	}
	for i := range c.AmortizationEntries {
		resp.Entries = append(resp.Entries, c.AmortizationEntries[i].ToResponse())
	}
	return resp
}

// Money renders an amount with exactly two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate renders a date as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
