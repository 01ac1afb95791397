package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"gorm.io/gorm"
)

// AmortizationEntryRepository defines the interface for schedule data access
type AmortizationEntryRepository interface {
	CreateBatch(ctx context.Context, entries []models.AmortizationEntry) error
	FindByContract(ctx context.Context, contractID uint) ([]models.AmortizationEntry, error)
	Update(ctx context.Context, entry *models.AmortizationEntry) error
	DeleteByContract(ctx context.Context, contractID uint) error
	SumByAccountingPeriod(ctx context.Context, period string) (decimal.Decimal, error)
	SumPending(ctx context.Context) (decimal.Decimal, error)
	PeriodTotals(ctx context.Context, from, to string) ([]PeriodTotal, error)
}

// PeriodTotal is the scheduled and paid amount of one accounting period
type PeriodTotal struct {
	Period    string
	Scheduled decimal.Decimal
	Paid      decimal.Decimal
}

type amortizationEntryRepository struct {
	db *gorm.DB
}

// NewAmortizationEntryRepository creates a new amortization entry repository
func NewAmortizationEntryRepository(db *gorm.DB) AmortizationEntryRepository {
	return &amortizationEntryRepository{db: db}
}

func (r *amortizationEntryRepository) CreateBatch(ctx context.Context, entries []models.AmortizationEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(entries, 100).Error
}

// FindByContract returns the schedule ordered by amortization period
func (r *amortizationEntryRepository) FindByContract(ctx context.Context, contractID uint) ([]models.AmortizationEntry, error) {
	var entries []models.AmortizationEntry
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("amortization_period ASC").
		Find(&entries).Error
	return entries, err
}

func (r *amortizationEntryRepository) Update(ctx context.Context, entry *models.AmortizationEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *amortizationEntryRepository) DeleteByContract(ctx context.Context, contractID uint) error {
	return r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Delete(&models.AmortizationEntry{}).Error
}

// SumByAccountingPeriod totals the amounts booked into one accounting period
func (r *amortizationEntryRepository) SumByAccountingPeriod(ctx context.Context, period string) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.AmortizationEntry{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("accounting_period = ?", period).
		Scan(&result).Error
	return result.Total, err
}

// SumPending totals what is still owed on PENDING periods
func (r *amortizationEntryRepository) SumPending(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.AmortizationEntry{}).
		Select("COALESCE(SUM(amount - paid_amount), 0) AS total").
		Where("payment_status = ?", models.AmortizationStatusPending).
		Scan(&result).Error
	return result.Total, err
}

// PeriodTotals groups scheduled and paid amounts by accounting period in [from, to]
func (r *amortizationEntryRepository) PeriodTotals(ctx context.Context, from, to string) ([]PeriodTotal, error) {
	var totals []PeriodTotal
	err := r.db.WithContext(ctx).
		Model(&models.AmortizationEntry{}).
		Select("accounting_period AS period, COALESCE(SUM(amount), 0) AS scheduled, COALESCE(SUM(paid_amount), 0) AS paid").
		Where("accounting_period BETWEEN ? AND ?", from, to).
		Group("accounting_period").
		Order("accounting_period ASC").
		Scan(&totals).Error
	return totals, err
}
