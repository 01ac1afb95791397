package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"gorm.io/gorm"
)

// ContractRepository defines the interface for contract data access
type ContractRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Contract, error)
	FindByIDWithEntries(ctx context.Context, id uint) (*models.Contract, error)
	Create(ctx context.Context, contract *models.Contract) error
	Update(ctx context.Context, contract *models.Contract) error
	List(ctx context.Context, vendor string) ([]models.Contract, error)
	CountActive(ctx context.Context, asOf time.Time) (int64, error)
	VendorTotals(ctx context.Context) ([]VendorTotal, error)
}

// VendorTotal aggregates contracts per vendor
type VendorTotal struct {
	VendorName    string
	ContractCount int64
	TotalAmount   decimal.Decimal
}

type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) FindByID(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) FindByIDWithEntries(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).
		Preload("AmortizationEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("amortization_period ASC")
		}).
		First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) Create(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Omit("AmortizationEntries").Create(contract).Error
}

func (r *contractRepository) Update(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Omit("AmortizationEntries").Save(contract).Error
}

// List returns every contract, newest first. An empty vendor disables the filter.
func (r *contractRepository) List(ctx context.Context, vendor string) ([]models.Contract, error) {
	var contracts []models.Contract
	db := r.db.WithContext(ctx).Model(&models.Contract{})
	if vendor != "" {
		db = db.Where("LOWER(vendor_name) LIKE LOWER(?)", "%"+vendor+"%")
	}
	err := db.Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}

// CountActive counts contracts whose window contains asOf
func (r *contractRepository) CountActive(ctx context.Context, asOf time.Time) (int64, error) {
	var count int64
	day := asOf.Format("2006-01-02")
	err := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("start_date <= ? AND end_date >= ?", day, day).
		Count(&count).Error
	return count, err
}

// VendorTotals groups contract amounts by vendor, largest first
func (r *contractRepository) VendorTotals(ctx context.Context) ([]VendorTotal, error) {
	var totals []VendorTotal
	err := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Select("vendor_name, COUNT(*) AS contract_count, COALESCE(SUM(total_amount), 0) AS total_amount").
		Group("vendor_name").
		Order("total_amount DESC").
		Scan(&totals).Error
	return totals, err
}
