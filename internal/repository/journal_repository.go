package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/models"

	"gorm.io/gorm"
)

// JournalRepository defines the interface for journal entry data access
type JournalRepository interface {
	CreateBatch(ctx context.Context, entries []models.JournalEntry) error
	FindByContract(ctx context.Context, contractID uint) ([]models.JournalEntry, error)
	FindByPayment(ctx context.Context, paymentID uint) ([]models.JournalEntry, error)
	ExistsForContract(ctx context.Context, contractID uint, entryType models.EntryType) (bool, error)
	Totals(ctx context.Context, contractID uint) (debit, credit decimal.Decimal, err error)
}

// journalRepository handles database operations for journal entries
type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

// CreateBatch inserts every line of a batch in one statement
func (r *journalRepository) CreateBatch(ctx context.Context, entries []models.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

// FindByContract retrieves all journal entries for a contract
func (r *journalRepository) FindByContract(ctx context.Context, contractID uint) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("booking_date ASC, created_at ASC, entry_order ASC").
		Find(&entries).Error
	return entries, err
}

// FindByPayment retrieves the journal entries posted for a payment
func (r *journalRepository) FindByPayment(ctx context.Context, paymentID uint) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("created_at ASC, entry_order ASC").
		Find(&entries).Error
	return entries, err
}

// ExistsForContract reports whether a batch of the given type was already posted
func (r *journalRepository) ExistsForContract(ctx context.Context, contractID uint, entryType models.EntryType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.JournalEntry{}).
		Where("contract_id = ? AND entry_type = ?", contractID, entryType).
		Count(&count).Error
	return count > 0, err
}

// Totals sums both sides of every posted line of a contract
func (r *journalRepository) Totals(ctx context.Context, contractID uint) (decimal.Decimal, decimal.Decimal, error) {
	var result struct {
		Debit  decimal.Decimal
		Credit decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&models.JournalEntry{}).
		Select("COALESCE(SUM(debit_amount), 0) AS debit, COALESCE(SUM(credit_amount), 0) AS credit").
		Where("contract_id = ?", contractID).
		Scan(&result).Error

	return result.Debit, result.Credit, err
}
