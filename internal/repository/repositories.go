package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	db *gorm.DB

	Contract     ContractRepository
	Amortization AmortizationEntryRepository
	Payment      PaymentRepository
	Journal      JournalRepository
	OperationLog OperationLogRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		Contract:     NewContractRepository(db),
		Amortization: NewAmortizationEntryRepository(db),
		Payment:      NewPaymentRepository(db),
		Journal:      NewJournalRepository(db),
		OperationLog: NewOperationLogRepository(db),
	}
}

// Transaction runs fn with repositories bound to a single database
// transaction. Repositories assembled without a database (as in unit tests)
// run fn directly against themselves.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
