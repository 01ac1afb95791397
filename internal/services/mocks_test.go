package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/repository"
	"gorm.io/gorm"
)

// memStore backs the in-memory repositories used by the service tests
type memStore struct {
	mu        sync.Mutex
	nextID    uint
	contracts map[uint]models.Contract
	entries   map[uint]models.AmortizationEntry
	payments  map[uint]models.Payment
	journal   []models.JournalEntry
	logs      []models.OperationLog
}

func newMemStore() *memStore {
	return &memStore{
		contracts: map[uint]models.Contract{},
		entries:   map[uint]models.AmortizationEntry{},
		payments:  map[uint]models.Payment{},
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memStore) repositories() *repository.Repositories {
	return &repository.Repositories{
		Contract:     &memContractRepo{s: s},
		Amortization: &memEntryRepo{s: s},
		Payment:      &memPaymentRepo{s: s},
		Journal:      &memJournalRepo{s: s},
		OperationLog: &memLogRepo{s: s},
	}
}

// Mock ContractRepository
type memContractRepo struct {
	repository.ContractRepository
	s *memStore
}

func (m *memContractRepo) FindByID(ctx context.Context, id uint) (*models.Contract, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	c, ok := m.s.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (m *memContractRepo) FindByIDWithEntries(ctx context.Context, id uint) (*models.Contract, error) {
	c, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.AmortizationEntries, _ = (&memEntryRepo{s: m.s}).FindByContract(ctx, id)
	return c, nil
}

func (m *memContractRepo) Create(ctx context.Context, contract *models.Contract) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	contract.ID = m.s.id()
	m.s.contracts[contract.ID] = *contract
	return nil
}

func (m *memContractRepo) Update(ctx context.Context, contract *models.Contract) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	c := *contract
	c.AmortizationEntries = nil
	m.s.contracts[contract.ID] = c
	return nil
}

func (m *memContractRepo) List(ctx context.Context, vendor string) ([]models.Contract, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []models.Contract
	for _, c := range m.s.contracts {
		if vendor == "" || strings.Contains(strings.ToLower(c.VendorName), strings.ToLower(vendor)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memContractRepo) CountActive(ctx context.Context, asOf time.Time) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var n int64
	for _, c := range m.s.contracts {
		if c.IsActive(asOf) {
			n++
		}
	}
	return n, nil
}

func (m *memContractRepo) VendorTotals(ctx context.Context) ([]repository.VendorTotal, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	byVendor := map[string]*repository.VendorTotal{}
	for _, c := range m.s.contracts {
		t, ok := byVendor[c.VendorName]
		if !ok {
			t = &repository.VendorTotal{VendorName: c.VendorName}
			byVendor[c.VendorName] = t
		}
		t.ContractCount++
		t.TotalAmount = t.TotalAmount.Add(c.TotalAmount)
	}
	out := make([]repository.VendorTotal, 0, len(byVendor))
	for _, t := range byVendor {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalAmount.GreaterThan(out[j].TotalAmount) })
	return out, nil
}

// Mock AmortizationEntryRepository
type memEntryRepo struct {
	repository.AmortizationEntryRepository
	s *memStore
}

func (m *memEntryRepo) CreateBatch(ctx context.Context, entries []models.AmortizationEntry) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i := range entries {
		entries[i].ID = m.s.id()
		m.s.entries[entries[i].ID] = entries[i]
	}
	return nil
}

func (m *memEntryRepo) FindByContract(ctx context.Context, contractID uint) ([]models.AmortizationEntry, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []models.AmortizationEntry
	for _, e := range m.s.entries {
		if e.ContractID == contractID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AmortizationPeriod < out[j].AmortizationPeriod })
	return out, nil
}

func (m *memEntryRepo) Update(ctx context.Context, entry *models.AmortizationEntry) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.entries[entry.ID] = *entry
	return nil
}

func (m *memEntryRepo) DeleteByContract(ctx context.Context, contractID uint) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for id, e := range m.s.entries {
		if e.ContractID == contractID {
			delete(m.s.entries, id)
		}
	}
	return nil
}

func (m *memEntryRepo) SumByAccountingPeriod(ctx context.Context, period string) (decimal.Decimal, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	sum := decimal.Zero
	for _, e := range m.s.entries {
		if e.AccountingPeriod == period {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (m *memEntryRepo) SumPending(ctx context.Context) (decimal.Decimal, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	sum := decimal.Zero
	for _, e := range m.s.entries {
		if !e.IsSettled() {
			sum = sum.Add(e.RemainingAmount())
		}
	}
	return sum, nil
}

func (m *memEntryRepo) PeriodTotals(ctx context.Context, from, to string) ([]repository.PeriodTotal, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	byPeriod := map[string]*repository.PeriodTotal{}
	for _, e := range m.s.entries {
		if e.AccountingPeriod < from || e.AccountingPeriod > to {
			continue
		}
		t, ok := byPeriod[e.AccountingPeriod]
		if !ok {
			t = &repository.PeriodTotal{Period: e.AccountingPeriod}
			byPeriod[e.AccountingPeriod] = t
		}
		t.Scheduled = t.Scheduled.Add(e.Amount)
		t.Paid = t.Paid.Add(e.PaidAmount)
	}
	out := make([]repository.PeriodTotal, 0, len(byPeriod))
	for _, t := range byPeriod {
		out = append(out, *t)
	}
	return out, nil
}

// Mock PaymentRepository
type memPaymentRepo struct {
	repository.PaymentRepository
	s *memStore
}

func (m *memPaymentRepo) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	p, ok := m.s.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (m *memPaymentRepo) FindByContract(ctx context.Context, contractID uint) ([]models.Payment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []models.Payment
	for _, p := range m.s.payments {
		if p.ContractID == contractID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	payment.ID = m.s.id()
	m.s.payments[payment.ID] = *payment
	return nil
}

func (m *memPaymentRepo) Update(ctx context.Context, payment *models.Payment) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.payments[payment.ID] = *payment
	return nil
}

func (m *memPaymentRepo) HasConfirmed(ctx context.Context, contractID uint) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, p := range m.s.payments {
		if p.ContractID == contractID && p.Status == models.PaymentStatusConfirmed {
			return true, nil
		}
	}
	return false, nil
}

// Mock JournalRepository
type memJournalRepo struct {
	repository.JournalRepository
	s *memStore
}

func (m *memJournalRepo) CreateBatch(ctx context.Context, entries []models.JournalEntry) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i := range entries {
		entries[i].ID = m.s.id()
		m.s.journal = append(m.s.journal, entries[i])
	}
	return nil
}

func (m *memJournalRepo) FindByContract(ctx context.Context, contractID uint) ([]models.JournalEntry, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []models.JournalEntry
	for _, e := range m.s.journal {
		if e.ContractID == contractID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memJournalRepo) FindByPayment(ctx context.Context, paymentID uint) ([]models.JournalEntry, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []models.JournalEntry
	for _, e := range m.s.journal {
		if e.PaymentID != nil && *e.PaymentID == paymentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memJournalRepo) ExistsForContract(ctx context.Context, contractID uint, entryType models.EntryType) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, e := range m.s.journal {
		if e.ContractID == contractID && e.EntryType == entryType {
			return true, nil
		}
	}
	return false, nil
}

func (m *memJournalRepo) Totals(ctx context.Context, contractID uint) (decimal.Decimal, decimal.Decimal, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range m.s.journal {
		if e.ContractID == contractID {
			debit = debit.Add(e.DebitAmount)
			credit = credit.Add(e.CreditAmount)
		}
	}
	return debit, credit, nil
}

// Mock OperationLogRepository
type memLogRepo struct {
	repository.OperationLogRepository
	s *memStore
}

func (m *memLogRepo) Create(ctx context.Context, log *models.OperationLog) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	log.ID = m.s.id()
	m.s.logs = append(m.s.logs, *log)
	return nil
}

func (m *memLogRepo) FindByContract(ctx context.Context, contractID uint) ([]models.OperationLog, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []models.OperationLog
	for i := len(m.s.logs) - 1; i >= 0; i-- {
		if l := m.s.logs[i]; l.ContractID != nil && *l.ContractID == contractID {
			out = append(out, l)
		}
	}
	return out, nil
}

// testSettings pins the clock at now
func testSettings(now time.Time) Settings {
	return Settings{
		ResidualThreshold: decimal.NewFromInt(100),
		LapsedMode:        accounting.LapsedModePerMonth,
		BookingDay:        accounting.DefaultBookingDay,
		DefaultCurrency:   "HNL",
		ReportCacheTTL:    time.Minute,
		Now:               func() time.Time { return now },
	}
}

// newTestServices wires every service to an in-memory store. Audit writes
// run synchronously since no worker is given.
func newTestServices(now time.Time) (*Services, *memStore) {
	store := newMemStore()
	return NewServices(store.repositories(), nil, testSettings(now)), store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
