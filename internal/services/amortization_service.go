package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/repository"
)

// CalculateInput carries explicit contract terms for a preview-only schedule
type CalculateInput struct {
	TotalAmount decimal.Decimal
	Currency    string
	StartDate   string
	EndDate     string
	// AsOf overrides the clock when set
	AsOf *time.Time
}

type AmortizationService struct {
	contractRepo repository.ContractRepository
	entryRepo    repository.AmortizationEntryRepository
	scheduler    *accounting.Scheduler
	settings     Settings
}

func NewAmortizationService(
	contractRepo repository.ContractRepository,
	entryRepo repository.AmortizationEntryRepository,
	settings Settings,
) *AmortizationService {
	return &AmortizationService{
		contractRepo: contractRepo,
		entryRepo:    entryRepo,
		scheduler:    accounting.NewScheduler(settings.LapsedMode),
		settings:     settings,
	}
}

// Calculate schedules explicit terms. Entry ids are always nil.
func (s *AmortizationService) Calculate(in CalculateInput) (*accounting.Schedule, error) {
	asOf := s.settings.now()
	if in.AsOf != nil {
		asOf = *in.AsOf
	}
	return s.scheduler.Schedule(in.TotalAmount, s.settings.currency(in.Currency), in.StartDate, in.EndDate, asOf)
}

// CalculateByContract re-schedules a persisted contract and merges the ids,
// statuses and paid amounts of its stored entries by period.
func (s *AmortizationService) CalculateByContract(ctx context.Context, contractID uint, asOf *time.Time) (*accounting.Schedule, error) {
	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, notFound(err)
	}

	at := s.settings.now()
	if asOf != nil {
		at = *asOf
	}

	schedule, err := s.scheduler.ScheduleRange(contract.TotalAmount, contract.Currency, contract.StartPeriod(), contract.EndPeriod(), at)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule contract %d: %w", contractID, err)
	}

	entries, err := s.entryRepo.FindByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to load amortization entries: %w", err)
	}
	existing, err := existingEntries(entries)
	if err != nil {
		return nil, err
	}
	schedule.MergeExisting(existing)
	return schedule, nil
}

// PersistedSchedule rebuilds the schedule from the stored entries of a
// contract. Payments are allocated against these amounts, not a fresh split.
func (s *AmortizationService) PersistedSchedule(ctx context.Context, contractID uint) (*models.Contract, *accounting.Schedule, []models.AmortizationEntry, error) {
	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, nil, nil, notFound(err)
	}
	entries, err := s.entryRepo.FindByContract(ctx, contractID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load amortization entries: %w", err)
	}
	schedule, err := scheduleFromEntries(contract, entries, s.settings.now())
	if err != nil {
		return nil, nil, nil, err
	}
	return contract, schedule, entries, nil
}

func existingEntries(entries []models.AmortizationEntry) ([]accounting.ExistingEntry, error) {
	out := make([]accounting.ExistingEntry, 0, len(entries))
	for _, e := range entries {
		period, err := e.Period()
		if err != nil {
			return nil, fmt.Errorf("amortization entry %d: %w", e.ID, err)
		}
		out = append(out, accounting.ExistingEntry{
			ID:         e.ID,
			Period:     period,
			Status:     string(e.PaymentStatus),
			PaidAmount: e.PaidAmount,
		})
	}
	return out, nil
}

func scheduleFromEntries(contract *models.Contract, entries []models.AmortizationEntry, asOf time.Time) (*accounting.Schedule, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: contract %d has no amortization entries", accounting.ErrPreconditionViolation, contract.ID)
	}

	schedule := &accounting.Schedule{
		TotalAmount: contract.TotalAmount,
		Currency:    contract.Currency,
		Start:       contract.StartPeriod(),
		End:         contract.EndPeriod(),
		Scenario:    accounting.Classify(asOf, contract.StartPeriod(), contract.EndPeriod()),
		GeneratedAt: asOf,
		Entries:     make([]accounting.ScheduleEntry, 0, len(entries)),
	}
	for _, e := range entries {
		period, err := e.Period()
		if err != nil {
			return nil, fmt.Errorf("amortization entry %d: %w", e.ID, err)
		}
		booked, err := accounting.ParseYearMonth(e.AccountingPeriod)
		if err != nil {
			return nil, fmt.Errorf("amortization entry %d: %w", e.ID, err)
		}
		id, status, paid := e.ID, string(e.PaymentStatus), e.PaidAmount
		schedule.Entries = append(schedule.Entries, accounting.ScheduleEntry{
			ID:                 &id,
			AmortizationPeriod: period,
			AccountingPeriod:   booked,
			Amount:             e.Amount,
			Status:             &status,
			PaidAmount:         &paid,
		})
	}
	return schedule, nil
}
