package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/repository"
	"github.com/sjperalta/fintera-amortization/pkg/logger"
)

type JournalService struct {
	repos           *repository.Repositories
	amortizationSvc *AmortizationService
	auditSvc        *AuditService
	builder         *accounting.JournalBuilder
	settings        Settings
}

func NewJournalService(
	repos *repository.Repositories,
	amortizationSvc *AmortizationService,
	auditSvc *AuditService,
	resolver accounting.AccountResolver,
	settings Settings,
) *JournalService {
	return &JournalService{
		repos:           repos,
		amortizationSvc: amortizationSvc,
		auditSvc:        auditSvc,
		builder:         accounting.NewJournalBuilder(resolver),
		settings:        settings,
	}
}

// PreviewAmortization returns the accrual batch of a contract without posting it
func (s *JournalService) PreviewAmortization(ctx context.Context, contractID uint) ([]accounting.JournalLine, error) {
	_, schedule, _, err := s.amortizationSvc.PersistedSchedule(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return s.builder.BuildAccruals(schedule, s.bookingDay()), nil
}

// GenerateAmortization posts the accrual batch of a contract. A contract is
// accrued once; a second call returns ErrAlreadyPosted.
func (s *JournalService) GenerateAmortization(ctx context.Context, contractID uint, operator string) ([]models.JournalEntry, error) {
	lines, err := s.PreviewAmortization(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if balance := accounting.CheckBalance(lines); !balance.Balanced {
		return nil, fmt.Errorf("accrual batch is unbalanced by %s", balance.Difference.StringFixed(2))
	}

	now := s.settings.now()
	batchID := uuid.New()
	entries := models.NewJournalEntries(contractID, nil, batchID, lines)
	for i := range entries {
		entries[i].StampCreate(operator, now)
	}

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		posted, err := tx.Journal.ExistsForContract(ctx, contractID, models.EntryTypeAmortization)
		if err != nil {
			return fmt.Errorf("failed to check accrual batch: %w", err)
		}
		if posted {
			return ErrAlreadyPosted
		}
		if err := tx.Journal.CreateBatch(ctx, entries); err != nil {
			return fmt.Errorf("failed to create accrual entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("amortization posted", "contract_id", contractID, "batch_id", batchID, "lines", len(entries))
	s.auditSvc.Record(ctx, models.OperationLog{
		ContractID:  &contractID,
		Action:      models.ActionAmortizationPosted,
		Description: fmt.Sprintf("Asientos de amortización generados (%d líneas, lote %s)", len(entries), batchID),
		Operator:    operator,
	})

	return entries, nil
}

func (s *JournalService) ListByContract(ctx context.Context, contractID uint) ([]models.JournalEntry, error) {
	if _, err := s.repos.Contract.FindByID(ctx, contractID); err != nil {
		return nil, notFound(err)
	}
	return s.repos.Journal.FindByContract(ctx, contractID)
}

// Balance totals every posted line of a contract. Each batch balances on its
// own, so the ledger as a whole must too.
func (s *JournalService) Balance(ctx context.Context, contractID uint) (accounting.BalanceCheck, error) {
	debit, credit, err := s.repos.Journal.Totals(ctx, contractID)
	if err != nil {
		return accounting.BalanceCheck{}, fmt.Errorf("failed to total journal entries: %w", err)
	}
	diff := debit.Sub(credit)
	return accounting.BalanceCheck{
		TotalDebit:  debit,
		TotalCredit: credit,
		Difference:  diff,
		Balanced:    diff.IsZero(),
	}, nil
}

func (s *JournalService) bookingDay() int {
	if s.settings.BookingDay < 1 {
		return accounting.DefaultBookingDay
	}
	return s.settings.BookingDay
}
