package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/repository"
	"github.com/sjperalta/fintera-amortization/internal/statemachine"
	"github.com/sjperalta/fintera-amortization/pkg/logger"
)

const reversalMemoPrefix = "Anulación: "

// PreviewInput is a payment matched against a schedule supplied by the caller
type PreviewInput struct {
	Schedule        *accounting.Schedule
	PaymentAmount   decimal.Decimal
	BookingDate     time.Time
	SelectedPeriods []string
}

// PaymentPreview is the allocation of a payment and the journal batch it would post
type PaymentPreview struct {
	Allocation *accounting.Allocation
	Lines      []accounting.JournalLine
	Balance    accounting.BalanceCheck
}

// ExecuteInput is a payment to post against a persisted contract
type ExecuteInput struct {
	PaymentAmount   decimal.Decimal
	Currency        string
	BookingDate     *time.Time
	SelectedPeriods []string
}

// PaymentResult is what Execute persisted
type PaymentResult struct {
	Payment    *models.Payment
	Allocation *accounting.Allocation
	Journal    []models.JournalEntry
	Entries    []models.AmortizationEntry
}

type PaymentService struct {
	repos           *repository.Repositories
	amortizationSvc *AmortizationService
	auditSvc        *AuditService
	allocator       *accounting.Allocator
	builder         *accounting.JournalBuilder
	settings        Settings
}

func NewPaymentService(
	repos *repository.Repositories,
	amortizationSvc *AmortizationService,
	auditSvc *AuditService,
	resolver accounting.AccountResolver,
	settings Settings,
) *PaymentService {
	return &PaymentService{
		repos:           repos,
		amortizationSvc: amortizationSvc,
		auditSvc:        auditSvc,
		allocator:       accounting.NewAllocator(settings.ResidualThreshold),
		builder:         accounting.NewJournalBuilder(resolver),
		settings:        settings,
	}
}

// Preview allocates a payment without touching the database. A zero booking
// date means today.
func (s *PaymentService) Preview(in PreviewInput) (*PaymentPreview, error) {
	if in.BookingDate.IsZero() {
		in.BookingDate = dateOnly(s.settings.now())
	}
	alloc, err := s.allocator.Preview(in.Schedule, in.PaymentAmount, in.BookingDate, in.SelectedPeriods)
	if err != nil {
		return nil, err
	}
	lines := s.builder.Build(alloc, in.BookingDate)
	balance := accounting.CheckBalance(lines)
	if !balance.Balanced {
		return nil, fmt.Errorf("payment batch is unbalanced by %s", balance.Difference.StringFixed(2))
	}
	return &PaymentPreview{Allocation: alloc, Lines: lines, Balance: balance}, nil
}

// Execute posts a payment against the stored schedule of a contract. The
// payment, its journal batch and the settled periods are written in one
// transaction.
func (s *PaymentService) Execute(ctx context.Context, contractID uint, in ExecuteInput, operator string) (*PaymentResult, error) {
	contract, schedule, entries, err := s.amortizationSvc.PersistedSchedule(ctx, contractID)
	if err != nil {
		return nil, err
	}

	now := s.settings.now()
	bookingDate := dateOnly(now)
	if in.BookingDate != nil {
		bookingDate = dateOnly(*in.BookingDate)
	}

	preview, err := s.Preview(PreviewInput{
		Schedule:        schedule,
		PaymentAmount:   in.PaymentAmount,
		BookingDate:     bookingDate,
		SelectedPeriods: in.SelectedPeriods,
	})
	if err != nil {
		return nil, err
	}
	alloc := preview.Allocation

	selected, err := selectedRows(entries, alloc.SelectedPeriods())
	if err != nil {
		return nil, err
	}

	currency := contract.Currency
	if in.Currency != "" {
		currency = in.Currency
	}
	batchID := uuid.New()
	payment := &models.Payment{
		ContractID:     contract.ID,
		PaymentAmount:  alloc.PaymentAmount,
		Currency:       currency,
		BookingDate:    bookingDate,
		Status:         models.PaymentStatusDraft,
		ResidualKind:   string(alloc.Residual),
		ResidualAmount: alloc.Delta,
		JournalBatchID: &batchID,
	}
	payment.SetPeriods(alloc.SelectedPeriods())
	payment.StampCreate(operator, now)

	if err := statemachine.NewPaymentFSM(payment).Confirm(ctx); err != nil {
		return nil, err
	}
	if err := s.applyToEntries(ctx, selected, alloc.PaymentAmount, bookingDate, operator, now); err != nil {
		return nil, err
	}

	var journal []models.JournalEntry
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Payment.Create(ctx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		journal = models.NewJournalEntries(contract.ID, &payment.ID, batchID, preview.Lines)
		for i := range journal {
			journal[i].StampCreate(operator, now)
		}
		if err := tx.Journal.CreateBatch(ctx, journal); err != nil {
			return fmt.Errorf("failed to create journal entries: %w", err)
		}

		for i := range selected {
			if err := tx.Amortization.Update(ctx, &selected[i]); err != nil {
				return fmt.Errorf("failed to update amortization entry %s: %w", selected[i].AmortizationPeriod, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("payment executed",
		"payment_id", payment.ID,
		"contract_id", contract.ID,
		"amount", models.Money(payment.PaymentAmount),
		"residual", alloc.Residual,
		"periods", payment.SelectedPeriods)

	description := fmt.Sprintf("Pago de %s %s aplicado a [%s], residual %s %s",
		models.Money(payment.PaymentAmount), payment.Currency, payment.SelectedPeriods, alloc.Residual, models.Money(alloc.Delta))
	s.auditSvc.Record(ctx, models.OperationLog{
		ContractID:  &contract.ID,
		PaymentID:   &payment.ID,
		Action:      models.ActionPaymentExecuted,
		Description: description,
		Operator:    operator,
	})

	return &PaymentResult{Payment: payment, Allocation: alloc, Journal: journal, Entries: selected}, nil
}

// applyToEntries spreads amount over the selected periods in order. Each
// period is capped at its amount; with AllowOverpay the remainder lands on
// the last period. Every selected period is settled.
func (s *PaymentService) applyToEntries(ctx context.Context, selected []models.AmortizationEntry, amount decimal.Decimal, bookingDate time.Time, operator string, now time.Time) error {
	remaining := amount
	for i := range selected {
		e := &selected[i]
		remaining = remaining.Sub(e.ApplyPayment(remaining, bookingDate, false))
		if e.PaymentDate == nil {
			d := bookingDate
			e.PaymentDate = &d
		}
		if err := statemachine.NewAmortizationFSM(e).Settle(ctx); err != nil {
			return err
		}
		e.StampUpdate(operator, now)
	}
	if s.settings.AllowOverpay && remaining.IsPositive() && len(selected) > 0 {
		selected[len(selected)-1].ApplyPayment(remaining, bookingDate, true)
	}
	return nil
}

// Cancel voids a payment. A confirmed payment gets a reversing batch; the
// settled periods stay COMPLETED.
func (s *PaymentService) Cancel(ctx context.Context, id uint, operator string) (*models.Payment, error) {
	payment, err := s.repos.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	wasConfirmed := payment.Status == models.PaymentStatusConfirmed
	if err := statemachine.NewPaymentFSM(payment).Cancel(ctx); err != nil {
		return nil, err
	}

	now := s.settings.now()
	payment.CancelledAt = &now
	payment.StampUpdate(operator, now)

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if wasConfirmed {
			posted, err := tx.Journal.FindByPayment(ctx, payment.ID)
			if err != nil {
				return fmt.Errorf("failed to load journal entries: %w", err)
			}
			lines := make([]accounting.JournalLine, len(posted))
			for i := range posted {
				lines[i] = posted[i].Line()
			}
			reversal := models.NewJournalEntries(payment.ContractID, &payment.ID, uuid.New(),
				accounting.Reverse(lines, dateOnly(now), reversalMemoPrefix))
			for i := range reversal {
				reversal[i].StampCreate(operator, now)
			}
			if err := tx.Journal.CreateBatch(ctx, reversal); err != nil {
				return fmt.Errorf("failed to create reversal entries: %w", err)
			}
		}
		return tx.Payment.Update(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, models.OperationLog{
		ContractID:  &payment.ContractID,
		PaymentID:   &payment.ID,
		Action:      models.ActionPaymentCancelled,
		Description: fmt.Sprintf("Pago #%d anulado (reverso contable: %t)", payment.ID, wasConfirmed),
		Operator:    operator,
	})

	return payment, nil
}

func (s *PaymentService) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	payment, err := s.repos.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return payment, nil
}

func (s *PaymentService) FindByContract(ctx context.Context, contractID uint) ([]models.Payment, error) {
	if _, err := s.repos.Contract.FindByID(ctx, contractID); err != nil {
		return nil, notFound(err)
	}
	return s.repos.Payment.FindByContract(ctx, contractID)
}

// selectedRows returns the stored rows for periods, in the same order.
// A settled period cannot be paid again.
func selectedRows(entries []models.AmortizationEntry, periods []string) ([]models.AmortizationEntry, error) {
	byPeriod := make(map[string]models.AmortizationEntry, len(entries))
	for _, e := range entries {
		byPeriod[e.AmortizationPeriod] = e
	}
	out := make([]models.AmortizationEntry, 0, len(periods))
	for _, p := range periods {
		e, ok := byPeriod[p]
		if !ok {
			continue
		}
		if e.IsSettled() {
			return nil, fmt.Errorf("%w: period %s already settled", ErrInvalidState, p)
		}
		out = append(out, e)
	}
	return out, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
