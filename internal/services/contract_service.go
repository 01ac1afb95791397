package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/repository"
	"github.com/sjperalta/fintera-amortization/internal/validation"
	"github.com/sjperalta/fintera-amortization/pkg/logger"
)

// ContractInput carries the terms of a new contract
type ContractInput struct {
	TotalAmount decimal.Decimal
	Currency    string
	StartDate   string
	EndDate     string
	VendorName  string
	TaxRate     decimal.Decimal
	Description *string
}

// ContractUpdate carries the optional fields of a contract update. Changing
// amount or dates rebuilds the schedule.
type ContractUpdate struct {
	TotalAmount *decimal.Decimal
	StartDate   *string
	EndDate     *string
	VendorName  *string
	TaxRate     *decimal.Decimal
	Description *string
}

func (u ContractUpdate) changesTerms() bool {
	return u.TotalAmount != nil || u.StartDate != nil || u.EndDate != nil
}

type ContractService struct {
	repos     *repository.Repositories
	scheduler *accounting.Scheduler
	auditSvc  *AuditService
	settings  Settings
}

func NewContractService(repos *repository.Repositories, auditSvc *AuditService, settings Settings) *ContractService {
	return &ContractService{
		repos:     repos,
		scheduler: accounting.NewScheduler(settings.LapsedMode),
		auditSvc:  auditSvc,
		settings:  settings,
	}
}

func (s *ContractService) FindByID(ctx context.Context, id uint) (*models.Contract, error) {
	contract, err := s.repos.Contract.FindByIDWithEntries(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return contract, nil
}

func (s *ContractService) List(ctx context.Context, vendor string) ([]models.Contract, error) {
	return s.repos.Contract.List(ctx, validation.SanitizeText(vendor))
}

// Create persists a contract together with its amortization schedule
func (s *ContractService) Create(ctx context.Context, in ContractInput, operator string) (*models.Contract, error) {
	start, err := accounting.ParseYearMonth(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	end, err := accounting.ParseYearMonth(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}

	contract := &models.Contract{
		TotalAmount: in.TotalAmount.Round(2),
		Currency:    s.settings.currency(in.Currency),
		StartDate:   start.FirstDay(),
		EndDate:     end.LastDay(),
		VendorName:  validation.SanitizeText(in.VendorName),
		TaxRate:     in.TaxRate,
		Description: validation.SanitizeOptional(in.Description),
	}
	if err := contract.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	now := s.settings.now()
	schedule, err := s.scheduler.ScheduleRange(contract.TotalAmount, contract.Currency, start, end, now)
	if err != nil {
		return nil, err
	}
	contract.StampCreate(operator, now)

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Contract.Create(ctx, contract); err != nil {
			return fmt.Errorf("failed to create contract: %w", err)
		}
		entries := buildEntries(contract.ID, schedule, operator, now)
		if err := tx.Amortization.CreateBatch(ctx, entries); err != nil {
			return fmt.Errorf("failed to create amortization entries: %w", err)
		}
		contract.AmortizationEntries = entries
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("contract created",
		"contract_id", contract.ID,
		"scenario", schedule.Scenario,
		"periods", len(schedule.Entries))

	description := fmt.Sprintf("Contrato con %s por %s %s, %d períodos (%s)",
		contract.VendorName, models.Money(contract.TotalAmount), contract.Currency, len(schedule.Entries), schedule.Scenario)
	s.auditSvc.Record(ctx, models.OperationLog{
		ContractID:  &contract.ID,
		Action:      models.ActionContractCreated,
		Description: description,
		Operator:    operator,
	})

	return contract, nil
}

// Update changes descriptive fields freely. Amount and dates can only change
// while no payment is confirmed and no accrual batch was posted; the schedule
// is then rebuilt.
func (s *ContractService) Update(ctx context.Context, id uint, in ContractUpdate, operator string) (*models.Contract, error) {
	contract, err := s.repos.Contract.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if in.VendorName != nil {
		contract.VendorName = validation.SanitizeText(*in.VendorName)
	}
	if in.TaxRate != nil {
		contract.TaxRate = *in.TaxRate
	}
	if in.Description != nil {
		contract.Description = validation.SanitizeOptional(in.Description)
	}
	if in.TotalAmount != nil {
		contract.TotalAmount = in.TotalAmount.Round(2)
	}
	if in.StartDate != nil {
		start, err := accounting.ParseYearMonth(*in.StartDate)
		if err != nil {
			return nil, fmt.Errorf("start date: %w", err)
		}
		contract.StartDate = start.FirstDay()
	}
	if in.EndDate != nil {
		end, err := accounting.ParseYearMonth(*in.EndDate)
		if err != nil {
			return nil, fmt.Errorf("end date: %w", err)
		}
		contract.EndDate = end.LastDay()
	}
	if err := contract.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	now := s.settings.now()
	contract.StampUpdate(operator, now)

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if in.changesTerms() {
			if err := s.ensureReschedulable(ctx, tx, contract.ID); err != nil {
				return err
			}
			schedule, err := s.scheduler.ScheduleRange(contract.TotalAmount, contract.Currency, contract.StartPeriod(), contract.EndPeriod(), now)
			if err != nil {
				return err
			}
			if err := tx.Amortization.DeleteByContract(ctx, contract.ID); err != nil {
				return fmt.Errorf("failed to clear amortization entries: %w", err)
			}
			if err := tx.Amortization.CreateBatch(ctx, buildEntries(contract.ID, schedule, operator, now)); err != nil {
				return fmt.Errorf("failed to create amortization entries: %w", err)
			}
		}
		return tx.Contract.Update(ctx, contract)
	})
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, models.OperationLog{
		ContractID:  &contract.ID,
		Action:      models.ActionContractUpdated,
		Description: fmt.Sprintf("Contrato actualizado (recalculado: %t)", in.changesTerms()),
		Operator:    operator,
	})

	return s.FindByID(ctx, contract.ID)
}

func (s *ContractService) ensureReschedulable(ctx context.Context, tx *repository.Repositories, contractID uint) error {
	paid, err := tx.Payment.HasConfirmed(ctx, contractID)
	if err != nil {
		return fmt.Errorf("failed to check payments: %w", err)
	}
	posted, err := tx.Journal.ExistsForContract(ctx, contractID, models.EntryTypeAmortization)
	if err != nil {
		return fmt.Errorf("failed to check journal entries: %w", err)
	}
	if paid || posted {
		return ErrScheduleLocked
	}
	return nil
}

func buildEntries(contractID uint, schedule *accounting.Schedule, operator string, now time.Time) []models.AmortizationEntry {
	entries := make([]models.AmortizationEntry, len(schedule.Entries))
	for i, e := range schedule.Entries {
		entries[i] = models.NewAmortizationEntry(contractID, e)
		entries[i].StampCreate(operator, now)
	}
	return entries
}
