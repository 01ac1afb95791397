package services

import (
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/jobs"
	"github.com/sjperalta/fintera-amortization/internal/repository"
)

// Services holds all service instances
type Services struct {
	Amortization *AmortizationService
	Contract     *ContractService
	Payment      *PaymentService
	Journal      *JournalService
	Report       *ReportService
	Export       *ExportService
	Audit        *AuditService
	Job          *JobService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, settings Settings) *Services {
	resolver := accounting.DefaultResolver
	auditSvc := NewAuditService(repos.OperationLog, worker, settings)
	amortizationSvc := NewAmortizationService(repos.Contract, repos.Amortization, settings)
	journalSvc := NewJournalService(repos, amortizationSvc, auditSvc, resolver, settings)

	var jobSvc *JobService
	if worker != nil {
		jobSvc = NewJobService(worker)
	}

	return &Services{
		Amortization: amortizationSvc,
		Contract:     NewContractService(repos, auditSvc, settings),
		Payment:      NewPaymentService(repos, amortizationSvc, auditSvc, resolver, settings),
		Journal:      journalSvc,
		Report:       NewReportService(repos.Contract, repos.Amortization, worker, settings),
		Export:       NewExportService(amortizationSvc, journalSvc, settings),
		Audit:        auditSvc,
		Job:          jobSvc,
	}
}
