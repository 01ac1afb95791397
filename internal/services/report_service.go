package services

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/fintera-amortization/internal/accounting"
	"github.com/sjperalta/fintera-amortization/internal/jobs"
	"github.com/sjperalta/fintera-amortization/internal/models"
	"github.com/sjperalta/fintera-amortization/internal/repository"
	"github.com/sjperalta/fintera-amortization/pkg/logger"
)

const (
	dashboardCacheKey = "reports_dashboard"
	vendorsCacheKey   = "reports_vendors"

	// months shown before and after the current period in the trend
	trendMonthsBack    = 5
	trendMonthsForward = 6
)

type ReportService struct {
	contractRepo repository.ContractRepository
	entryRepo    repository.AmortizationEntryRepository
	cache        *cache.Cache
	worker       *jobs.Worker
	settings     Settings
}

func NewReportService(
	contractRepo repository.ContractRepository,
	entryRepo repository.AmortizationEntryRepository,
	worker *jobs.Worker,
	settings Settings,
) *ReportService {
	ttl := settings.ReportCacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReportService{
		contractRepo: contractRepo,
		entryRepo:    entryRepo,
		cache:        cache.New(ttl, 2*ttl),
		worker:       worker,
		settings:     settings,
	}
}

// Dashboard returns the headline figures, served from cache when fresh
func (s *ReportService) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	if cached, ok := s.cache.Get(dashboardCacheKey); ok {
		return cached.(*models.DashboardSummary), nil
	}
	summary, err := s.buildDashboard(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(dashboardCacheKey, summary, cache.DefaultExpiration)
	return summary, nil
}

func (s *ReportService) buildDashboard(ctx context.Context) (*models.DashboardSummary, error) {
	now := s.settings.now()
	current := accounting.YearMonthOf(now)

	active, err := s.contractRepo.CountActive(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count active contracts: %w", err)
	}
	monthly, err := s.entryRepo.SumByAccountingPeriod(ctx, current.String())
	if err != nil {
		return nil, fmt.Errorf("failed to sum current period: %w", err)
	}
	pending, err := s.entryRepo.SumPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum pending amortization: %w", err)
	}

	from, to := current.AddMonths(-trendMonthsBack), current.AddMonths(trendMonthsForward)
	totals, err := s.entryRepo.PeriodTotals(ctx, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load period totals: %w", err)
	}

	return &models.DashboardSummary{
		ActiveContracts:          active,
		CurrentPeriod:            current.String(),
		CurrentMonthAmortization: models.Money(monthly),
		RemainingPayable:         models.Money(pending),
		CurrencySymbol:           s.settings.currency(""),
		Trend:                    trend(from, to, totals),
		GeneratedAt:              now,
	}, nil
}

// trend fills every period in [from, to], zero where nothing is scheduled
func trend(from, to accounting.YearMonth, totals []repository.PeriodTotal) []models.PeriodTrendPoint {
	byPeriod := make(map[string]repository.PeriodTotal, len(totals))
	for _, t := range totals {
		byPeriod[t.Period] = t
	}
	periods, err := accounting.Enumerate(from, to)
	if err != nil {
		return nil
	}
	points := make([]models.PeriodTrendPoint, 0, len(periods))
	for _, p := range periods {
		t := byPeriod[p.String()]
		points = append(points, models.PeriodTrendPoint{
			Period:    p.String(),
			Scheduled: models.Money(t.Scheduled),
			Paid:      models.Money(t.Paid),
		})
	}
	return points
}

// VendorDistribution returns each vendor's share of the contracted total
func (s *ReportService) VendorDistribution(ctx context.Context) ([]models.VendorShare, error) {
	if cached, ok := s.cache.Get(vendorsCacheKey); ok {
		return cached.([]models.VendorShare), nil
	}

	totals, err := s.contractRepo.VendorTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor totals: %w", err)
	}

	grand := decimal.Zero
	for _, t := range totals {
		grand = grand.Add(t.TotalAmount)
	}

	shares := make([]models.VendorShare, 0, len(totals))
	for _, t := range totals {
		pct := decimal.Zero
		if grand.IsPositive() {
			pct = t.TotalAmount.Div(grand).Mul(decimal.NewFromInt(100))
		}
		shares = append(shares, models.VendorShare{
			VendorName:    t.VendorName,
			ContractCount: t.ContractCount,
			TotalAmount:   models.Money(t.TotalAmount),
			Percentage:    pct.StringFixed(2),
		})
	}

	s.cache.Set(vendorsCacheKey, shares, cache.DefaultExpiration)
	return shares, nil
}

// Invalidate drops the cached reports and, with a worker, queues a rebuild
func (s *ReportService) Invalidate() {
	s.cache.Flush()
	if s.worker != nil {
		s.worker.Enqueue(s.RefreshCache)
	}
}

// RefreshCache rebuilds the cached reports. Run by the scheduler.
func (s *ReportService) RefreshCache(ctx context.Context) error {
	logger.Info("[ReportService] Refreshing report cache...")
	s.cache.Flush()
	if _, err := s.Dashboard(ctx); err != nil {
		return err
	}
	if _, err := s.VendorDistribution(ctx); err != nil {
		return err
	}
	logger.Info("[ReportService] Report cache refresh completed.")
	return nil
}
