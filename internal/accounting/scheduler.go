package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Scenario describes where the as-of date falls relative to the contract window.
type Scenario string

const (
	// ScenarioNotStarted: as-of date before the first day of the start month.
	ScenarioNotStarted Scenario = "SCENARIO_1"
	// ScenarioInProgress: as-of date inside the contract window. Periods up to
	// the current month are caught up into the current month.
	ScenarioInProgress Scenario = "SCENARIO_2"
	// ScenarioLapsed: as-of date after the last day of the end month.
	ScenarioLapsed Scenario = "SCENARIO_3"
)

// LapsedMode selects how ScenarioLapsed schedules are produced.
type LapsedMode string

const (
	// LapsedModePerMonth emits one entry per month, same as ScenarioNotStarted.
	LapsedModePerMonth LapsedMode = "per_month"
	// LapsedModeLump emits a single entry for the full amount in the as-of month.
	LapsedModeLump LapsedMode = "lump"
)

// ParseLapsedMode rejects anything other than the two known modes.
func ParseLapsedMode(s string) (LapsedMode, error) {
	switch LapsedMode(strings.ToLower(strings.TrimSpace(s))) {
	case LapsedModePerMonth, "":
		return LapsedModePerMonth, nil
	case LapsedModeLump:
		return LapsedModeLump, nil
	default:
		return "", fmt.Errorf("unknown lapsed schedule mode %q", s)
	}
}

var (
	minAmount = decimal.New(1, -2)
	hundred   = decimal.NewFromInt(100)
)

// ScheduleEntry is one month of a schedule. ID, Status and PaidAmount are
// only set once the entry has been merged with persisted rows.
type ScheduleEntry struct {
	ID                 *uint
	AmortizationPeriod YearMonth
	AccountingPeriod   YearMonth
	Amount             decimal.Decimal
	Status             *string
	PaidAmount         *decimal.Decimal
}

// Schedule is the output of Scheduler.
type Schedule struct {
	TotalAmount decimal.Decimal
	Currency    string
	Start       YearMonth
	End         YearMonth
	Scenario    Scenario
	GeneratedAt time.Time
	Entries     []ScheduleEntry
}

// Sum adds the entry amounts.
func (s *Schedule) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range s.Entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// Entry returns the entry for an amortization period.
func (s *Schedule) Entry(period YearMonth) (ScheduleEntry, bool) {
	for _, e := range s.Entries {
		if e.AmortizationPeriod.Equal(period) {
			return e, true
		}
	}
	return ScheduleEntry{}, false
}

// ExistingEntry is the persisted identity of a scheduled period.
type ExistingEntry struct {
	ID         uint
	Period     YearMonth
	Status     string
	PaidAmount decimal.Decimal
}

// MergeExisting copies persisted ids, statuses and paid amounts onto entries
// with the same amortization period. Entries without a match keep a nil ID.
func (s *Schedule) MergeExisting(existing []ExistingEntry) {
	byPeriod := make(map[YearMonth]ExistingEntry, len(existing))
	for _, e := range existing {
		if _, dup := byPeriod[e.Period]; !dup {
			byPeriod[e.Period] = e
		}
	}
	for i := range s.Entries {
		if e, ok := byPeriod[s.Entries[i].AmortizationPeriod]; ok {
			id, status, paid := e.ID, e.Status, e.PaidAmount
			s.Entries[i].ID = &id
			s.Entries[i].Status = &status
			s.Entries[i].PaidAmount = &paid
		}
	}
}

// Scheduler turns a contract amount and validity window into monthly entries.
// It holds no state between calls.
type Scheduler struct {
	LapsedMode LapsedMode
}

// NewScheduler creates a scheduler; an empty mode means per-month.
func NewScheduler(mode LapsedMode) *Scheduler {
	if mode == "" {
		mode = LapsedModePerMonth
	}
	return &Scheduler{LapsedMode: mode}
}

// Schedule parses start/end ("yyyy-MM" or "yyyy-MM-dd") and builds the schedule.
func (s *Scheduler) Schedule(total decimal.Decimal, currency, start, end string, asOf time.Time) (*Schedule, error) {
	startYM, err := ParseYearMonth(start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	endYM, err := ParseYearMonth(end)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	return s.ScheduleRange(total, currency, startYM, endYM, asOf)
}

// ScheduleRange builds the schedule for an already parsed window.
func (s *Scheduler) ScheduleRange(total decimal.Decimal, currency string, start, end YearMonth, asOf time.Time) (*Schedule, error) {
	if total.LessThan(minAmount) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, total.String())
	}
	months, err := Enumerate(start, end)
	if err != nil {
		return nil, err
	}

	total = total.Round(2)
	current := YearMonthOf(asOf)
	scenario := Classify(asOf, start, end)

	sched := &Schedule{
		TotalAmount: total,
		Currency:    currency,
		Start:       start,
		End:         end,
		Scenario:    scenario,
		GeneratedAt: asOf,
	}

	switch scenario {
	case ScenarioNotStarted:
		sched.Entries = buildEntries(total, months, nil)
	case ScenarioInProgress:
		sched.Entries = buildEntries(total, months, &current)
	case ScenarioLapsed:
		if s.LapsedMode == LapsedModeLump {
			sched.Entries = []ScheduleEntry{{
				AmortizationPeriod: current,
				AccountingPeriod:   current,
				Amount:             total,
			}}
		} else {
			sched.Entries = buildEntries(total, months, nil)
		}
	}
	return sched, nil
}

// Classify places asOf (date granularity) relative to the [start, end] window.
func Classify(asOf time.Time, start, end YearMonth) Scenario {
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case day.Before(start.FirstDay()):
		return ScenarioNotStarted
	case day.After(end.LastDay()):
		return ScenarioLapsed
	default:
		return ScenarioInProgress
	}
}

// buildEntries splits total evenly; the last month absorbs the rounding
// residue. When catchUp is set, every month up to and including it is booked
// in catchUp.
func buildEntries(total decimal.Decimal, months []YearMonth, catchUp *YearMonth) []ScheduleEntry {
	amounts := SplitEvenly(total, len(months))
	entries := make([]ScheduleEntry, len(months))
	for i, ym := range months {
		accounting := ym
		if catchUp != nil && !ym.After(*catchUp) {
			accounting = *catchUp
		}
		entries[i] = ScheduleEntry{
			AmortizationPeriod: ym,
			AccountingPeriod:   accounting,
			Amount:             amounts[i],
		}
	}
	return entries
}

// SplitEvenly divides total into n amounts of 2-decimal scale that add up to
// total exactly.
func SplitEvenly(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	count := decimal.NewFromInt(int64(n))
	base := total.DivRound(count, 2)
	head := base.Mul(decimal.NewFromInt(int64(n - 1))).Round(2)
	last := total.Sub(head).Round(2)

	out := make([]decimal.Decimal, n)
	for i := 0; i < n-1; i++ {
		out[i] = base
	}
	out[n-1] = last
	return out
}
