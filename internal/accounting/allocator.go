package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultResidualThreshold separates small residuals (expensed) from large
// ones (carried as prepaid).
var DefaultResidualThreshold = decimal.NewFromInt(100)

// ResidualKind classifies the difference between payment and selected total.
type ResidualKind string

const (
	ResidualNone    ResidualKind = "NONE"
	ResidualExpense ResidualKind = "EXPENSE"
	ResidualPrepaid ResidualKind = "PREPAID"
)

// LedgerLine is a symbolic debit or credit. Exactly one side is non-zero.
type LedgerLine struct {
	Account Account
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Memo    string
	// Period is set on payable lines only.
	Period *YearMonth
}

// Allocation is the outcome of matching a payment to scheduled periods.
type Allocation struct {
	PaymentAmount decimal.Decimal
	SelectedTotal decimal.Decimal
	Delta         decimal.Decimal
	Residual      ResidualKind
	BookingDate   time.Time
	Selected      []ScheduleEntry
	Lines         []LedgerLine
}

// Totals sums both sides of the allocation.
func (a *Allocation) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range a.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// Balanced reports whether debits equal credits.
func (a *Allocation) Balanced() bool {
	d, c := a.Totals()
	return d.Equal(c)
}

// SelectedPeriods returns the selected periods as "yyyy-MM" strings in order.
func (a *Allocation) SelectedPeriods() []string {
	out := make([]string, len(a.Selected))
	for i, e := range a.Selected {
		out[i] = e.AmortizationPeriod.String()
	}
	return out
}

// Allocator previews how a payment settles scheduled periods.
type Allocator struct {
	Threshold decimal.Decimal
}

// NewAllocator creates an allocator; a zero or negative threshold falls back
// to DefaultResidualThreshold.
func NewAllocator(threshold decimal.Decimal) *Allocator {
	if !threshold.IsPositive() {
		threshold = DefaultResidualThreshold
	}
	return &Allocator{Threshold: threshold}
}

// Preview matches paymentAmount against the selected periods of schedule.
// Unknown or duplicated periods in selectedPeriods are ignored. Strings that
// are not periods at all are rejected.
func (a *Allocator) Preview(schedule *Schedule, paymentAmount decimal.Decimal, bookingDate time.Time, selectedPeriods []string) (*Allocation, error) {
	if schedule == nil {
		return nil, fmt.Errorf("%w: amortization schedule is required", ErrPreconditionViolation)
	}

	selected, err := selectEntries(schedule, selectedPeriods)
	if err != nil {
		return nil, err
	}

	selectedTotal := decimal.Zero
	for _, e := range selected {
		selectedTotal = selectedTotal.Add(e.Amount)
	}
	payment := paymentAmount.Round(2)
	delta := payment.Sub(selectedTotal).Round(2)

	alloc := &Allocation{
		PaymentAmount: payment,
		SelectedTotal: selectedTotal,
		Delta:         delta,
		Residual:      a.classify(delta, len(selected)),
		BookingDate:   bookingDate,
		Selected:      selected,
	}

	lines := make([]LedgerLine, 0, len(selected)+2)
	for _, e := range selected {
		period := e.AmortizationPeriod
		lines = append(lines, LedgerLine{
			Account: AccountPayable,
			Debit:   e.Amount,
			Credit:  decimal.Zero,
			Memo:    fmt.Sprintf("Pago período %s", period),
			Period:  &period,
		})
	}
	if residual, ok := residualLine(alloc.Residual, delta); ok {
		lines = append(lines, residual)
	}
	lines = append(lines, LedgerLine{
		Account: AccountCash,
		Debit:   decimal.Zero,
		Credit:  payment,
		Memo:    "Salida de bancos",
	})
	alloc.Lines = lines
	return alloc, nil
}

func (a *Allocator) classify(delta decimal.Decimal, selected int) ResidualKind {
	switch {
	case delta.IsZero():
		return ResidualNone
	case selected > 0 && delta.Abs().LessThan(a.Threshold):
		return ResidualExpense
	default:
		return ResidualPrepaid
	}
}

func residualLine(kind ResidualKind, delta decimal.Decimal) (LedgerLine, bool) {
	var account Account
	var memo string
	switch kind {
	case ResidualExpense:
		account, memo = AccountExpense, "Diferencia menor a gasto"
	case ResidualPrepaid:
		account, memo = AccountPrepaid, "Diferencia a pago anticipado"
	default:
		return LedgerLine{}, false
	}
	line := LedgerLine{Account: account, Debit: decimal.Zero, Credit: decimal.Zero, Memo: memo}
	if delta.IsPositive() {
		line.Debit = delta
	} else {
		line.Credit = delta.Neg()
	}
	return line, true
}

func selectEntries(schedule *Schedule, periods []string) ([]ScheduleEntry, error) {
	wanted := make(map[YearMonth]struct{}, len(periods))
	for _, p := range periods {
		ym, err := ParseYearMonth(p)
		if err != nil {
			return nil, fmt.Errorf("selected period: %w", err)
		}
		wanted[ym] = struct{}{}
	}

	var selected []ScheduleEntry
	for _, e := range schedule.Entries {
		if _, ok := wanted[e.AmortizationPeriod]; ok {
			selected = append(selected, e)
			delete(wanted, e.AmortizationPeriod)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].AmortizationPeriod.Before(selected[j].AmortizationPeriod)
	})
	return selected, nil
}
