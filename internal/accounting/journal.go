package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tells accrual batches apart from payment batches.
type EntryKind string

const (
	KindAmortization EntryKind = "AMORTIZATION"
	KindPayment      EntryKind = "PAYMENT"
)

// DefaultBookingDay is the day of month accruals are booked on.
const DefaultBookingDay = 27

// JournalLine is a posting-ready ledger line.
type JournalLine struct {
	Order       int
	BookingDate time.Time
	AccountCode string
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Memo        string
	Kind        EntryKind
}

// BalanceCheck is the result of CheckBalance.
type BalanceCheck struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Difference  decimal.Decimal
	Balanced    bool
}

// CheckBalance totals a batch of journal lines.
func CheckBalance(lines []JournalLine) BalanceCheck {
	debit, credit := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	diff := debit.Sub(credit)
	return BalanceCheck{
		TotalDebit:  debit,
		TotalCredit: credit,
		Difference:  diff,
		Balanced:    diff.IsZero(),
	}
}

// JournalBuilder turns symbolic lines into journal lines.
type JournalBuilder struct {
	Resolver AccountResolver
}

// NewJournalBuilder uses DefaultResolver when r is nil.
func NewJournalBuilder(r AccountResolver) *JournalBuilder {
	if r == nil {
		r = DefaultResolver
	}
	return &JournalBuilder{Resolver: r}
}

func lineRank(a Account) int {
	switch a {
	case AccountPayable:
		return 0
	case AccountCash:
		return 2
	default:
		return 1
	}
}

// Build emits the payment batch for alloc: payable lines by period, then the
// residual line, then cash. Every line is booked on bookingDate.
func (b *JournalBuilder) Build(alloc *Allocation, bookingDate time.Time) []JournalLine {
	if alloc == nil {
		return nil
	}
	lines := make([]LedgerLine, len(alloc.Lines))
	copy(lines, alloc.Lines)
	sort.SliceStable(lines, func(i, j int) bool {
		ri, rj := lineRank(lines[i].Account), lineRank(lines[j].Account)
		if ri != rj {
			return ri < rj
		}
		if lines[i].Period != nil && lines[j].Period != nil {
			return lines[i].Period.Before(*lines[j].Period)
		}
		return false
	})

	out := make([]JournalLine, len(lines))
	for i, l := range lines {
		code := l.Account.Code()
		out[i] = JournalLine{
			Order:       i + 1,
			BookingDate: bookingDate,
			AccountCode: code,
			AccountName: b.Resolver.Name(code),
			Debit:       l.Debit,
			Credit:      l.Credit,
			Memo:        l.Memo,
			Kind:        KindPayment,
		}
	}
	return out
}

// BuildAccruals emits the amortization batch for schedule: an expense debit
// and a payable credit per entry, booked on bookingDay of the accounting
// period (clamped to the month length).
func (b *JournalBuilder) BuildAccruals(schedule *Schedule, bookingDay int) []JournalLine {
	if schedule == nil {
		return nil
	}
	if bookingDay <= 0 {
		bookingDay = DefaultBookingDay
	}
	expense, payable := AccountExpense.Code(), AccountPayable.Code()

	out := make([]JournalLine, 0, len(schedule.Entries)*2)
	for _, e := range schedule.Entries {
		date := e.AccountingPeriod.Day(bookingDay)
		memo := fmt.Sprintf("Amortización período %s", e.AmortizationPeriod)
		out = append(out,
			JournalLine{
				Order:       len(out) + 1,
				BookingDate: date,
				AccountCode: expense,
				AccountName: b.Resolver.Name(expense),
				Debit:       e.Amount,
				Credit:      decimal.Zero,
				Memo:        memo,
				Kind:        KindAmortization,
			},
			JournalLine{
				Order:       len(out) + 2,
				BookingDate: date,
				AccountCode: payable,
				AccountName: b.Resolver.Name(payable),
				Debit:       decimal.Zero,
				Credit:      e.Amount,
				Memo:        memo,
				Kind:        KindAmortization,
			},
		)
	}
	return out
}

// Reverse swaps debit and credit of every line, keeping order. Used to void
// a posted batch.
func Reverse(lines []JournalLine, bookingDate time.Time, memoPrefix string) []JournalLine {
	out := make([]JournalLine, len(lines))
	for i, l := range lines {
		l.Debit, l.Credit = l.Credit, l.Debit
		l.BookingDate = bookingDate
		l.Order = i + 1
		if memoPrefix != "" {
			l.Memo = memoPrefix + l.Memo
		}
		out[i] = l
	}
	return out
}
