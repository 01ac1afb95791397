package accounting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amounts(s *Schedule) []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Amount.StringFixed(2)
	}
	return out
}

func accountingPeriods(s *Schedule) []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.AccountingPeriod.String()
	}
	return out
}

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		total string
		n     int
		want  []string
	}{
		{"1000", 3, []string{"333.33", "333.33", "333.34"}},
		{"100", 3, []string{"33.33", "33.33", "33.34"}},
		{"200", 3, []string{"66.67", "66.67", "66.66"}},
		{"0.01", 3, []string{"0.00", "0.00", "0.01"}},
		{"6000", 6, []string{"1000.00", "1000.00", "1000.00", "1000.00", "1000.00", "1000.00"}},
		{"50", 1, []string{"50.00"}},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			got := SplitEvenly(dec(tt.total), tt.n)
			require.Len(t, got, tt.n)

			sum := decimal.Zero
			var rendered []string
			for _, a := range got {
				sum = sum.Add(a)
				rendered = append(rendered, a.StringFixed(2))
			}
			assert.Equal(t, tt.want, rendered)
			assert.True(t, sum.Equal(dec(tt.total)), "sum %s != %s", sum, tt.total)
		})
	}
}

func TestScheduler_NotStarted(t *testing.T) {
	s := NewScheduler(LapsedModePerMonth)

	sched, err := s.Schedule(dec("1000"), "HNL", "2024-01", "2024-03", day(2023, 12, 15))
	require.NoError(t, err)

	assert.Equal(t, ScenarioNotStarted, sched.Scenario)
	assert.Equal(t, []string{"333.33", "333.33", "333.34"}, amounts(sched))
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, accountingPeriods(sched))
	assert.True(t, sched.Sum().Equal(dec("1000")))
	for _, e := range sched.Entries {
		assert.Nil(t, e.ID)
		assert.Nil(t, e.Status)
	}
}

func TestScheduler_InProgressCatchUp(t *testing.T) {
	s := NewScheduler(LapsedModePerMonth)

	sched, err := s.Schedule(dec("6000"), "HNL", "2024-01-01", "2024-06-30", day(2024, 3, 10))
	require.NoError(t, err)

	assert.Equal(t, ScenarioInProgress, sched.Scenario)
	assert.Equal(t,
		[]string{"2024-03", "2024-03", "2024-03", "2024-04", "2024-05", "2024-06"},
		accountingPeriods(sched))
	assert.Equal(t, "2024-01", sched.Entries[0].AmortizationPeriod.String())
}

func TestScheduler_Boundaries(t *testing.T) {
	s := NewScheduler("")

	tests := []struct {
		name string
		asOf time.Time
		want Scenario
	}{
		{"day before start", day(2023, 12, 31), ScenarioNotStarted},
		{"first day of start", day(2024, 1, 1), ScenarioInProgress},
		{"last day of end", day(2024, 3, 31), ScenarioInProgress},
		{"last day of end, late in the day", time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC), ScenarioInProgress},
		{"day after end", day(2024, 4, 1), ScenarioLapsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := s.Schedule(dec("300"), "HNL", "2024-01", "2024-03", tt.asOf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sched.Scenario)
		})
	}
}

func TestScheduler_Lapsed(t *testing.T) {
	t.Run("per month", func(t *testing.T) {
		sched, err := NewScheduler(LapsedModePerMonth).Schedule(dec("1000"), "HNL", "2024-01", "2024-03", day(2024, 8, 1))
		require.NoError(t, err)
		assert.Equal(t, ScenarioLapsed, sched.Scenario)
		assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, accountingPeriods(sched))
		assert.Equal(t, []string{"333.33", "333.33", "333.34"}, amounts(sched))
	})

	t.Run("lump", func(t *testing.T) {
		sched, err := NewScheduler(LapsedModeLump).Schedule(dec("1000"), "HNL", "2024-01", "2024-03", day(2024, 8, 1))
		require.NoError(t, err)
		require.Len(t, sched.Entries, 1)
		assert.Equal(t, "2024-08", sched.Entries[0].AmortizationPeriod.String())
		assert.Equal(t, "2024-08", sched.Entries[0].AccountingPeriod.String())
		assert.Equal(t, "1000.00", sched.Entries[0].Amount.StringFixed(2))
	})
}

func TestScheduler_Errors(t *testing.T) {
	s := NewScheduler(LapsedModePerMonth)
	asOf := day(2024, 1, 1)

	_, err := s.Schedule(dec("0"), "HNL", "2024-01", "2024-03", asOf)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = s.Schedule(dec("-5"), "HNL", "2024-01", "2024-03", asOf)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = s.Schedule(dec("100"), "HNL", "2024-03", "2024-01", asOf)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = s.Schedule(dec("100"), "HNL", "enero", "2024-01", asOf)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestScheduler_Deterministic(t *testing.T) {
	s := NewScheduler(LapsedModePerMonth)
	asOf := day(2024, 2, 5)

	a, err := s.Schedule(dec("1234.56"), "HNL", "2024-01", "2024-12", asOf)
	require.NoError(t, err)
	b, err := s.Schedule(dec("1234.56"), "HNL", "2024-01", "2024-12", asOf)
	require.NoError(t, err)
	assert.Equal(t, amounts(a), amounts(b))
	assert.Equal(t, accountingPeriods(a), accountingPeriods(b))
}

func TestSchedule_MergeExisting(t *testing.T) {
	sched, err := NewScheduler(LapsedModePerMonth).Schedule(dec("300"), "HNL", "2024-01", "2024-03", day(2023, 1, 1))
	require.NoError(t, err)

	existing := []ExistingEntry{
		{ID: 12, Period: MustYearMonth("2024-03"), Status: "PENDING", PaidAmount: dec("0")},
		{ID: 10, Period: MustYearMonth("2024-01"), Status: "COMPLETED", PaidAmount: dec("100")},
	}
	sched.MergeExisting(existing)
	sched.MergeExisting(existing)

	require.NotNil(t, sched.Entries[0].ID)
	assert.Equal(t, uint(10), *sched.Entries[0].ID)
	assert.Equal(t, "COMPLETED", *sched.Entries[0].Status)
	assert.Equal(t, "100.00", sched.Entries[0].PaidAmount.StringFixed(2))
	assert.Nil(t, sched.Entries[1].ID)
	require.NotNil(t, sched.Entries[2].ID)
	assert.Equal(t, uint(12), *sched.Entries[2].ID)
}

func TestParseLapsedMode(t *testing.T) {
	m, err := ParseLapsedMode("LUMP")
	require.NoError(t, err)
	assert.Equal(t, LapsedModeLump, m)

	m, err = ParseLapsedMode("")
	require.NoError(t, err)
	assert.Equal(t, LapsedModePerMonth, m)

	_, err = ParseLapsedMode("quarterly")
	assert.Error(t, err)
}
