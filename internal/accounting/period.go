package accounting

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const periodLayout = "2006-01"

var (
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	fullDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// YearMonth is a month-granular period key. Its string form ("yyyy-MM") is
// what gets persisted and exchanged over the API.
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthOf returns the period containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth accepts "yyyy-MM" or "yyyy-MM-dd" and truncates to the month.
func ParseYearMonth(s string) (YearMonth, error) {
	v := strings.TrimSpace(s)
	switch {
	case fullDateRe.MatchString(v):
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
		return YearMonthOf(t), nil
	case yearMonthRe.MatchString(v):
		t, err := time.Parse(periodLayout, v)
		if err != nil {
			return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
		return YearMonthOf(t), nil
	default:
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
}

// MustYearMonth is ParseYearMonth for literals; it panics on bad input.
func MustYearMonth(s string) YearMonth {
	ym, err := ParseYearMonth(s)
	if err != nil {
		panic(err)
	}
	return ym
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// index gives a total order over months.
func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// Compare returns -1, 0 or 1.
func (ym YearMonth) Compare(other YearMonth) int {
	a, b := ym.index(), other.index()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (ym YearMonth) Before(other YearMonth) bool { return ym.Compare(other) < 0 }
func (ym YearMonth) After(other YearMonth) bool  { return ym.Compare(other) > 0 }
func (ym YearMonth) Equal(other YearMonth) bool  { return ym.Compare(other) == 0 }

// AddMonths moves the period n months forward (or backward when n < 0).
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.index() + n
	return YearMonth{Year: idx / 12, Month: time.Month(idx%12 + 1)}
}

// FirstDay returns midnight UTC of the first day of the month.
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC of the last day of the month.
func (ym YearMonth) LastDay() time.Time {
	return ym.FirstDay().AddDate(0, 1, -1)
}

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return ym.LastDay().Day()
}

// Day returns the given day of the month, clamped to the month length.
func (ym YearMonth) Day(day int) time.Time {
	if day < 1 {
		day = 1
	}
	if n := ym.Days(); day > n {
		day = n
	}
	return time.Date(ym.Year, ym.Month, day, 0, 0, 0, 0, time.UTC)
}

// Enumerate returns every month from start to end, both inclusive.
func Enumerate(start, end YearMonth) ([]YearMonth, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}

	months := make([]YearMonth, 0, end.index()-start.index()+1)
	for cur := start; !cur.After(end); cur = cur.AddMonths(1) {
		months = append(months, cur)
	}
	return months, nil
}

// MarshalText renders the period as "yyyy-MM".
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

// UnmarshalText parses "yyyy-MM" or "yyyy-MM-dd".
func (ym *YearMonth) UnmarshalText(b []byte) error {
	v, err := ParseYearMonth(string(b))
	if err != nil {
		return err
	}
	*ym = v
	return nil
}
