// Package recurrence computes the next occurrence of a recurring maintenance obligation.
//
// Month and year steps clamp to the last day of the target month when the source day
// does not exist there: 2024-01-31 plus one month is 2024-02-29 and 2024-02-29 plus one
// year is 2025-02-28. The clamp is applied once against the final target month, so
// 2024-01-31 plus two months is 2024-03-31.
package recurrence

import (
	"estate/shared/failure"
	"fmt"
	"time"
)

type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyCustom    Frequency = "custom"
)

const monthsPerQuarter = 3

const monthsPerYear = 12

// Rule is a frequency paired with a positive interval. The only implementations live in
// this package, so a Rule value is always valid.
type Rule interface {
	Frequency() Frequency
	Interval() int
	Describe() string
	next(current time.Time) time.Time
}

type monthly struct{ n int }

type quarterly struct{ n int }

type yearly struct{ n int }

type custom struct{ days int }

func Monthly(n int) (Rule, error) {
	if err := checkInterval(n); err != nil {
		return nil, err
	}

	return monthly{n: n}, nil
}

func Quarterly(n int) (Rule, error) {
	if err := checkInterval(n); err != nil {
		return nil, err
	}

	return quarterly{n: n}, nil
}

func Yearly(n int) (Rule, error) {
	if err := checkInterval(n); err != nil {
		return nil, err
	}

	return yearly{n: n}, nil
}

// Custom repeats every given number of days.
func Custom(days int) (Rule, error) {
	if err := checkInterval(days); err != nil {
		return nil, err
	}

	return custom{days: days}, nil
}

// Parse builds a Rule from its stored form.
func Parse(frequency string, interval int) (Rule, error) {
	switch Frequency(frequency) {
	case FrequencyMonthly:
		return Monthly(interval)
	case FrequencyQuarterly:
		return Quarterly(interval)
	case FrequencyYearly:
		return Yearly(interval)
	case FrequencyCustom:
		return Custom(interval)
	default:
		return nil, failure.BadRequestFromString(fmt.Sprintf("unknown frequency %q", frequency)) //nolint:wrapcheck
	}
}

// NextDue returns the occurrence after current. It has no side effects.
func NextDue(current time.Time, rule Rule) time.Time {
	return rule.next(current)
}

func checkInterval(n int) error {
	if n <= 0 {
		return failure.BadRequestFromString("interval must be a positive integer") //nolint:wrapcheck
	}

	return nil
}

func (r monthly) Frequency() Frequency { return FrequencyMonthly }
func (r monthly) Interval() int        { return r.n }
func (r monthly) Describe() string     { return plural(r.n, "month") }
func (r monthly) next(t time.Time) time.Time {
	return addMonths(t, r.n)
}

func (r quarterly) Frequency() Frequency { return FrequencyQuarterly }
func (r quarterly) Interval() int        { return r.n }
func (r quarterly) Describe() string     { return plural(r.n, "quarter") }
func (r quarterly) next(t time.Time) time.Time {
	return addMonths(t, r.n*monthsPerQuarter)
}

func (r yearly) Frequency() Frequency { return FrequencyYearly }
func (r yearly) Interval() int        { return r.n }
func (r yearly) Describe() string     { return plural(r.n, "year") }
func (r yearly) next(t time.Time) time.Time {
	return addMonths(t, r.n*monthsPerYear)
}

func (r custom) Frequency() Frequency { return FrequencyCustom }
func (r custom) Interval() int        { return r.days }
func (r custom) Describe() string     { return plural(r.days, "day") }
func (r custom) next(t time.Time) time.Time {
	return t.AddDate(0, 0, r.days)
}

// addMonths moves t forward by months, clamping the day to the target month's length.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month(), t.Location()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func plural(n int, unit string) string {
	if n == 1 {
		return "Every 1 " + unit
	}

	return fmt.Sprintf("Every %d %ss", n, unit)
}
