package recurrence_test

import (
	"estate/internal/domains/maintenance/recurrence"
	"estate/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return t
}

func mustParse(t *testing.T, frequency string, interval int) recurrence.Rule {
	t.Helper()

	rule, err := recurrence.Parse(frequency, interval)
	require.NoError(t, err)

	return rule
}

func TestNextDue(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		frequency string
		interval  int
		want      string
	}{
		{name: "monthly", current: "2024-01-15", frequency: "monthly", interval: 1, want: "2024-02-15"},
		{name: "monthly clamps into leap february", current: "2024-01-31", frequency: "monthly", interval: 1, want: "2024-02-29"},
		{name: "monthly clamps into common february", current: "2023-01-31", frequency: "monthly", interval: 1, want: "2023-02-28"},
		{name: "clamp applies to final month only", current: "2024-01-31", frequency: "monthly", interval: 2, want: "2024-03-31"},
		{name: "monthly into thirty day month", current: "2024-03-31", frequency: "monthly", interval: 1, want: "2024-04-30"},
		{name: "monthly across year end", current: "2024-11-30", frequency: "monthly", interval: 3, want: "2025-02-28"},
		{name: "quarterly", current: "2024-01-01", frequency: "quarterly", interval: 1, want: "2024-04-01"},
		{name: "quarterly clamps", current: "2024-11-30", frequency: "quarterly", interval: 1, want: "2025-02-28"},
		{name: "two quarters", current: "2024-01-01", frequency: "quarterly", interval: 2, want: "2024-07-01"},
		{name: "yearly", current: "2024-01-01", frequency: "yearly", interval: 1, want: "2025-01-01"},
		{name: "yearly from leap day", current: "2024-02-29", frequency: "yearly", interval: 1, want: "2025-02-28"},
		{name: "four years from leap day", current: "2024-02-29", frequency: "yearly", interval: 4, want: "2028-02-29"},
		{name: "custom days", current: "2024-01-01", frequency: "custom", interval: 10, want: "2024-01-11"},
		{name: "custom days across month", current: "2024-02-25", frequency: "custom", interval: 10, want: "2024-03-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := mustParse(t, tt.frequency, tt.interval)

			got := recurrence.NextDue(day(tt.current), rule)

			assert.Equal(t, tt.want, got.Format(time.DateOnly))
		})
	}
}

func TestNextDueIsPure(t *testing.T) {
	rule := mustParse(t, "monthly", 1)
	current := day("2024-01-31")

	first := recurrence.NextDue(current, rule)
	second := recurrence.NextDue(current, rule)

	assert.Equal(t, first, second)
	assert.Equal(t, "2024-01-31", current.Format(time.DateOnly))
}

func TestNextDueKeepsLocation(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	current := time.Date(2024, time.January, 31, 0, 0, 0, 0, loc)

	got := recurrence.NextDue(current, mustParse(t, "monthly", 1))

	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, loc), got)
}

func TestParseRejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name      string
		frequency string
		interval  int
	}{
		{name: "unknown frequency", frequency: "weekly", interval: 1},
		{name: "capitalised frequency", frequency: "Monthly", interval: 1},
		{name: "zero interval", frequency: "monthly", interval: 0},
		{name: "negative interval", frequency: "custom", interval: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := recurrence.Parse(tt.frequency, tt.interval)

			require.Error(t, err)
			assert.Nil(t, rule)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestConstructorsRejectNonPositive(t *testing.T) {
	constructors := map[string]func(int) (recurrence.Rule, error){
		"monthly":   recurrence.Monthly,
		"quarterly": recurrence.Quarterly,
		"yearly":    recurrence.Yearly,
		"custom":    recurrence.Custom,
	}

	for name, build := range constructors {
		t.Run(name, func(t *testing.T) {
			_, err := build(0)
			require.Error(t, err)

			rule, err := build(2)
			require.NoError(t, err)
			assert.Equal(t, name, string(rule.Frequency()))
			assert.Equal(t, 2, rule.Interval())
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Every 1 month", mustParse(t, "monthly", 1).Describe())
	assert.Equal(t, "Every 2 months", mustParse(t, "monthly", 2).Describe())
	assert.Equal(t, "Every 1 quarter", mustParse(t, "quarterly", 1).Describe())
	assert.Equal(t, "Every 3 years", mustParse(t, "yearly", 3).Describe())
	assert.Equal(t, "Every 10 days", mustParse(t, "custom", 10).Describe())
}
