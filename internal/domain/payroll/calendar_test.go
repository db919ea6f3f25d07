package payroll

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParseWorkDate(value)
	if err != nil {
		t.Fatalf("parse %s: %v", value, err)
	}
	return parsed
}

func TestClassifyContractHolidayBeatsWeekend(t *testing.T) {
	weekend := WeekendConfig{Saturday: true, Sunday: true}
	holidays := NewHolidaySet([]string{"2024-06-01"}) // a Saturday

	category := Classify(mustDate(t, "2024-06-01"), weekend, holidays)
	if category != DayContractHoliday {
		t.Fatalf("expected CONTRACT_HOLIDAY, got %s", category)
	}
}

func TestClassifyWeeklyHoliday(t *testing.T) {
	weekend := WeekendConfig{Saturday: true, Sunday: true}
	holidays := NewHolidaySet(nil)

	if category := Classify(mustDate(t, "2024-06-01"), weekend, holidays); category != DayWeeklyHoliday {
		t.Fatalf("expected WEEKLY_HOLIDAY for Saturday, got %s", category)
	}
	if category := Classify(mustDate(t, "2024-06-02"), weekend, holidays); category != DayWeeklyHoliday {
		t.Fatalf("expected WEEKLY_HOLIDAY for Sunday, got %s", category)
	}
}

func TestClassifyWeekendDayNotConfigured(t *testing.T) {
	weekend := WeekendConfig{Sunday: true}
	holidays := NewHolidaySet(nil)

	if category := Classify(mustDate(t, "2024-06-01"), weekend, holidays); category != DayWorkday {
		t.Fatalf("expected WORKDAY for unconfigured Saturday, got %s", category)
	}
}

func TestClassifyWorkday(t *testing.T) {
	weekend := WeekendConfig{Saturday: true, Sunday: true}
	holidays := NewHolidaySet([]string{"2024-06-01"})

	if category := Classify(mustDate(t, "2024-06-03"), weekend, holidays); category != DayWorkday {
		t.Fatalf("expected WORKDAY for Monday, got %s", category)
	}
}

func TestParseWorkDateRejectsMalformed(t *testing.T) {
	for _, value := range []string{"", "June 1", "2024-13-40", "2024-06-01T00:00:00Z"} {
		if _, err := ParseWorkDate(value); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", value, err)
		}
	}
}

func TestDayCategoryForHonorsOverride(t *testing.T) {
	contract := Contract{Weekend: WeekendConfig{Saturday: true, Sunday: true}}
	line := TimesheetLine{WorkDate: "2024-06-03", DayCategory: DayContractHoliday}

	category, err := DayCategoryFor(line, contract)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category != DayContractHoliday {
		t.Fatalf("expected override CONTRACT_HOLIDAY, got %s", category)
	}
}

func TestDayCategoryForClassifiesWhenNoOverride(t *testing.T) {
	contract := Contract{
		Weekend:      WeekendConfig{Saturday: true, Sunday: true},
		HolidayDates: []string{"2024-06-03"},
	}
	line := TimesheetLine{WorkDate: "2024-06-03"}

	category, err := DayCategoryFor(line, contract)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category != DayContractHoliday {
		t.Fatalf("expected CONTRACT_HOLIDAY, got %s", category)
	}
}
