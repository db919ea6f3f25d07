package payroll

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// HolidaySet holds contract holiday dates keyed by YYYY-MM-DD. Date keys
// sidestep time-of-day and timezone ambiguity entirely.
type HolidaySet map[string]struct{}

func NewHolidaySet(dates []string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, date := range dates {
		set[date] = struct{}{}
	}
	return set
}

func (h HolidaySet) Contains(date time.Time) bool {
	_, ok := h[DateKey(date)]
	return ok
}

func DateKey(date time.Time) string {
	return date.Format(dateLayout)
}

// ParseWorkDate parses a YYYY-MM-DD work-date key. Malformed input is a
// caller error and must be rejected before lines reach the calculator.
func ParseWorkDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return parsed, nil
}

// Classify maps a calendar date to its day category. An explicit contract
// holiday always wins over a configured weekend day.
func Classify(date time.Time, weekend WeekendConfig, holidays HolidaySet) string {
	if holidays.Contains(date) {
		return DayContractHoliday
	}
	switch date.Weekday() {
	case time.Saturday:
		if weekend.Saturday {
			return DayWeeklyHoliday
		}
	case time.Sunday:
		if weekend.Sunday {
			return DayWeeklyHoliday
		}
	}
	return DayWorkday
}

// DayCategoryFor resolves a line's day category: a stored override on the
// line wins, otherwise the contract calendar classifies the work date.
func DayCategoryFor(line TimesheetLine, contract Contract) (string, error) {
	if line.DayCategory != "" {
		return line.DayCategory, nil
	}
	date, err := ParseWorkDate(line.WorkDate)
	if err != nil {
		return "", err
	}
	return Classify(date, contract.Weekend, NewHolidaySet(contract.HolidayDates)), nil
}
