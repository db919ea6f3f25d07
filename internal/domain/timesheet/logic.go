package timesheet

import (
	"errors"

	"manpower/internal/domain/payroll"
)

var (
	errUnknownWorkType    = errors.New("work type must be NORMAL, STANDBY or LEAVE")
	errNegativeHours      = errors.New("hours must not be negative")
	errUnknownDayCategory = errors.New("day category override must be WORKDAY, WEEKLY_HOLIDAY or CONTRACT_HOLIDAY")
)

// ValidateLine rejects malformed intake before a line is persisted. OT
// hours on STANDBY or LEAVE lines are accepted as-is: the calculator
// ignores them rather than treating them as an error.
func ValidateLine(line payroll.TimesheetLine) error {
	if _, err := payroll.ParseWorkDate(line.WorkDate); err != nil {
		return err
	}
	switch line.WorkType {
	case payroll.WorkTypeNormal, payroll.WorkTypeStandby, payroll.WorkTypeLeave:
	default:
		return errUnknownWorkType
	}
	if line.NormalHours < 0 || line.OTHours < 0 {
		return errNegativeHours
	}
	switch line.DayCategory {
	case "", payroll.DayWorkday, payroll.DayWeeklyHoliday, payroll.DayContractHoliday:
	default:
		return errUnknownDayCategory
	}
	return nil
}
