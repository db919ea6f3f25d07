package timesheet

import (
	"errors"
	"testing"

	"manpower/internal/domain/payroll"
)

func validLine() payroll.TimesheetLine {
	return payroll.TimesheetLine{
		EmployeeID:  "emp-1",
		WorkDate:    "2024-06-03",
		WorkType:    payroll.WorkTypeNormal,
		NormalHours: 8,
		OTHours:     2,
	}
}

func TestValidateLineAccepts(t *testing.T) {
	if err := ValidateLine(validLine()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	standby := validLine()
	standby.WorkType = payroll.WorkTypeStandby
	standby.OTHours = 4 // accepted, the calculator ignores it
	if err := ValidateLine(standby); err != nil {
		t.Fatalf("unexpected error for standby with OT hours: %v", err)
	}

	override := validLine()
	override.DayCategory = payroll.DayContractHoliday
	if err := ValidateLine(override); err != nil {
		t.Fatalf("unexpected error for category override: %v", err)
	}
}

func TestValidateLineRejectsBadDate(t *testing.T) {
	line := validLine()
	line.WorkDate = "03/06/2024"
	if err := ValidateLine(line); !errors.Is(err, payroll.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestValidateLineRejectsUnknownWorkType(t *testing.T) {
	line := validLine()
	line.WorkType = "OVERTIME"
	if err := ValidateLine(line); err == nil {
		t.Fatal("expected error for unknown work type")
	}
}

func TestValidateLineRejectsNegativeHours(t *testing.T) {
	line := validLine()
	line.OTHours = -1
	if err := ValidateLine(line); err == nil {
		t.Fatal("expected error for negative hours")
	}
}

func TestValidateLineRejectsUnknownDayCategory(t *testing.T) {
	line := validLine()
	line.DayCategory = "BANK_HOLIDAY"
	if err := ValidateLine(line); err == nil {
		t.Fatal("expected error for unknown day category")
	}
}
