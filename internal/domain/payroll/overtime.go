package payroll

// SelectMultiplier picks the OT multiplier for a day category. Contracts
// without overtime rules fall back to the default table.
func SelectMultiplier(dayCategory string, rules *OTRules) float64 {
	if rules == nil {
		rules = &OTRules{
			Workday:         DefaultWorkdayMultiplier,
			WeeklyHoliday:   DefaultWeeklyHolidayMultiplier,
			ContractHoliday: DefaultContractHolidayMultiplier,
		}
	}
	switch dayCategory {
	case DayWeeklyHoliday:
		return rules.WeeklyHoliday
	case DayContractHoliday:
		return rules.ContractHoliday
	default:
		return rules.Workday
	}
}
