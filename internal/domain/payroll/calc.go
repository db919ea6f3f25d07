package payroll

// CalculateLine computes the cost-side and sale-side pay for one timesheet
// line with its day category already resolved. Both sides share the exact
// same hours, work type, and day category; only the rate table differs.
func CalculateLine(line TimesheetLine, position Position, contract Contract, workMode, dayCategory string, cfg CalcConfig) LineResult {
	rates := ResolveRates(position, contract, workMode)
	factor := basePayFactor(line.WorkType, cfg)

	basePayCost := rates.CostDaily * factor
	basePaySale := rates.SaleDaily * factor

	var otPayCost, otPaySale float64
	// Standby and leave days never accrue OT pay, even when the intake
	// recorded nonzero OT hours. That is data to ignore, not an error.
	if line.WorkType == WorkTypeNormal && line.OTHours > 0 {
		divisor := otDivisor(workMode, cfg)
		multiplier := SelectMultiplier(dayCategory, contract.OTRules)
		otPayCost = line.OTHours * (rates.CostDaily / divisor) * multiplier
		otPaySale = line.OTHours * (rates.SaleDaily / divisor) * multiplier
	}

	return LineResult{
		Cost: LineItem{
			EmployeeID: line.EmployeeID,
			NormalPay:  basePayCost,
			OTPay:      otPayCost,
			TotalPay:   basePayCost + otPayCost,
		},
		Sale: LineItem{
			EmployeeID: line.EmployeeID,
			NormalPay:  basePaySale,
			OTPay:      otPaySale,
			TotalPay:   basePaySale + otPaySale,
		},
		DayCategory:     dayCategory,
		SaleRateMissing: rates.SaleRateMissing,
	}
}

func basePayFactor(workType string, cfg CalcConfig) float64 {
	switch workType {
	case WorkTypeStandby:
		return cfg.StandbyPayFactor
	case WorkTypeLeave:
		return 0
	default:
		return 1
	}
}

func otDivisor(workMode string, cfg CalcConfig) float64 {
	if workMode == WorkModeOffshore {
		return cfg.OffshoreOTDivisor
	}
	return cfg.OnshoreOTDivisor
}
