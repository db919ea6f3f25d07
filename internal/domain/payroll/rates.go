package payroll

// ResolveRates picks the daily cost and sale rates for a position under a
// work mode. A position the contract never priced bills at zero instead of
// failing: cost-side payroll must not be blocked by sale-side gaps.
func ResolveRates(position Position, contract Contract, workMode string) Rates {
	rates := Rates{CostDaily: position.OnshoreCostPerDay}
	if workMode == WorkModeOffshore {
		rates.CostDaily = position.OffshoreCostPerDay
	}

	rates.SaleRateMissing = true
	for _, sale := range contract.SaleRates {
		if sale.PositionID == position.ID {
			rates.SaleDaily = sale.DailyRateExVAT
			rates.SaleRateMissing = false
			break
		}
	}
	return rates
}
