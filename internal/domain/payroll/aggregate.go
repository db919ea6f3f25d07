package payroll

import (
	"log/slog"
	"sort"
)

// Aggregate calculates every resolvable line and sums the results per
// employee and for the whole run. Lines whose master-data references could
// not be resolved are skipped with a counted warning; one bad reference
// never blocks the rest of the run. Output is deterministic: line items
// keep input order and employee totals are sorted by employee ID, so the
// upstream system may retry run generation and get identical totals.
//
// An unparseable work date is the one hard failure: intake is expected to
// reject those before lines reach the calculator.
func Aggregate(lines []ResolvedLine, cfg CalcConfig) (RunResult, error) {
	result := RunResult{
		Summary: RunSummary{Warnings: map[string]int{}},
	}
	totals := map[string]*EmployeeTotal{}

	for _, resolved := range lines {
		line := resolved.Line
		if resolved.Position == nil || resolved.Contract == nil || resolved.WorkMode == "" {
			slog.Warn("skipping timesheet line with unresolved master data",
				"employeeId", line.EmployeeID, "workDate", line.WorkDate)
			result.Summary.SkippedLines++
			result.Summary.Warnings[WarningMissingMasterData]++
			continue
		}

		dayCategory, err := DayCategoryFor(line, *resolved.Contract)
		if err != nil {
			return RunResult{}, err
		}

		item := CalculateLine(line, *resolved.Position, *resolved.Contract, resolved.WorkMode, dayCategory, cfg)
		if item.SaleRateMissing {
			slog.Warn("no contract sale rate for position, billing zero",
				"employeeId", line.EmployeeID, "positionId", resolved.Position.ID)
			result.Summary.Warnings[WarningMissingSaleRate]++
		}
		result.Lines = append(result.Lines, item)

		total, ok := totals[line.EmployeeID]
		if !ok {
			total = &EmployeeTotal{
				EmployeeID: line.EmployeeID,
				Cost:       LineItem{EmployeeID: line.EmployeeID},
				Sale:       LineItem{EmployeeID: line.EmployeeID},
			}
			totals[line.EmployeeID] = total
		}
		addItem(&total.Cost, item.Cost)
		addItem(&total.Sale, item.Sale)
		total.LineCount++
	}

	employeeIDs := make([]string, 0, len(totals))
	for id := range totals {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Strings(employeeIDs)

	for _, id := range employeeIDs {
		total := totals[id]
		result.Employees = append(result.Employees, *total)
		result.Summary.TotalCost += total.Cost.TotalPay
		result.Summary.TotalSale += total.Sale.TotalPay
	}
	result.Summary.EmployeeCount = len(employeeIDs)

	if len(result.Summary.Warnings) == 0 {
		result.Summary.Warnings = nil
	}
	return result, nil
}

func addItem(total *LineItem, item LineItem) {
	total.NormalPay += item.NormalPay
	total.OTPay += item.OTPay
	total.TotalPay += item.TotalPay
}
