package payroll

import "time"

// TimesheetLine is the read-only snapshot of one worker-day handed to the
// calculator. WorkDate is a YYYY-MM-DD key, never a timestamp. DayCategory
// is normally empty and derived from the contract calendar; a stored
// override wins when present.
type TimesheetLine struct {
	EmployeeID  string  `json:"employeeId"`
	WorkDate    string  `json:"workDate"`
	WorkType    string  `json:"workType"`
	NormalHours float64 `json:"normalHours"`
	OTHours     float64 `json:"otHours"`
	DayCategory string  `json:"dayCategory,omitempty"`
}

type Position struct {
	ID                 string  `json:"id"`
	OnshoreCostPerDay  float64 `json:"onshoreCostPerDay"`
	OffshoreCostPerDay float64 `json:"offshoreCostPerDay"`
}

type SaleRate struct {
	PositionID     string  `json:"positionId"`
	DailyRateExVAT float64 `json:"dailyRateExVat"`
}

type OTRules struct {
	Workday         float64 `json:"workdayMultiplier"`
	WeeklyHoliday   float64 `json:"weeklyHolidayMultiplier"`
	ContractHoliday float64 `json:"contractHolidayMultiplier"`
}

type WeekendConfig struct {
	Saturday bool `json:"saturday"`
	Sunday   bool `json:"sunday"`
}

type Contract struct {
	ID           string        `json:"id"`
	SaleRates    []SaleRate    `json:"saleRates"`
	OTRules      *OTRules      `json:"otRules,omitempty"`
	HolidayDates []string      `json:"holidayDates,omitempty"`
	Weekend      WeekendConfig `json:"weekend"`
}

// Rates is the resolved daily-rate pair for one line. SaleRateMissing
// records that the contract carries no price for the position; the sale
// side is then billed at zero while the cost side stays intact.
type Rates struct {
	CostDaily       float64
	SaleDaily       float64
	SaleRateMissing bool
}

// CalcConfig carries the deployment-specific calculation constants. The
// divisors and standby factor are asserted by the commercial side, not
// derived, so they stay configurable rather than baked into formulas.
type CalcConfig struct {
	OnshoreOTDivisor  float64
	OffshoreOTDivisor float64
	StandbyPayFactor  float64
}

func DefaultCalcConfig() CalcConfig {
	return CalcConfig{
		OnshoreOTDivisor:  DefaultOnshoreOTDivisor,
		OffshoreOTDivisor: DefaultOffshoreOTDivisor,
		StandbyPayFactor:  DefaultStandbyPayFactor,
	}
}

// LineItem is one side (cost or sale) of a calculated amount, either for a
// single line or summed per employee.
type LineItem struct {
	EmployeeID string  `json:"employeeId"`
	NormalPay  float64 `json:"normalPay"`
	OTPay      float64 `json:"otPay"`
	TotalPay   float64 `json:"totalPay"`
}

// LineResult pairs the cost-side and sale-side amounts computed from the
// same hours, work type, and day category.
type LineResult struct {
	Cost            LineItem `json:"cost"`
	Sale            LineItem `json:"sale"`
	DayCategory     string   `json:"dayCategory"`
	SaleRateMissing bool     `json:"saleRateMissing,omitempty"`
}

// ResolvedLine is a timesheet line joined to its master data by the
// upstream resolver. A nil Position or Contract, or an empty WorkMode,
// marks a reference that could not be resolved; the aggregator skips such
// lines with a warning instead of failing the run.
type ResolvedLine struct {
	Line     TimesheetLine
	Position *Position
	Contract *Contract
	WorkMode string
}

// EmployeeTotal is the per-employee aggregate persisted for a run.
type EmployeeTotal struct {
	EmployeeID string   `json:"employeeId"`
	Cost       LineItem `json:"cost"`
	Sale       LineItem `json:"sale"`
	LineCount  int      `json:"lineCount"`
}

type RunSummary struct {
	TotalCost     float64        `json:"totalCost"`
	TotalSale     float64        `json:"totalSale"`
	EmployeeCount int            `json:"employeeCount"`
	SkippedLines  int            `json:"skippedLines"`
	Warnings      map[string]int `json:"warnings,omitempty"`
}

// RunResult is the full output of one aggregation pass. Lines preserve
// input order; Employees are sorted by employee ID so repeated runs over
// the same input produce identical output.
type RunResult struct {
	Lines     []LineResult    `json:"lineItems"`
	Employees []EmployeeTotal `json:"employees"`
	Summary   RunSummary      `json:"summary"`
}

// Snapshot is the in-memory master-data context for one batch, assembled
// upstream so the calculator never touches a database.
type Snapshot struct {
	WorkMode    string
	Contract    Contract
	Positions   map[string]Position
	Assignments map[string]string // employee ID -> position ID
}

// ResolveLine joins one timesheet line to its master data. Unresolvable
// references come back as nil fields for the aggregator to skip.
func (s Snapshot) ResolveLine(line TimesheetLine) ResolvedLine {
	resolved := ResolvedLine{Line: line, WorkMode: s.WorkMode}
	positionID, ok := s.Assignments[line.EmployeeID]
	if !ok {
		return resolved
	}
	position, ok := s.Positions[positionID]
	if !ok {
		return resolved
	}
	resolved.Position = &position
	contract := s.Contract
	resolved.Contract = &contract
	return resolved
}

// Run is a persisted payroll run for one timesheet batch.
type Run struct {
	ID            string     `json:"id"`
	BatchID       string     `json:"batchId"`
	Status        string     `json:"status"`
	TotalCost     float64    `json:"totalCost"`
	TotalSale     float64    `json:"totalSale"`
	EmployeeCount int        `json:"employeeCount"`
	SkippedLines  int        `json:"skippedLines"`
	Currency      string     `json:"currency"`
	CreatedAt     time.Time  `json:"createdAt"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
}

// BatchInfo is the slice of a timesheet batch the run service needs.
type BatchInfo struct {
	ID         string
	ProjectID  string
	ContractID string
	Status     string
	Currency   string
}
