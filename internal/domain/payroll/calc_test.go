package payroll

import "testing"

var (
	testPosition = Position{ID: "pos-1", OnshoreCostPerDay: 1000, OffshoreCostPerDay: 1400}
	testContract = Contract{
		ID:        "con-1",
		SaleRates: []SaleRate{{PositionID: "pos-1", DailyRateExVAT: 1500}},
	}
)

func TestResolveRatesByWorkMode(t *testing.T) {
	onshore := ResolveRates(testPosition, testContract, WorkModeOnshore)
	if onshore.CostDaily != 1000 {
		t.Fatalf("expected onshore cost 1000, got %v", onshore.CostDaily)
	}
	offshore := ResolveRates(testPosition, testContract, WorkModeOffshore)
	if offshore.CostDaily != 1400 {
		t.Fatalf("expected offshore cost 1400, got %v", offshore.CostDaily)
	}
	if onshore.SaleDaily != 1500 || onshore.SaleRateMissing {
		t.Fatalf("expected sale 1500, got %v (missing=%v)", onshore.SaleDaily, onshore.SaleRateMissing)
	}
}

func TestResolveRatesMissingSaleRate(t *testing.T) {
	contract := Contract{ID: "con-1"}
	rates := ResolveRates(testPosition, contract, WorkModeOnshore)
	if !rates.SaleRateMissing {
		t.Fatal("expected missing sale rate flag")
	}
	if rates.SaleDaily != 0 {
		t.Fatalf("expected sale 0 for unpriced position, got %v", rates.SaleDaily)
	}
	if rates.CostDaily != 1000 {
		t.Fatalf("expected cost unaffected, got %v", rates.CostDaily)
	}
}

func TestSelectMultiplierDefaults(t *testing.T) {
	cases := map[string]float64{
		DayWorkday:         1.5,
		DayWeeklyHoliday:   2.0,
		DayContractHoliday: 3.0,
	}
	for category, want := range cases {
		if got := SelectMultiplier(category, nil); got != want {
			t.Fatalf("expected default %v for %s, got %v", want, category, got)
		}
	}
}

func TestSelectMultiplierContractRules(t *testing.T) {
	rules := &OTRules{Workday: 1.25, WeeklyHoliday: 1.75, ContractHoliday: 2.5}
	if got := SelectMultiplier(DayWeeklyHoliday, rules); got != 1.75 {
		t.Fatalf("expected 1.75, got %v", got)
	}
}

func TestCalculateLineOnshoreWorkday(t *testing.T) {
	line := TimesheetLine{EmployeeID: "emp-1", WorkType: WorkTypeNormal, NormalHours: 8, OTHours: 2}

	result := CalculateLine(line, testPosition, testContract, WorkModeOnshore, DayWorkday, DefaultCalcConfig())

	if result.Cost.NormalPay != 1000 || result.Cost.OTPay != 375 || result.Cost.TotalPay != 1375 {
		t.Fatalf("unexpected cost side: %+v", result.Cost)
	}
	if result.Sale.NormalPay != 1500 || result.Sale.OTPay != 562.5 || result.Sale.TotalPay != 2062.5 {
		t.Fatalf("unexpected sale side: %+v", result.Sale)
	}
}

func TestCalculateLineContractHolidayMultiplier(t *testing.T) {
	line := TimesheetLine{EmployeeID: "emp-1", WorkType: WorkTypeNormal, NormalHours: 8, OTHours: 2}

	result := CalculateLine(line, testPosition, testContract, WorkModeOnshore, DayContractHoliday, DefaultCalcConfig())

	if result.Cost.OTPay != 750 {
		t.Fatalf("expected OT cost 750 at 3x, got %v", result.Cost.OTPay)
	}
}

func TestCalculateLineOffshoreDivisor(t *testing.T) {
	line := TimesheetLine{EmployeeID: "emp-1", WorkType: WorkTypeNormal, NormalHours: 12, OTHours: 1}

	result := CalculateLine(line, testPosition, testContract, WorkModeOffshore, DayWorkday, DefaultCalcConfig())

	if result.Cost.OTPay != 150 {
		t.Fatalf("expected OT cost 150 with divisor 14, got %v", result.Cost.OTPay)
	}
}

func TestCalculateLineStandbyAndLeaveNeverAccrueOT(t *testing.T) {
	for _, workType := range []string{WorkTypeStandby, WorkTypeLeave} {
		line := TimesheetLine{EmployeeID: "emp-1", WorkType: workType, NormalHours: 8, OTHours: 4}
		result := CalculateLine(line, testPosition, testContract, WorkModeOnshore, DayWorkday, DefaultCalcConfig())
		if result.Cost.OTPay != 0 || result.Sale.OTPay != 0 {
			t.Fatalf("%s accrued OT pay: cost=%v sale=%v", workType, result.Cost.OTPay, result.Sale.OTPay)
		}
	}
}

func TestCalculateLineStandbyHalfPay(t *testing.T) {
	line := TimesheetLine{EmployeeID: "emp-1", WorkType: WorkTypeStandby, NormalHours: 8}
	result := CalculateLine(line, testPosition, testContract, WorkModeOnshore, DayWorkday, DefaultCalcConfig())
	if result.Cost.NormalPay != 500 {
		t.Fatalf("expected standby cost 500, got %v", result.Cost.NormalPay)
	}
	if result.Sale.NormalPay != 750 {
		t.Fatalf("expected standby sale 750, got %v", result.Sale.NormalPay)
	}
}

func TestCalculateLineLeavePaysNothing(t *testing.T) {
	line := TimesheetLine{EmployeeID: "emp-1", WorkType: WorkTypeLeave, NormalHours: 8}
	result := CalculateLine(line, testPosition, testContract, WorkModeOnshore, DayWorkday, DefaultCalcConfig())
	if result.Cost.TotalPay != 0 || result.Sale.TotalPay != 0 {
		t.Fatalf("expected zero pay for leave, got cost=%v sale=%v", result.Cost.TotalPay, result.Sale.TotalPay)
	}
}

func TestCalculateLineZeroOTHours(t *testing.T) {
	line := TimesheetLine{EmployeeID: "emp-1", WorkType: WorkTypeNormal, NormalHours: 8}
	result := CalculateLine(line, testPosition, testContract, WorkModeOnshore, DayWorkday, DefaultCalcConfig())
	if result.Cost.OTPay != 0 || result.Sale.OTPay != 0 {
		t.Fatalf("expected zero OT pay, got cost=%v sale=%v", result.Cost.OTPay, result.Sale.OTPay)
	}
}

func TestCalculateLineOTScalesLinearly(t *testing.T) {
	oneHour := TimesheetLine{EmployeeID: "emp-1", WorkType: WorkTypeNormal, NormalHours: 8, OTHours: 1}
	twoHours := oneHour
	twoHours.OTHours = 2

	one := CalculateLine(oneHour, testPosition, testContract, WorkModeOnshore, DayWorkday, DefaultCalcConfig())
	two := CalculateLine(twoHours, testPosition, testContract, WorkModeOnshore, DayWorkday, DefaultCalcConfig())

	if two.Cost.OTPay != 2*one.Cost.OTPay {
		t.Fatalf("cost OT not linear: 1h=%v 2h=%v", one.Cost.OTPay, two.Cost.OTPay)
	}
	if two.Sale.OTPay != 2*one.Sale.OTPay {
		t.Fatalf("sale OT not linear: 1h=%v 2h=%v", one.Sale.OTPay, two.Sale.OTPay)
	}
}

func TestDefaultRulesMatchExplicitDefaults(t *testing.T) {
	line := TimesheetLine{EmployeeID: "emp-1", WorkType: WorkTypeNormal, NormalHours: 8, OTHours: 3}

	explicit := testContract
	explicit.OTRules = &OTRules{Workday: 1.5, WeeklyHoliday: 2.0, ContractHoliday: 3.0}

	for _, category := range []string{DayWorkday, DayWeeklyHoliday, DayContractHoliday} {
		withDefaults := CalculateLine(line, testPosition, testContract, WorkModeOnshore, category, DefaultCalcConfig())
		withExplicit := CalculateLine(line, testPosition, explicit, WorkModeOnshore, category, DefaultCalcConfig())
		if withDefaults.Cost.OTPay != withExplicit.Cost.OTPay || withDefaults.Sale.OTPay != withExplicit.Sale.OTPay {
			t.Fatalf("default rules diverge from explicit defaults for %s", category)
		}
	}
}

func TestCalculateLineCostSaleParallelism(t *testing.T) {
	line := TimesheetLine{EmployeeID: "emp-1", WorkType: WorkTypeNormal, NormalHours: 8, OTHours: 2}
	result := CalculateLine(line, testPosition, testContract, WorkModeOnshore, DayWeeklyHoliday, DefaultCalcConfig())

	// Same hours and multiplier on both sides: the ratio of OT pay must
	// equal the ratio of daily rates.
	costRatio := result.Cost.OTPay / 1000
	saleRatio := result.Sale.OTPay / 1500
	if costRatio != saleRatio {
		t.Fatalf("cost/sale parallelism broken: %v vs %v", costRatio, saleRatio)
	}
}
