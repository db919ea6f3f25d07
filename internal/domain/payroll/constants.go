package payroll

const (
	WorkTypeNormal  = "NORMAL"
	WorkTypeStandby = "STANDBY"
	WorkTypeLeave   = "LEAVE"

	DayWorkday         = "WORKDAY"
	DayWeeklyHoliday   = "WEEKLY_HOLIDAY"
	DayContractHoliday = "CONTRACT_HOLIDAY"

	WorkModeOnshore  = "Onshore"
	WorkModeOffshore = "Offshore"

	RunStatusPending   = "pending"
	RunStatusProcessed = "processed"
	RunStatusPaid      = "paid"

	WarningMissingMasterData = "missing_master_data"
	WarningMissingSaleRate   = "missing_sale_rate"
)

// Multipliers applied to the OT hourly base when a contract carries no
// overtime rules of its own.
const (
	DefaultWorkdayMultiplier         = 1.5
	DefaultWeeklyHolidayMultiplier   = 2.0
	DefaultContractHolidayMultiplier = 3.0
)

// Shift-length conventions differ between onshore and offshore crews, so
// the OT hourly base divides the daily rate by a mode-specific divisor.
// Standby days pay a fraction of the daily rate and never accrue OT.
const (
	DefaultOnshoreOTDivisor  = 8.0
	DefaultOffshoreOTDivisor = 14.0
	DefaultStandbyPayFactor  = 0.5
)
