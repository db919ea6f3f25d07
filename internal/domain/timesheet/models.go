package timesheet

import "time"

const (
	BatchStatusDraft    = "draft"
	BatchStatusApproved = "approved"
)

// Batch groups the timesheet lines of one project for one payroll cycle.
// Approval locks the batch and hands it to payroll-run generation.
type Batch struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	ContractID  string     `json:"contractId"`
	PeriodMonth string     `json:"periodMonth"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
}

type Line struct {
	ID          string  `json:"id"`
	BatchID     string  `json:"batchId"`
	EmployeeID  string  `json:"employeeId"`
	WorkDate    string  `json:"workDate"`
	WorkType    string  `json:"workType"`
	NormalHours float64 `json:"normalHours"`
	OTHours     float64 `json:"otHours"`
	DayCategory string  `json:"dayCategory,omitempty"`
}
