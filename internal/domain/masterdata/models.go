package masterdata

import (
	"time"

	"manpower/internal/domain/payroll"
)

type Employee struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Position struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	OnshoreCostPerDay  float64   `json:"onshoreCostPerDay"`
	OffshoreCostPerDay float64   `json:"offshoreCostPerDay"`
	CreatedAt          time.Time `json:"createdAt"`
}

type Contract struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	ClientName string                `json:"clientName"`
	Currency   string                `json:"currency"`
	Weekend    payroll.WeekendConfig `json:"weekend"`
	OTRules    *payroll.OTRules      `json:"otRules,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
}

type Project struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ContractID string    `json:"contractId"`
	WorkMode   string    `json:"workMode"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Assignment struct {
	ID         string `json:"id"`
	ProjectID  string `json:"projectId"`
	EmployeeID string `json:"employeeId"`
	PositionID string `json:"positionId"`
}
