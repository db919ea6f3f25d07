package masterdata

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"manpower/internal/domain/payroll"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateEmployee(ctx context.Context, fullName, email string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (full_name, email)
    VALUES ($1, $2)
    RETURNING id
  `, fullName, email).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListEmployees(ctx context.Context, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, full_name, email, created_at
    FROM employees
    ORDER BY full_name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var employee Employee
		if err := rows.Scan(&employee.ID, &employee.FullName, &employee.Email, &employee.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, nil
}

func (s *Store) CreatePosition(ctx context.Context, position Position) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO positions (name, onshore_cost_per_day, offshore_cost_per_day)
    VALUES ($1, $2, $3)
    RETURNING id
  `, position.Name, position.OnshoreCostPerDay, position.OffshoreCostPerDay).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListPositions(ctx context.Context, limit, offset int) ([]Position, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, onshore_cost_per_day, offshore_cost_per_day, created_at
    FROM positions
    ORDER BY name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		var position Position
		if err := rows.Scan(&position.ID, &position.Name, &position.OnshoreCostPerDay, &position.OffshoreCostPerDay, &position.CreatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}
	return positions, nil
}

func (s *Store) CreateContract(ctx context.Context, contract Contract) (string, error) {
	var workday, weeklyHoliday, contractHoliday *float64
	if contract.OTRules != nil {
		workday = &contract.OTRules.Workday
		weeklyHoliday = &contract.OTRules.WeeklyHoliday
		contractHoliday = &contract.OTRules.ContractHoliday
	}
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO contracts
      (name, client_name, currency, weekend_saturday, weekend_sunday,
       ot_workday, ot_weekly_holiday, ot_contract_holiday)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, contract.Name, contract.ClientName, contract.Currency,
		contract.Weekend.Saturday, contract.Weekend.Sunday,
		workday, weeklyHoliday, contractHoliday).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListContracts(ctx context.Context, limit, offset int) ([]Contract, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, client_name, currency, weekend_saturday, weekend_sunday,
           ot_workday, ot_weekly_holiday, ot_contract_holiday, created_at
    FROM contracts
    ORDER BY name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []Contract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}

func (s *Store) SetSaleRate(ctx context.Context, contractID string, rate payroll.SaleRate) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO contract_sale_rates (contract_id, position_id, daily_rate_ex_vat)
    VALUES ($1, $2, $3)
    ON CONFLICT (contract_id, position_id)
    DO UPDATE SET daily_rate_ex_vat = EXCLUDED.daily_rate_ex_vat
  `, contractID, rate.PositionID, rate.DailyRateExVAT)
	return err
}

func (s *Store) AddHoliday(ctx context.Context, contractID, date string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO contract_holidays (contract_id, holiday_date)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING
  `, contractID, date)
	return err
}

func (s *Store) CreateProject(ctx context.Context, project Project) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO projects (name, contract_id, work_mode)
    VALUES ($1, $2, $3)
    RETURNING id
  `, project.Name, project.ContractID, project.WorkMode).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListProjects(ctx context.Context, limit, offset int) ([]Project, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, contract_id, work_mode, created_at
    FROM projects
    ORDER BY name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var project Project
		if err := rows.Scan(&project.ID, &project.Name, &project.ContractID, &project.WorkMode, &project.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *Store) AssignEmployee(ctx context.Context, assignment Assignment) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO assignments (project_id, employee_id, position_id)
    VALUES ($1, $2, $3)
    ON CONFLICT (project_id, employee_id)
    DO UPDATE SET position_id = EXCLUDED.position_id
    RETURNING id
  `, assignment.ProjectID, assignment.EmployeeID, assignment.PositionID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Snapshot assembles the in-memory master-data context the calculator
// consumes: project work mode, contract calendar and rates, position cost
// rates, and the employee-to-position assignments for the project.
func (s *Store) Snapshot(ctx context.Context, projectID, contractID string) (payroll.Snapshot, error) {
	snapshot := payroll.Snapshot{
		Positions:   map[string]payroll.Position{},
		Assignments: map[string]string{},
	}

	err := s.DB.QueryRow(ctx, "SELECT work_mode FROM projects WHERE id = $1", projectID).Scan(&snapshot.WorkMode)
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Snapshot{}, ErrProjectNotFound
	}
	if err != nil {
		return payroll.Snapshot{}, err
	}

	contract, err := s.contractByID(ctx, contractID)
	if err != nil {
		return payroll.Snapshot{}, err
	}
	snapshot.Contract = payroll.Contract{
		ID:      contract.ID,
		OTRules: contract.OTRules,
		Weekend: contract.Weekend,
	}

	rateRows, err := s.DB.Query(ctx, `
    SELECT position_id, daily_rate_ex_vat
    FROM contract_sale_rates
    WHERE contract_id = $1
    ORDER BY position_id
  `, contractID)
	if err != nil {
		return payroll.Snapshot{}, err
	}
	defer rateRows.Close()
	for rateRows.Next() {
		var rate payroll.SaleRate
		if err := rateRows.Scan(&rate.PositionID, &rate.DailyRateExVAT); err != nil {
			return payroll.Snapshot{}, err
		}
		snapshot.Contract.SaleRates = append(snapshot.Contract.SaleRates, rate)
	}

	holidayRows, err := s.DB.Query(ctx, `
    SELECT to_char(holiday_date, 'YYYY-MM-DD')
    FROM contract_holidays
    WHERE contract_id = $1
    ORDER BY holiday_date
  `, contractID)
	if err != nil {
		return payroll.Snapshot{}, err
	}
	defer holidayRows.Close()
	for holidayRows.Next() {
		var date string
		if err := holidayRows.Scan(&date); err != nil {
			return payroll.Snapshot{}, err
		}
		snapshot.Contract.HolidayDates = append(snapshot.Contract.HolidayDates, date)
	}

	assignmentRows, err := s.DB.Query(ctx, `
    SELECT a.employee_id, a.position_id,
           p.onshore_cost_per_day, p.offshore_cost_per_day
    FROM assignments a
    JOIN positions p ON a.position_id = p.id
    WHERE a.project_id = $1
  `, projectID)
	if err != nil {
		return payroll.Snapshot{}, err
	}
	defer assignmentRows.Close()
	for assignmentRows.Next() {
		var employeeID string
		var position payroll.Position
		if err := assignmentRows.Scan(&employeeID, &position.ID, &position.OnshoreCostPerDay, &position.OffshoreCostPerDay); err != nil {
			return payroll.Snapshot{}, err
		}
		snapshot.Assignments[employeeID] = position.ID
		snapshot.Positions[position.ID] = position
	}

	return snapshot, nil
}

func (s *Store) contractByID(ctx context.Context, contractID string) (Contract, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, client_name, currency, weekend_saturday, weekend_sunday,
           ot_workday, ot_weekly_holiday, ot_contract_holiday, created_at
    FROM contracts
    WHERE id = $1
  `, contractID)
	contract, err := scanContract(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Contract{}, ErrContractNotFound
	}
	return contract, err
}

func scanContract(row pgx.Row) (Contract, error) {
	var contract Contract
	var workday, weeklyHoliday, contractHoliday *float64
	if err := row.Scan(&contract.ID, &contract.Name, &contract.ClientName, &contract.Currency,
		&contract.Weekend.Saturday, &contract.Weekend.Sunday,
		&workday, &weeklyHoliday, &contractHoliday, &contract.CreatedAt); err != nil {
		return Contract{}, err
	}
	// OT rules are stored as three nullable columns; all three set together.
	if workday != nil && weeklyHoliday != nil && contractHoliday != nil {
		contract.OTRules = &payroll.OTRules{
			Workday:         *workday,
			WeeklyHoliday:   *weeklyHoliday,
			ContractHoliday: *contractHoliday,
		}
	}
	return contract, nil
}
