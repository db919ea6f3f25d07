package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) GetBatch(ctx context.Context, batchID string) (BatchInfo, error) {
	var batch BatchInfo
	err := s.DB.QueryRow(ctx, `
    SELECT b.id, b.project_id, b.contract_id, b.status, COALESCE(c.currency, 'USD')
    FROM timesheet_batches b
    JOIN contracts c ON b.contract_id = c.id
    WHERE b.id = $1
  `, batchID).Scan(&batch.ID, &batch.ProjectID, &batch.ContractID, &batch.Status, &batch.Currency)
	if err != nil {
		return BatchInfo{}, err
	}
	return batch, nil
}

func (s *Store) ListBatchLines(ctx context.Context, batchID string) ([]TimesheetLine, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, to_char(work_date, 'YYYY-MM-DD'), work_type,
           normal_hours, ot_hours, COALESCE(day_category, '')
    FROM timesheet_lines
    WHERE batch_id = $1
    ORDER BY work_date, employee_id
  `, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []TimesheetLine
	for rows.Next() {
		var line TimesheetLine
		if err := rows.Scan(&line.EmployeeID, &line.WorkDate, &line.WorkType, &line.NormalHours, &line.OTHours, &line.DayCategory); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *Store) FindRunIDByBatch(ctx context.Context, batchID string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, "SELECT id FROM payroll_runs WHERE batch_id = $1", batchID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) CreateRun(ctx context.Context, batchID, currency string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_runs (batch_id, status, currency)
    VALUES ($1, $2, $3)
    RETURNING id
  `, batchID, RunStatusPending, currency).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) DeleteRunItems(ctx context.Context, runID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM payroll_run_items WHERE run_id = $1", runID)
	return err
}

func (s *Store) InsertRunItems(ctx context.Context, runID string, totals []EmployeeTotal) error {
	for _, total := range totals {
		_, err := s.DB.Exec(ctx, `
      INSERT INTO payroll_run_items
        (run_id, employee_id, line_count,
         cost_normal_pay, cost_ot_pay, cost_total_pay,
         sale_normal_pay, sale_ot_pay, sale_total_pay)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    `, runID, total.EmployeeID, total.LineCount,
			total.Cost.NormalPay, total.Cost.OTPay, total.Cost.TotalPay,
			total.Sale.NormalPay, total.Sale.OTPay, total.Sale.TotalPay)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) SaveRunResults(ctx context.Context, runID string, summary RunSummary) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE payroll_runs
    SET status = $2, total_cost = $3, total_sale = $4,
        employee_count = $5, skipped_lines = $6, processed_at = now()
    WHERE id = $1
  `, runID, RunStatusProcessed, summary.TotalCost, summary.TotalSale, summary.EmployeeCount, summary.SkippedLines)
	return err
}

func (s *Store) GetRun(ctx context.Context, runID string) (Run, error) {
	var run Run
	err := s.DB.QueryRow(ctx, `
    SELECT id, batch_id, status, total_cost, total_sale,
           employee_count, skipped_lines, currency, created_at, processed_at
    FROM payroll_runs
    WHERE id = $1
  `, runID).Scan(&run.ID, &run.BatchID, &run.Status, &run.TotalCost, &run.TotalSale,
		&run.EmployeeCount, &run.SkippedLines, &run.Currency, &run.CreatedAt, &run.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

func (s *Store) CountRuns(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM payroll_runs").Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListRuns(ctx context.Context, limit, offset int) ([]Run, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, batch_id, status, total_cost, total_sale,
           employee_count, skipped_lines, currency, created_at, processed_at
    FROM payroll_runs
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.BatchID, &run.Status, &run.TotalCost, &run.TotalSale,
			&run.EmployeeCount, &run.SkippedLines, &run.Currency, &run.CreatedAt, &run.ProcessedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (s *Store) ListRunItems(ctx context.Context, runID string) ([]EmployeeTotal, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, line_count,
           cost_normal_pay, cost_ot_pay, cost_total_pay,
           sale_normal_pay, sale_ot_pay, sale_total_pay
    FROM payroll_run_items
    WHERE run_id = $1
    ORDER BY employee_id
  `, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []EmployeeTotal
	for rows.Next() {
		var total EmployeeTotal
		if err := rows.Scan(&total.EmployeeID, &total.LineCount,
			&total.Cost.NormalPay, &total.Cost.OTPay, &total.Cost.TotalPay,
			&total.Sale.NormalPay, &total.Sale.OTPay, &total.Sale.TotalPay); err != nil {
			return nil, err
		}
		total.Cost.EmployeeID = total.EmployeeID
		total.Sale.EmployeeID = total.EmployeeID
		totals = append(totals, total)
	}
	return totals, nil
}

func (s *Store) UpdateRunStatus(ctx context.Context, runID, status string) error {
	_, err := s.DB.Exec(ctx, "UPDATE payroll_runs SET status = $2 WHERE id = $1", runID, status)
	return err
}
