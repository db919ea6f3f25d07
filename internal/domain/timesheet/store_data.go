package timesheet

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

func (s *Store) CreateBatch(ctx context.Context, projectID, contractID, periodMonth string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO timesheet_batches (project_id, contract_id, period_month, status)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, projectID, contractID, periodMonth, BatchStatusDraft).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetBatch(ctx context.Context, batchID string) (Batch, error) {
	var batch Batch
	err := s.DB.QueryRow(ctx, `
    SELECT id, project_id, contract_id, period_month, status, created_at, approved_at
    FROM timesheet_batches
    WHERE id = $1
  `, batchID).Scan(&batch.ID, &batch.ProjectID, &batch.ContractID, &batch.PeriodMonth,
		&batch.Status, &batch.CreatedAt, &batch.ApprovedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Batch{}, ErrBatchNotFound
	}
	if err != nil {
		return Batch{}, err
	}
	return batch, nil
}

func (s *Store) CountBatches(ctx context.Context) (int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM timesheet_batches").Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) ListBatches(ctx context.Context, limit, offset int) ([]Batch, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, project_id, contract_id, period_month, status, created_at, approved_at
    FROM timesheet_batches
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var batch Batch
		if err := rows.Scan(&batch.ID, &batch.ProjectID, &batch.ContractID, &batch.PeriodMonth,
			&batch.Status, &batch.CreatedAt, &batch.ApprovedAt); err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

func (s *Store) InsertLine(ctx context.Context, batchID string, line payroll.TimesheetLine) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO timesheet_lines
      (batch_id, employee_id, work_date, work_type, normal_hours, ot_hours, day_category)
    VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7, ''))
    RETURNING id
  `, batchID, line.EmployeeID, line.WorkDate, line.WorkType,
		line.NormalHours, line.OTHours, line.DayCategory).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListLines(ctx context.Context, batchID string) ([]Line, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, batch_id, employee_id, to_char(work_date, 'YYYY-MM-DD'),
           work_type, normal_hours, ot_hours, COALESCE(day_category, '')
    FROM timesheet_lines
    WHERE batch_id = $1
    ORDER BY work_date, employee_id
  `, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var line Line
		if err := rows.Scan(&line.ID, &line.BatchID, &line.EmployeeID, &line.WorkDate,
			&line.WorkType, &line.NormalHours, &line.OTHours, &line.DayCategory); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *Store) ApproveBatch(ctx context.Context, batchID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE timesheet_batches SET status = $2, approved_at = now()
    WHERE id = $1
  `, batchID, BatchStatusApproved)
	return err
}
