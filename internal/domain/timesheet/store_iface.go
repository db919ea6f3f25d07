package timesheet

import (
	"context"

	"manpower/internal/domain/payroll"
)

type StoreAPI interface {
	CreateBatch(ctx context.Context, projectID, contractID, periodMonth string) (string, error)
	GetBatch(ctx context.Context, batchID string) (Batch, error)
	CountBatches(ctx context.Context) (int, error)
	ListBatches(ctx context.Context, limit, offset int) ([]Batch, error)
	InsertLine(ctx context.Context, batchID string, line payroll.TimesheetLine) (string, error)
	ListLines(ctx context.Context, batchID string) ([]Line, error)
	ApproveBatch(ctx context.Context, batchID string) error
}
