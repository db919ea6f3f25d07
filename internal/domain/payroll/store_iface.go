package payroll

import "context"

type StoreAPI interface {
	GetBatch(ctx context.Context, batchID string) (BatchInfo, error)
	ListBatchLines(ctx context.Context, batchID string) ([]TimesheetLine, error)
	FindRunIDByBatch(ctx context.Context, batchID string) (string, error)
	CreateRun(ctx context.Context, batchID, currency string) (string, error)
	DeleteRunItems(ctx context.Context, runID string) error
	InsertRunItems(ctx context.Context, runID string, totals []EmployeeTotal) error
	SaveRunResults(ctx context.Context, runID string, summary RunSummary) error
	GetRun(ctx context.Context, runID string) (Run, error)
	CountRuns(ctx context.Context) (int, error)
	ListRuns(ctx context.Context, limit, offset int) ([]Run, error)
	ListRunItems(ctx context.Context, runID string) ([]EmployeeTotal, error)
	UpdateRunStatus(ctx context.Context, runID, status string) error
}
