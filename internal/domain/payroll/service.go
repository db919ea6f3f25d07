package payroll

import (
	"context"
	"log/slog"

	"manpower/internal/platform/metrics"
)

const batchStatusApproved = "approved"

// MasterDataAPI loads the resolved master-data context for one batch.
// Implemented by the masterdata store; faked in tests.
type MasterDataAPI interface {
	Snapshot(ctx context.Context, projectID, contractID string) (Snapshot, error)
}

// Recorder receives audit events for run lifecycle changes.
type Recorder interface {
	Record(ctx context.Context, action, entityType, entityID, requestID string, details any) error
}

type Service struct {
	store     StoreAPI
	master    MasterDataAPI
	audit     Recorder
	collector *metrics.Collector
	cfg       CalcConfig
}

func NewService(store StoreAPI, master MasterDataAPI, audit Recorder, collector *metrics.Collector, cfg CalcConfig) *Service {
	return &Service{store: store, master: master, audit: audit, collector: collector, cfg: cfg}
}

// GenerateRun aggregates an approved batch into a payroll run. Retries are
// safe: an existing unpaid run for the batch has its items replaced, and
// aggregation itself is deterministic over the same inputs.
func (s *Service) GenerateRun(ctx context.Context, batchID, requestID string) (Run, error) {
	batch, err := s.store.GetBatch(ctx, batchID)
	if err != nil {
		return Run{}, err
	}
	if batch.Status != batchStatusApproved {
		return Run{}, ErrBatchNotApproved
	}

	lines, err := s.store.ListBatchLines(ctx, batchID)
	if err != nil {
		return Run{}, err
	}

	snapshot, err := s.master.Snapshot(ctx, batch.ProjectID, batch.ContractID)
	if err != nil {
		return Run{}, err
	}

	resolved := make([]ResolvedLine, 0, len(lines))
	for _, line := range lines {
		resolved = append(resolved, snapshot.ResolveLine(line))
	}

	result, err := Aggregate(resolved, s.cfg)
	if err != nil {
		return Run{}, err
	}

	runID, err := s.store.FindRunIDByBatch(ctx, batchID)
	if err != nil {
		return Run{}, err
	}
	if runID == "" {
		runID, err = s.store.CreateRun(ctx, batchID, batch.Currency)
		if err != nil {
			return Run{}, err
		}
	} else {
		existing, err := s.store.GetRun(ctx, runID)
		if err != nil {
			return Run{}, err
		}
		if existing.Status == RunStatusPaid {
			return Run{}, ErrInvalidRunTransition
		}
		if err := s.store.DeleteRunItems(ctx, runID); err != nil {
			return Run{}, err
		}
	}

	if err := s.store.InsertRunItems(ctx, runID, result.Employees); err != nil {
		return Run{}, err
	}
	if err := s.store.SaveRunResults(ctx, runID, result.Summary); err != nil {
		return Run{}, err
	}

	if s.collector != nil {
		s.collector.RecordRun(len(result.Lines), result.Summary.SkippedLines)
	}
	if s.audit != nil {
		if err := s.audit.Record(ctx, "payroll.run.generated", "payroll_run", runID, requestID, result.Summary); err != nil {
			slog.Warn("audit record failed", "runId", runID, "err", err)
		}
	}

	slog.Info("payroll run generated",
		"runId", runID, "batchId", batchID,
		"employees", result.Summary.EmployeeCount,
		"skippedLines", result.Summary.SkippedLines)

	return s.store.GetRun(ctx, runID)
}

// AdvanceStatus moves a processed run to paid. Generation owns the
// pending-to-processed transition; everything else is rejected.
func (s *Service) AdvanceStatus(ctx context.Context, runID, next, requestID string) (Run, error) {
	run, err := s.store.GetRun(ctx, runID)
	if err != nil {
		return Run{}, err
	}
	if next != RunStatusPaid || run.Status != RunStatusProcessed {
		return Run{}, ErrInvalidRunTransition
	}
	if err := s.store.UpdateRunStatus(ctx, runID, next); err != nil {
		return Run{}, err
	}
	if s.audit != nil {
		if err := s.audit.Record(ctx, "payroll.run.paid", "payroll_run", runID, requestID, nil); err != nil {
			slog.Warn("audit record failed", "runId", runID, "err", err)
		}
	}
	return s.store.GetRun(ctx, runID)
}

func (s *Service) GetRun(ctx context.Context, runID string) (Run, error) {
	return s.store.GetRun(ctx, runID)
}

func (s *Service) ListRuns(ctx context.Context, limit, offset int) ([]Run, int, error) {
	total, err := s.store.CountRuns(ctx)
	if err != nil {
		return nil, 0, err
	}
	runs, err := s.store.ListRuns(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return runs, total, nil
}

func (s *Service) ListRunItems(ctx context.Context, runID string) ([]EmployeeTotal, error) {
	if _, err := s.store.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	return s.store.ListRunItems(ctx, runID)
}
