package timesheet

import (
	"context"
	"log/slog"

	"manpower/internal/domain/payroll"
)

type Service struct {
	store      StoreAPI
	audit      payroll.Recorder
	onApproved func(batchID string)
}

// NewService wires the batch workflow. onApproved fires after a batch is
// approved, typically enqueueing payroll-run generation; nil disables it.
func NewService(store StoreAPI, audit payroll.Recorder, onApproved func(batchID string)) *Service {
	return &Service{store: store, audit: audit, onApproved: onApproved}
}

func (s *Service) CreateBatch(ctx context.Context, projectID, contractID, periodMonth string) (Batch, error) {
	id, err := s.store.CreateBatch(ctx, projectID, contractID, periodMonth)
	if err != nil {
		return Batch{}, err
	}
	return s.store.GetBatch(ctx, id)
}

func (s *Service) GetBatch(ctx context.Context, batchID string) (Batch, error) {
	return s.store.GetBatch(ctx, batchID)
}

func (s *Service) ListBatches(ctx context.Context, limit, offset int) ([]Batch, int, error) {
	total, err := s.store.CountBatches(ctx)
	if err != nil {
		return nil, 0, err
	}
	batches, err := s.store.ListBatches(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return batches, total, nil
}

// AddLine validates and stores one worker-day. Lines of an approved batch
// are immutable, so additions are rejected once approval happened.
func (s *Service) AddLine(ctx context.Context, batchID string, line payroll.TimesheetLine) (string, error) {
	batch, err := s.store.GetBatch(ctx, batchID)
	if err != nil {
		return "", err
	}
	if batch.Status != BatchStatusDraft {
		return "", ErrBatchLocked
	}
	if err := ValidateLine(line); err != nil {
		return "", err
	}
	return s.store.InsertLine(ctx, batchID, line)
}

func (s *Service) ListLines(ctx context.Context, batchID string) ([]Line, error) {
	if _, err := s.store.GetBatch(ctx, batchID); err != nil {
		return nil, err
	}
	return s.store.ListLines(ctx, batchID)
}

func (s *Service) ApproveBatch(ctx context.Context, batchID, requestID string) (Batch, error) {
	batch, err := s.store.GetBatch(ctx, batchID)
	if err != nil {
		return Batch{}, err
	}
	if batch.Status != BatchStatusDraft {
		return Batch{}, ErrBatchLocked
	}
	if err := s.store.ApproveBatch(ctx, batchID); err != nil {
		return Batch{}, err
	}

	if s.audit != nil {
		if err := s.audit.Record(ctx, "timesheet.batch.approved", "timesheet_batch", batchID, requestID, nil); err != nil {
			slog.Warn("audit record failed", "batchId", batchID, "err", err)
		}
	}
	if s.onApproved != nil {
		s.onApproved(batchID)
	}

	return s.store.GetBatch(ctx, batchID)
}
