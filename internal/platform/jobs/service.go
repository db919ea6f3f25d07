package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

const JobPayrollRun = "payroll_run"

// Service is a single-worker queue for background work, currently payroll
// run generation after batch approval. Each execution leaves a job_runs
// bookkeeping row. Duplicate enqueues of the same batch are harmless: run
// generation replaces prior results for the batch.
type Service struct {
	DB    *pgxpool.Pool
	queue chan job
}

type job struct {
	Type     string
	EntityID string
	Run      func(context.Context) (any, error)
}

func New(db *pgxpool.Pool) *Service {
	return &Service{
		DB:    db,
		queue: make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
}

func (s *Service) Enqueue(jobType, entityID string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, EntityID: entityID, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType, "entityId", entityID)
	}
}

func (s *Service) RunNow(ctx context.Context, jobType, entityID string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, EntityID: entityID, Run: run})
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "entityId", j.EntityID, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	runID, err := s.createJobRun(ctx, j.Type, j.EntityID)
	if err != nil {
		slog.Warn("job run bookkeeping failed", "jobType", j.Type, "err", err)
	}

	result, runErr := j.Run(ctx)

	status := "succeeded"
	var details any = result
	if runErr != nil {
		status = "failed"
		details = map[string]string{"error": runErr.Error()}
	}
	if runID != "" {
		detailsJSON, _ := json.Marshal(details)
		if err := s.updateJobRun(ctx, runID, status, detailsJSON); err != nil {
			slog.Warn("job run bookkeeping failed", "jobType", j.Type, "err", err)
		}
	}
	return result, runErr
}

func (s *Service) createJobRun(ctx context.Context, jobType, entityID string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, entity_id, status)
    VALUES ($1, $2, 'running')
    RETURNING id
  `, jobType, entityID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) updateJobRun(ctx context.Context, runID, status string, detailsJSON []byte) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE job_runs SET status = $2, details_json = $3, finished_at = now()
    WHERE id = $1
  `, runID, status, detailsJSON)
	return err
}
