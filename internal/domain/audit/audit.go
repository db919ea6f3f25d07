package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Service writes insert-only audit events for workflow transitions
// (batch approval, run generation, run payment). Reading the trail is a
// reporting concern outside this service.
type Service struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

func (s *Service) Record(ctx context.Context, action, entityType, entityID, requestID string, details any) error {
	var detailsJSON []byte
	if details != nil {
		payload, err := json.Marshal(details)
		if err != nil {
			return err
		}
		detailsJSON = payload
	}

	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_events (action, entity_type, entity_id, request_id, details_json)
    VALUES ($1,$2,$3,$4,$5)
  `, action, entityType, entityID, requestID, detailsJSON)
	return err
}
