package payrollhandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"manpower/internal/domain/payroll"
	"manpower/internal/platform/jobs"
	"manpower/internal/transport/http/api"
	"manpower/internal/transport/http/middleware"
	"manpower/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Jobs    *jobs.Service
}

func NewHandler(service *payroll.Service, jobsService *jobs.Service) *Handler {
	return &Handler{Service: service, Jobs: jobsService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll/runs", func(r chi.Router) {
		r.Get("/", h.handleListRuns)
		r.Post("/", h.handleGenerateRun)
		r.Get("/{runID}", h.handleGetRun)
		r.Get("/{runID}/items", h.handleListRunItems)
		r.Post("/{runID}/status", h.handleAdvanceStatus)
	})
}

type generatePayload struct {
	BatchID string `json:"batchId"`
}

func (h *Handler) handleGenerateRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("batchId", payload.BatchID, "batch id is required")
	if v.Reject(w, reqID) {
		return
	}

	result, err := h.Jobs.RunNow(r.Context(), jobs.JobPayrollRun, payload.BatchID, func(ctx context.Context) (any, error) {
		return h.Service.GenerateRun(ctx, payload.BatchID, reqID)
	})
	switch {
	case errors.Is(err, payroll.ErrBatchNotApproved):
		api.Fail(w, http.StatusConflict, "batch_not_approved", "timesheet batch must be approved first", reqID)
	case errors.Is(err, payroll.ErrInvalidRunTransition):
		api.Fail(w, http.StatusConflict, "run_already_paid", "a paid run cannot be regenerated", reqID)
	case errors.Is(err, payroll.ErrInvalidDate):
		api.Fail(w, http.StatusBadRequest, "invalid_work_date", err.Error(), reqID)
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "run_generate_failed", "failed to generate payroll run", reqID)
	default:
		api.Created(w, result, reqID)
	}
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 20, 100)
	runs, total, err := h.Service.ListRuns(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "runs_list_failed", "failed to list payroll runs", reqID)
		return
	}
	api.Success(w, map[string]any{"items": runs, "total": total}, reqID)
}

func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	run, err := h.Service.GetRun(r.Context(), chi.URLParam(r, "runID"))
	if errors.Is(err, payroll.ErrRunNotFound) {
		api.Fail(w, http.StatusNotFound, "run_not_found", "payroll run not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "run_get_failed", "failed to load payroll run", reqID)
		return
	}
	api.Success(w, run, reqID)
}

func (h *Handler) handleListRunItems(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	items, err := h.Service.ListRunItems(r.Context(), chi.URLParam(r, "runID"))
	if errors.Is(err, payroll.ErrRunNotFound) {
		api.Fail(w, http.StatusNotFound, "run_not_found", "payroll run not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "run_items_failed", "failed to list run items", reqID)
		return
	}
	api.Success(w, items, reqID)
}

type statusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleAdvanceStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	run, err := h.Service.AdvanceStatus(r.Context(), chi.URLParam(r, "runID"), payload.Status, reqID)
	switch {
	case errors.Is(err, payroll.ErrRunNotFound):
		api.Fail(w, http.StatusNotFound, "run_not_found", "payroll run not found", reqID)
	case errors.Is(err, payroll.ErrInvalidRunTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", "only processed runs can be marked paid", reqID)
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "run_status_failed", "failed to update run status", reqID)
	default:
		api.Success(w, run, reqID)
	}
}
