package timesheethandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"manpower/internal/domain/payroll"
	"manpower/internal/domain/timesheet"
	"manpower/internal/transport/http/api"
	"manpower/internal/transport/http/middleware"
	"manpower/internal/transport/http/shared"
)

type Handler struct {
	Service *timesheet.Service
}

func NewHandler(service *timesheet.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/timesheets/batches", func(r chi.Router) {
		r.Get("/", h.handleListBatches)
		r.Post("/", h.handleCreateBatch)
		r.Get("/{batchID}", h.handleGetBatch)
		r.Get("/{batchID}/lines", h.handleListLines)
		r.Post("/{batchID}/lines", h.handleAddLine)
		r.Post("/{batchID}/approve", h.handleApproveBatch)
	})
}

type batchPayload struct {
	ProjectID   string `json:"projectId"`
	ContractID  string `json:"contractId"`
	PeriodMonth string `json:"periodMonth"`
}

func (h *Handler) handleCreateBatch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload batchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("projectId", payload.ProjectID, "project id is required")
	v.Required("contractId", payload.ContractID, "contract id is required")
	v.Required("periodMonth", payload.PeriodMonth, "period month is required")
	if v.Reject(w, reqID) {
		return
	}

	batch, err := h.Service.CreateBatch(r.Context(), payload.ProjectID, payload.ContractID, payload.PeriodMonth)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "batch_create_failed", "failed to create timesheet batch", reqID)
		return
	}
	api.Created(w, batch, reqID)
}

func (h *Handler) handleListBatches(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 20, 100)
	batches, total, err := h.Service.ListBatches(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "batches_list_failed", "failed to list timesheet batches", reqID)
		return
	}
	api.Success(w, map[string]any{"items": batches, "total": total}, reqID)
}

func (h *Handler) handleGetBatch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	batch, err := h.Service.GetBatch(r.Context(), chi.URLParam(r, "batchID"))
	if errors.Is(err, timesheet.ErrBatchNotFound) {
		api.Fail(w, http.StatusNotFound, "batch_not_found", "timesheet batch not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "batch_get_failed", "failed to load timesheet batch", reqID)
		return
	}
	api.Success(w, batch, reqID)
}

type linePayload struct {
	EmployeeID  string  `json:"employeeId"`
	WorkDate    string  `json:"workDate"`
	WorkType    string  `json:"workType"`
	NormalHours float64 `json:"normalHours"`
	OTHours     float64 `json:"otHours"`
	DayCategory string  `json:"dayCategory"`
}

func (h *Handler) handleAddLine(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	batchID := chi.URLParam(r, "batchID")

	var payload linePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	if v.Reject(w, reqID) {
		return
	}

	line := payroll.TimesheetLine{
		EmployeeID:  payload.EmployeeID,
		WorkDate:    payload.WorkDate,
		WorkType:    payload.WorkType,
		NormalHours: payload.NormalHours,
		OTHours:     payload.OTHours,
		DayCategory: payload.DayCategory,
	}

	id, err := h.Service.AddLine(r.Context(), batchID, line)
	switch {
	case errors.Is(err, timesheet.ErrBatchNotFound):
		api.Fail(w, http.StatusNotFound, "batch_not_found", "timesheet batch not found", reqID)
	case errors.Is(err, timesheet.ErrBatchLocked):
		api.Fail(w, http.StatusConflict, "batch_locked", "approved batches cannot be modified", reqID)
	case err != nil:
		// Validation failures carry the reason from the domain check.
		api.Fail(w, http.StatusBadRequest, "invalid_line", err.Error(), reqID)
	default:
		api.Created(w, map[string]string{"id": id}, reqID)
	}
}

func (h *Handler) handleListLines(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	lines, err := h.Service.ListLines(r.Context(), chi.URLParam(r, "batchID"))
	if errors.Is(err, timesheet.ErrBatchNotFound) {
		api.Fail(w, http.StatusNotFound, "batch_not_found", "timesheet batch not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lines_list_failed", "failed to list timesheet lines", reqID)
		return
	}
	api.Success(w, lines, reqID)
}

func (h *Handler) handleApproveBatch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	batch, err := h.Service.ApproveBatch(r.Context(), chi.URLParam(r, "batchID"), reqID)
	switch {
	case errors.Is(err, timesheet.ErrBatchNotFound):
		api.Fail(w, http.StatusNotFound, "batch_not_found", "timesheet batch not found", reqID)
	case errors.Is(err, timesheet.ErrBatchLocked):
		api.Fail(w, http.StatusConflict, "batch_locked", "timesheet batch is already approved", reqID)
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "batch_approve_failed", "failed to approve timesheet batch", reqID)
	default:
		api.Success(w, batch, reqID)
	}
}
