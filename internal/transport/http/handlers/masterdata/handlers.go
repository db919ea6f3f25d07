package masterdatahandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"manpower/internal/domain/masterdata"
	"manpower/internal/domain/payroll"
	"manpower/internal/transport/http/api"
	"manpower/internal/transport/http/middleware"
	"manpower/internal/transport/http/shared"
)

type Handler struct {
	Store           *masterdata.Store
	DefaultCurrency string
}

func NewHandler(store *masterdata.Store, defaultCurrency string) *Handler {
	return &Handler{Store: store, DefaultCurrency: defaultCurrency}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
	})
	r.Route("/positions", func(r chi.Router) {
		r.Get("/", h.handleListPositions)
		r.Post("/", h.handleCreatePosition)
	})
	r.Route("/contracts", func(r chi.Router) {
		r.Get("/", h.handleListContracts)
		r.Post("/", h.handleCreateContract)
		r.Put("/{contractID}/sale-rates", h.handleSetSaleRate)
		r.Post("/{contractID}/holidays", h.handleAddHoliday)
	})
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.handleListProjects)
		r.Post("/", h.handleCreateProject)
		r.Post("/{projectID}/assignments", h.handleAssignEmployee)
	})
}

type employeePayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("fullName", payload.FullName, "full name is required")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateEmployee(r.Context(), payload.FullName, payload.Email)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)
	employees, err := h.Store.ListEmployees(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employees_list_failed", "failed to list employees", reqID)
		return
	}
	api.Success(w, employees, reqID)
}

type positionPayload struct {
	Name               string  `json:"name"`
	OnshoreCostPerDay  float64 `json:"onshoreCostPerDay"`
	OffshoreCostPerDay float64 `json:"offshoreCostPerDay"`
}

func (h *Handler) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload positionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "position name is required")
	v.NonNegative("onshoreCostPerDay", payload.OnshoreCostPerDay, "daily cost must not be negative")
	v.NonNegative("offshoreCostPerDay", payload.OffshoreCostPerDay, "daily cost must not be negative")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreatePosition(r.Context(), masterdata.Position{
		Name:               payload.Name,
		OnshoreCostPerDay:  payload.OnshoreCostPerDay,
		OffshoreCostPerDay: payload.OffshoreCostPerDay,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "position_create_failed", "failed to create position", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleListPositions(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)
	positions, err := h.Store.ListPositions(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "positions_list_failed", "failed to list positions", reqID)
		return
	}
	api.Success(w, positions, reqID)
}

type contractPayload struct {
	Name       string                `json:"name"`
	ClientName string                `json:"clientName"`
	Currency   string                `json:"currency"`
	Weekend    payroll.WeekendConfig `json:"weekend"`
	OTRules    *payroll.OTRules      `json:"otRules"`
}

func (h *Handler) handleCreateContract(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload contractPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "contract name is required")
	if payload.OTRules != nil {
		v.NonNegative("otRules.workdayMultiplier", payload.OTRules.Workday, "multiplier must not be negative")
		v.NonNegative("otRules.weeklyHolidayMultiplier", payload.OTRules.WeeklyHoliday, "multiplier must not be negative")
		v.NonNegative("otRules.contractHolidayMultiplier", payload.OTRules.ContractHoliday, "multiplier must not be negative")
	}
	if v.Reject(w, reqID) {
		return
	}

	currency := payload.Currency
	if currency == "" {
		currency = h.DefaultCurrency
	}

	id, err := h.Store.CreateContract(r.Context(), masterdata.Contract{
		Name:       payload.Name,
		ClientName: payload.ClientName,
		Currency:   currency,
		Weekend:    payload.Weekend,
		OTRules:    payload.OTRules,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "contract_create_failed", "failed to create contract", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleListContracts(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)
	contracts, err := h.Store.ListContracts(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "contracts_list_failed", "failed to list contracts", reqID)
		return
	}
	api.Success(w, contracts, reqID)
}

type saleRatePayload struct {
	PositionID     string  `json:"positionId"`
	DailyRateExVAT float64 `json:"dailyRateExVat"`
}

func (h *Handler) handleSetSaleRate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	contractID := chi.URLParam(r, "contractID")

	var payload saleRatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("positionId", payload.PositionID, "position id is required")
	v.NonNegative("dailyRateExVat", payload.DailyRateExVAT, "daily rate must not be negative")
	if v.Reject(w, reqID) {
		return
	}

	err := h.Store.SetSaleRate(r.Context(), contractID, payroll.SaleRate{
		PositionID:     payload.PositionID,
		DailyRateExVAT: payload.DailyRateExVAT,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "sale_rate_set_failed", "failed to set sale rate", reqID)
		return
	}
	api.Success(w, map[string]string{"contractId": contractID, "positionId": payload.PositionID}, reqID)
}

type holidayPayload struct {
	Date string `json:"date"`
}

func (h *Handler) handleAddHoliday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	contractID := chi.URLParam(r, "contractID")

	var payload holidayPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	if _, ok := v.Date("date", payload.Date); !ok {
		v.Reject(w, reqID)
		return
	}

	if err := h.Store.AddHoliday(r.Context(), contractID, payload.Date); err != nil {
		api.Fail(w, http.StatusInternalServerError, "holiday_add_failed", "failed to add holiday", reqID)
		return
	}
	api.Created(w, map[string]string{"contractId": contractID, "date": payload.Date}, reqID)
}

type projectPayload struct {
	Name       string `json:"name"`
	ContractID string `json:"contractId"`
	WorkMode   string `json:"workMode"`
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "project name is required")
	v.Required("contractId", payload.ContractID, "contract id is required")
	v.Enum("workMode", payload.WorkMode,
		[]string{payroll.WorkModeOnshore, payroll.WorkModeOffshore},
		"work mode must be Onshore or Offshore")
	v.Required("workMode", payload.WorkMode, "work mode is required")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateProject(r.Context(), masterdata.Project{
		Name:       payload.Name,
		ContractID: payload.ContractID,
		WorkMode:   payload.WorkMode,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_create_failed", "failed to create project", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)
	projects, err := h.Store.ListProjects(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "projects_list_failed", "failed to list projects", reqID)
		return
	}
	api.Success(w, projects, reqID)
}

type assignmentPayload struct {
	EmployeeID string `json:"employeeId"`
	PositionID string `json:"positionId"`
}

func (h *Handler) handleAssignEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	projectID := chi.URLParam(r, "projectID")

	var payload assignmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Required("positionId", payload.PositionID, "position id is required")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.AssignEmployee(r.Context(), masterdata.Assignment{
		ProjectID:  projectID,
		EmployeeID: payload.EmployeeID,
		PositionID: payload.PositionID,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "assignment_failed", "failed to assign employee", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}
