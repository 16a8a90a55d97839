package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/payroll"
	"github.com/sistema-nomina/nomina-backend-go/internal/handler/http/middleware"
	"github.com/sistema-nomina/nomina-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	GetStatement(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	DeletePeriod(w http.ResponseWriter, r *http.Request)

	Recalculate(w http.ResponseWriter, r *http.Request)
	RecalculateMonth(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	SendReceipt(w http.ResponseWriter, r *http.Request)

	ListConcepts(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// ==================== PERIOD HANDLERS ====================

func (h *payrollHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created successfully", result)
}

func (h *payrollHandlerImpl) GetStatement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetStatement(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	var filter payroll.PeriodFilter

	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil {
		filter.Month = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		filter.Year = &v
	}
	if v := r.URL.Query().Get("closed"); v != "" {
		closed := v == "true"
		filter.Closed = &closed
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.payrollService.ListPeriods(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeletePeriod(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period deleted successfully", nil)
}

// ==================== CALCULATION HANDLERS ====================

func (h *payrollHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	force := r.URL.Query().Get("force") == "true"

	totals, err := h.payrollService.Recalculate(r.Context(), id, force, middleware.Actor(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period recalculated successfully", totals)
}

func (h *payrollHandlerImpl) RecalculateMonth(w http.ResponseWriter, r *http.Request) {
	var req payroll.RecalculateMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.RecalculateMonth(r.Context(), req, middleware.Actor(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.Close(r.Context(), id, middleware.Actor(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period closed successfully", nil)
}

func (h *payrollHandlerImpl) SendReceipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.SendReceipt(r.Context(), id, middleware.Actor(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Receipt sent successfully", nil)
}

// ==================== CONCEPT HANDLERS ====================

func (h *payrollHandlerImpl) ListConcepts(w http.ResponseWriter, r *http.Request) {
	results, err := h.payrollService.ListConcepts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
