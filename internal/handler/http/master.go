package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/wage"
	"github.com/sistema-nomina/nomina-backend-go/internal/handler/http/response"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/validator"
)

type MasterHandler interface {
	CreateWage(w http.ResponseWriter, r *http.Request)
	ListWages(w http.ResponseWriter, r *http.Request)
	GetEffectiveWage(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	wageService wage.WageService
}

func NewMasterHandler(wageService wage.WageService) MasterHandler {
	return &masterHandlerImpl{
		wageService: wageService,
	}
}

// ==================== MINIMUM WAGE HANDLERS ====================

func (h *masterHandlerImpl) CreateWage(w http.ResponseWriter, r *http.Request) {
	var req wage.CreateWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.wageService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Minimum wage recorded successfully", result)
}

func (h *masterHandlerImpl) ListWages(w http.ResponseWriter, r *http.Request) {
	results, err := h.wageService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) GetEffectiveWage(w http.ResponseWriter, r *http.Request) {
	ref := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "Date must be YYYY-MM-DD", nil)
			return
		}
		ref = parsed
	}

	result, err := h.wageService.GetEffective(r.Context(), ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
